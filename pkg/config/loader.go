package config

import (
	"context"
	"os"

	"github.com/XiangYd616/Web-Test/pkg/patch"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// LoadRules loads the substitution table for a run. The format is
// determined by the file extension:
// - .yaml or .yml for YAML
// - .json for JSON
// - .hcl for HCL
// An empty path selects the built-in table.
func LoadRules(ctx context.Context, path string) (patch.Ruleset, error) {
	if path == "" {
		return patch.Builtin(), nil
	}

	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading rules file")

	data, err := os.ReadFile(path)
	if err != nil {
		return patch.Ruleset{}, errors.Errorf("reading rules file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return patch.Ruleset{}, errors.Errorf("no parser found for file %s (supported: .yaml, .yml, .json, .hcl)", path)
	}

	doc, err := p.Parse(ctx, data)
	if err != nil {
		return patch.Ruleset{}, errors.Errorf("parsing rules file: %w", err)
	}

	rs, err := doc.Ruleset()
	if err != nil {
		return patch.Ruleset{}, errors.Errorf("converting rules: %w", err)
	}

	// Normalization is forgiving about copy-paste artifacts, validation
	// catches structural mistakes that survive it.
	before := len(rs.Rules)
	rs.Rules = patch.Normalize(rs.Rules)
	if dropped := before - len(rs.Rules); dropped > 0 {
		logger.Debug().Int("dropped", dropped).Msg("normalization removed no-op or duplicate rules")
	}
	if len(rs.Rules) == 0 {
		return patch.Ruleset{}, errors.Errorf("rules file defines no usable rules")
	}
	if err := patch.Validate(rs.Rules); err != nil {
		return patch.Ruleset{}, errors.Errorf("validating rules: %w", err)
	}

	logger.Debug().Str("ruleset", rs.Name).Int("rules", len(rs.Rules)).Msg("rules loaded")

	return rs, nil
}
