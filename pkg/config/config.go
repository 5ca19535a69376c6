// Copyright 2025 the Web-Test authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"strings"

	"github.com/XiangYd616/Web-Test/pkg/patch"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Parser is the interface for rules file parsers
type Parser interface {
	// 📝 Parse parses a rules document from bytes
	Parse(ctx context.Context, data []byte) (*Document, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 🔄 RuleSpec is one substitution entry as written in a rules file
type RuleSpec struct {
	Kind    string `json:"kind,omitempty" yaml:"kind,omitempty"`       // literal (default), append, or block
	Find    string `json:"find" yaml:"find"`                           // Damaged text to search for
	Replace string `json:"replace,omitempty" yaml:"replace,omitempty"` // Corrected text (literal and block)
	Suffix  string `json:"suffix,omitempty" yaml:"suffix,omitempty"`   // Text appended after find (append)
	Weight  int    `json:"weight,omitempty" yaml:"weight,omitempty"`   // Fix credit override, 0 means count occurrences
	Files   string `json:"files,omitempty" yaml:"files,omitempty"`     // Glob pattern limiting which targets the rule touches
	Note    string `json:"note,omitempty" yaml:"note,omitempty"`       // Free-form description
}

// 📚 Document represents a parsed rules file
type Document struct {
	Name  string     `json:"name,omitempty" yaml:"name,omitempty"` // Ruleset name shown in logs
	Rules []RuleSpec `json:"rules" yaml:"rules"`                   // Ordered substitution entries
}

// 🎯 Ruleset converts the document into an ordered ruleset
func (d *Document) Ruleset() (patch.Ruleset, error) {
	rules := make([]patch.Rule, 0, len(d.Rules))
	for i, spec := range d.Rules {
		kind, err := parseKind(spec.Kind)
		if err != nil {
			return patch.Ruleset{}, errors.Errorf("rule %d: %w", i, err)
		}
		rules = append(rules, patch.Rule{
			Kind:    kind,
			Find:    spec.Find,
			Replace: spec.Replace,
			Suffix:  spec.Suffix,
			Weight:  spec.Weight,
			Files:   spec.Files,
			Note:    spec.Note,
		})
	}

	name := d.Name
	if name == "" {
		name = "custom"
	}

	return patch.Ruleset{Name: name, Rules: rules}, nil
}

// 🔍 parseKind maps a rules file kind string onto a rule kind
func parseKind(s string) (patch.Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "literal":
		return patch.KindLiteral, nil
	case "append":
		return patch.KindAppend, nil
	case "block":
		return patch.KindBlock, nil
	default:
		return patch.KindLiteral, errors.Errorf("unknown rule kind %q", s)
	}
}
