package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/XiangYd616/Web-Test/pkg/patch"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
name: sample
rules:
  - find: "閰嶇疆"
    replace: "配置"
  - kind: append
    find: "title=\"执行流水线"
    suffix: "\""
  - kind: block
    find: "OLD"
    replace: "NEW"
    weight: 4
`

const sampleJSON = `{
	"name": "sample",
	"rules": [
		{"find": "閰嶇疆", "replace": "配置"},
		{"kind": "append", "find": "title=\"执行流水线", "suffix": "\""},
		{"kind": "block", "find": "OLD", "replace": "NEW", "weight": 4}
	]
}`

const sampleHCL = `
name = "sample"

rule {
  find    = "閰嶇疆"
  replace = "配置"
}

rule {
  kind   = "append"
  find   = "title=\"执行流水线"
  suffix = "\""
}

rule {
  kind    = "block"
  find    = "OLD"
  replace = "NEW"
  weight  = 4
}
`

func writeRules(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644), "writing rules file should succeed")
	return path
}

func TestLoadRules(t *testing.T) {
	ctx := zerolog.New(os.Stderr).WithContext(context.Background())

	t.Run("empty_path_selects_builtin", func(t *testing.T) {
		rs, err := LoadRules(ctx, "")
		require.NoError(t, err, "LoadRules should succeed")
		assert.Equal(t, patch.Builtin(), rs, "empty path should return the built-in table")
	})

	t.Run("loads_yaml_file", func(t *testing.T) {
		rs, err := LoadRules(ctx, writeRules(t, "rules.yaml", sampleYAML))
		require.NoError(t, err, "LoadRules should succeed")

		assert.Equal(t, "sample", rs.Name, "name should come from the file")
		require.Len(t, rs.Rules, 3, "all rules should survive")
		assert.Equal(t, patch.KindLiteral, rs.Rules[0].Kind)
		assert.Equal(t, patch.KindAppend, rs.Rules[1].Kind)
		assert.Equal(t, patch.KindBlock, rs.Rules[2].Kind)
		assert.Equal(t, 4, rs.Rules[2].Weight)
	})

	t.Run("formats_are_equivalent", func(t *testing.T) {
		fromYAML, err := LoadRules(ctx, writeRules(t, "rules.yaml", sampleYAML))
		require.NoError(t, err, "YAML should load")

		fromJSON, err := LoadRules(ctx, writeRules(t, "rules.json", sampleJSON))
		require.NoError(t, err, "JSON should load")

		fromHCL, err := LoadRules(ctx, writeRules(t, "rules.hcl", sampleHCL))
		require.NoError(t, err, "HCL should load")

		assert.Equal(t, fromYAML, fromJSON, "YAML and JSON should produce the same table")
		assert.Equal(t, fromYAML, fromHCL, "YAML and HCL should produce the same table")
	})

	t.Run("missing_file", func(t *testing.T) {
		_, err := LoadRules(ctx, filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err, "LoadRules should fail")
		assert.Contains(t, err.Error(), "reading rules file", "error should mention the read")
	})

	t.Run("unknown_extension", func(t *testing.T) {
		_, err := LoadRules(ctx, writeRules(t, "rules.txt", "find -> replace"))
		require.Error(t, err, "LoadRules should fail")
		assert.Contains(t, err.Error(), "no parser found", "error should mention parser lookup")
	})

	t.Run("normalization_drops_noops_and_duplicates", func(t *testing.T) {
		rs, err := LoadRules(ctx, writeRules(t, "rules.yaml", `
rules:
  - find: "same"
    replace: "same"
  - find: "閰嶇疆"
    replace: "配置"
  - find: "閰嶇疆"
    replace: "другой"
`))
		require.NoError(t, err, "LoadRules should succeed")
		require.Len(t, rs.Rules, 1, "no-ops and duplicates should be dropped")
		assert.Equal(t, "配置", rs.Rules[0].Replace, "first duplicate should win")
	})

	t.Run("table_with_only_noops_fails", func(t *testing.T) {
		_, err := LoadRules(ctx, writeRules(t, "rules.yaml", `
rules:
  - find: "same"
    replace: "same"
`))
		require.Error(t, err, "LoadRules should fail")
		assert.Contains(t, err.Error(), "no usable rules", "error should mention the empty table")
	})

	t.Run("invalid_glob_fails_validation", func(t *testing.T) {
		_, err := LoadRules(ctx, writeRules(t, "rules.yaml", `
rules:
  - find: "a"
    replace: "b"
    files: "[unclosed"
`))
		require.Error(t, err, "LoadRules should fail")
		assert.Contains(t, err.Error(), "validating rules", "error should mention validation")
	})
}
