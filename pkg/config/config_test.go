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
	"testing"

	"github.com/XiangYd616/Web-Test/pkg/patch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentRuleset(t *testing.T) {
	tests := []struct {
		name        string
		doc         Document
		wantErr     bool
		errContains string
		check       func(t *testing.T, rs patch.Ruleset)
	}{
		{
			name: "maps_kinds_and_fields",
			doc: Document{
				Name: "my-fixes",
				Rules: []RuleSpec{
					{Find: "閰嶇疆", Replace: "配置"},
					{Kind: "literal", Find: "娴嬭瘯", Replace: "测试"},
					{Kind: "append", Find: `title="执行流水线`, Suffix: `"`},
					{Kind: "block", Find: "AA", Replace: "BB", Weight: 4, Note: "template array"},
				},
			},
			check: func(t *testing.T, rs patch.Ruleset) {
				assert.Equal(t, "my-fixes", rs.Name, "name should match")
				require.Len(t, rs.Rules, 4, "all rules should convert")
				assert.Equal(t, patch.KindLiteral, rs.Rules[0].Kind, "empty kind should default to literal")
				assert.Equal(t, patch.KindLiteral, rs.Rules[1].Kind, "literal kind should map")
				assert.Equal(t, patch.KindAppend, rs.Rules[2].Kind, "append kind should map")
				assert.Equal(t, `"`, rs.Rules[2].Suffix, "suffix should carry over")
				assert.Equal(t, patch.KindBlock, rs.Rules[3].Kind, "block kind should map")
				assert.Equal(t, 4, rs.Rules[3].Weight, "weight should carry over")
				assert.Equal(t, "template array", rs.Rules[3].Note, "note should carry over")
			},
		},
		{
			name: "kind_matching_is_case_insensitive",
			doc: Document{
				Rules: []RuleSpec{
					{Kind: " Append ", Find: "x", Suffix: "y"},
				},
			},
			check: func(t *testing.T, rs patch.Ruleset) {
				require.Len(t, rs.Rules, 1, "rule should convert")
				assert.Equal(t, patch.KindAppend, rs.Rules[0].Kind, "kind should be trimmed and lowered")
			},
		},
		{
			name: "missing_name_defaults_to_custom",
			doc: Document{
				Rules: []RuleSpec{
					{Find: "a", Replace: "b"},
				},
			},
			check: func(t *testing.T, rs patch.Ruleset) {
				assert.Equal(t, "custom", rs.Name, "unnamed documents should get a default name")
			},
		},
		{
			name: "files_glob_carries_over",
			doc: Document{
				Rules: []RuleSpec{
					{Find: "a", Replace: "b", Files: "**/*.tsx"},
				},
			},
			check: func(t *testing.T, rs patch.Ruleset) {
				require.Len(t, rs.Rules, 1, "rule should convert")
				assert.Equal(t, "**/*.tsx", rs.Rules[0].Files, "glob should carry over")
			},
		},
		{
			name: "unknown_kind_reports_index",
			doc: Document{
				Rules: []RuleSpec{
					{Find: "a", Replace: "b"},
					{Kind: "regex", Find: "c", Replace: "d"},
				},
			},
			wantErr:     true,
			errContains: `rule 1: unknown rule kind "regex"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs, err := tt.doc.Ruleset()
			if tt.wantErr {
				require.Error(t, err, "Ruleset should return error")
				assert.Contains(t, err.Error(), tt.errContains, "error should contain expected message")
				return
			}

			require.NoError(t, err, "Ruleset should succeed")
			if tt.check != nil {
				tt.check(t, rs)
			}
		})
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name        string
		opts        Options
		wantErr     bool
		errContains string
	}{
		{
			name: "single_target",
			opts: Options{Targets: []string{"frontend/page.tsx"}},
		},
		{
			name: "multiple_targets_with_settings",
			opts: Options{
				Targets:    []string{"a.tsx", "b.tsx"},
				RulesFile:  "rules.yaml",
				Backup:     true,
				ShowMissed: true,
				Async:      true,
			},
		},
		{
			name:        "no_targets",
			opts:        Options{},
			wantErr:     true,
			errContains: "at least one target file is required",
		},
		{
			name:        "empty_target",
			opts:        Options{Targets: []string{"a.tsx", ""}},
			wantErr:     true,
			errContains: "target file must not be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.wantErr {
				require.Error(t, err, "Validate should return error")
				assert.Contains(t, err.Error(), tt.errContains, "error should contain expected message")
				return
			}
			require.NoError(t, err, "Validate should succeed")
		})
	}
}
