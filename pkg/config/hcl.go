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

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&HCLParser{})
}

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".hcl")
}

// 📝 Parse parses a rules document from HCL bytes
func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Document, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "rules.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	// Create evaluation context
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}

	// Define HCL schema
	type hclRule struct {
		Kind    string `hcl:"kind,optional"`
		Find    string `hcl:"find"`
		Replace string `hcl:"replace,optional"`
		Suffix  string `hcl:"suffix,optional"`
		Weight  int    `hcl:"weight,optional"`
		Files   string `hcl:"files,optional"`
		Note    string `hcl:"note,optional"`
	}
	type hclDocument struct {
		Name  string    `hcl:"name,optional"`
		Rules []hclRule `hcl:"rule,block"`
	}

	// Decode HCL
	var hclDoc hclDocument
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &hclDoc)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	// Convert to model
	doc := &Document{Name: hclDoc.Name}
	for _, r := range hclDoc.Rules {
		doc.Rules = append(doc.Rules, RuleSpec{
			Kind:    r.Kind,
			Find:    r.Find,
			Replace: r.Replace,
			Suffix:  r.Suffix,
			Weight:  r.Weight,
			Files:   r.Files,
			Note:    r.Note,
		})
	}

	return doc, nil
}
