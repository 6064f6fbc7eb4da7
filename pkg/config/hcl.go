// Copyright 2026 Zipsea, Inc.
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

// 📝 Parse parses the config from HCL
func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "config.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	// Create evaluation context
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}

	// Define HCL schema
	type hclConfig struct {
		Title string `hcl:"title,optional"`
		Root  string `hcl:"root,optional"`
		Files []struct {
			Path         string `hcl:"path,label"`
			Import       string `hcl:"import,optional"`
			Marker       string `hcl:"marker,optional"`
			InsertAtTop  bool   `hcl:"insert_at_top,optional"`
			InsertAfter  string `hcl:"insert_after,optional"`
			Replacements []struct {
				Old string `hcl:"old"`
				New string `hcl:"new"`
			} `hcl:"replacement,block"`
		} `hcl:"file,block"`
		NextSteps []string `hcl:"next_steps,optional"`
	}

	// Decode HCL
	var hclCfg hclConfig
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &hclCfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	// Convert to model
	cfg := &Config{
		Title:     hclCfg.Title,
		Root:      hclCfg.Root,
		NextSteps: hclCfg.NextSteps,
	}
	for _, f := range hclCfg.Files {
		entry := FileEntry{
			Path:        f.Path,
			Import:      f.Import,
			Marker:      f.Marker,
			InsertAtTop: f.InsertAtTop,
			InsertAfter: f.InsertAfter,
		}
		for _, r := range f.Replacements {
			entry.Replacements = append(entry.Replacements, ReplacementEntry{Old: r.Old, New: r.New})
		}
		cfg.Files = append(cfg.Files, entry)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}
