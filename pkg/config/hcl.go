// Copyright 2025 walteh LLC
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
	"github.com/walteh/textsweep/pkg/i18n"
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
	return strings.HasSuffix(strings.ToLower(filename), ".hcl")
}

// 📝 Parse parses the config from HCL
//
//	replace "lib/ui" {
//	  rule {
//	    old = "'MontSerrat'"
//	    new = "'Poppins'"
//	  }
//	}
//
//	extract "../lib" {
//	  output = "dnd.json"
//	}
func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "config.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	// Create evaluation context
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"default_marker": cty.StringVal(i18n.DefaultMarker),
		},
	}

	// Define HCL schema
	type hclRule struct {
		Old  string  `hcl:"old"`
		New  string  `hcl:"new"`
		File *string `hcl:"file,optional"`
	}
	type hclReplace struct {
		Root   string    `hcl:"root,label"`
		Rules  []hclRule `hcl:"rule,block"`
		Ignore []string  `hcl:"ignore,optional"`
		DryRun bool      `hcl:"dry_run,optional"`
	}
	type hclExtract struct {
		Root     string   `hcl:"root,label"`
		Marker   string   `hcl:"marker,optional"`
		Output   string   `hcl:"output,optional"`
		Include  []string `hcl:"include,optional"`
		Ignore   []string `hcl:"ignore,optional"`
		SortKeys bool     `hcl:"sort_keys,optional"`
	}
	type hclConfig struct {
		Replace []hclReplace `hcl:"replace,block"`
		Extract []hclExtract `hcl:"extract,block"`
	}

	var hclCfg hclConfig
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &hclCfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	// Convert to model
	cfg := &Config{}
	for _, r := range hclCfg.Replace {
		job := ReplaceJob{
			Root:   r.Root,
			Ignore: r.Ignore,
			DryRun: r.DryRun,
		}
		for _, rule := range r.Rules {
			job.Rules = append(job.Rules, Replacement{
				Old:  rule.Old,
				New:  rule.New,
				File: rule.File,
			})
		}
		cfg.Replace = append(cfg.Replace, job)
	}
	for _, e := range hclCfg.Extract {
		cfg.Extract = append(cfg.Extract, ExtractJob{
			Root:     e.Root,
			Marker:   e.Marker,
			Output:   e.Output,
			Include:  e.Include,
			Ignore:   e.Ignore,
			SortKeys: e.SortKeys,
		})
	}

	return cfg, nil
}
