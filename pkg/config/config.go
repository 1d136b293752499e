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
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/textsweep/pkg/i18n"
	"github.com/walteh/textsweep/pkg/text"
	"github.com/walteh/textsweep/pkg/walk"
	"gitlab.com/tozd/go/errors"
)

// Defaults for jobs that leave fields unset.
const (
	DefaultReplaceRoot   = "lib/ui"
	DefaultReplaceOld    = "'MontSerrat'"
	DefaultReplaceNew    = "'Poppins'"
	DefaultExtractRoot   = "../lib"
	DefaultExtractOutput = "dnd.json"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

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

// 🔄 Replacement represents a literal string replacement
type Replacement struct {
	Old  string  `json:"old" yaml:"old"`                       // Original string to replace
	New  string  `json:"new" yaml:"new"`                       // New string to use
	File *string `json:"file,omitempty" yaml:"file,omitempty"` // Optional glob restricting the files
}

// ✏️ ReplaceJob is one find-and-replace pass over a directory tree
type ReplaceJob struct {
	Root   string        `json:"root" yaml:"root"`
	Rules  []Replacement `json:"rules" yaml:"rules"`
	Ignore []string      `json:"ignore,omitempty" yaml:"ignore,omitempty"`
	DryRun bool          `json:"dry_run,omitempty" yaml:"dry_run,omitempty"`
}

// TextRules converts the job's replacements into text rules.
func (j ReplaceJob) TextRules() []text.ReplacementRule {
	rules := make([]text.ReplacementRule, 0, len(j.Rules))
	for _, r := range j.Rules {
		rule := text.ReplacementRule{FromText: r.Old, ToText: r.New}
		if r.File != nil {
			rule.FileFilterGlob = *r.File
		}
		rules = append(rules, rule)
	}
	return rules
}

// Filter returns the walk filter for the job.
func (j ReplaceJob) Filter() walk.Filter {
	return walk.Filter{Ignore: j.Ignore}
}

// 🔤 ExtractJob is one i18n key extraction pass over a directory tree
type ExtractJob struct {
	Root     string   `json:"root" yaml:"root"`
	Marker   string   `json:"marker,omitempty" yaml:"marker,omitempty"`
	Output   string   `json:"output,omitempty" yaml:"output,omitempty"`
	Include  []string `json:"include,omitempty" yaml:"include,omitempty"`
	Ignore   []string `json:"ignore,omitempty" yaml:"ignore,omitempty"`
	SortKeys bool     `json:"sort_keys,omitempty" yaml:"sort_keys,omitempty"`
}

// Filter returns the walk filter for the job.
func (j ExtractJob) Filter() walk.Filter {
	return walk.Filter{Include: j.Include, Ignore: j.Ignore}
}

// 📚 Config represents the complete configuration
type Config struct {
	Replace []ReplaceJob `json:"replace,omitempty" yaml:"replace,omitempty"`
	Extract []ExtractJob `json:"extract,omitempty" yaml:"extract,omitempty"`

	location string
}

// Location returns the file the config was loaded from, if any.
func (cfg *Config) Location() string {
	return cfg.location
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}
	cfg.location = path

	logger.Debug().
		Int("replace_jobs", len(cfg.Replace)).
		Int("extract_jobs", len(cfg.Extract)).
		Msg("configuration loaded")

	return cfg, nil
}

// 🔍 Validate checks the configuration and fills in defaults
func (cfg *Config) Validate() error {
	if len(cfg.Replace) == 0 && len(cfg.Extract) == 0 {
		return errors.Errorf("at least one replace or extract job is required")
	}

	for i := range cfg.Replace {
		if err := cfg.Replace[i].Validate(); err != nil {
			return errors.Errorf("replace job %d: %w", i, err)
		}
	}
	for i := range cfg.Extract {
		if err := cfg.Extract[i].Validate(); err != nil {
			return errors.Errorf("extract job %d: %w", i, err)
		}
	}

	return nil
}

// 🔍 Validate checks the job and fills in defaults
func (j *ReplaceJob) Validate() error {
	if j.Root == "" {
		j.Root = DefaultReplaceRoot
	}
	j.Root = filepath.Clean(j.Root)

	if len(j.Rules) == 0 {
		return errors.Errorf("at least one rule is required")
	}
	if j.Ignore == nil {
		j.Ignore = append([]string(nil), walk.DefaultIgnore...)
	}

	if err := text.NewSimpleTextReplacer().ValidateRules(j.TextRules()); err != nil {
		return err
	}
	return j.Filter().Validate()
}

// 🔍 Validate checks the job and fills in defaults
func (j *ExtractJob) Validate() error {
	if j.Root == "" {
		j.Root = DefaultExtractRoot
	}
	j.Root = filepath.Clean(j.Root)

	if j.Marker == "" {
		j.Marker = i18n.DefaultMarker
	}
	if _, err := i18n.NewExtractor(j.Marker); err != nil {
		return err
	}

	if j.Output == "" {
		j.Output = DefaultExtractOutput
	}
	j.Output = filepath.Clean(j.Output)

	if j.Ignore == nil {
		j.Ignore = append([]string(nil), walk.DefaultIgnore...)
	}
	return j.Filter().Validate()
}

// 📝 String returns a short description of the job
func (j ReplaceJob) String() string {
	return fmt.Sprintf("replace %d rule(s) under %s", len(j.Rules), j.Root)
}

// 📝 String returns a short description of the job
func (j ExtractJob) String() string {
	return fmt.Sprintf("extract %q literals under %s -> %s", j.Marker, j.Root, j.Output)
}

// 📦 Default returns the configuration equivalent to running both
// operations with no arguments.
func Default() *Config {
	return &Config{
		Replace: []ReplaceJob{{
			Root:  DefaultReplaceRoot,
			Rules: []Replacement{{Old: DefaultReplaceOld, New: DefaultReplaceNew}},
		}},
		Extract: []ExtractJob{{
			Root:   DefaultExtractRoot,
			Marker: i18n.DefaultMarker,
			Output: DefaultExtractOutput,
		}},
	}
}
