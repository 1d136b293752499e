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
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/textsweep/pkg/i18n"
	"github.com/walteh/textsweep/pkg/walk"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		config      string
		wantErr     bool
		errContains string
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name:     "valid_yaml",
			filename: "config.yaml",
			config: `
replace:
  - root: lib/ui
    rules:
      - old: "'MontSerrat'"
        new: "'Poppins'"
      - old: foo
        new: bar
        file: "**/*.dart"
    dry_run: true
extract:
  - root: ../lib
    marker: .tr
    output: out/keys.json
    include: ["**/*.dart"]
    ignore: []
    sort_keys: true
`,
			check: func(t *testing.T, cfg *Config) {
				require.Len(t, cfg.Replace, 1, "should have 1 replace job")
				job := cfg.Replace[0]
				assert.Equal(t, "lib/ui", job.Root)
				assert.True(t, job.DryRun)
				require.Len(t, job.Rules, 2)
				assert.Equal(t, "'MontSerrat'", job.Rules[0].Old)
				assert.Equal(t, "'Poppins'", job.Rules[0].New)
				assert.Nil(t, job.Rules[0].File)
				require.NotNil(t, job.Rules[1].File)
				assert.Equal(t, "**/*.dart", *job.Rules[1].File)
				assert.Equal(t, walk.DefaultIgnore, job.Ignore, "ignore should default")

				require.Len(t, cfg.Extract, 1, "should have 1 extract job")
				ex := cfg.Extract[0]
				assert.Equal(t, "../lib", ex.Root)
				assert.Equal(t, ".tr", ex.Marker)
				assert.Equal(t, filepath.Clean("out/keys.json"), ex.Output)
				assert.Equal(t, []string{"**/*.dart"}, ex.Include)
				assert.Empty(t, ex.Ignore, "explicit empty ignore should be kept")
				assert.NotNil(t, ex.Ignore, "explicit empty ignore should be kept")
				assert.True(t, ex.SortKeys)
			},
		},
		{
			name:     "extract_defaults",
			filename: "config.yml",
			config: `
extract:
  - {}
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Empty(t, cfg.Replace)
				require.Len(t, cfg.Extract, 1)
				assert.Equal(t, DefaultExtractRoot, cfg.Extract[0].Root)
				assert.Equal(t, i18n.DefaultMarker, cfg.Extract[0].Marker)
				assert.Equal(t, DefaultExtractOutput, cfg.Extract[0].Output)
				assert.False(t, cfg.Extract[0].SortKeys)
			},
		},
		{
			name:     "valid_hcl",
			filename: "config.hcl",
			config: `
replace "lib/ui" {
  dry_run = true
  rule {
    old = "'MontSerrat'"
    new = "'Poppins'"
  }
  rule {
    old  = "a"
    new  = "b"
    file = "**/*.dart"
  }
}

extract "../lib" {
  marker = default_marker
  output = "dnd.json"
  include = ["**/*.dart"]
}
`,
			check: func(t *testing.T, cfg *Config) {
				require.Len(t, cfg.Replace, 1)
				assert.Equal(t, "lib/ui", cfg.Replace[0].Root)
				assert.True(t, cfg.Replace[0].DryRun)
				require.Len(t, cfg.Replace[0].Rules, 2)
				assert.Nil(t, cfg.Replace[0].Rules[0].File)
				require.NotNil(t, cfg.Replace[0].Rules[1].File)
				assert.Equal(t, "**/*.dart", *cfg.Replace[0].Rules[1].File)

				require.Len(t, cfg.Extract, 1)
				assert.Equal(t, "../lib", cfg.Extract[0].Root)
				assert.Equal(t, ".i18n", cfg.Extract[0].Marker)
				assert.Equal(t, "dnd.json", cfg.Extract[0].Output)
				assert.Equal(t, []string{"**/*.dart"}, cfg.Extract[0].Include)
			},
		},
		{
			name:     "valid_json",
			filename: "config.json",
			config: `{
				"replace": [
					{
						"root": "lib/ui",
						"rules": [{"old": "x", "new": "y"}]
					}
				]
			}`,
			check: func(t *testing.T, cfg *Config) {
				require.Len(t, cfg.Replace, 1)
				assert.Equal(t, "x", cfg.Replace[0].Rules[0].Old)
				assert.Equal(t, "y", cfg.Replace[0].Rules[0].New)
			},
		},
		{
			name:        "no_jobs",
			filename:    "config.yaml",
			config:      "replace: []\n",
			wantErr:     true,
			errContains: "at least one replace or extract job is required",
		},
		{
			name:     "replace_without_rules",
			filename: "config.yaml",
			config: `
replace:
  - root: lib/ui
`,
			wantErr:     true,
			errContains: "replace job 0: at least one rule is required",
		},
		{
			name:     "empty_old_text",
			filename: "config.yaml",
			config: `
replace:
  - rules:
      - old: ""
        new: "x"
`,
			wantErr:     true,
			errContains: "from_text is required",
		},
		{
			name:     "bad_ignore_pattern",
			filename: "config.yaml",
			config: `
extract:
  - ignore: ["[broken"]
`,
			wantErr:     true,
			errContains: "invalid ignore pattern",
		},
		{
			name:     "unknown_yaml_field",
			filename: "config.yaml",
			config: `
replace:
  - root: lib/ui
    rulez: []
`,
			wantErr:     true,
			errContains: "parsing YAML",
		},
		{
			name:        "unknown_json_field",
			filename:    "config.json",
			config:      `{"extract": [{"root": "x", "nope": true}]}`,
			wantErr:     true,
			errContains: "parsing JSON",
		},
		{
			name:        "bad_hcl",
			filename:    "config.hcl",
			config:      `replace "x" {`,
			wantErr:     true,
			errContains: "parsing HCL",
		},
		{
			name:        "unsupported_extension",
			filename:    "config.toml",
			config:      `x = 1`,
			wantErr:     true,
			errContains: "no parser found for file",
		},
	}

	ctx := zerolog.New(os.Stderr).WithContext(context.Background())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			configPath := filepath.Join(tmpDir, tt.filename)
			err := os.WriteFile(configPath, []byte(tt.config), 0644)
			require.NoError(t, err, "writing config file should succeed")

			cfg, err := Load(ctx, configPath)
			if tt.wantErr {
				require.Error(t, err, "Load should return error")
				assert.Contains(t, err.Error(), tt.errContains, "error should contain expected message")
				return
			}

			require.NoError(t, err, "Load should succeed")
			assert.Equal(t, configPath, cfg.Location())
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	ctx := zerolog.Nop().WithContext(context.Background())
	_, err := Load(ctx, filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate(), "default config should validate")

	require.Len(t, cfg.Replace, 1)
	rules := cfg.Replace[0].TextRules()
	require.Len(t, rules, 1)
	assert.Equal(t, "'MontSerrat'", rules[0].FromText)
	assert.Equal(t, "'Poppins'", rules[0].ToText)
	assert.Empty(t, rules[0].FileFilterGlob)
	assert.Equal(t, "lib/ui", cfg.Replace[0].Root)

	require.Len(t, cfg.Extract, 1)
	assert.Equal(t, "../lib", cfg.Extract[0].Root)
	assert.Equal(t, ".i18n", cfg.Extract[0].Marker)
	assert.Equal(t, "dnd.json", cfg.Extract[0].Output)
}

func TestJobString(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "replace 1 rule(s) under lib/ui", cfg.Replace[0].String())
	assert.Equal(t, `extract ".i18n" literals under ../lib -> dnd.json`, cfg.Extract[0].String())
}
