package opts

import (
	"context"
	"os"

	"github.com/walteh/textsweep/pkg/config"
	"github.com/walteh/textsweep/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// DefaultConfigFile is read by `run` when --config is not given.
const DefaultConfigFile = ".textsweep.yaml"

// RootOpts contains shared options used by all commands
type RootOpts struct {
	ConfigFile string
	// ConfigSet is true when the user passed --config explicitly
	ConfigSet bool
	Debug     bool
	Logger    *log.Logger
}

// LoadConfig loads the configured file. When the default file is absent and
// --config was not given, the built-in jobs are used instead.
func (o *RootOpts) LoadConfig(ctx context.Context) (*config.Config, error) {
	if !o.ConfigSet {
		if _, err := os.Stat(o.ConfigFile); errors.Is(err, os.ErrNotExist) {
			o.Logger.Infof("no %s found, using built-in jobs", o.ConfigFile)
			cfg := config.Default()
			if err := cfg.Validate(); err != nil {
				return nil, errors.Errorf("validating default config: %w", err)
			}
			return cfg, nil
		}
	}

	cfg, err := config.Load(ctx, o.ConfigFile)
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}
	return cfg, nil
}
