package commands

import (
	"github.com/spf13/cobra"
	"github.com/walteh/textsweep/cmd/textsweep/opts"
	"github.com/walteh/textsweep/pkg/log"
	"github.com/walteh/textsweep/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// NewRunCmd creates a new run command
func NewRunCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run every job in the config file",
		Long: `Run executes the replace and extract jobs from the config file.
It will:
1. Load and validate the config (.textsweep.yaml, .hcl or .json)
2. Run every replace job in order
3. Run every extract job in order
4. Stop at the first fatal error`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := o.LoadConfig(ctx)
			if err != nil {
				return err
			}
			if loc := cfg.Location(); loc != "" {
				o.Logger.Header("run " + loc)
			} else {
				o.Logger.Header("run")
			}

			return execute(cmd, operation.Plan(cfg, operation.Options{Logger: o.Logger})...)
		},
	}

	return cmd
}

// execute runs ops with a summary table after each one
func execute(cmd *cobra.Command, ops ...operation.Operation) error {
	ctx := cmd.Context()
	logger := log.FromContext(ctx)

	if _, err := operation.NewRunner(logger, true).Run(ctx, ops...); err != nil {
		return errors.Errorf("running jobs: %w", err)
	}
	logger.Success("done")
	return nil
}
