package commands

import (
	"github.com/spf13/cobra"
	"github.com/walteh/textsweep/cmd/textsweep/opts"
	"github.com/walteh/textsweep/pkg/config"
	"github.com/walteh/textsweep/pkg/i18n"
	"github.com/walteh/textsweep/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// NewExtractCmd creates a new extract command
func NewExtractCmd(o *opts.RootOpts) *cobra.Command {
	var job config.ExtractJob

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract i18n keys into a JSON file",
		Long: `Extract scans every line of every file under a directory for quoted
string literals followed by the i18n marker, for example "Hello".i18n,
and writes a JSON object mapping each distinct string to itself.
Anything under a .git directory is skipped unless --ignore is given.`,
		Example: `  textsweep extract
  textsweep extract --root ../lib --output dnd.json --include "**/*.dart"
  textsweep extract --marker .tr --sort-keys`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := job.Validate(); err != nil {
				return errors.Errorf("validating extract job: %w", err)
			}

			o.Logger.Header(job.String())
			return execute(cmd, operation.NewExtractOperation(job, operation.Options{Logger: o.Logger}))
		},
	}

	cmd.Flags().StringVar(&job.Root, "root", config.DefaultExtractRoot, "directory to walk")
	cmd.Flags().StringVarP(&job.Output, "output", "o", config.DefaultExtractOutput, "JSON file to write")
	cmd.Flags().StringVar(&job.Marker, "marker", i18n.DefaultMarker, "suffix that marks a translatable literal")
	cmd.Flags().StringSliceVar(&job.Include, "include", nil, "only scan files matching these globs")
	cmd.Flags().StringSliceVar(&job.Ignore, "ignore", nil, "glob patterns to skip (default **/.git/**)")
	cmd.Flags().BoolVar(&job.SortKeys, "sort-keys", false, "write keys in sorted order")

	return cmd
}
