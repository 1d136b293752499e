package commands

import (
	"github.com/spf13/cobra"
	"github.com/walteh/textsweep/cmd/textsweep/opts"
	"github.com/walteh/textsweep/pkg/config"
	"github.com/walteh/textsweep/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// NewReplaceCmd creates a new replace command
func NewReplaceCmd(o *opts.RootOpts) *cobra.Command {
	var (
		root   string
		oldStr string
		newStr string
		file   string
		ignore []string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "replace",
		Short: "Replace a literal string in every file under a directory",
		Long: `Replace walks a directory tree and replaces every occurrence of a
literal string. A file is rewritten only when its content changes.
Files that cannot be read as UTF-8 text are logged and skipped.
Anything under a .git directory is skipped unless --ignore is given.`,
		Example: `  textsweep replace
  textsweep replace --root lib/ui --old "'MontSerrat'" --new "'Poppins'" --file "**/*.dart"
  textsweep replace --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rule := config.Replacement{Old: oldStr, New: newStr}
			if file != "" {
				rule.File = &file
			}
			job := config.ReplaceJob{
				Root:   root,
				Rules:  []config.Replacement{rule},
				Ignore: ignore,
				DryRun: dryRun,
			}
			if err := job.Validate(); err != nil {
				return errors.Errorf("validating replace job: %w", err)
			}

			o.Logger.Header(job.String())
			return execute(cmd, operation.NewReplaceOperation(job, operation.Options{Logger: o.Logger}))
		},
	}

	cmd.Flags().StringVar(&root, "root", config.DefaultReplaceRoot, "directory to walk")
	cmd.Flags().StringVar(&oldStr, "old", config.DefaultReplaceOld, "text to replace")
	cmd.Flags().StringVar(&newStr, "new", config.DefaultReplaceNew, "replacement text")
	cmd.Flags().StringVar(&file, "file", "", "only touch files matching this glob")
	cmd.Flags().StringSliceVar(&ignore, "ignore", nil, "glob patterns to skip (default **/.git/**)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "show what would change without writing")

	return cmd
}
