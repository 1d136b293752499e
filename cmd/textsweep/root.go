package main

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/textsweep/cmd/textsweep/commands"
	"github.com/walteh/textsweep/cmd/textsweep/opts"
	"github.com/walteh/textsweep/pkg/log"
)

// newRootCmd builds the command tree. Console lines go to out and structured
// logs to errOut.
func newRootCmd(out, errOut io.Writer) *cobra.Command {
	o := &opts.RootOpts{}

	cmd := &cobra.Command{
		Use:   "textsweep",
		Short: "Bulk text replacement and i18n key extraction for source trees",
		Long: `textsweep walks a source tree and either replaces a literal string in
every file or collects string literals marked for translation into a
JSON key file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			o.ConfigSet = cmd.Flags().Changed("config")

			zlog := setupLogging(errOut, o.Debug)
			o.Logger = log.NewWithZerolog(out, mirrorLogger(zlog, o.Debug))

			ctx := zlog.WithContext(cmd.Context())
			ctx = log.NewContext(ctx, o.Logger)
			cmd.SetContext(ctx)
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	addRootFlags(cmd, o)

	cmd.AddCommand(
		commands.NewReplaceCmd(o),
		commands.NewExtractCmd(o),
		commands.NewRunCmd(o),
		commands.NewVersionCmd(),
	)

	return cmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, o *opts.RootOpts) {
	cmd.PersistentFlags().StringVarP(&o.ConfigFile, "config", "c", opts.DefaultConfigFile, "config file path")
	cmd.PersistentFlags().BoolVarP(&o.Debug, "debug", "d", false, "enable debug logging")
}

// setupLogging configures zerolog based on flags
func setupLogging(w io.Writer, debug bool) zerolog.Logger {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: w}).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger
	return logger
}

// mirrorLogger returns the logger that console lines are copied to. Without
// --debug only warnings and errors are copied so the terminal is not doubled.
func mirrorLogger(zlog zerolog.Logger, debug bool) zerolog.Logger {
	if debug {
		return zlog.Level(zerolog.DebugLevel)
	}
	return zlog.Level(zerolog.WarnLevel)
}
