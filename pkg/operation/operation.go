// Package operation runs replace and extract jobs over a directory tree
package operation

import (
	"context"
	"io"

	"github.com/rs/zerolog"
	"github.com/walteh/textsweep/pkg/log"
	"github.com/walteh/textsweep/pkg/status"
	"github.com/walteh/textsweep/pkg/text"
)

// 🎯 Operation is a single job run against one root
type Operation interface {
	// Name returns the operation kind (replace or extract)
	Name() string
	// Execute walks the root and applies the operation to every file
	Execute(ctx context.Context) error
	// Report returns the per-file outcomes of the last Execute
	Report() *status.Report
}

// 🔧 Options contains the collaborators shared by all operations
type Options struct {
	// Logger receives a console line per file. Defaults to a silent logger.
	Logger *log.Logger
	// Replacer applies replacement rules. Defaults to text.SimpleTextReplacer.
	Replacer text.TextReplacer
}

// 🏗️ BaseOperation holds the pieces every operation needs
type BaseOperation struct {
	Logger   *log.Logger
	Replacer text.TextReplacer

	report *status.Report
}

// 🏭 NewBaseOperation fills defaults for unset options
func NewBaseOperation(name, root string, opts Options) BaseOperation {
	logger := opts.Logger
	if logger == nil {
		logger = log.NewWithZerolog(io.Discard, zerolog.Nop())
	}
	replacer := opts.Replacer
	if replacer == nil {
		replacer = text.NewSimpleTextReplacer()
	}
	return BaseOperation{
		Logger:   logger,
		Replacer: replacer,
		report:   status.NewReport(name, root),
	}
}

// Report implements Operation.Report
func (b *BaseOperation) Report() *status.Report {
	return b.report
}

// 📝 track records a file outcome and echoes it to the console
func (b *BaseOperation) track(ctx context.Context, info status.FileInfo) {
	b.report.Track(info)
	b.Logger.LogFile(ctx, info)
}
