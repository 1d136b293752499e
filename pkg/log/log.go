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

package log

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/walteh/textsweep/pkg/status"
)

// 🎨 Display configuration
const (
	fileIndent  = 4  // spaces to indent file entries
	nameWidth   = 35 // Base width for filename
	typeWidth   = 10 // Width for operation name
	statusWidth = 15 // Width for status text
	diffIndent  = 8  // spaces to indent dry-run diff lines
)

// 📦 RunOperation describes one operation run for logging
type RunOperation struct {
	Name   string // replace or extract
	Root   string // Walk root
	DryRun bool   // Whether writes are suppressed
}

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog      zerolog.Logger
	console   io.Writer
	verbose   bool
	formatter status.FileFormatter
	mu        sync.Mutex
	currentOp *RunOperation
	files     int
}

// 🏭 New creates a new logger. Unchanged files are only echoed to the
// console when level is debug or lower.
func New(console io.Writer, level zerolog.Level) *Logger {
	zlog := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger().Level(level)
	return NewWithZerolog(console, zlog)
}

// 🏭 NewWithZerolog creates a logger that mirrors console lines to zlog.
func NewWithZerolog(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:      zlog,
		console:   console,
		verbose:   zlog.GetLevel() <= zerolog.DebugLevel,
		formatter: status.NewDefaultFileFormatter(),
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context, or a silent one if none is set
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok || logger == nil {
		return NewWithZerolog(io.Discard, zerolog.Nop())
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 formatFile formats a file outcome for display
func (l *Logger) formatFile(op string, info status.FileInfo) string {
	var symbol rune
	var symbolColor color.Attribute
	switch info.Status {
	case status.StatusFailed:
		symbol = '✗'
		symbolColor = color.FgRed
	case status.StatusModified:
		symbol = '⟳'
		symbolColor = color.FgBlue
	case status.StatusPending:
		symbol = '~'
		symbolColor = color.FgYellow
	default:
		if info.Matches > 0 {
			symbol = '✓'
			symbolColor = color.FgGreen
		} else {
			symbol = '-'
			symbolColor = color.FgYellow
		}
	}

	text := info.Status.String()
	switch {
	case info.Status == status.StatusFailed && info.Error != nil:
		text = info.Error.Error()
	case info.Replacements > 0:
		text = fmt.Sprintf("%s (%d)", text, info.Replacements)
	case info.Matches > 0:
		text = fmt.Sprintf("%d keys", info.Matches)
	}

	return fmt.Sprintf("%s%s %s %s %s",
		fmt.Sprintf("%*s", fileIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", nameWidth, info.Path),
		color.New(color.FgCyan).Sprint(fmt.Sprintf("%-*s", typeWidth, op)),
		fmt.Sprintf("%-*s", statusWidth, text))
}

// 📝 LogFile logs the outcome for a single file
func (l *Logger) LogFile(ctx context.Context, info status.FileInfo) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.files++

	op := ""
	if l.currentOp != nil {
		op = l.currentOp.Name
	}

	quiet := info.Status == status.StatusUnchanged && info.Matches == 0
	if !quiet || l.verbose {
		fmt.Fprintln(l.console, l.formatFile(op, info))
		for _, d := range info.Diff {
			fmt.Fprintf(l.console, "%*s%s\n", diffIndent, "", colorDiff(d))
		}
	}

	var event *zerolog.Event
	switch info.Status {
	case status.StatusFailed:
		event = l.zlog.Error().Err(info.Error)
	case status.StatusUnchanged:
		event = l.zlog.Debug()
	default:
		event = l.zlog.Info()
	}
	event.
		Str("file", info.Path).
		Str("operation", op).
		Str("status", info.Status.String()).
		Int("replacements", info.Replacements).
		Int("matches", info.Matches).
		Msg(l.formatter.FormatFile(info))
}

func colorDiff(line string) string {
	if line == "" {
		return line
	}
	switch line[0] {
	case '-':
		return color.New(color.FgRed).Sprint(line)
	case '+':
		return color.New(color.FgGreen).Sprint(line)
	default:
		return line
	}
}

// 📝 StartOperation starts a new operation run
func (l *Logger) StartOperation(ctx context.Context, op RunOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.currentOp = &op
	l.files = 0

	mode := ""
	if op.DryRun {
		mode = " " + color.New(color.Faint).Sprint("(dry run)")
	}
	fmt.Fprintf(l.console, "%s %s %s %s%s\n",
		color.New(color.FgMagenta).Sprint("◆"),
		color.New(color.Bold).Sprint(op.Name),
		color.New(color.Faint).Sprint("•"),
		color.New(color.FgYellow).Sprint(op.Root),
		mode)

	l.zlog.Info().
		Str("operation", op.Name).
		Str("root", op.Root).
		Bool("dry_run", op.DryRun).
		Msg("starting operation")
}

// 📝 EndOperation ends the current operation run
func (l *Logger) EndOperation(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.currentOp == nil {
		return
	}

	l.zlog.Info().
		Str("operation", l.currentOp.Name).
		Int("files", l.files).
		Msg("operation complete")

	l.currentOp = nil
	l.files = 0
}

// 📝 LogNewline logs a newline
func (l *Logger) LogNewline() {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console)
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("textsweep")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

// 📝 Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}

// 📝 Successf logs a formatted success message
func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}

// Console returns the writer console lines go to.
func (l *Logger) Console() io.Writer {
	return l.console
}
