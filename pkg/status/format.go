package status

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pterm/pterm"
	"gitlab.com/tozd/go/errors"
)

// FileFormatter defines how file outcomes are described to the user
type FileFormatter interface {
	// FormatFile formats a single file outcome
	FormatFile(info FileInfo) string

	// FormatError formats an error message
	FormatError(err error) string
}

// DefaultFileFormatter provides a default implementation of FileFormatter
type DefaultFileFormatter struct{}

// NewDefaultFileFormatter creates a new DefaultFileFormatter
func NewDefaultFileFormatter() *DefaultFileFormatter {
	return &DefaultFileFormatter{}
}

// FormatFile formats a file outcome with emojis
func (f *DefaultFileFormatter) FormatFile(info FileInfo) string {
	switch info.Status {
	case StatusModified:
		return fmt.Sprintf("📝 Modified %s (%d replacements)", info.Path, info.Replacements)
	case StatusPending:
		return fmt.Sprintf("🔎 Would modify %s (%d replacements)", info.Path, info.Replacements)
	case StatusFailed:
		return fmt.Sprintf("❌ Failed %s: %v", info.Path, info.Error)
	default:
		if info.Matches > 0 {
			return fmt.Sprintf("🔤 Extracted %d from %s", info.Matches, info.Path)
		}
		return fmt.Sprintf("👍 Unchanged %s", info.Path)
	}
}

// FormatError formats an error message with emoji
func (f *DefaultFileFormatter) FormatError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("❌ Error: %v", err)
}

// TableData returns the summary as rows, header first.
func (r *Report) TableData() pterm.TableData {
	t := r.Totals()
	data := pterm.TableData{
		{"operation", "root", "files", "modified", "pending", "unchanged", "failed", "replacements", "matches"},
		{
			r.Operation,
			r.Root,
			strconv.Itoa(t.Files),
			strconv.Itoa(t.Modified),
			strconv.Itoa(t.Pending),
			strconv.Itoa(t.Unchanged),
			strconv.Itoa(t.Failed),
			strconv.Itoa(t.Replacements),
			strconv.Itoa(t.Matches),
		},
	}
	return data
}

// Render writes the summary table to w.
func (r *Report) Render(w io.Writer) error {
	table, err := pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(r.TableData()).Srender()
	if err != nil {
		return errors.Errorf("rendering summary table: %w", err)
	}
	if _, err := fmt.Fprintln(w, table); err != nil {
		return errors.Errorf("writing summary table: %w", err)
	}
	return nil
}
