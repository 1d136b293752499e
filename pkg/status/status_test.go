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

package status

import (
	"bytes"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func TestFileStatusString(t *testing.T) {
	tests := []struct {
		status FileStatus
		want   string
	}{
		{StatusModified, "modified"},
		{StatusPending, "pending"},
		{StatusUnchanged, "unchanged"},
		{StatusFailed, "failed"},
		{StatusUnknown, "unknown"},
		{FileStatus(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.String())
		})
	}
}

func TestReport(t *testing.T) {
	report := NewReport("replace", "lib/ui")
	report.Track(FileInfo{Path: "a.dart", Status: StatusModified, Replacements: 3})
	report.Track(FileInfo{Path: "b.dart", Status: StatusUnchanged})
	report.Track(FileInfo{Path: "c.bin", Status: StatusFailed, Error: errors.New("decoding file as utf-8")})
	report.Track(FileInfo{Path: "d.dart", Status: StatusPending, Replacements: 1})
	report.Track(FileInfo{Path: "e.dart", Status: StatusUnchanged, Matches: 4})

	files := report.Files()
	require.Len(t, files, 5)
	assert.Equal(t, "a.dart", files[0].Path, "order should be preserved")
	assert.Equal(t, "e.dart", files[4].Path, "order should be preserved")

	assert.Equal(t, Totals{
		Files:        5,
		Modified:     1,
		Pending:      1,
		Unchanged:    2,
		Failed:       1,
		Replacements: 4,
		Matches:      4,
	}, report.Totals())

	failed := report.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, "c.bin", failed[0].Path)
}

func TestReportRender(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	report := NewReport("extract", "../lib")
	report.Track(FileInfo{Path: "main.dart", Status: StatusUnchanged, Matches: 7})

	data := report.TableData()
	require.Len(t, data, 2, "header and one row")
	assert.Equal(t, []string{"extract", "../lib", "1", "0", "0", "1", "0", "0", "7"}, data[1])

	var buf bytes.Buffer
	require.NoError(t, report.Render(&buf))
	out := buf.String()
	assert.Contains(t, out, "operation")
	assert.Contains(t, out, "extract")
	assert.Contains(t, out, "../lib")
}

func TestDefaultFileFormatter(t *testing.T) {
	tests := []struct {
		name string
		info FileInfo
		want string
	}{
		{
			name: "modified_file",
			info: FileInfo{Path: "theme.dart", Status: StatusModified, Replacements: 2},
			want: "📝 Modified theme.dart (2 replacements)",
		},
		{
			name: "pending_file",
			info: FileInfo{Path: "theme.dart", Status: StatusPending, Replacements: 1},
			want: "🔎 Would modify theme.dart (1 replacements)",
		},
		{
			name: "failed_file",
			info: FileInfo{Path: "logo.png", Status: StatusFailed, Error: errors.New("decoding file as utf-8")},
			want: "❌ Failed logo.png: decoding file as utf-8",
		},
		{
			name: "extracted_file",
			info: FileInfo{Path: "home.dart", Status: StatusUnchanged, Matches: 3},
			want: "🔤 Extracted 3 from home.dart",
		},
		{
			name: "unchanged_file",
			info: FileInfo{Path: "stable.txt", Status: StatusUnchanged},
			want: "👍 Unchanged stable.txt",
		},
	}

	formatter := NewDefaultFileFormatter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatter.FormatFile(tt.info))
		})
	}

	assert.Empty(t, formatter.FormatError(nil))
	assert.Equal(t, "❌ Error: boom", formatter.FormatError(errors.New("boom")))
}
