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
	"sync"
)

// 📊 FileStatus represents the outcome for a single file
type FileStatus int

const (
	StatusUnknown   FileStatus = iota
	StatusModified             // Content changed and was written
	StatusPending              // Content would change (dry run)
	StatusUnchanged            // File read, nothing to write
	StatusFailed               // Read, decode or write failed
)

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusModified:
		return "modified"
	case StatusPending:
		return "pending"
	case StatusUnchanged:
		return "unchanged"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// 📄 FileInfo contains the outcome for one visited file
type FileInfo struct {
	Path         string     // Path relative to the walk root
	Status       FileStatus // Outcome
	Replacements int        // Replacements made (or that would be made)
	Matches      int        // Marked literals extracted
	Diff         []string   // Dry-run preview of the change
	Error        error      // Failure cause when Status is StatusFailed
}

// 📦 Totals aggregates a report
type Totals struct {
	Files        int
	Modified     int
	Pending      int
	Unchanged    int
	Failed       int
	Replacements int
	Matches      int
}

// 📈 Report tracks file outcomes for one operation run
type Report struct {
	Operation string // replace or extract
	Root      string // Walk root

	mu    sync.RWMutex
	files []FileInfo
}

// 🏭 NewReport creates an empty report
func NewReport(operation, root string) *Report {
	return &Report{
		Operation: operation,
		Root:      root,
	}
}

// Track records the outcome for a file.
func (r *Report) Track(info FileInfo) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.files = append(r.files, info)
}

// Files returns tracked outcomes in the order they were recorded.
func (r *Report) Files() []FileInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]FileInfo(nil), r.files...)
}

// Failed returns the outcomes that carry an error.
func (r *Report) Failed() []FileInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []FileInfo
	for _, f := range r.files {
		if f.Status == StatusFailed {
			out = append(out, f)
		}
	}
	return out
}

// Totals sums the report.
func (r *Report) Totals() Totals {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t := Totals{Files: len(r.files)}
	for _, f := range r.files {
		switch f.Status {
		case StatusModified:
			t.Modified++
		case StatusPending:
			t.Pending++
		case StatusUnchanged:
			t.Unchanged++
		case StatusFailed:
			t.Failed++
		}
		t.Replacements += f.Replacements
		t.Matches += f.Matches
	}
	return t
}
