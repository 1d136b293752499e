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

// Package walk visits every regular file below a root directory in a stable
// lexical order, honouring doublestar include and ignore patterns.
package walk

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/karrick/godirwalk"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// DefaultIgnore is applied when a walk is configured without ignore patterns.
var DefaultIgnore = []string{"**/.git/**"}

// 📄 File is a single regular file found during a walk
type File struct {
	Path string // OS path, rooted at the walk root
	Rel  string // slash-separated path relative to the walk root
}

// 🔍 Filter decides which paths a walk visits
type Filter struct {
	Include []string // if set, files must match at least one pattern
	Ignore  []string // files and directories matching any pattern are skipped
}

// Validate checks every pattern is a well-formed doublestar pattern.
func (f Filter) Validate() error {
	for _, p := range f.Include {
		if !doublestar.ValidatePattern(p) {
			return errors.Errorf("invalid include pattern %q", p)
		}
	}
	for _, p := range f.Ignore {
		if !doublestar.ValidatePattern(p) {
			return errors.Errorf("invalid ignore pattern %q", p)
		}
	}
	return nil
}

// IgnoresDir reports whether the directory at rel should not be descended into.
// A pattern such as "**/.git/**" prunes the ".git" directory itself.
func (f Filter) IgnoresDir(rel string) bool {
	for _, p := range f.Ignore {
		if match(p, rel) || match(strings.TrimSuffix(p, "/**"), rel) {
			return true
		}
	}
	return false
}

// Accepts reports whether the file at rel should be visited.
func (f Filter) Accepts(rel string) bool {
	for _, p := range f.Ignore {
		if match(p, rel) {
			return false
		}
	}
	if len(f.Include) == 0 {
		return true
	}
	for _, p := range f.Include {
		if match(p, rel) {
			return true
		}
	}
	return false
}

func match(pattern, rel string) bool {
	ok, err := doublestar.Match(pattern, rel)
	return err == nil && ok
}

// FileFunc is called once per visited file. Returning an error stops the walk.
type FileFunc func(ctx context.Context, file File) error

// Walk calls fn for every regular file (or symlink to a regular file) below
// root, sorted lexically within each directory. A symlinked root is followed;
// directory symlinks below it are not. A root that does not exist or is not
// a directory is logged and yields zero files. Unreadable directories are logged and skipped.
func Walk(ctx context.Context, root string, filter Filter, fn FileFunc) (int, error) {
	logger := zerolog.Ctx(ctx)

	info, err := os.Stat(root)
	if err != nil {
		logger.Warn().Str("root", root).Err(err).Msg("walk root is not accessible, no files to process")
		return 0, nil
	}
	if !info.IsDir() {
		logger.Warn().Str("root", root).Msg("walk root is not a directory, no files to process")
		return 0, nil
	}

	// godirwalk refuses a symlinked root, so walk the directory it points at
	resolved, err := filepath.EvalSymlinks(root)
	if err != nil {
		logger.Warn().Str("root", root).Err(err).Msg("walk root cannot be resolved, no files to process")
		return 0, nil
	}

	var fatal error
	visited := 0
	err = godirwalk.Walk(resolved, &godirwalk.Options{
		Unsorted:            false,
		FollowSymbolicLinks: false,
		Callback: func(osPathname string, de *godirwalk.Dirent) error {
			if err := ctx.Err(); err != nil {
				fatal = err
				return err
			}

			rel, err := filepath.Rel(resolved, osPathname)
			if err != nil {
				fatal = errors.Errorf("resolving relative path for %s: %w", osPathname, err)
				return fatal
			}
			rel = filepath.ToSlash(rel)
			if rel == "." {
				return nil
			}

			if de.IsDir() {
				if filter.IgnoresDir(rel) {
					logger.Debug().Str("dir", rel).Msg("directory ignored by pattern")
					return filepath.SkipDir
				}
				return nil
			}

			if de.IsSymlink() {
				isDir, err := de.IsDirOrSymlinkToDir()
				if err != nil || isDir {
					logger.Debug().Str("path", rel).Msg("skipping symlink that is dangling or points at a directory")
					return nil
				}
			} else if !de.IsRegular() {
				logger.Debug().Str("path", rel).Msg("skipping non-regular file")
				return nil
			}

			if !filter.Accepts(rel) {
				logger.Debug().Str("path", rel).Msg("file filtered out")
				return nil
			}

			visited++
			if err := fn(ctx, File{Path: filepath.Join(root, filepath.FromSlash(rel)), Rel: rel}); err != nil {
				fatal = err
				return err
			}
			return nil
		},
		ErrorCallback: func(osPathname string, err error) godirwalk.ErrorAction {
			// callback failures arrive here too and must stop the walk
			if fatal != nil || ctx.Err() != nil {
				return godirwalk.Halt
			}
			logger.Error().Str("path", osPathname).Err(err).Msg("walking directory")
			return godirwalk.SkipNode
		},
	})
	if fatal != nil {
		return visited, errors.Errorf("walking %s: %w", root, fatal)
	}
	if err != nil {
		return visited, errors.Errorf("walking %s: %w", root, err)
	}

	return visited, nil
}
