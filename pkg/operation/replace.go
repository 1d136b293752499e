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

package operation

import (
	"bytes"
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/textsweep/pkg/config"
	"github.com/walteh/textsweep/pkg/log"
	"github.com/walteh/textsweep/pkg/status"
	"github.com/walteh/textsweep/pkg/text"
	"github.com/walteh/textsweep/pkg/walk"
	"gitlab.com/tozd/go/errors"
)

// ✏️ NewReplaceOperation creates a new replace operation
func NewReplaceOperation(job config.ReplaceJob, opts Options) Operation {
	return &replaceOperation{
		BaseOperation: NewBaseOperation("replace", job.Root, opts),
		job:           job,
	}
}

// ✏️ replaceOperation rewrites files in place
type replaceOperation struct {
	BaseOperation
	job config.ReplaceJob
}

// Name implements Operation.Name
func (op *replaceOperation) Name() string {
	return "replace"
}

// 🏃 Execute runs the replace operation
func (op *replaceOperation) Execute(ctx context.Context) error {
	rules := op.job.TextRules()
	if err := op.Replacer.ValidateRules(rules); err != nil {
		return errors.Errorf("validating rules: %w", err)
	}

	op.Logger.StartOperation(ctx, log.RunOperation{Name: op.Name(), Root: op.job.Root, DryRun: op.job.DryRun})
	defer op.Logger.EndOperation(ctx)

	visited, err := walk.Walk(ctx, op.job.Root, op.job.Filter(), func(ctx context.Context, file walk.File) error {
		op.track(ctx, op.processFile(ctx, file, rules))
		return nil
	})
	if err != nil {
		return errors.Errorf("replacing under %s: %w", op.job.Root, err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("root", op.job.Root).
		Int("files", visited).
		Msg("replace complete")
	return nil
}

// 📄 processFile applies the rules to one file. Failures are reported on the
// returned info and never stop the walk.
func (op *replaceOperation) processFile(ctx context.Context, file walk.File, rules []text.ReplacementRule) status.FileInfo {
	info := status.FileInfo{Path: file.Rel, Status: status.StatusUnchanged}

	applicable := text.RulesFor(file.Rel, rules)
	if len(applicable) == 0 {
		return info
	}

	content, err := walk.ReadText(file.Path)
	if err != nil {
		return failed(info, errors.Errorf("reading file: %w", err))
	}

	result, err := op.Replacer.ReplaceText(ctx, bytes.NewReader(content), applicable)
	if err != nil {
		return failed(info, errors.Errorf("replacing text: %w", err))
	}
	info.Replacements = result.ReplacementCount

	if !result.WasModified {
		return info
	}

	if op.job.DryRun {
		info.Status = status.StatusPending
		info.Diff = text.Diff(string(result.OriginalContent), string(result.ModifiedContent))
		return info
	}

	if err := walk.WriteFileAtomic(file.Path, result.ModifiedContent); err != nil {
		return failed(info, errors.Errorf("writing file: %w", err))
	}
	info.Status = status.StatusModified
	return info
}

func failed(info status.FileInfo, err error) status.FileInfo {
	info.Status = status.StatusFailed
	info.Error = err
	info.Replacements = 0
	info.Diff = nil
	return info
}
