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
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/textsweep/pkg/config"
	"github.com/walteh/textsweep/pkg/log"
	"github.com/walteh/textsweep/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🏃 OperationRunner executes operations one after another
type OperationRunner struct {
	logger  *log.Logger
	summary bool
}

// 🏗️ NewRunner creates a new runner. When summary is set, a table per
// operation is written to the logger's console after each run.
func NewRunner(logger *log.Logger, summary bool) *OperationRunner {
	return &OperationRunner{
		logger:  logger,
		summary: summary,
	}
}

// 🏭 Plan builds the operations for every job in cfg, replace jobs first.
func Plan(cfg *config.Config, opts Options) []Operation {
	ops := make([]Operation, 0, len(cfg.Replace)+len(cfg.Extract))
	for _, job := range cfg.Replace {
		ops = append(ops, NewReplaceOperation(job, opts))
	}
	for _, job := range cfg.Extract {
		ops = append(ops, NewExtractOperation(job, opts))
	}
	return ops
}

// 🏃 Run executes the operations in order and stops at the first fatal
// error. Reports for the operations that ran are always returned.
func (r *OperationRunner) Run(ctx context.Context, ops ...Operation) ([]*status.Report, error) {
	reports := make([]*status.Report, 0, len(ops))
	for i, op := range ops {
		if err := ctx.Err(); err != nil {
			return reports, errors.Errorf("operation cancelled: %w", err)
		}

		err := r.runSync(ctx, op)
		reports = append(reports, op.Report())
		if err != nil {
			return reports, errors.Errorf("running %s operation %d: %w", op.Name(), i, err)
		}
	}
	return reports, nil
}

// 🔄 runSync runs a single operation and renders its summary
func (r *OperationRunner) runSync(ctx context.Context, op Operation) error {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("operation", op.Name()).Msg("running operation")

	if err := op.Execute(ctx); err != nil {
		return err
	}

	if r.summary && r.logger != nil {
		if err := op.Report().Render(r.logger.Console()); err != nil {
			return errors.Errorf("rendering summary: %w", err)
		}
	}
	if failed := op.Report().Failed(); len(failed) > 0 {
		logger.Warn().Str("operation", op.Name()).Int("failed", len(failed)).Msg("some files could not be processed")
		if r.logger != nil {
			r.logger.Warningf("%s: %d file(s) could not be processed", op.Name(), len(failed))
		}
	}
	return nil
}
