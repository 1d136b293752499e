package operation

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/textsweep/pkg/config"
	"github.com/walteh/textsweep/pkg/i18n"
	"github.com/walteh/textsweep/pkg/log"
	"github.com/walteh/textsweep/pkg/status"
	"github.com/walteh/textsweep/pkg/walk"
	"gitlab.com/tozd/go/errors"
)

// 🔤 NewExtractOperation creates a new extract operation
func NewExtractOperation(job config.ExtractJob, opts Options) Operation {
	return &extractOperation{
		BaseOperation: NewBaseOperation("extract", job.Root, opts),
		job:           job,
	}
}

// 🔤 extractOperation collects marked literals into a JSON key file
type extractOperation struct {
	BaseOperation
	job     config.ExtractJob
	catalog *i18n.Catalog
}

// Name implements Operation.Name
func (op *extractOperation) Name() string {
	return "extract"
}

// Catalog returns the keys written by the last Execute.
func (op *extractOperation) Catalog() *i18n.Catalog {
	return op.catalog
}

// 🏃 Execute runs the extract operation. The output file is written once,
// after the walk, and a failure to write it is fatal.
func (op *extractOperation) Execute(ctx context.Context) error {
	extractor, err := i18n.NewExtractor(op.job.Marker)
	if err != nil {
		return errors.Errorf("creating extractor: %w", err)
	}

	op.Logger.StartOperation(ctx, log.RunOperation{Name: op.Name(), Root: op.job.Root})
	defer op.Logger.EndOperation(ctx)

	catalog := i18n.NewCatalog()
	visited, err := walk.Walk(ctx, op.job.Root, op.job.Filter(), func(ctx context.Context, file walk.File) error {
		info := status.FileInfo{Path: file.Rel, Status: status.StatusUnchanged}

		content, err := walk.ReadText(file.Path)
		if err != nil {
			op.track(ctx, failed(info, errors.Errorf("reading file: %w", err)))
			return nil
		}

		keys := extractor.Extract(string(content))
		catalog.Add(keys...)
		info.Matches = len(keys)
		op.track(ctx, info)
		return nil
	})
	if err != nil {
		return errors.Errorf("extracting under %s: %w", op.job.Root, err)
	}

	if op.job.SortKeys {
		catalog = catalog.Sorted()
	}

	data, err := catalog.Bytes()
	if err != nil {
		return errors.Errorf("encoding catalog: %w", err)
	}

	if dir := filepath.Dir(op.job.Output); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Errorf("creating output directory: %w", err)
		}
	}
	if err := walk.WriteFileAtomic(op.job.Output, data); err != nil {
		return errors.Errorf("writing %s: %w", op.job.Output, err)
	}
	op.catalog = catalog

	zerolog.Ctx(ctx).Debug().
		Str("root", op.job.Root).
		Int("files", visited).
		Int("matches", catalog.Seen()).
		Int("keys", catalog.Len()).
		Msg("extract complete")
	op.Logger.Successf("wrote %d keys to %s", catalog.Len(), op.job.Output)
	return nil
}
