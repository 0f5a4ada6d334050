package syncer

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Engine reconciles canonical catalog records into a persistent store,
// one record at a time, matching strictly by sync key.
type Engine struct {
	store  Store
	logger *zap.Logger
}

// New creates a sync engine over the given store.
func New(store Store, logger *zap.Logger) *Engine {
	return &Engine{store: store, logger: logger}
}

// Run processes every batch sequentially and returns a per-province and
// total report.
//
// Each record's outcome is independent: a lookup, insert, or update error
// counts the record as skipped and the run continues with the next record.
// Only context cancellation and a nil store abort the run; the caller owns
// the store connection and must release it on every exit path.
func (e *Engine) Run(ctx context.Context, batches []Batch, opts Options) (*Report, error) {
	if e.store == nil {
		return nil, fmt.Errorf("sync engine has no store")
	}

	report := &Report{
		RunID:     uuid.NewString(),
		StartedAt: time.Now(),
		Provinces: make([]ProvinceReport, 0, len(batches)),
	}

	e.logger.Info("Starting sync run",
		zap.String("run_id", report.RunID),
		zap.Int("provinces", len(batches)),
		zap.Bool("dry_run", opts.DryRun))

	for _, batch := range batches {
		pr, err := e.runBatch(ctx, batch, opts, report)
		if err != nil {
			// Fatal: the run aborts, partial tallies are still reported.
			report.Duration = time.Since(report.StartedAt)
			return report, err
		}

		report.Provinces = append(report.Provinces, pr)
		report.Total.Merge(pr.Tally)

		e.logger.Info("Province synced",
			zap.String("province", pr.Province),
			zap.Int("added", pr.Added),
			zap.Int("updated", pr.Updated),
			zap.Int("skipped", pr.Skipped))
	}

	report.Duration = time.Since(report.StartedAt)

	e.logger.Info("Sync run completed",
		zap.String("run_id", report.RunID),
		zap.Int("added", report.Total.Added),
		zap.Int("updated", report.Total.Updated),
		zap.Int("skipped", report.Total.Skipped),
		zap.Duration("duration", report.Duration))

	return report, nil
}

// runBatch upserts one province's records in declaration order.
func (e *Engine) runBatch(ctx context.Context, batch Batch, opts Options, report *Report) (ProvinceReport, error) {
	pr := ProvinceReport{Province: batch.Province}

	for _, rec := range batch.Records {
		// Cancellation is fatal, not a per-record condition.
		if err := ctx.Err(); err != nil {
			return pr, fmt.Errorf("sync run aborted in province %s: %w", batch.Province, err)
		}

		key := rec.SyncKey()

		found, err := e.store.FindByKey(ctx, key)
		if err != nil {
			e.skip(report, &pr, key, err)
			continue
		}

		switch {
		case found && opts.DryRun:
			pr.Updated++
		case found:
			if err := e.store.Update(ctx, rec); err != nil {
				e.skip(report, &pr, key, err)
				continue
			}
			pr.Updated++
		case opts.DryRun:
			pr.Added++
		default:
			if err := e.store.Insert(ctx, rec); err != nil {
				e.skip(report, &pr, key, err)
				continue
			}
			pr.Added++
		}
	}

	return pr, nil
}

// skip records a per-record failure without aborting the run.
func (e *Engine) skip(report *Report, pr *ProvinceReport, key string, err error) {
	pr.Skipped++
	report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", key, err))
	e.logger.Warn("Record skipped",
		zap.String("id", key),
		zap.String("province", pr.Province),
		zap.Error(err))
}
