package syncer

import (
	"context"
	"time"
)

// Record is a canonical catalog entry that can be reconciled into the
// persistent store. The sync key is the stable identity used for upsert
// matching; two runs over the same catalog match the same stored rows.
type Record interface {
	// SyncKey returns the globally unique identifier of the record.
	SyncKey() string
}

// Store is the persistent store contract consumed by the engine.
// Implementations report validation rejections and transient store errors
// through the returned error; the engine recovers from both per record.
type Store interface {
	// FindByKey reports whether a record with the given key is stored.
	FindByKey(ctx context.Context, key string) (bool, error)

	// Insert stores a record that is not yet present.
	Insert(ctx context.Context, rec Record) error

	// Update overwrites every mutable field of the stored record matched
	// by the record's sync key and refreshes its update timestamp.
	Update(ctx context.Context, rec Record) error
}

// Batch is one province's records in declaration order.
type Batch struct {
	// Province is the operator-facing label for the batch.
	Province string

	// Records are processed strictly in declaration order.
	Records []Record
}

// Tally counts per-record outcomes of a run or a single batch.
type Tally struct {
	// Added counts records inserted because no stored record matched.
	Added int `json:"added"`

	// Updated counts records that matched a stored record and were updated.
	Updated int `json:"updated"`

	// Skipped counts records whose upsert raised an error.
	Skipped int `json:"skipped"`
}

// Merge accumulates another tally into this one.
func (t *Tally) Merge(other Tally) {
	t.Added += other.Added
	t.Updated += other.Updated
	t.Skipped += other.Skipped
}

// ProvinceReport is the tally for a single province batch.
type ProvinceReport struct {
	// Province is the batch label.
	Province string `json:"province"`

	Tally
}

// Report is the outcome of one synchronization run.
type Report struct {
	// RunID uniquely identifies this run in logs.
	RunID string `json:"run_id"`

	// StartedAt is when the run began.
	StartedAt time.Time `json:"started_at"`

	// Duration is the total wall time of the run.
	Duration time.Duration `json:"duration"`

	// Provinces holds per-province tallies in processing order.
	Provinces []ProvinceReport `json:"provinces"`

	// Total is the sum across all provinces.
	Total Tally `json:"total"`

	// Errors lists per-record failures as "<id>: <error>" entries.
	// A non-empty list does not mean the run failed; these records were
	// skipped and the run continued.
	Errors []string `json:"errors,omitempty"`
}

// Options controls engine behavior for a single run.
type Options struct {
	// DryRun performs lookups and counts would-be outcomes without writing.
	DryRun bool
}
