// Package syncer implements the synchronization engine that reconciles the
// canonical in-memory catalog with the persistent store.
//
// The engine is deliberately sequential: provinces are processed one at a
// time and records within a province in declaration order, because the
// per-province report output is read by operators who expect that ordering.
//
// # Contract
//
// For each record the engine looks up the stored row by sync key, updates it
// if present, and inserts it if absent. Matching strictly by key makes a run
// idempotent: a second run over the same catalog and store state adds
// nothing and cannot create duplicates.
//
// # Failure isolation
//
// A single record's lookup, insert, or update error marks that record as
// skipped and the run continues; the canonical data is declared by many
// independently maintained province modules and one malformed record must
// not block the rest. Only losing the store connection (surfaced by the
// caller before the run) or context cancellation aborts a run.
//
// # Usage
//
//	engine := syncer.New(store, log)
//	report, err := engine.Run(ctx, batches, syncer.Options{})
package syncer
