// Package shard implements the per-province record store.
//
// A shard is an ordered sequence of attraction records for one
// administrative region, owned entirely by that region's declaration.
// Queries are scoped to the shard; the registry composes shards into the
// full catalog.
//
// Shards are effectively immutable: the single permitted mutation is a
// coordinate correction, which swaps the record at its index under a lock
// rather than handing out the backing slice for external mutation.
package shard
