// Package registry composes the per-province shards into one catalog.
//
// It provides single-key-space id lookup, alias-tolerant province
// resolution, and catalog-wide search and category queries. Lookups are
// set-membership queries: absence is an empty sequence or a false flag,
// never an error.
//
// # Alias resolution
//
// Province names arrive in native script, English with hyphens, and
// English without hyphens from different callers. A key is resolved by
// trying, in order, the raw key, the key lowercased with whitespace
// replaced by hyphens, and the key lowercased with hyphens removed; the
// first form matching a registered alias wins. An unmapped key yields no
// shard, never a nearest match.
//
// # Integrity
//
// Record ids are assumed globally unique across provinces. The registry
// enforces this at construction time by indexing every id once and
// rejecting collisions, so a misdeclared province fails at startup rather
// than silently shadowing another province's record at query time.
package registry
