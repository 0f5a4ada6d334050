// Package regions holds the static per-province attraction declarations.
//
// Each province file is independently maintained: it declares the
// native-script province name, its lookup aliases (English name, hyphenated
// slug, concatenated slug), and the ordered record sequence. The registry
// composes these shards into the canonical catalog.
package regions
