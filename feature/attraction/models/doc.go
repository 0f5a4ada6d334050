// Package models defines the attraction record, its validation rules, and
// the mapping between the canonical in-memory representation and the
// persistent 'attractions' table.
package models
