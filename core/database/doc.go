// Package database provides the MySQL connection used as the persistent
// attraction store.
//
// The connection is the one shared resource of a sync run: it is acquired
// once via Connect and must be released exactly once by the caller,
// regardless of how many per-record errors occur during the run.
package database
