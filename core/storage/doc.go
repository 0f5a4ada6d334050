// Package storage provides the object storage client used for attraction
// media (thumbnails).
//
// The Client interface exposes only the read operations the media checker
// needs; the catalog never writes to the bucket.
package storage
