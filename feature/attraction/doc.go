// Package attraction implements the attraction catalog feature.
//
// The canonical catalog is declared in per-province shards (see the
// regions package) and composed by the registry. This package adds the
// surfaces around that core:
//
//   - Store: the gorm-backed persistent store consumed by the sync engine.
//   - Service: orchestrates sync runs and catalog queries.
//   - Handler: exposes the read-only HTTP endpoints.
//   - CheckThumbnails: reports records whose media object is missing from
//     the storage bucket.
//
// # HTTP Endpoints
//
//   - GET /attractions : all active records.
//   - GET /attractions/search?q=term : substring search over active records.
//   - GET /attractions/:id : one record by id, inactive included.
//   - GET /provinces/:key/attractions : a province's records by alias key.
//   - GET /categories/:category/attractions : active records by category.
package attraction
