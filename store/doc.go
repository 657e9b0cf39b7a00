// Package store provides a DynamoDB data access layer for partitioned records.
//
// Records are addressed by a (partition key, row key) pair and written
// exactly once; there are no update or delete operations. Meals and orders
// share one table and are discriminated by their "type" attribute.
//
// # Reads
//
// Queries are expressed as a list of [Predicate] values compiled by
// [BuildFilter] into a PartiQL filter. String values are escaped by doubling
// embedded single quotes before interpolation; this is the only sanitization
// boundary between client-supplied strings and the query engine:
//
//	f := store.BuildFilter([]store.Predicate{
//	    {Field: "delivery_area", Op: store.OpEq, Value: area},
//	    {Field: "price", Op: store.OpLE, Value: maxPrice},
//	})
//	recs, err := s.Query(ctx, f, top)
//
// An empty predicate list produces an unfiltered scan, bounded client-side
// by the limit.
//
// # Errors
//
//   - [ErrNotFound] - no record at the given key
//   - [*WriteError] - the backend rejected a put (wraps the cause)
//   - [*QueryError] - a query failed (wraps the cause, carries the filter)
//
// Store errors are propagated to the caller without internal retries; retry
// policy belongs to the caller or the surrounding infrastructure.
package store
