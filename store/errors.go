package store

import "errors"

// ErrNotFound is returned when no record exists at the given key.
var ErrNotFound = errors.New("store: record not found")

// WriteError wraps a backend failure during Put. The store never retries
// internally; callers decide whether the write is worth repeating.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string { return "store: write failed: " + e.Err.Error() }

func (e *WriteError) Unwrap() error { return e.Err }

// QueryError wraps a backend failure during Query. Filter is the compiled
// filter expression the query ran with (empty for unfiltered scans).
type QueryError struct {
	Filter string
	Err    error
}

func (e *QueryError) Error() string { return "store: query failed: " + e.Err.Error() }

func (e *QueryError) Unwrap() error { return e.Err }
