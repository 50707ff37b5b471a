package storage

import "context"

// Backend is the persistence medium behind the guarded store. Implementations
// store raw string records under raw string keys and must be safe for
// concurrent use. No backend performs locking across operations: each call is
// an independent, immediately-committing access with last-write-wins
// semantics between concurrent writers.
type Backend interface {
	// Read returns the record under key. The boolean reports whether a
	// record exists; a missing record is not an error.
	Read(ctx context.Context, key string) (string, bool, error)

	// Write stores value under key, overwriting any previous record.
	Write(ctx context.Context, key, value string) error

	// Delete removes the record under key. Deleting an absent record is a
	// no-op, not an error.
	Delete(ctx context.Context, key string) error

	// Exists reports whether a record is present under key without reading
	// its contents.
	Exists(ctx context.Context, key string) (bool, error)
}
