// Package guard is the public face of the store: an allow-listed, sanitizing
// key-value layer over a storage.Backend.
//
// Exactly six logical keys exist (see the Key constants); every operation
// rejects any other key without touching the medium. Values are arbitrary
// JSON-compatible structures. On the way in a value is recursively sanitized,
// serialized to JSON and size-checked; on the way out it is deserialized and
// sanitized again, so records written before a sanitizer change (or by
// another process) are still neutralized at read time.
//
// No operation ever panics or returns an error. Failures - rejected keys,
// corrupted records, oversized writes, a failing medium - collapse to a false
// return or an absent value:
//
//	store := guard.New(storage.NewMemoryBackend(), guard.WithLogger(log))
//
//	ok := store.Set(ctx, guard.KeyDarkMode, true)
//	value, found := store.Get(ctx, guard.KeyDarkMode)
//
// Diagnostics are emitted through the configured slog.Logger, and only when
// the context carries a non-production environment (pkg/environment). In
// production, and by default, the store is silent; callers must not depend on
// diagnostic output for control flow.
//
// The store performs no locking and no transactions: each operation is an
// independent, immediately-committing access, and concurrent writers observe
// last-write-wins semantics. Callers needing atomic read-modify-write must
// layer their own coordination on top.
package guard
