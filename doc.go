// Package guardstore provides a sanitizing, allow-listed key-value
// persistence layer for an application's durable client-side storage.
//
// Every value is recursively scrubbed of dangerous markup, URI schemes and
// inline event-handler attributes before it is written and again after it is
// read, and only a fixed set of six logical keys may ever be touched. All
// failure is signaled through return values; no operation raises.
//
// The root package wires the pieces together from environment configuration:
//
//	store, err := guardstore.New(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	store.Set(ctx, guard.KeyDarkMode, true)
//	value, found := store.Get(ctx, guard.KeyRows)
//
// The subpackages can also be combined by hand:
//
//   - pkg/sanitizer - string and recursive value sanitization
//   - pkg/storage   - memory, file and redis persistence backends
//   - pkg/guard     - the allow-listed store over a backend
//   - pkg/logger    - slog factory for diagnostics
//   - pkg/environment - build-context signal gating diagnostics
//   - pkg/config    - environment variable configuration loading
package guardstore
