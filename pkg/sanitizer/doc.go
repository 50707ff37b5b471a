// Package sanitizer neutralizes dangerous markup, URI schemes and inline
// event-handler attributes in untrusted values before they are persisted or
// after they are read back.
//
// Two entry points cover the whole surface:
//
//   - String – removes dangerous tag pairs (including their content),
//     dangerous URI scheme prefixes and inline event-handler attribute names
//     from a single string.
//
//   - Value – walks an arbitrary JSON-compatible value (nil, bool, number,
//     string, slice, string-keyed map) and applies String to every string it
//     finds, map keys included.
//
// All matching is done with explicit case-insensitive index scanning rather
// than a regular-expression engine, so the removal logic stays auditable and
// is immune to catastrophic-backtracking bugs. The tag pass matches the raw
// prefix "<script" and therefore also fires on "<scriptx>"; this over-broad
// bias toward removal is intentional.
//
// Both functions are pure, idempotent and never fail: there is no error path,
// only data transformation. For convenience the generic Apply and Compose
// helpers allow building sanitization pipelines:
//
//	clean := sanitizer.Compose(
//	    strings.TrimSpace,
//	    sanitizer.String,
//	)
//
// The package is stateless and safe for concurrent use.
package sanitizer
