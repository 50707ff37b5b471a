package sanitizer

import (
	"maps"
	"slices"
)

// Value recursively sanitizes a JSON-compatible value: every string in v,
// including map keys, is passed through String. Slices keep their element
// order; maps are rebuilt with sanitized keys. Numbers, booleans, nil and any
// non-JSON type pass through unchanged. Value never fails.
//
// Map keys are visited in lexicographic order of the original key, so when two
// distinct input keys sanitize to the same output key the lexicographically
// later one wins, deterministically.
func Value(v any) any {
	switch t := v.(type) {
	case nil:
		return nil
	case string:
		return String(t)
	case []any:
		out := make([]any, len(t))
		for i, elem := range t {
			out[i] = Value(elem)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for _, k := range slices.Sorted(maps.Keys(t)) {
			out[String(k)] = Value(t[k])
		}
		return out
	default:
		return v
	}
}
