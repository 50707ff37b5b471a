package guard

import "slices"

// Key is a logical record name. Only the allow-listed constants below are
// ever read, written or deleted; the typed string keeps arbitrary keys out of
// call sites, with a runtime check at the API boundary as the backstop.
type Key string

const (
	// KeyRows holds the row configuration.
	KeyRows Key = "rows"
	// KeyDarkMode holds the dark-mode flag.
	KeyDarkMode Key = "darkMode"
	// KeyPresets holds the saved preset set.
	KeyPresets Key = "presets"
	// KeyHistory holds the session history.
	KeyHistory Key = "history"
	// KeySettings holds user settings.
	KeySettings Key = "settings"
	// KeyLastPreset holds the name of the last selected preset.
	KeyLastPreset Key = "lastPreset"
)

// allowedKeys is the fixed allow-list in its canonical order, built once and
// never mutated.
var allowedKeys = []Key{
	KeyRows,
	KeyDarkMode,
	KeyPresets,
	KeyHistory,
	KeySettings,
	KeyLastPreset,
}

var allowedSet = func() map[Key]struct{} {
	set := make(map[Key]struct{}, len(allowedKeys))
	for _, k := range allowedKeys {
		set[k] = struct{}{}
	}
	return set
}()

// AllowedKeys returns the allow-list in canonical order. The returned slice
// is a copy and may be modified freely.
func AllowedKeys() []Key {
	return slices.Clone(allowedKeys)
}

// Allowed reports whether k is in the allow-list.
func (k Key) Allowed() bool {
	_, ok := allowedSet[k]
	return ok
}

func (k Key) String() string {
	return string(k)
}
