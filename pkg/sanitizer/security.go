package sanitizer

import "strings"

// dangerousTags are element names whose tag pair is removed together with
// everything between the tags. Lowercase; matching is case-insensitive.
var dangerousTags = []string{
	"script",
	"iframe",
	"object",
	"embed",
	"style",
	"link",
	"meta",
}

// dangerousSchemes are URI scheme prefixes removed verbatim, leaving the
// remainder of the string intact.
var dangerousSchemes = []string{
	"javascript:",
	"data:",
	"vbscript:",
	"file:",
}

// dangerousAttributes are inline event-handler names (with the trailing
// equals sign) removed verbatim. The surrounding markup and the quoted
// attribute value stay in place.
var dangerousAttributes = []string{
	"onclick=",
	"onerror=",
	"onload=",
	"onmouseover=",
	"onmouseout=",
	"onfocus=",
	"onblur=",
	"onchange=",
	"onsubmit=",
	"onkeydown=",
	"onkeyup=",
}

// String removes dangerous tag pairs, URI scheme prefixes and event-handler
// attribute names from s, in that fixed order. The result is idempotent:
// String(String(s)) == String(s).
func String(s string) string {
	for _, tag := range dangerousTags {
		s = stripTagPair(s, tag)
	}
	for _, scheme := range dangerousSchemes {
		s = stripToken(s, scheme)
	}
	for _, attr := range dangerousAttributes {
		s = stripToken(s, attr)
	}
	return s
}

// stripTagPair removes every occurrence of <name ...>...</name> from s,
// case-insensitively. The opening match is a raw prefix match on "<name", so
// "<scriptx>" is treated as an opening script tag too; over-removal is the
// accepted failure mode. A malformed occurrence (no closing ">" after the
// opening match, or no closing tag at all) truncates s at the match start.
func stripTagPair(s, name string) string {
	open := "<" + name
	closing := "</" + name + ">"

	for {
		start := indexFold(s, open)
		if start == -1 {
			return s
		}

		gt := strings.IndexByte(s[start:], '>')
		if gt == -1 {
			return s[:start]
		}

		after := start + gt + 1
		end := indexFold(s[after:], closing)
		if end == -1 {
			return s[:start]
		}

		s = s[:start] + s[after+end+len(closing):]
	}
}

// stripToken deletes every case-insensitive occurrence of token from s,
// rescanning after each deletion so occurrences formed by the join are
// removed as well.
func stripToken(s, token string) string {
	for {
		i := indexFold(s, token)
		if i == -1 {
			return s
		}
		s = s[:i] + s[i+len(token):]
	}
}

// indexFold returns the byte index of the first occurrence of pattern in s,
// folding only the ASCII letters 'A'-'Z' while scanning. Every dangerous
// pattern is lowercase ASCII, so offsets stay exact for arbitrary input;
// lowering a copy of s would shift indices wherever case conversion changes a
// rune's byte length.
func indexFold(s, pattern string) int {
	if len(pattern) == 0 {
		return 0
	}
	for i := 0; i+len(pattern) <= len(s); i++ {
		if matchFold(s[i:i+len(pattern)], pattern) {
			return i
		}
	}
	return -1
}

// matchFold reports whether s equals pattern under ASCII case folding.
// len(s) must equal len(pattern).
func matchFold(s, pattern string) bool {
	for i := 0; i < len(pattern); i++ {
		c := s[i]
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c != pattern[i] {
			return false
		}
	}
	return true
}
