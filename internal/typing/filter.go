package typing

import "unicode"

// ValidPhrase reports whether phrase can be typed into a single-line field:
// non-empty and free of control characters (tabs and newlines included).
func ValidPhrase(phrase string) bool {
	if phrase == "" {
		return false
	}
	for _, r := range phrase {
		if unicode.IsControl(r) {
			return false
		}
	}
	return true
}
