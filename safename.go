package linkex

import (
	"strings"
)

// DefaultSafeName is returned by SafeName when nothing usable is left of the title.
const DefaultSafeName = "chapters"

// SafeName converts a title into a token safe to use as a file name.
// Example: "The Beginning — After The End!" → the_beginning_after_the_end
//
// Letters are lowercased, every character outside [a-z0-9_.-] becomes an
// underscore, underscore runs collapse to one, and a single leading and
// trailing underscore is removed.
func SafeName(title string) string {
	var sb strings.Builder
	prevUnderscore := false

	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		if !isSafeRune(r) {
			r = '_'
		}
		if r == '_' {
			if prevUnderscore {
				continue
			}
			prevUnderscore = true
		} else {
			prevUnderscore = false
		}
		sb.WriteRune(r)
	}

	name := strings.TrimPrefix(sb.String(), "_")
	name = strings.TrimSuffix(name, "_")
	if name == "" {
		return DefaultSafeName
	}
	return name
}

func isSafeRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '_', r == '.', r == '-':
		return true
	}
	return false
}
