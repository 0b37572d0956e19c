package linkex

import "strings"

// JoinURL joins a base origin with a chapter reference.
//
// An empty ref returns base unchanged and an absolute ref (http:// or
// https://) is returned as is. Otherwise exactly one slash is placed between
// base and ref. No percent-encoding, query merging or dot-segment resolution
// is performed.
func JoinURL(base, ref string) string {
	if ref == "" {
		return base
	}
	if IsValidURL(ref) {
		return ref
	}

	base = strings.TrimSuffix(base, "/")
	if !strings.HasPrefix(ref, "/") {
		ref = "/" + ref
	}
	return base + ref
}

// IsValidURL reports whether u is an absolute http or https URL.
func IsValidURL(u string) bool {
	return strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://")
}
