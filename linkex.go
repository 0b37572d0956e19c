// Package linkex extracts the ordered list of chapter links from a manga
// index page and saves it as a plain text file.
//
// This package contains domain types, interfaces and the pure string
// algorithms (natural ordering, URL joining, safe file names) following
// Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// http/, sqlite/).
package linkex

// DefaultOrigin is the origin relative chapter references are joined with.
const DefaultOrigin = "https://demonicscans.org"

// UnknownTitle is used when the page has no usable title heading.
const UnknownTitle = "unknown_manga"
