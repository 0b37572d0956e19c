package scrape

import "fmt"

// TruncateURL shortens a URL for display, keeping the end which is more informative.
func TruncateURL(url string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if maxLen < 4 {
		// Too short for "..." prefix, just return dots
		return url[:min(len(url), maxLen)]
	}
	if len(url) <= maxLen {
		return url
	}
	return "..." + url[len(url)-maxLen+3:]
}

// FormatProgress renders the in-place link counter shown while links are
// resolved, e.g. "\r[3/10] .../manga/ch-3". The URL is padded to maxURLLen so
// a shorter line fully overwrites a longer one. A non-positive maxURLLen
// renders the counter alone.
func FormatProgress(event ProgressEvent, maxURLLen int) string {
	if maxURLLen <= 0 {
		return fmt.Sprintf("\r[%d/%d]", event.Completed, event.Total)
	}
	return fmt.Sprintf("\r[%d/%d] %-*s", event.Completed, event.Total, maxURLLen, TruncateURL(event.URL, maxURLLen))
}
