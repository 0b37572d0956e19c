package sqlite

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
)

// parseRFC3339 parses an RFC3339 formatted timestamp string.
// Returns an error if parsing fails with a descriptive message including the field name.
func parseRFC3339(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}

// HashLinks computes the xxHash of the ordered links and returns it as a
// 16-character hex string. Links are newline separated before hashing, so
// the hash changes when links are added, removed or reordered.
func HashLinks(links []string) string {
	h := xxhash.Sum64String(strings.Join(links, "\n"))
	return hex.EncodeToString(binary.BigEndian.AppendUint64(nil, h))
}
