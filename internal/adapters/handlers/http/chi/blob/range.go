package blob

import (
	"strconv"
	"strings"
)

// resolveRange interprets a single-range Range header against a blob of
// the given size. valid=false means the header is malformed or carries
// multiple ranges and the caller should serve the full body instead;
// valid && !satisfiable means a well-formed range that lies entirely
// outside the blob, which must answer 416.
func resolveRange(header string, size int64) (offset, length int64, valid, satisfiable bool) {
	const prefix = "bytes="
	if !strings.HasPrefix(header, prefix) {
		return 0, 0, false, false
	}
	spec := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	if spec == "" || strings.Contains(spec, ",") {
		return 0, 0, false, false
	}

	startPart, endPart, found := strings.Cut(spec, "-")
	if !found {
		return 0, 0, false, false
	}

	// Suffix form bytes=-N: the last N bytes.
	if startPart == "" {
		n, err := strconv.ParseInt(endPart, 10, 64)
		if err != nil || n < 0 {
			return 0, 0, false, false
		}
		if n == 0 || size == 0 {
			return 0, 0, true, false
		}
		if n > size {
			n = size
		}
		return size - n, n, true, true
	}

	first, err := strconv.ParseInt(startPart, 10, 64)
	if err != nil || first < 0 {
		return 0, 0, false, false
	}
	if first >= size {
		return 0, 0, true, false
	}

	// Open-ended form bytes=A-: from A to the end.
	if endPart == "" {
		return first, size - first, true, true
	}

	last, err := strconv.ParseInt(endPart, 10, 64)
	if err != nil || last < first {
		return 0, 0, false, false
	}
	if last >= size {
		last = size - 1
	}
	return first, last - first + 1, true, true
}
