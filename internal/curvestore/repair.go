package curvestore

import (
	"bytes"
)

// looksConcatenated reports whether a curve file contains more than one JSON
// object, the artifact a non-atomic writer leaves behind when two saves
// overlap.
func looksConcatenated(data []byte) bool {
	return bytes.Count(data, []byte(`"name"`)) > 1
}

// extractFirstObject scans for the first brace-balanced JSON object in data.
// Only the concatenated-objects corruption pattern is handled; anything else
// is left for the caller to discard.
func extractFirstObject(data []byte) ([]byte, bool) {
	start := bytes.IndexByte(data, '{')
	if start < 0 {
		return nil, false
	}

	depth := 0
	for i := start; i < len(data); i++ {
		switch data[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return data[start : i+1], true
			}
		}
	}

	return nil, false
}
