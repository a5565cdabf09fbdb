package manifest

import (
	"errors"
	"fmt"
)

// maxHexLen bounds the digest prefix at 64 bytes rendered as hex.
const maxHexLen = 128

// ErrMalformedLine reports a line whose digest prefix is valid but whose
// remainder is too short to hold a separator and a filename.
var ErrMalformedLine = errors.New("malformed line")

// Entry is one parsed manifest record.
type Entry struct {
	Hex      string
	Filename string
}

// Size returns the digest width in bytes declared by the entry.
func (e Entry) Size() int {
	return len(e.Hex) / 2
}

// SplitCheckLine extracts the digest and filename from one manifest
// line. The digest is the longest leading run of hex digits (either
// case); it must span an even count of at least 2 and at most 128
// characters, and must be followed by a two-character separator and a
// non-empty filename.
func SplitCheckLine(line string) (Entry, error) {
	n := 0
	for n < len(line) && isHexDigit(line[n]) {
		n++
	}
	if n < 2 || n%2 != 0 || n > maxHexLen {
		return Entry{}, fmt.Errorf("invalid hash length: %d", n)
	}

	rest := line[n:]
	if len(rest) < 3 {
		return Entry{}, ErrMalformedLine
	}

	return Entry{Hex: line[:n], Filename: rest[2:]}, nil
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
