package manifest

import "fmt"

// FormatLine renders the default checksum line: digest, exactly two
// ASCII spaces, filename.
func FormatLine(hexDigest, filename string) string {
	return hexDigest + "  " + filename
}

// FormatTagLine renders the BSD-style checksum line. The algorithm
// suffix is omitted at the full 512-bit width.
func FormatTagLine(hexDigest, filename string, bits int) string {
	if bits == 512 {
		return fmt.Sprintf("BLAKE2b (%s) = %s", filename, hexDigest)
	}
	return fmt.Sprintf("BLAKE2b-%d (%s) = %s", bits, filename, hexDigest)
}
