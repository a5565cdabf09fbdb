package digest

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"golang.org/x/crypto/blake2b"
)

const (
	// MaxSize is the largest BLAKE2b digest width in bytes.
	MaxSize = blake2b.Size

	// DefaultBits is the digest width used when none is requested.
	DefaultBits = 512

	copyBufferSize = 32 * 1024
)

// SizeFromBits converts a requested digest width in bits to bytes.
// The width must be a positive multiple of 8 no greater than 512.
func SizeFromBits(bits int) (int, error) {
	if bits <= 0 || bits%8 != 0 || bits > DefaultBits {
		return 0, fmt.Errorf("digest length must be a positive multiple of 8 no greater than %d, got %d", DefaultBits, bits)
	}
	return bits / 8, nil
}

// Sum reads r to exhaustion and returns the lowercase hex BLAKE2b digest
// of size output bytes. A read failure aborts the computation and
// propagates unchanged.
func Sum(r io.Reader, size int) (string, error) {
	if size < 1 || size > MaxSize {
		return "", fmt.Errorf("digest size must be between 1 and %d bytes, got %d", MaxSize, size)
	}
	h, err := blake2b.New(size, nil)
	if err != nil {
		return "", fmt.Errorf("initialize blake2b: %w", err)
	}
	buf := make([]byte, copyBufferSize)
	if _, err := io.CopyBuffer(h, r, buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// SumFile hashes the file at path. The handle is closed on every exit
// path. Open errors are returned unwrapped so callers can classify a
// missing file with errors.Is(err, fs.ErrNotExist).
func SumFile(path string, size int) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return Sum(f, size)
}
