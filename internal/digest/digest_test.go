package digest

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Vector from hashing "hi\n" at the full 64-byte width.
const knownHiDigest = "7ea59e7a000ec003846b6607dfd5f9217b681dc1a81b0789b464c3995105d93083f7f0a86fca01a1bed27e9f9303ae58d01746e3b20443480bea56198e65bfc5"

func TestSumKnownVector(t *testing.T) {
	got, err := Sum(strings.NewReader("hi\n"), 64)
	if err != nil {
		t.Fatalf("Sum: %v", err)
	}
	if got != knownHiDigest {
		t.Fatalf("unexpected digest: %s", got)
	}
}

func TestSumDeterministicAcrossWidths(t *testing.T) {
	content := []byte("the quick brown fox jumps over the lazy dog\n")
	for size := 1; size <= MaxSize; size++ {
		first, err := Sum(bytes.NewReader(content), size)
		if err != nil {
			t.Fatalf("size %d: %v", size, err)
		}
		second, err := Sum(bytes.NewReader(content), size)
		if err != nil {
			t.Fatalf("size %d: %v", size, err)
		}
		if first != second {
			t.Fatalf("size %d: digests differ: %s vs %s", size, first, second)
		}
		if len(first) != 2*size {
			t.Fatalf("size %d: hex length %d, want %d", size, len(first), 2*size)
		}
		if first != strings.ToLower(first) {
			t.Fatalf("size %d: digest not lowercase: %s", size, first)
		}
	}
}

func TestSumRejectsInvalidSize(t *testing.T) {
	for _, size := range []int{0, -1, 65} {
		if _, err := Sum(strings.NewReader("data"), size); err == nil {
			t.Fatalf("size %d: expected error", size)
		}
	}
}

func TestSumPropagatesReadError(t *testing.T) {
	wantErr := errors.New("stream broke")
	if _, err := Sum(&failingReader{err: wantErr}, 32); !errors.Is(err, wantErr) {
		t.Fatalf("expected read error to propagate, got %v", err)
	}
}

func TestSumFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payload")
	if err := os.WriteFile(path, []byte("hi\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := SumFile(path, 64)
	if err != nil {
		t.Fatalf("SumFile: %v", err)
	}
	if got != knownHiDigest {
		t.Fatalf("unexpected digest: %s", got)
	}
}

func TestSumFileMissingIsNotExist(t *testing.T) {
	_, err := SumFile(filepath.Join(t.TempDir(), "absent"), 32)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestSizeFromBits(t *testing.T) {
	cases := []struct {
		bits    int
		size    int
		wantErr bool
	}{
		{bits: 8, size: 1},
		{bits: 256, size: 32},
		{bits: 512, size: 64},
		{bits: 0, wantErr: true},
		{bits: -8, wantErr: true},
		{bits: 12, wantErr: true},
		{bits: 520, wantErr: true},
	}
	for _, tc := range cases {
		size, err := SizeFromBits(tc.bits)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("bits %d: expected error", tc.bits)
			}
			continue
		}
		if err != nil {
			t.Fatalf("bits %d: %v", tc.bits, err)
		}
		if size != tc.size {
			t.Fatalf("bits %d: size %d, want %d", tc.bits, size, tc.size)
		}
	}
}

type failingReader struct {
	err error
}

func (r *failingReader) Read([]byte) (int, error) {
	return 0, r.err
}
