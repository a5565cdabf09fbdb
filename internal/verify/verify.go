package verify

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"

	"b2sum/internal/digest"
	"b2sum/internal/logging"
	"b2sum/internal/manifest"
)

// maxLineBytes bounds a single manifest line. Far beyond any legitimate
// record (128 hex digits plus a filename), but keeps a corrupt input
// from ballooning the scanner.
const maxLineBytes = 1 << 20

const (
	ansiReset = "\x1b[0m"
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
)

// Policy holds the check-mode switches, fixed for one invocation.
type Policy struct {
	IgnoreMissing bool
	Quiet         bool
	Status        bool
	Strict        bool
	Warn          bool
}

// Outcome classifies one manifest entry after verification.
type Outcome int

const (
	OutcomeMatched Outcome = iota
	OutcomeMismatched
	OutcomeMissing
	OutcomeReadError
	OutcomeMalformed
)

// Summary counts entry outcomes across one manifest scan. Skipped holds
// missing entries suppressed by the ignore-missing policy.
type Summary struct {
	Matched    int
	Mismatched int
	Missing    int
	ReadErrors int
	Malformed  int
	Skipped    int
}

func (s *Summary) record(o Outcome) {
	switch o {
	case OutcomeMatched:
		s.Matched++
	case OutcomeMismatched:
		s.Mismatched++
	case OutcomeMissing:
		s.Missing++
	case OutcomeReadError:
		s.ReadErrors++
	case OutcomeMalformed:
		s.Malformed++
	}
}

// Result aggregates one manifest scan. Failed reports whether any
// mismatch, unresolved I/O failure, or (under strict policy) malformed
// line was observed.
type Result struct {
	Failed  bool
	Summary Summary
}

// Options configure one Run.
type Options struct {
	Policy Policy

	// ManifestName labels warn diagnostics; typically the manifest
	// path or "-" for standard input.
	ManifestName string

	// Colorize wraps OK/FAILED verdicts in ANSI colors. Leave false
	// when out is not a terminal.
	Colorize bool

	Logger *slog.Logger
}

// Run scans manifest lines from in, recomputes each referenced file's
// digest, and writes per-entry verdicts to out. Entry-level failures are
// folded into the Result; the returned error is non-nil only when
// reading the manifest source itself fails.
func Run(opts Options, in io.Reader, out io.Writer) (Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	okVerdict := verdict("OK", ansiGreen, opts.Colorize)
	failedVerdict := verdict("FAILED", ansiRed, opts.Colorize)

	var res Result

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		entry, err := manifest.SplitCheckLine(line)
		if err != nil {
			res.Summary.record(OutcomeMalformed)
			if opts.Policy.Strict {
				res.Failed = true
			}
			if opts.Policy.Warn {
				fmt.Fprintf(out, "%s:%d: %s\n", opts.ManifestName, lineNo, err)
			}
			logger.Debug("malformed manifest line",
				"manifest", opts.ManifestName, "line", lineNo, "error", err)
			continue
		}

		computed, err := digest.SumFile(entry.Filename, entry.Size())
		if err != nil {
			missing := errors.Is(err, fs.ErrNotExist)
			if missing && opts.Policy.IgnoreMissing {
				res.Summary.Skipped++
				logger.Debug("skipped missing file", "file", entry.Filename)
				continue
			}
			if missing {
				res.Summary.record(OutcomeMissing)
			} else {
				res.Summary.record(OutcomeReadError)
			}
			res.Failed = true
			if !opts.Policy.Status {
				fmt.Fprintf(out, "%s: %s %s\n", entry.Filename, failedVerdict, err)
			}
			continue
		}

		// Exact comparison: the engine renders lowercase, so an
		// uppercase manifest digest never matches.
		matched := entry.Hex == computed
		if matched {
			res.Summary.record(OutcomeMatched)
		} else {
			res.Summary.record(OutcomeMismatched)
			res.Failed = true
		}
		logger.Debug("verified entry",
			"file", entry.Filename, "bytes", entry.Size(), "matched", matched)

		if opts.Policy.Quiet || opts.Policy.Status {
			continue
		}
		if matched {
			fmt.Fprintf(out, "%s: %s\n", entry.Filename, okVerdict)
		} else {
			fmt.Fprintf(out, "%s: %s\n", entry.Filename, failedVerdict)
		}
	}
	if err := scanner.Err(); err != nil {
		return res, fmt.Errorf("read %s: %w", opts.ManifestName, err)
	}

	return res, nil
}

func verdict(text, color string, colorize bool) string {
	if !colorize {
		return text
	}
	return color + text + ansiReset
}
