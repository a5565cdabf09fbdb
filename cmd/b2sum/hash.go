package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"b2sum/internal/digest"
	"b2sum/internal/manifest"
)

// runHash computes and prints one checksum line per requested file.
// Any I/O failure is fatal for the whole invocation; lines already
// printed for earlier files stay on stdout.
func runHash(cmd *cobra.Command, opts rootOptions, size int, args []string, logger *slog.Logger) error {
	out := cmd.OutOrStdout()

	files := args
	if len(files) == 0 {
		files = []string{"-"}
	}

	for _, name := range files {
		var (
			sum string
			err error
		)
		start := time.Now()
		if name == "-" {
			in := cmd.InOrStdin()
			if f, ok := in.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
				fmt.Fprintln(cmd.ErrOrStderr(), "b2sum: reading from standard input")
			}
			sum, err = digest.Sum(in, size)
		} else {
			sum, err = digest.SumFile(name, size)
		}
		if err != nil {
			return err
		}
		logger.Debug("computed digest",
			"file", name, "bits", opts.lengthBits, "elapsed", time.Since(start))

		if opts.tag {
			fmt.Fprintln(out, manifest.FormatTagLine(sum, name, opts.lengthBits))
		} else {
			fmt.Fprintln(out, manifest.FormatLine(sum, name))
		}
	}

	return nil
}
