package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"b2sum/internal/config"
	"b2sum/internal/verify"
)

// runCheck verifies the manifest named by the first positional argument
// (or standard input). Failure to open the manifest itself is fatal;
// everything else is folded into the verification result.
func runCheck(cmd *cobra.Command, opts rootOptions, cfg *config.Config, args []string, logger *slog.Logger) error {
	out := cmd.OutOrStdout()

	name := "-"
	if len(args) > 0 {
		name = args[0]
	}

	var in io.Reader
	if name == "-" {
		in = cmd.InOrStdin()
	} else {
		f, err := os.Open(name)
		if err != nil {
			return fmt.Errorf("open checksum file: %w", err)
		}
		defer f.Close()
		in = f
	}

	res, err := verify.Run(verify.Options{
		Policy: verify.Policy{
			IgnoreMissing: opts.ignoreMissing,
			Quiet:         opts.quiet,
			Status:        opts.status,
			Strict:        opts.strict,
			Warn:          opts.warn,
		},
		ManifestName: name,
		Colorize:     shouldColorize(cfg.Output.Color, out),
		Logger:       logger,
	}, in, out)
	if err != nil {
		return err
	}

	if opts.summary && !opts.status {
		fmt.Fprintln(out, renderSummaryTable(res.Summary))
	}

	if res.Failed {
		return errVerificationFailed
	}
	return nil
}

// shouldColorize resolves the configured color policy against the
// output destination.
func shouldColorize(policy string, writer io.Writer) bool {
	switch strings.ToLower(strings.TrimSpace(policy)) {
	case "always":
		return true
	case "never":
		return false
	}
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
