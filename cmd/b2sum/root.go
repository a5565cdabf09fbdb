package main

import (
	"errors"

	"github.com/spf13/cobra"

	"b2sum/internal/config"
	"b2sum/internal/digest"
	"b2sum/internal/logging"
)

const version = "1.0.0"

// errVerificationFailed marks a completed check run that found
// mismatches, unreadable files, or (under --strict) malformed lines.
// It carries no message: the per-entry output already told the story.
var errVerificationFailed = errors.New("verification failed")

// usageError wraps argument-grammar problems so main can exit with a
// status distinct from verification failures.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

type rootOptions struct {
	check         bool
	lengthBits    int
	tag           bool
	ignoreMissing bool
	quiet         bool
	status        bool
	strict        bool
	warn          bool
	summary       bool

	configPath string
	logLevel   string
	logFormat  string
}

func newRootCommand() *cobra.Command {
	var opts rootOptions

	rootCmd := &cobra.Command{
		Use:   "b2sum [flags] [file ...]",
		Short: "Print or check BLAKE2b (RFC 7693) checksums",
		Long: `Print or check BLAKE2b (512-bit) checksums.
With no FILE, or when FILE is -, read standard input.

The default mode prints a line with checksum and name for each FILE.
With --check, the FILE is read as a former output of this program and
every entry in it is re-verified.`,
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, _, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			applyConfigDefaults(cmd, &opts, cfg)

			logger, err := logging.New(logging.Options{
				Level:  opts.logLevel,
				Format: opts.logFormat,
				Output: cmd.ErrOrStderr(),
			})
			if err != nil {
				return &usageError{err}
			}

			size, err := digest.SizeFromBits(opts.lengthBits)
			if err != nil {
				return &usageError{err}
			}

			if opts.check {
				return runCheck(cmd, opts, cfg, args, logger)
			}
			return runHash(cmd, opts, size, args, logger)
		},
	}

	flags := rootCmd.Flags()
	flags.BoolVarP(&opts.check, "check", "c", false, "read BLAKE2b sums from the FILEs and check them")
	flags.IntVarP(&opts.lengthBits, "length", "l", 512, "digest length in bits; a positive multiple of 8, at most 512")
	flags.BoolVar(&opts.tag, "tag", false, "create a BSD-style checksum")
	flags.BoolVar(&opts.ignoreMissing, "ignore-missing", false, "don't fail or report status for missing files")
	flags.BoolVar(&opts.quiet, "quiet", false, "don't print OK for each successfully verified file")
	flags.BoolVar(&opts.status, "status", false, "don't output anything, status code shows success")
	flags.BoolVar(&opts.strict, "strict", false, "exit non-zero for improperly formatted checksum lines")
	flags.BoolVarP(&opts.warn, "warn", "w", false, "warn about improperly formatted checksum lines")
	flags.BoolVar(&opts.summary, "summary", false, "print a table of verification outcome counts after checking")

	persistent := rootCmd.PersistentFlags()
	persistent.StringVar(&opts.configPath, "config", "", "configuration file path")
	persistent.StringVar(&opts.logLevel, "log-level", "", "diagnostic level (debug, info, warn, error)")
	persistent.StringVar(&opts.logFormat, "log-format", "", "diagnostic format (console or json)")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err}
	})

	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}

// applyConfigDefaults fills option values the user did not set on the
// command line from the configuration file.
func applyConfigDefaults(cmd *cobra.Command, opts *rootOptions, cfg *config.Config) {
	flags := cmd.Flags()
	if !flags.Changed("length") {
		opts.lengthBits = cfg.Digest.LengthBits
	}
	if !flags.Changed("tag") {
		opts.tag = cfg.Output.Tag
	}
	if opts.logLevel == "" {
		opts.logLevel = cfg.Logging.Level
	}
	if opts.logFormat == "" {
		opts.logFormat = cfg.Logging.Format
	}
}
