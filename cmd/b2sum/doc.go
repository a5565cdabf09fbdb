// Package main hosts the b2sum CLI entrypoint and command graph.
//
// The Cobra-based root command computes or checks BLAKE2b checksums and
// maps outcomes onto process exit codes: 0 on success, 1 for digest
// mismatches and I/O failures, 2 for argument-grammar errors. A config
// command group scaffolds and validates the optional TOML configuration.
//
// Keep this package lean: digest computation, manifest parsing, and
// verification policy live in the internal packages; this layer only
// wires flags, streams, and exit codes together.
package main
