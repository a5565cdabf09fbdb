// Package logging assembles the structured slog loggers used by the CLI.
//
// Diagnostics go to stderr so checksum output on stdout stays clean and
// pipeline-safe. The default level is warn; raising it to debug surfaces
// per-file digest timings and manifest scan details. NewNop returns a
// logger for tests and wiring code that cannot fail.
package logging
