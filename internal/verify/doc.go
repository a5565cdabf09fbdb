// Package verify checks files against a checksum manifest.
//
// Run scans manifest lines in order, recomputes each referenced file's
// BLAKE2b digest at the width the manifest entry declares, classifies
// the outcome, and folds everything into a single pass/fail Result that
// becomes the process exit status. Policy switches (ignore-missing,
// quiet, status, strict, warn) adjust reporting and failure accounting
// but never abort the scan; only a read failure on the manifest source
// itself is fatal.
package verify
