// Package manifest parses and renders checksum manifest lines.
//
// A manifest record is a single line of the form
// "<hex-digest><two-char-separator><filename>"; the BSD-tag rendering
// "BLAKE2b (<filename>) = <hex-digest>" is produced for output only.
// Parsing is pure: it touches no files and carries no state.
package manifest
