// Package digest computes streaming BLAKE2b (RFC 7693) digests with a
// configurable output width.
//
// Sources are consumed in bounded chunks so arbitrarily large files and
// standard input hash in constant memory. Digests render as canonical
// lowercase hexadecimal, two characters per output byte; identical bytes
// and identical width always produce the identical string.
package digest
