// Package config loads and validates b2sum configuration data.
//
// The TOML file supplies invocation defaults only — digest width,
// output rendering, color policy, and log level/format; command-line
// flags always override it. Paths are resolved with tilde expansion,
// and a missing file simply yields the repository defaults.
package config
