package config

import (
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateDigest(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateDigest() error {
	bits := c.Digest.LengthBits
	if bits <= 0 || bits%8 != 0 || bits > 512 {
		return fmt.Errorf("digest.length_bits must be a positive multiple of 8 no greater than 512, got %d", bits)
	}
	return nil
}

func (c *Config) validateOutput() error {
	switch strings.ToLower(strings.TrimSpace(c.Output.Color)) {
	case "", "auto", "always", "never":
		return nil
	}
	return fmt.Errorf("output.color must be auto, always, or never, got %q", c.Output.Color)
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(strings.TrimSpace(c.Logging.Level)) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	return nil
}
