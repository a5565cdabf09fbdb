package config

const (
	defaultLengthBits = 512
	defaultColor      = "auto"
	defaultLogLevel   = "warn"
	defaultLogFormat  = "console"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Digest: Digest{
			LengthBits: defaultLengthBits,
		},
		Output: Output{
			Color: defaultColor,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
