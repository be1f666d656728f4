package config

const (
	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// Default returns the repository default configuration.
func Default() *Config {
	return &Config{
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
