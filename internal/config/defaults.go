package config

// Default value constants.
const (
	DefaultLogLevel = "info"
)

// validLogLevels lists accepted log_level values.
var validLogLevels = []string{"debug", "info", "warn", "error"}

// NewDefaultConfig returns a Config populated with defaults.
func NewDefaultConfig() *Config {
	return &Config{
		LogLevel: DefaultLogLevel,
	}
}
