package app

import "fmt"

// Config holds everything an App instance needs to run.
type Config struct {
	// Args are the status flags and their arguments, without the program name.
	Args []string

	LogFormat string
	LogLevel  string

	// Explain prints the resolved request plan after validation.
	Explain bool
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	cfg.Args = append([]string(nil), cfg.Args...)
	return &cfg, nil
}
