package config

import (
	"os"
	"path/filepath"
)

// Default configuration constants
const (
	// Layout defaults
	defaultBorderStyle = "double"

	// Terminal defaults
	defaultPollIntervalMs = 100 // milliseconds
	minPollIntervalMs     = 10  // milliseconds

	// Logging defaults
	defaultLogLevel      = "warn"
	defaultLogFormat     = "console"
	defaultMaxLogSizeMB  = 10 // megabytes
	defaultMaxLogBackups = 3
	defaultMaxLogAgeDays = 7 // days
)

func getDefaultLogDir() string {
	if logDir, err := GetLogDir(); err == nil {
		return logDir
	}
	// Fallback if XDG fails
	return filepath.Join(os.TempDir(), appName, "logs")
}

// DefaultConfig returns the default configuration values.
func DefaultConfig() *Config {
	return &Config{
		Layout: LayoutConfig{
			BorderStyle:  defaultBorderStyle,
			BorderRoot:   true,
			BorderSplits: true,
		},
		Terminal: TerminalConfig{
			Backend:        BackendStdio,
			PollIntervalMs: defaultPollIntervalMs,
		},
		Logging: LoggingConfig{
			Level:         defaultLogLevel,
			Format:        defaultLogFormat,
			LogDir:        getDefaultLogDir(),
			EnableFileLog: false,
			MaxSize:       defaultMaxLogSizeMB,
			MaxBackups:    defaultMaxLogBackups,
			MaxAge:        defaultMaxLogAgeDays,
			Compress:      true,
		},
	}
}
