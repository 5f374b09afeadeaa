package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bnema/tessera/internal/ui/theme"
)

// validateConfig checks every section and reports all problems at once.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLayout(config)...)
	validationErrors = append(validationErrors, validateTerminal(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateLayout(config *Config) []string {
	if _, err := theme.BorderGlyphs(config.Layout.BorderStyle); err != nil {
		return []string{fmt.Sprintf("layout.border_style must be one of: %s (got %q)",
			strings.Join(theme.BorderStyles(), ", "), config.Layout.BorderStyle)}
	}
	return nil
}

func validateTerminal(config *Config) []string {
	var validationErrors []string
	switch config.Terminal.Backend {
	case BackendStdio, BackendTcell:
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("terminal.backend must be one of: stdio, tcell (got %q)", config.Terminal.Backend))
	}
	if config.Terminal.PollIntervalMs < minPollIntervalMs {
		validationErrors = append(validationErrors,
			fmt.Sprintf("terminal.poll_interval_ms must be at least %d", minPollIntervalMs))
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string

	if _, err := zerolog.ParseLevel(config.Logging.Level); err != nil || config.Logging.Level == "" {
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of: trace, debug, info, warn, error (got %q)", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be one of: console, json (got %q)", config.Logging.Format))
	}
	if config.Logging.EnableFileLog && config.Logging.LogDir == "" {
		validationErrors = append(validationErrors, "logging.log_dir is required when logging.enable_file_log is true")
	}
	if config.Logging.MaxSize < 0 {
		validationErrors = append(validationErrors, "logging.max_size must be non-negative")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	if config.Logging.MaxAge < 0 {
		validationErrors = append(validationErrors, "logging.max_age must be non-negative")
	}

	return validationErrors
}
