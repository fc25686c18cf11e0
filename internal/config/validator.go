package config

import (
	"fmt"
	"log/slog"
	"strings"
)

// Validate checks the config for:
//   - a known output format and log level
//   - non-negative max_paths
//   - an input path, and start/end presence (range is checked against the matrix)
//   - metrics_addr only together with watch
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config: nil config")
	}
	var errs []string

	if cfg.Input == "" {
		errs = append(errs, "input is required")
	}
	if cfg.Start == nil {
		errs = append(errs, "start is required")
	}
	if cfg.End == nil {
		errs = append(errs, "end is required")
	}
	switch cfg.Format {
	case FormatText, FormatJSON:
	default:
		errs = append(errs, fmt.Sprintf("format must be %q or %q, got %q", FormatText, FormatJSON, cfg.Format))
	}
	if cfg.MaxPaths < 0 {
		errs = append(errs, fmt.Sprintf("max_paths must be >= 0, got %d", cfg.MaxPaths))
	}
	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		errs = append(errs, err.Error())
	}
	if cfg.MetricsAddr != "" && !cfg.Watch {
		errs = append(errs, "metrics_addr requires watch")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation errors:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

// ParseLevel maps debug|info|warn|error (any case) onto an slog.Level.
// Offsets such as "warn+2" are rejected.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("log_level %q: want debug, info, warn or error", s)
}
