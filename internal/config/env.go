package config

import (
	"os"
	"strconv"
)

// loadFromEnv overrides config from TASKMASTER_* environment variables.
// If sources is non-nil, it tracks the source of each overridden value.
func loadFromEnv(cfg *Config, sources map[string]ConfigSource) {
	set := func(field string) {
		if sources != nil {
			sources[field] = SourceEnv
		}
	}

	if v := os.Getenv("TASKMASTER_FILE"); v != "" {
		cfg.TasksFile = v
		set("tasks_file")
	}
	if v := os.Getenv("TASKMASTER_SCHEMA"); v != "" {
		cfg.SchemaFile = v
		set("schema_file")
	}
	if v := os.Getenv("TASKMASTER_HISTORY"); v != "" {
		cfg.HistoryFile = v
		set("history_file")
	}
	if v := os.Getenv("TASKMASTER_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
		set("log_level")
	}
	if v := os.Getenv("TASKMASTER_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
		set("log_format")
	}
	if v := os.Getenv("TASKMASTER_LOG_TIMESTAMPS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.LogTimestamps = b
			set("log_timestamps")
		}
	}
	// NO_COLOR is the conventional switch; TASKMASTER_NO_COLOR also works.
	if os.Getenv("NO_COLOR") != "" {
		cfg.NoColor = true
		set("no_color")
	}
	if v := os.Getenv("TASKMASTER_NO_COLOR"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.NoColor = b
			set("no_color")
		}
	}
}
