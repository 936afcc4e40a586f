package config

import (
	"os"
	"path/filepath"
)

// ConfigSource represents where a configuration value came from.
type ConfigSource string

const (
	SourceDefault  ConfigSource = "default"
	SourceUserFile ConfigSource = "user file"
	SourceProjFile ConfigSource = "project file"
	SourceEnv      ConfigSource = "environment"
	SourceFlag     ConfigSource = "flag"
)

// Default values.
const (
	DefaultTasksFile   = "~/.tasks.json"
	DefaultSchemaFile  = "tasks.schema.json"
	DefaultHistoryFile = "~/.taskmaster_history"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
)

// Config holds the full configuration for taskmaster.
type Config struct {
	// Paths
	TasksFile   string `toml:"tasks_file"`
	SchemaFile  string `toml:"schema_file"`
	HistoryFile string `toml:"history_file"`

	// Logging configuration
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`

	// Output
	NoColor bool `toml:"no_color"`
}

// ConfigWithSources holds configuration along with source information for each field.
type ConfigWithSources struct {
	Config  *Config
	Sources map[string]ConfigSource
}

// configFields returns the list of configurable field names for source tracking.
func configFields() []string {
	return []string{
		"tasks_file",
		"schema_file",
		"history_file",
		"log_level",
		"log_format",
		"log_timestamps",
		"no_color",
	}
}

// setDefaults fills cfg with built-in defaults.
func setDefaults(cfg *Config) {
	cfg.TasksFile = DefaultTasksFile
	cfg.SchemaFile = DefaultSchemaFile
	cfg.HistoryFile = DefaultHistoryFile
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
	cfg.LogTimestamps = false
	cfg.NoColor = false
}

// findUserConfigFile locates the user-level config file, if any.
func findUserConfigFile() string {
	// First try ~/.taskmaster/taskmaster.toml
	home, err := os.UserHomeDir()
	if err == nil {
		userConfigPath := filepath.Join(home, ".taskmaster", "taskmaster.toml")
		if _, err := os.Stat(userConfigPath); err == nil {
			return userConfigPath
		}
	}

	// If ~/.taskmaster doesn't exist, try the OS-specific config directory
	if cfgDir, err := os.UserConfigDir(); err == nil && cfgDir != "" {
		userConfigPath := filepath.Join(cfgDir, "taskmaster", "taskmaster.toml")
		if _, err := os.Stat(userConfigPath); err == nil {
			return userConfigPath
		}
	}

	return ""
}

// findProjectConfigFile locates a config file in the current directory, if any.
func findProjectConfigFile() string {
	names := []string{"taskmaster.toml", ".taskmaster.toml"}
	for _, name := range names {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}
