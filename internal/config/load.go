package config

import (
	"flag"
	"fmt"

	"github.com/BurntSushi/toml"
)

// Load loads configuration from multiple sources in priority order:
// 1. Defaults
// 2. User config file (~/.taskmaster/taskmaster.toml or OS-specific config dir)
// 3. Project config file (taskmaster.toml or .taskmaster.toml in current directory)
// 4. Environment variables
// 5. CLI flags
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	result, err := load(fs, args, nil)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// LoadWithSources loads configuration and tracks the source of each value.
// Returns ConfigWithSources containing the config and a map of field names
// to their sources, used by the doctor command.
func LoadWithSources(fs *flag.FlagSet, args []string) (*ConfigWithSources, error) {
	sources := make(map[string]ConfigSource)
	for _, field := range configFields() {
		sources[field] = SourceDefault
	}

	cfg, err := load(fs, args, sources)
	if err != nil {
		return nil, err
	}
	return &ConfigWithSources{Config: cfg, Sources: sources}, nil
}

// load is the shared implementation. If sources is non-nil, it tracks the
// source of each value as later layers override earlier ones.
func load(fs *flag.FlagSet, args []string, sources map[string]ConfigSource) (*Config, error) {
	cfg := &Config{}

	// 1. Set defaults
	setDefaults(cfg)

	// 2. Try to load from user config file
	if userConfigFile := findUserConfigFile(); userConfigFile != "" {
		if err := loadConfigFile(cfg, userConfigFile, sources, SourceUserFile); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", userConfigFile, err)
		}
	}

	// 3. Try to load from project config file (overrides user config)
	if projectConfigFile := findProjectConfigFile(); projectConfigFile != "" {
		if err := loadConfigFile(cfg, projectConfigFile, sources, SourceProjFile); err != nil {
			return nil, fmt.Errorf("loading project config file %s: %w", projectConfigFile, err)
		}
	}

	// 4. Override from environment
	loadFromEnv(cfg, sources)

	// 5. Parse CLI flags (they override everything)
	if err := parseFlags(cfg, fs, args, sources); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	// 6. Compute derived values
	finalizeConfig(cfg)

	return cfg, nil
}

// loadConfigFile loads TOML config from the given file and updates source
// tracking for every value the file actually sets.
func loadConfigFile(cfg *Config, path string, sources map[string]ConfigSource, source ConfigSource) error {
	tempCfg := &Config{}
	meta, err := toml.DecodeFile(path, tempCfg)
	if err != nil {
		return err
	}

	for _, key := range meta.Keys() {
		name := key.String()
		switch name {
		case "tasks_file":
			cfg.TasksFile = tempCfg.TasksFile
		case "schema_file":
			cfg.SchemaFile = tempCfg.SchemaFile
		case "history_file":
			cfg.HistoryFile = tempCfg.HistoryFile
		case "log_level":
			cfg.LogLevel = tempCfg.LogLevel
		case "log_format":
			cfg.LogFormat = tempCfg.LogFormat
		case "log_timestamps":
			cfg.LogTimestamps = tempCfg.LogTimestamps
		case "no_color":
			cfg.NoColor = tempCfg.NoColor
		default:
			continue
		}
		if sources != nil {
			sources[name] = source
		}
	}
	return nil
}

// parseFlags binds config flags onto fs and parses args.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string, sources map[string]ConfigSource) error {
	if fs == nil {
		fs = flag.NewFlagSet("taskmaster", flag.ContinueOnError)
	}

	fs.StringVar(&cfg.TasksFile, "file", cfg.TasksFile, "Path to the tasks file")
	fs.StringVar(&cfg.SchemaFile, "schema", cfg.SchemaFile, "Path to the tasks JSON Schema")
	fs.StringVar(&cfg.HistoryFile, "history", cfg.HistoryFile, "Path to the interactive history file")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug|info|warn|error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text|json|logfmt)")
	fs.BoolVar(&cfg.LogTimestamps, "log-timestamps", cfg.LogTimestamps, "Include timestamps in log output")
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "Disable colored output")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if sources != nil {
		flagToField := map[string]string{
			"file":           "tasks_file",
			"schema":         "schema_file",
			"history":        "history_file",
			"log-level":      "log_level",
			"log-format":     "log_format",
			"log-timestamps": "log_timestamps",
			"no-color":       "no_color",
		}
		fs.Visit(func(f *flag.Flag) {
			if field, ok := flagToField[f.Name]; ok {
				sources[field] = SourceFlag
			}
		})
	}
	return nil
}

// finalizeConfig computes derived values.
func finalizeConfig(cfg *Config) {
	cfg.TasksFile = expandPath(cfg.TasksFile)
	cfg.SchemaFile = expandPath(cfg.SchemaFile)
	cfg.HistoryFile = expandPath(cfg.HistoryFile)
}
