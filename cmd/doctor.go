package cmd

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"taskmaster/internal/config"
	"taskmaster/internal/task"
)

// doctorCommand checks config, tasks file validity, and history writability.
func doctorCommand(loaded *config.ConfigWithSources, args []string) error {
	fs := flag.NewFlagSet("taskmaster doctor", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if remaining := fs.Args(); len(remaining) > 0 {
		return fmt.Errorf("unexpected arguments: %v", remaining)
	}

	cfg := loaded.Config

	fmt.Println("Taskmaster Doctor")
	fmt.Println("=================")
	fmt.Println()

	allOK := true

	fmt.Println("Config:")
	fields := make([]string, 0, len(loaded.Sources))
	for field := range loaded.Sources {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		fmt.Printf("  %s: %s (from %s)\n", field, configValue(cfg, field), loaded.Sources[field])
	}
	fmt.Println()

	// Tasks file
	fmt.Printf("Tasks file: %s\n", cfg.TasksFile)
	store := task.NewStore(cfg.TasksFile)
	if _, err := os.Stat(cfg.TasksFile); os.IsNotExist(err) {
		fmt.Println("  ✅ Not created yet (will be created on first save)")
	} else if err := store.Load(); err != nil {
		var malformed *task.MalformedDataError
		if errors.As(err, &malformed) {
			fmt.Printf("  ❌ Malformed: %v\n", malformed.Err)
		} else {
			fmt.Printf("  ❌ Error: %v\n", err)
		}
		allOK = false
	} else {
		fmt.Printf("  ✅ Parsed OK (%d tasks, next id %d)\n", store.Len(), store.NextID())
		result := store.Validate(task.ValidationOptions{SchemaPath: cfg.SchemaFile})
		for _, warning := range result.Warnings {
			fmt.Printf("  ⚠️  %s\n", warning)
		}
		if result.Valid {
			if result.UsedSchema {
				fmt.Println("  ✅ Schema validation passed")
			} else {
				fmt.Println("  ✅ Minimal validation passed")
			}
		} else {
			for _, err := range result.Errors {
				fmt.Printf("  ❌ %v\n", err)
			}
			allOK = false
		}
	}
	fmt.Println()

	// History file
	fmt.Printf("History file: %s\n", cfg.HistoryFile)
	if dirWritable(filepath.Dir(cfg.HistoryFile)) {
		fmt.Println("  ✅ OK")
	} else {
		fmt.Println("  ❌ Directory not writable")
		allOK = false
	}
	fmt.Println()

	if !allOK {
		return fmt.Errorf("doctor found problems")
	}
	fmt.Println("All checks passed.")
	return nil
}

func configValue(cfg *config.Config, field string) string {
	switch field {
	case "tasks_file":
		return cfg.TasksFile
	case "schema_file":
		return cfg.SchemaFile
	case "history_file":
		return cfg.HistoryFile
	case "log_level":
		return cfg.LogLevel
	case "log_format":
		return cfg.LogFormat
	case "log_timestamps":
		return fmt.Sprintf("%t", cfg.LogTimestamps)
	case "no_color":
		return fmt.Sprintf("%t", cfg.NoColor)
	default:
		return "?"
	}
}

func dirWritable(dir string) bool {
	f, err := os.CreateTemp(dir, ".taskmaster-doctor-*")
	if err != nil {
		return false
	}
	name := f.Name()
	f.Close()
	os.Remove(name)
	return true
}
