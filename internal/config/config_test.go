// Package config tests configuration loading.
package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

// chdir switches to dir for the test, restoring the previous working
// directory on cleanup. Stand-in for testing.T.Chdir, which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(oldWD); err != nil {
			t.Fatal(err)
		}
	})
}

func TestDefaults(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)

	if cfg.TasksFile != DefaultTasksFile {
		t.Errorf("TasksFile: got %q, want %q", cfg.TasksFile, DefaultTasksFile)
	}
	if cfg.HistoryFile != DefaultHistoryFile {
		t.Errorf("HistoryFile: got %q, want %q", cfg.HistoryFile, DefaultHistoryFile)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel: got %q, want info", cfg.LogLevel)
	}
	if cfg.LogFormat != "text" {
		t.Errorf("LogFormat: got %q, want text", cfg.LogFormat)
	}
	if cfg.NoColor {
		t.Error("NoColor: got true, want false")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("TASKMASTER_FILE", "/tmp/tasks.json")
	t.Setenv("TASKMASTER_LOG_LEVEL", "debug")
	t.Setenv("TASKMASTER_LOG_TIMESTAMPS", "true")

	cfg := &Config{}
	setDefaults(cfg)
	sources := map[string]ConfigSource{}
	loadFromEnv(cfg, sources)

	if cfg.TasksFile != "/tmp/tasks.json" {
		t.Errorf("TasksFile: got %q", cfg.TasksFile)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel: got %q", cfg.LogLevel)
	}
	if !cfg.LogTimestamps {
		t.Error("LogTimestamps: got false, want true")
	}
	if sources["tasks_file"] != SourceEnv {
		t.Errorf("tasks_file source: got %q, want %q", sources["tasks_file"], SourceEnv)
	}
}

func TestProjectConfigFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	content := "tasks_file = \"project-tasks.json\"\nlog_level = \"warn\"\n"
	if err := os.WriteFile(filepath.Join(dir, "taskmaster.toml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	chdir(t, dir)

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	result, err := LoadWithSources(fs, nil)
	if err != nil {
		t.Fatalf("LoadWithSources: %v", err)
	}
	cfg := result.Config

	if cfg.TasksFile != "project-tasks.json" {
		t.Errorf("TasksFile: got %q", cfg.TasksFile)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel: got %q", cfg.LogLevel)
	}
	if result.Sources["tasks_file"] != SourceProjFile {
		t.Errorf("tasks_file source: got %q, want %q", result.Sources["tasks_file"], SourceProjFile)
	}
	// Fields the file does not set stay at their defaults.
	if result.Sources["log_format"] != SourceDefault {
		t.Errorf("log_format source: got %q, want %q", result.Sources["log_format"], SourceDefault)
	}
}

func TestFlagsOverrideEverything(t *testing.T) {
	dir := t.TempDir()
	content := "log_level = \"warn\"\n"
	if err := os.WriteFile(filepath.Join(dir, "taskmaster.toml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	chdir(t, dir)
	t.Setenv("TASKMASTER_LOG_LEVEL", "error")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	result, err := LoadWithSources(fs, []string{"-log-level", "debug"})
	if err != nil {
		t.Fatalf("LoadWithSources: %v", err)
	}

	if result.Config.LogLevel != "debug" {
		t.Errorf("LogLevel: got %q, want debug", result.Config.LogLevel)
	}
	if result.Sources["log_level"] != SourceFlag {
		t.Errorf("log_level source: got %q, want %q", result.Sources["log_level"], SourceFlag)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	t.Setenv("TASKMASTER_TEST_DIR", "/data")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain", "/tmp/tasks.json", "/tmp/tasks.json"},
		{"home only", "~", home},
		{"home prefix", "~/x.json", filepath.Join(home, "x.json")},
		{"env var", "$TASKMASTER_TEST_DIR/tasks.json", "/data/tasks.json"},
		{"no expansion mid-path", "/a/~/b", "/a/~/b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := expandPath(tt.in); got != tt.want {
				t.Errorf("expandPath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFinalizeExpandsPaths(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	cfg := &Config{}
	setDefaults(cfg)
	finalizeConfig(cfg)

	if cfg.TasksFile != filepath.Join(home, ".tasks.json") {
		t.Errorf("TasksFile: got %q", cfg.TasksFile)
	}
	if cfg.HistoryFile != filepath.Join(home, ".taskmaster_history") {
		t.Errorf("HistoryFile: got %q", cfg.HistoryFile)
	}
}
