// Package cmd implements the CLI command structure for taskmaster.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"taskmaster/internal/config"
	"taskmaster/internal/logging"
	"taskmaster/internal/task"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Run executes the taskmaster CLI.
func Run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("taskmaster", flag.ContinueOnError)
	fs.Usage = func() {
		printUsage(fs, os.Stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	// Global flags are bound by the config loader.
	loaded, err := config.LoadWithSources(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg := loaded.Config
	logger := logging.New(os.Stderr, logging.FromConfig(cfg))

	if *help {
		printUsage(fs, os.Stdout)
		return nil
	}
	if *showVersion {
		return versionCommand()
	}

	// Determine the subcommand; a bare invocation lists tasks.
	subcommand := "list"
	remainingArgs := fs.Args()
	if len(remainingArgs) > 0 && !strings.HasPrefix(remainingArgs[0], "-") {
		subcommand = remainingArgs[0]
		remainingArgs = remainingArgs[1:]
	}

	switch subcommand {
	case "add", "a":
		return addCommand(cfg, logger, remainingArgs)
	case "change", "ch":
		return changeCommand(cfg, logger, remainingArgs)
	case "list", "l":
		return listCommand(cfg, logger, remainingArgs)
	case "complete", "c":
		return completeCommand(cfg, logger, remainingArgs)
	case "up":
		return priorityCommand(cfg, logger, remainingArgs, true)
	case "down":
		return priorityCommand(cfg, logger, remainingArgs, false)
	case "delete", "d":
		return deleteCommand(cfg, logger, remainingArgs)
	case "clear", "clr":
		return clearCommand(cfg, logger, remainingArgs)
	case "interactive", "i":
		return interactiveCommand(ctx, cfg, logger, remainingArgs)
	case "export":
		return exportCommand(cfg, logger, remainingArgs)
	case "doctor":
		return doctorCommand(loaded, remainingArgs)
	case "version":
		return versionCommand()
	case "help":
		printUsage(fs, os.Stdout)
		return nil
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", subcommand)
		printUsage(fs, os.Stderr)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// openStore loads the tasks file into a fresh store.
func openStore(cfg *config.Config, logger *log.Logger) (*task.Store, error) {
	store := task.NewStore(cfg.TasksFile)
	if err := store.Load(); err != nil {
		return nil, err
	}
	logger.Debug("loaded tasks", "path", cfg.TasksFile, "count", store.Len())
	return store, nil
}

// mutateStore runs fn against a loaded store and saves the result.
func mutateStore(cfg *config.Config, logger *log.Logger, fn func(*task.Store) error) error {
	store, err := openStore(cfg, logger)
	if err != nil {
		return err
	}
	if err := fn(store); err != nil {
		return err
	}
	if err := store.Save(); err != nil {
		return err
	}
	logger.Debug("saved tasks", "path", cfg.TasksFile, "count", store.Len())
	return nil
}

// parseID parses a task id argument.
func parseID(arg string) (uint64, error) {
	id, err := strconv.ParseUint(arg, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("'%s' is not a valid task id", arg)
	}
	return id, nil
}

func versionCommand() error {
	fmt.Printf("taskmaster %s\n", Version)
	return nil
}

func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "taskmaster - a simple command line task manager")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  taskmaster [flags] <command> [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  add, a <description>         Add a new task")
	fmt.Fprintln(w, "  change, ch <id> <desc>       Change a task's description")
	fmt.Fprintln(w, "  list, l                      List all tasks (default)")
	fmt.Fprintln(w, "  complete, c <id>             Mark a task as completed")
	fmt.Fprintln(w, "  up <id>                      Increase a task's priority")
	fmt.Fprintln(w, "  down <id>                    Decrease a task's priority")
	fmt.Fprintln(w, "  delete, d <id>               Delete a task")
	fmt.Fprintln(w, "  clear, clr                   Clear all completed tasks")
	fmt.Fprintln(w, "  interactive, i               Start the interactive shell")
	fmt.Fprintln(w, "  export [-format f] [-o file] Export tasks (json|csv|pdf)")
	fmt.Fprintln(w, "  doctor                       Check config and tasks file health")
	fmt.Fprintln(w, "  version                      Show version")
	fmt.Fprintln(w, "  help                         Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fs.SetOutput(w)
	fs.PrintDefaults()
}
