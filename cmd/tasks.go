package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"taskmaster/internal/config"
	"taskmaster/internal/task"
	"taskmaster/internal/ui"
)

// addCommand adds a task described by the remaining arguments joined with
// spaces, so multi-word descriptions need no quoting.
func addCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	description := strings.TrimSpace(strings.Join(args, " "))
	return mutateStore(cfg, logger, func(store *task.Store) error {
		id, err := store.Add(description)
		if err != nil {
			return err
		}
		fmt.Printf("Added task #%d: %s\n", id, description)
		return nil
	})
}

func changeCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: taskmaster change <id> <new description>")
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	description := strings.TrimSpace(strings.Join(args[1:], " "))
	return mutateStore(cfg, logger, func(store *task.Store) error {
		msg, err := store.Rename(id, description)
		if err != nil {
			return err
		}
		fmt.Println(msg)
		return nil
	})
}

func listCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected arguments: %v", args)
	}
	store, err := openStore(cfg, logger)
	if err != nil {
		return err
	}
	fmt.Print(ui.RenderList(store, ui.StylesFor(cfg.NoColor)))
	return nil
}

func completeCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	return idCommand(cfg, logger, args, "complete", func(store *task.Store, id uint64) (string, error) {
		return store.Complete(id)
	})
}

func priorityCommand(cfg *config.Config, logger *log.Logger, args []string, up bool) error {
	name := "up"
	if !up {
		name = "down"
	}
	return idCommand(cfg, logger, args, name, func(store *task.Store, id uint64) (string, error) {
		return store.ChangePriority(id, up)
	})
}

func deleteCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	return idCommand(cfg, logger, args, "delete", func(store *task.Store, id uint64) (string, error) {
		return store.Delete(id)
	})
}

// idCommand is the shared shape of commands taking exactly one task id.
func idCommand(cfg *config.Config, logger *log.Logger, args []string, name string, op func(*task.Store, uint64) (string, error)) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: taskmaster %s <id>", name)
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	return mutateStore(cfg, logger, func(store *task.Store) error {
		msg, err := op(store, id)
		if err != nil {
			return err
		}
		fmt.Println(msg)
		return nil
	})
}

func clearCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected arguments: %v", args)
	}
	return mutateStore(cfg, logger, func(store *task.Store) error {
		count := store.ClearCompleted()
		fmt.Printf("Cleared %d completed tasks\n", count)
		return nil
	})
}

func interactiveCommand(ctx context.Context, cfg *config.Config, logger *log.Logger, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected arguments: %v", args)
	}
	return mutateStore(cfg, logger, func(store *task.Store) error {
		return ui.RunShell(ctx, store, ui.ShellOptions{
			Styles:      ui.StylesFor(cfg.NoColor),
			HistoryFile: cfg.HistoryFile,
		})
	})
}
