package cmd

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"taskmaster/internal/config"
	"taskmaster/internal/export"
)

// exportCommand renders the task list to json, csv, or pdf.
func exportCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	fs := flag.NewFlagSet("taskmaster export", flag.ContinueOnError)
	format := fs.String("format", "json", fmt.Sprintf("Export format (%s)", strings.Join(export.Formats(), "|")))
	output := fs.String("o", "", "Output file (default stdout)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if remaining := fs.Args(); len(remaining) > 0 {
		return fmt.Errorf("unexpected arguments: %v", remaining)
	}

	store, err := openStore(cfg, logger)
	if err != nil {
		return err
	}

	data, err := export.NewExporter(store).Export(*format)
	if err != nil {
		return err
	}

	if *output == "" {
		if _, err := os.Stdout.Write(data); err != nil {
			return fmt.Errorf("write export: %w", err)
		}
		return nil
	}
	if err := os.WriteFile(*output, data, 0644); err != nil {
		return fmt.Errorf("write export file: %w", err)
	}
	logger.Info("exported tasks", "format", *format, "file", *output, "count", store.Len())
	return nil
}
