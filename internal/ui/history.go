package ui

import (
	"os"
	"strings"

	"taskmaster/internal/utils"
)

// historyLimit caps the number of saved shell history entries.
const historyLimit = 500

// LoadHistory reads shell history from path, one entry per line. A missing
// or unreadable file yields no history; the shell works without one.
func LoadHistory(path string) []string {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	entries := utils.SplitAndTrim(string(data), "\n")
	if len(entries) == 0 {
		return nil
	}
	return entries
}

// SaveHistory writes shell history to path, keeping at most historyLimit
// of the newest entries.
func SaveHistory(path string, entries []string) error {
	if path == "" {
		return nil
	}
	if len(entries) > historyLimit {
		entries = entries[len(entries)-historyLimit:]
	}
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(e)
		b.WriteString("\n")
	}
	return os.WriteFile(path, []byte(b.String()), 0644)
}
