package ui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"taskmaster/internal/task"
)

func newTestShell(t *testing.T) (*shellModel, *task.Store) {
	t.Helper()
	store := task.NewStore(filepath.Join(t.TempDir(), "tasks.json"))
	return newShellModel(store, ShellOptions{Styles: PlainStyles()}), store
}

// runCommand executes one shell line and returns everything it printed,
// joined back together. Store messages can span several lines.
func runCommand(m *shellModel, line string) string {
	before := len(m.lines)
	m.execute(line)
	return strings.Join(m.lines[before:], "\n")
}

func TestShellAddAndList(t *testing.T) {
	m, store := newTestShell(t)

	if got := runCommand(m, "add buy milk"); !strings.Contains(got, "Added task with ID 1.") {
		t.Errorf("add output: got %q", got)
	}
	if store.Len() != 1 {
		t.Fatalf("store length: got %d", store.Len())
	}

	m.execute("list")
	found := false
	for _, line := range m.lines {
		if strings.Contains(line, "buy milk") {
			found = true
		}
	}
	if !found {
		t.Error("list output missing the added task")
	}
}

func TestShellCommandTable(t *testing.T) {
	tests := []struct {
		name  string
		setup []string
		cmd   string
		want  string
	}{
		{"complete", []string{"add x"}, "c 1", "Completed task: x"},
		{"up", []string{"add x"}, "+ 1", "Prioritized task: x"},
		{"down", []string{"add x"}, "- 1", "Deprioritized task: x"},
		{"delete alias", []string{"add x"}, "d 1", "Deleted task 1"},
		{"clear", []string{"add x", "c 1"}, "clr", "Cleared 1 completed tasks."},
		{"change", []string{"add old"}, "ch 1 new words", "Description of task 1 changed."},
		{"unknown", nil, "frobnicate", `unknown command: "frobnicate". Type 'h' for help.`},
		{"bad id", []string{"add x"}, "c abc", "'abc' is not a valid task id"},
		{"missing id usage", []string{"add x"}, "complete", "usage: complete <id>"},
		{"not found", []string{"add x"}, "c 9", "task with id 9 not found"},
		{"add usage", nil, "add", "usage: add <description>"},
		{"change usage", nil, "ch 1", "usage: change <id> <new description>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestShell(t)
			for _, cmd := range tt.setup {
				m.execute(cmd)
			}
			if got := runCommand(m, tt.cmd); !strings.Contains(got, tt.want) {
				t.Errorf("output: got %q, want it to contain %q", got, tt.want)
			}
		})
	}
}

func TestShellQuitCommands(t *testing.T) {
	for _, cmd := range []string{"q", "quit", "x", "exit"} {
		t.Run(cmd, func(t *testing.T) {
			m, _ := newTestShell(t)
			_, teaCmd := m.execute(cmd)
			if !m.quitting {
				t.Error("model should be quitting")
			}
			if teaCmd == nil {
				t.Error("quit should produce a tea.Quit command")
			}
		})
	}
}

func TestShellKeyEditing(t *testing.T) {
	m, _ := newTestShell(t)

	typeString(m, "add  milk")
	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if got := string(m.input); got != "add  mil" {
		t.Errorf("after backspace: got %q", got)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlW})
	if got := string(m.input); got != "add  " {
		t.Errorf("after ctrl+w: got %q", got)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlU})
	if len(m.input) != 0 {
		t.Errorf("after ctrl+u: got %q", string(m.input))
	}
}

func TestShellHistoryNavigation(t *testing.T) {
	m, _ := newTestShell(t)
	m.execute("add one")
	m.execute("add two")

	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if got := string(m.input); got != "add two" {
		t.Errorf("first up: got %q", got)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if got := string(m.input); got != "add one" {
		t.Errorf("second up: got %q", got)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if got := string(m.input); got != "add two" {
		t.Errorf("down: got %q", got)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if got := string(m.input); got != "" {
		t.Errorf("back to live input: got %q", got)
	}
}

func TestShellHistorySkipsDuplicates(t *testing.T) {
	m, _ := newTestShell(t)
	m.execute("list")
	m.execute("list")
	if len(m.history) != 1 {
		t.Errorf("history length: got %d, want 1", len(m.history))
	}
}

func typeString(m *shellModel, s string) {
	for _, r := range s {
		if r == ' ' {
			m.Update(tea.KeyMsg{Type: tea.KeySpace})
			continue
		}
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}
