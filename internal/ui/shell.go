package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"taskmaster/internal/task"
)

// scrollbackLimit caps the number of lines the shell keeps on screen.
const scrollbackLimit = 200

// ShellOptions configures the interactive shell.
type ShellOptions struct {
	Styles Styles
	// HistoryFile is the path commands are persisted to between sessions.
	// Empty disables history persistence.
	HistoryFile string
}

// RunShell starts the interactive shell over the given store. Mutations
// apply to the store in memory; the caller is responsible for saving once
// the shell exits.
func RunShell(ctx context.Context, store *task.Store, opts ShellOptions) error {
	model := newShellModel(store, opts)
	program := tea.NewProgram(model, tea.WithContext(ctx))
	finalModel, err := program.Run()
	if err != nil {
		return err
	}
	if m, ok := finalModel.(*shellModel); ok {
		if err := SaveHistory(opts.HistoryFile, m.history); err != nil {
			return fmt.Errorf("save history: %w", err)
		}
	}
	return nil
}

type shellModel struct {
	store  *task.Store
	styles Styles

	input   []rune
	history []string
	histPos int    // len(history) means the live input line
	draft   []rune // live input stashed while browsing history

	lines    []string
	quitting bool
}

func newShellModel(store *task.Store, opts ShellOptions) *shellModel {
	history := LoadHistory(opts.HistoryFile)
	m := &shellModel{
		store:   store,
		styles:  opts.Styles,
		history: history,
		histPos: len(history),
	}
	m.print("Starting interactive mode. Type 'h' or 'help' for commands.")
	m.print(m.helpText())
	return m
}

func (m *shellModel) Init() tea.Cmd {
	return nil
}

func (m *shellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.Type {
	case tea.KeyCtrlC, tea.KeyCtrlD:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyEnter:
		return m.execute(strings.TrimSpace(string(m.input)))
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	case tea.KeyCtrlU:
		m.input = nil
	case tea.KeyCtrlW:
		m.input = deleteLastWord(m.input)
	case tea.KeyUp:
		m.historyBack()
	case tea.KeyDown:
		m.historyForward()
	case tea.KeySpace:
		m.input = append(m.input, ' ')
	case tea.KeyRunes:
		m.input = append(m.input, keyMsg.Runes...)
	}
	return m, nil
}

func (m *shellModel) View() string {
	var b strings.Builder
	for _, line := range m.lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	if m.quitting {
		b.WriteString(m.styles.Success.Render("Exiting interactive mode."))
		b.WriteString("\n")
		return b.String()
	}
	b.WriteString(m.styles.Prompt.Render("»"))
	b.WriteString(" ")
	b.WriteString(string(m.input))
	return b.String()
}

// execute runs one command line and resets the input.
func (m *shellModel) execute(line string) (tea.Model, tea.Cmd) {
	m.print(m.styles.Prompt.Render("»") + " " + line)
	m.input = nil

	if line == "" {
		m.histPos = len(m.history)
		return m, nil
	}

	if len(m.history) == 0 || m.history[len(m.history)-1] != line {
		m.history = append(m.history, line)
	}
	m.histPos = len(m.history)
	m.draft = nil

	parts := strings.Fields(line)
	command := strings.ToLower(parts[0])
	args := parts[1:]

	switch command {
	case "l", "list":
		m.print(strings.TrimRight(RenderList(m.store, m.styles), "\n"))
	case "a", "add":
		m.handleAdd(args)
	case "c", "complete":
		m.withID(args, "complete <id>", func(id uint64) (string, error) {
			return m.store.Complete(id)
		})
	case "+", "up":
		m.withID(args, "up <id>", func(id uint64) (string, error) {
			return m.store.ChangePriority(id, true)
		})
	case "-", "down":
		m.withID(args, "down <id>", func(id uint64) (string, error) {
			return m.store.ChangePriority(id, false)
		})
	case "d", "delete":
		m.withID(args, "delete <id>", func(id uint64) (string, error) {
			return m.store.Delete(id)
		})
	case "ch", "change":
		m.handleChange(args)
	case "clr", "clear":
		count := m.store.ClearCompleted()
		m.success(fmt.Sprintf("Cleared %d completed tasks.", count))
	case "h", "help", "?":
		m.print(m.helpText())
	case "q", "quit", "x", "exit":
		m.quitting = true
		return m, tea.Quit
	default:
		m.fail(fmt.Sprintf("unknown command: %q. Type 'h' for help.", command))
	}
	return m, nil
}

func (m *shellModel) handleAdd(args []string) {
	if len(args) == 0 {
		m.fail("usage: add <description>")
		return
	}
	id, err := m.store.Add(strings.Join(args, " "))
	if err != nil {
		m.fail(err.Error())
		return
	}
	m.success(fmt.Sprintf("Added task with ID %d.", id))
}

func (m *shellModel) handleChange(args []string) {
	if len(args) < 2 {
		m.fail("usage: change <id> <new description>")
		return
	}
	id, err := parseID(args[0])
	if err != nil {
		m.fail(err.Error())
		return
	}
	msg, err := m.store.Rename(id, strings.Join(args[1:], " "))
	if err != nil {
		m.fail(err.Error())
		return
	}
	m.success(msg)
}

// withID runs an id-taking store operation, reporting usage and argument
// errors in place.
func (m *shellModel) withID(args []string, usage string, op func(uint64) (string, error)) {
	if len(args) != 1 {
		m.fail("usage: " + usage)
		return
	}
	id, err := parseID(args[0])
	if err != nil {
		m.fail(err.Error())
		return
	}
	msg, err := op(id)
	if err != nil {
		m.fail(err.Error())
		return
	}
	m.success(msg)
}

func (m *shellModel) historyBack() {
	if m.histPos == 0 {
		return
	}
	if m.histPos == len(m.history) {
		m.draft = m.input
	}
	m.histPos--
	m.input = []rune(m.history[m.histPos])
}

func (m *shellModel) historyForward() {
	if m.histPos >= len(m.history) {
		return
	}
	m.histPos++
	if m.histPos == len(m.history) {
		m.input = m.draft
		m.draft = nil
		return
	}
	m.input = []rune(m.history[m.histPos])
}

func (m *shellModel) print(line string) {
	m.lines = append(m.lines, strings.Split(line, "\n")...)
	if len(m.lines) > scrollbackLimit {
		m.lines = m.lines[len(m.lines)-scrollbackLimit:]
	}
}

func (m *shellModel) success(msg string) {
	m.print(m.styles.Success.Render(msg))
}

func (m *shellModel) fail(msg string) {
	m.print(m.styles.Error.Render(msg))
}

func (m *shellModel) helpText() string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render("Interactive Mode Commands:"))
	b.WriteString("\n")
	commands := []struct {
		cmd  string
		desc string
	}{
		{"l / list", "List all tasks"},
		{"a / add <desc>", "Add a new task"},
		{"c / complete <id>", "Mark a task as completed"},
		{"up / + <id>", "Increase a task's priority"},
		{"down / - <id>", "Decrease a task's priority"},
		{"d / delete <id>", "Delete a task"},
		{"ch / change <id> <desc>", "Change a task's description"},
		{"clr / clear", "Clear all completed tasks"},
		{"h / help / ?", "Show this help message"},
		{"q / quit / x / exit", "Exit interactive mode"},
	}
	for _, c := range commands {
		b.WriteString(fmt.Sprintf("  %s - %s\n", m.styles.Help.Render(fmt.Sprintf("%-25s", c.cmd)), c.desc))
	}
	return strings.TrimRight(b.String(), "\n")
}

// parseID parses a task id argument.
func parseID(s string) (uint64, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("'%s' is not a valid task id", s)
	}
	return id, nil
}

// deleteLastWord removes the trailing word and the whitespace before it.
func deleteLastWord(input []rune) []rune {
	i := len(input)
	for i > 0 && input[i-1] == ' ' {
		i--
	}
	for i > 0 && input[i-1] != ' ' {
		i--
	}
	return input[:i]
}
