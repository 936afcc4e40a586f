// Package ui renders task lists and provides the interactive shell.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"taskmaster/internal/task"
	"taskmaster/internal/utils"
)

// Styles holds the lipgloss styles used for list and shell output.
type Styles struct {
	Header     lipgloss.Style
	ID         lipgloss.Style
	PrioLow    lipgloss.Style
	PrioMedium lipgloss.Style
	PrioHigh   lipgloss.Style
	StatusDone lipgloss.Style
	StatusOpen lipgloss.Style
	DoneDesc   lipgloss.Style
	Success    lipgloss.Style
	Error      lipgloss.Style
	Prompt     lipgloss.Style
	Help       lipgloss.Style
}

// DefaultStyles returns the colored style set.
func DefaultStyles() Styles {
	return Styles{
		Header:     lipgloss.NewStyle().Bold(true).Underline(true),
		ID:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
		PrioLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		PrioMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		PrioHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		StatusDone: lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		StatusOpen: lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
		DoneDesc:   lipgloss.NewStyle().Faint(true),
		Success:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		Prompt:     lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		Help:       lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
	}
}

// PlainStyles returns an unstyled set for no-color output.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Header:     plain,
		ID:         plain,
		PrioLow:    plain,
		PrioMedium: plain,
		PrioHigh:   plain,
		StatusDone: plain,
		StatusOpen: plain,
		DoneDesc:   plain,
		Success:    plain,
		Error:      plain,
		Prompt:     plain,
		Help:       plain,
	}
}

// StylesFor picks the style set based on the no-color setting.
func StylesFor(noColor bool) Styles {
	if noColor {
		return PlainStyles()
	}
	return DefaultStyles()
}

// priorityStyle returns the style for a priority glyph.
func (s Styles) priorityStyle(p task.Priority) lipgloss.Style {
	switch p {
	case task.PriorityLow:
		return s.PrioLow
	case task.PriorityHigh:
		return s.PrioHigh
	default:
		return s.PrioMedium
	}
}

// RenderList renders the full task list in store order, one line per task:
// right-aligned id, priority glyph, status marker, description. Completed
// tasks are dimmed. An empty store renders a friendly all-done line.
func RenderList(store *task.Store, styles Styles) string {
	tasks := store.Tasks()
	if len(tasks) == 0 {
		return styles.Success.Render("No tasks, all done!") + "\n"
	}

	var b strings.Builder
	b.WriteString(styles.Header.Render("Your tasks:"))
	b.WriteString("\n")

	width := utils.NumWidth(store.NextID()) + 1
	for _, t := range tasks {
		b.WriteString(renderTask(t, width, styles))
		b.WriteString("\n")
	}
	return b.String()
}

func renderTask(t task.Task, width int, styles Styles) string {
	id := styles.ID.Render(fmt.Sprintf("%*d", width, t.ID))
	prio := styles.priorityStyle(t.Priority).Render(t.Priority.Marker())

	status := t.StatusMarker()
	desc := t.Description
	if t.Completed {
		status = styles.StatusDone.Render(status)
		desc = styles.DoneDesc.Render(desc)
	} else {
		status = styles.StatusOpen.Render(status)
	}

	return fmt.Sprintf("%s: %s %s %s", id, prio, status, desc)
}
