package task

// Priority is a task's three-level priority.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Known reports whether p is one of the three priority tags.
func (p Priority) Known() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Marker returns the display glyph for the priority.
func (p Priority) Marker() string {
	switch p {
	case PriorityLow:
		return "▼"
	case PriorityHigh:
		return "▲"
	default:
		return "◆"
	}
}

// Task represents a single task in the list.
type Task struct {
	// ID is assigned by the store. Zero means "not yet assigned" and only
	// occurs transiently while migrating legacy files.
	ID          uint64   `json:"id"`
	Description string   `json:"description"`
	Completed   bool     `json:"completed"`
	Priority    Priority `json:"priority"`
}

// NewTask returns a task with the given id and description, not completed,
// at medium priority.
func NewTask(id uint64, description string) Task {
	return Task{
		ID:          id,
		Description: description,
		Priority:    PriorityMedium,
	}
}

// Prioritize raises the priority one level, saturating at High.
func (t *Task) Prioritize() {
	switch t.Priority {
	case PriorityLow:
		t.Priority = PriorityMedium
	default:
		t.Priority = PriorityHigh
	}
}

// Deprioritize lowers the priority one level, saturating at Low.
func (t *Task) Deprioritize() {
	switch t.Priority {
	case PriorityHigh:
		t.Priority = PriorityMedium
	default:
		t.Priority = PriorityLow
	}
}

// MarkCompleted marks the task as done. Completion is one-way; calling it
// on a completed task is a no-op.
func (t *Task) MarkCompleted() {
	t.Completed = true
}

// Rename replaces the description. Empty-description validation is the
// store's job, not the record's.
func (t *Task) Rename(description string) {
	t.Description = description
}

// StatusMarker returns the display marker for the completion state.
func (t *Task) StatusMarker() string {
	if t.Completed {
		return "[✓]"
	}
	return "[·]"
}

// normalize fills in defaults for fields older files may not carry.
func (t *Task) normalize() {
	if t.Priority == "" {
		t.Priority = PriorityMedium
	}
}
