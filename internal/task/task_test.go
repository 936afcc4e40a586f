package task

import "testing"

func TestPrioritizeSaturates(t *testing.T) {
	tk := NewTask(1, "test")
	if tk.Priority != PriorityMedium {
		t.Fatalf("new task priority: got %s, want %s", tk.Priority, PriorityMedium)
	}

	tk.Prioritize()
	if tk.Priority != PriorityHigh {
		t.Errorf("after one up: got %s, want %s", tk.Priority, PriorityHigh)
	}
	tk.Prioritize()
	if tk.Priority != PriorityHigh {
		t.Errorf("up saturation: got %s, want %s", tk.Priority, PriorityHigh)
	}
}

func TestDeprioritizeSaturates(t *testing.T) {
	tk := NewTask(1, "test")

	tk.Deprioritize()
	if tk.Priority != PriorityLow {
		t.Errorf("after one down: got %s, want %s", tk.Priority, PriorityLow)
	}
	tk.Deprioritize()
	if tk.Priority != PriorityLow {
		t.Errorf("down saturation: got %s, want %s", tk.Priority, PriorityLow)
	}
}

func TestPriorityLadder(t *testing.T) {
	tests := []struct {
		name  string
		start Priority
		up    bool
		want  Priority
	}{
		{"low up", PriorityLow, true, PriorityMedium},
		{"medium up", PriorityMedium, true, PriorityHigh},
		{"high up", PriorityHigh, true, PriorityHigh},
		{"low down", PriorityLow, false, PriorityLow},
		{"medium down", PriorityMedium, false, PriorityLow},
		{"high down", PriorityHigh, false, PriorityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk := Task{ID: 1, Description: "x", Priority: tt.start}
			if tt.up {
				tk.Prioritize()
			} else {
				tk.Deprioritize()
			}
			if tk.Priority != tt.want {
				t.Errorf("got %s, want %s", tk.Priority, tt.want)
			}
		})
	}
}

func TestMarkCompletedIdempotent(t *testing.T) {
	tk := NewTask(1, "test")
	if tk.Completed {
		t.Fatal("new task should not be completed")
	}
	tk.MarkCompleted()
	if !tk.Completed {
		t.Fatal("task should be completed")
	}
	tk.MarkCompleted()
	if !tk.Completed {
		t.Fatal("repeated completion must stay completed")
	}
}

func TestMarkers(t *testing.T) {
	tk := NewTask(1, "test")
	if got := tk.StatusMarker(); got != "[·]" {
		t.Errorf("open marker: got %q", got)
	}
	tk.MarkCompleted()
	if got := tk.StatusMarker(); got != "[✓]" {
		t.Errorf("done marker: got %q", got)
	}

	markers := map[Priority]string{
		PriorityLow:    "▼",
		PriorityMedium: "◆",
		PriorityHigh:   "▲",
	}
	for p, want := range markers {
		if got := p.Marker(); got != want {
			t.Errorf("%s marker: got %q, want %q", p, got, want)
		}
	}
}
