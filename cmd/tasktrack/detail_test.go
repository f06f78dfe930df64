package main

import (
	"strings"
	"testing"
	"time"

	"github.com/amonks/tasktrack/task"
)

func TestOverdueMarker(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.Local)

	late := task.Task{Name: "Late", Priority: task.PriorityMedium, DueDate: "2026-01-01"}
	if got := overdueMarker(late, now); got != " (overdue)" {
		t.Errorf("overdueMarker(late) = %q, want %q", got, " (overdue)")
	}

	done := late
	done.Completed = true
	if got := overdueMarker(done, now); got != "" {
		t.Errorf("overdueMarker(completed) = %q, want empty", got)
	}

	future := task.Task{Name: "Future", Priority: task.PriorityMedium, DueDate: "2999-01-01"}
	if got := overdueMarker(future, now); got != "" {
		t.Errorf("overdueMarker(future) = %q, want empty", got)
	}

	broken := task.Task{Name: "Broken", Priority: task.PriorityMedium, DueDate: "soon"}
	if got := overdueMarker(broken, now); got != "" {
		t.Errorf("overdueMarker(unparseable) = %q, want empty", got)
	}
}

func TestFormatTaskNotes(t *testing.T) {
	out := formatTaskNotes("Remember the appendix.")
	if !strings.Contains(out, "Remember the appendix.") {
		t.Errorf("notes text lost in rendering: %q", out)
	}

	out = formatTaskNotes("- first\n- second")
	if !strings.Contains(out, "first") || !strings.Contains(out, "second") {
		t.Errorf("list items lost in rendering: %q", out)
	}
}
