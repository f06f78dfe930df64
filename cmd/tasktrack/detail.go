package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/muesli/reflow/wordwrap"

	"github.com/amonks/tasktrack/internal/markdown"
	internalstrings "github.com/amonks/tasktrack/internal/strings"
	"github.com/amonks/tasktrack/task"
)

const taskDetailLineWidth = 80

// printTaskDetail prints detailed information about a task.
func printTaskDetail(t task.Task, now time.Time) {
	fmt.Printf("Name:      %s\n", t.Name)
	fmt.Printf("Priority:  %s\n", t.Priority)
	fmt.Printf("Due:       %s%s\n", t.DueDate, overdueMarker(t, now))
	fmt.Printf("Completed: %s\n", yesNo(t.Completed))

	if t.Category != "" {
		fmt.Printf("Category:  %s\n", t.Category)
	}

	if len(t.Dependencies) > 0 {
		fmt.Printf("Depends on: %s\n", strings.Join(t.DependencyNames(), ", "))
	}

	if t.Notes != "" {
		fmt.Printf("\nNotes:\n%s\n", formatTaskNotes(t.Notes))
	}
}

func overdueMarker(t task.Task, now time.Time) string {
	late, err := task.IsOverdue(t, now)
	if err != nil || !late {
		return ""
	}
	return " (overdue)"
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}

// formatTaskNotes renders notes as terminal markdown, falling back to
// wrapped plain text when rendering produces nothing.
func formatTaskNotes(value string) string {
	rendered := markdown.Render(taskDetailLineWidth, value)
	if rendered != "" {
		return rendered
	}
	normalized := internalstrings.NormalizeWhitespace(value)
	if normalized == "" {
		return "-"
	}
	return wordwrap.String(normalized, taskDetailLineWidth)
}
