package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/amonks/tasktrack/internal/ui"
	"github.com/amonks/tasktrack/task"
)

// printTaskTable prints tasks in a table format.
func printTaskTable(tasks []task.Task, now time.Time) {
	if len(tasks) == 0 {
		fmt.Println("No tasks found.")
		return
	}

	fmt.Print(formatTaskTable(tasks, ui.Emphasize, now))
}

func formatTaskTable(tasks []task.Task, emphasize func(string) string, now time.Time) string {
	builder := ui.NewTableBuilder([]string{"NAME", "PRI", "DUE", "DONE", "CATEGORY", "DEPS"}, len(tasks))

	for _, t := range tasks {
		name := ui.TruncateTableCell(t.Name)
		due := t.DueDate
		if late, err := task.IsOverdue(t, now); err == nil && late {
			due = emphasize(due)
		}
		done := "no"
		if t.Completed {
			done = "yes"
		}
		deps := "-"
		if len(t.Dependencies) > 0 {
			deps = ui.TruncateTableCell(strings.Join(t.Dependencies, ", "))
		}
		category := t.Category
		if category == "" {
			category = "-"
		}
		builder.AddRow([]string{
			name,
			string(t.Priority),
			due,
			done,
			category,
			deps,
		})
	}

	return builder.String()
}

// printOverdueSection prints the overdue subset of tasks, if any.
func printOverdueSection(tasks []task.Task, now time.Time) {
	var overdue []task.Task
	for _, t := range tasks {
		if late, err := task.IsOverdue(t, now); err == nil && late {
			overdue = append(overdue, t)
		}
	}
	if len(overdue) == 0 {
		return
	}

	fmt.Println("Overdue Tasks:")
	for _, t := range overdue {
		fmt.Printf("  %s\n", t)
	}
	fmt.Println()
}
