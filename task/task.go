package task

import (
	"fmt"
	"strings"
	"time"
)

// Task represents a single task.
type Task struct {
	// Name identifies the task. Lookups by name assume effective
	// uniqueness, though uniqueness is not enforced at construction.
	Name string `json:"name"`

	// Completed reports whether the task is done.
	Completed bool `json:"completed"`

	// Priority is the importance level (low, medium, high).
	Priority Priority `json:"priority"`

	// DueDate is the due date in YYYY-MM-DD form.
	DueDate string `json:"due_date"`

	// Category is an optional free-text label (empty when absent).
	Category string `json:"category,omitempty"`

	// Notes provides additional context about the task.
	Notes string `json:"notes,omitempty"`

	// Dependencies lists the names of tasks this task depends on.
	Dependencies []string `json:"dependencies"`
}

// TaskOptions configures a new task.
type TaskOptions struct {
	// Priority is the importance level. Defaults to PriorityMedium when empty.
	Priority Priority

	// DueDate is the due date in YYYY-MM-DD form. Defaults to today.
	DueDate string

	// Category is an optional free-text label.
	Category string

	// Notes provides additional context.
	Notes string

	// Dependencies is a list of dependency task names.
	Dependencies []string
}

// New creates a task with the given name, applying defaults for any unset
// option. The name must be non-empty and the priority must be one of the
// fixed levels. The due date is not parsed here; it is validated at the
// point it is first needed (the overdue check).
func New(name string, opts TaskOptions) (Task, error) {
	if err := ValidateName(name); err != nil {
		return Task{}, err
	}

	if opts.Priority == "" {
		opts.Priority = PriorityMedium
	}
	priority := normalizePriority(opts.Priority)
	if err := ValidatePriority(priority); err != nil {
		return Task{}, err
	}

	dueDate := opts.DueDate
	if dueDate == "" {
		dueDate = time.Now().Format(DueDateFormat)
	}

	dependencies := append([]string(nil), opts.Dependencies...)
	if dependencies == nil {
		dependencies = []string{}
	}

	return Task{
		Name:         name,
		Priority:     priority,
		DueDate:      dueDate,
		Category:     opts.Category,
		Notes:        opts.Notes,
		Dependencies: dependencies,
	}, nil
}

// IsOverdue reports whether the task's due date is strictly in the past
// and the task is not complete. The due date parses to midnight local
// time, so an incomplete task due today counts as overdue once the day
// has started.
func IsOverdue(t Task, now time.Time) (bool, error) {
	due, err := ParseDueDate(t.DueDate)
	if err != nil {
		return false, err
	}
	return due.Before(now) && !t.Completed, nil
}

// DisplayName returns the task's name.
func (t Task) DisplayName() string {
	return t.Name
}

// DependencyNames returns a snapshot of the task's dependency names.
// The returned slice is a copy: re-iterating it is always possible and
// later mutation of the task does not affect it.
func (t Task) DependencyNames() []string {
	return append([]string(nil), t.Dependencies...)
}

// String returns a user-facing one-line representation of the task.
func (t Task) String() string {
	completed := "No"
	if t.Completed {
		completed = "Yes"
	}
	category := t.Category
	if category == "" {
		category = "None"
	}
	dependencies := "None"
	if len(t.Dependencies) > 0 {
		dependencies = strings.Join(t.Dependencies, ", ")
	}
	return fmt.Sprintf("Task: %s | Completed: %s | Priority: %s | Due: %s | Category: %s | Dependencies: %s",
		t.Name, completed, t.Priority, t.DueDate, category, dependencies)
}

// GoString returns an unambiguous representation of the task for debug output.
func (t Task) GoString() string {
	return fmt.Sprintf("task.Task{Name: %q, Priority: %q, DueDate: %q, Completed: %t}",
		t.Name, t.Priority, t.DueDate, t.Completed)
}
