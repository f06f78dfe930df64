package task

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Collection owns an ordered list of tasks. The list stays sorted by the
// Compare relation after every Add; removal and completion-marking keep
// the relative order of the remaining tasks.
type Collection struct {
	tasks    []Task
	recorder Recorder
}

// CollectionOptions configures a new collection.
type CollectionOptions struct {
	// Recorder observes operation outcomes. If nil, records are discarded.
	Recorder Recorder
}

// NewCollection returns an empty collection.
func NewCollection(opts CollectionOptions) *Collection {
	recorder := opts.Recorder
	if recorder == nil {
		recorder = noopRecorder{}
	}
	return &Collection{recorder: recorder}
}

// Add constructs a task from name and opts, inserts it, and re-sorts the
// whole collection. It returns a human-readable confirmation message.
func (c *Collection) Add(name string, opts TaskOptions) (string, error) {
	created, err := New(name, opts)
	if err != nil {
		return "", err
	}

	c.tasks = append(c.tasks, created)
	sortTasks(c.tasks)

	result := fmt.Sprintf("Task '%s' added.", name)
	c.recorder.Record("add_task", result)
	return result, nil
}

// Remove deletes the first task whose name matches exactly. A missing
// name is a normal outcome reported in the returned message, never an
// error.
func (c *Collection) Remove(name string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}

	for i := range c.tasks {
		if c.tasks[i].Name != name {
			continue
		}
		c.tasks = append(c.tasks[:i], c.tasks[i+1:]...)
		result := fmt.Sprintf("Task '%s' removed.", name)
		c.recorder.Record("remove_task", result)
		return result, nil
	}

	result := fmt.Sprintf("Task '%s' not found.", name)
	c.recorder.Record("remove_task", result)
	return result, nil
}

// MarkComplete marks the first task whose name matches exactly as
// completed, in place. A missing name is a normal outcome reported in the
// returned message.
func (c *Collection) MarkComplete(name string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}

	for i := range c.tasks {
		if c.tasks[i].Name != name {
			continue
		}
		c.tasks[i].Completed = true
		result := fmt.Sprintf("Task '%s' marked complete.", name)
		c.recorder.Record("mark_task_complete", result)
		return result, nil
	}

	result := fmt.Sprintf("Task '%s' not found.", name)
	c.recorder.Record("mark_task_complete", result)
	return result, nil
}

// List returns the tasks freshly sorted by the Compare relation,
// optionally restricted to an exact category match. Tasks in the
// selection that are currently overdue are surfaced through the recorder
// as a side effect; they are not marked in the returned slice.
func (c *Collection) List(filterCategory string) ([]Task, error) {
	selected := make([]Task, 0, len(c.tasks))
	for _, t := range c.tasks {
		if filterCategory != "" && t.Category != filterCategory {
			continue
		}
		selected = append(selected, t)
	}

	now := time.Now()
	var overdue []string
	for _, t := range selected {
		late, err := IsOverdue(t, now)
		if err != nil {
			return nil, err
		}
		if late {
			overdue = append(overdue, t.Name)
		}
	}
	if len(overdue) > 0 {
		c.recorder.Record("overdue_tasks", strings.Join(overdue, ", "))
	}

	sortTasks(selected)
	c.recorder.Record("list_tasks", fmt.Sprintf("%d task(s)", len(selected)))
	return selected, nil
}

// Search returns tasks whose name contains keyword, compared
// case-insensitively, in the collection's stored order.
func (c *Collection) Search(keyword string) []Task {
	query := strings.ToLower(keyword)
	var matches []Task
	for _, t := range c.tasks {
		if strings.Contains(strings.ToLower(t.Name), query) {
			matches = append(matches, t)
		}
	}
	c.recorder.Record("search_tasks", fmt.Sprintf("%d match(es) for '%s'", len(matches), keyword))
	return matches
}

// SortKey extracts the string sort key for a task.
type SortKey func(Task) string

// SortByPriorityName is the default sort key: the priority name alone.
// It orders priority names lexicographically, which is deliberately
// coarser than the Compare relation; tasks with equal keys keep their
// stored relative order.
var SortByPriorityName SortKey = func(t Task) string {
	return string(t.Priority)
}

// SortBy re-sorts the stored tasks in place by the given key. A nil key
// sorts by SortByPriorityName. The sort is stable.
func (c *Collection) SortBy(key SortKey) {
	if key == nil {
		key = SortByPriorityName
	}
	sort.SliceStable(c.tasks, func(i, j int) bool {
		return key(c.tasks[i]) < key(c.tasks[j])
	})
	c.recorder.Record("sort_tasks", fmt.Sprintf("%d task(s) sorted", len(c.tasks)))
}

// FilterFunc reports whether a task should be included in a filter result.
type FilterFunc func(Task) bool

// FilterIncomplete is the default filter: tasks not yet completed.
var FilterIncomplete FilterFunc = func(t Task) bool {
	return !t.Completed
}

// Filter returns tasks satisfying pred, preserving stored order. A nil
// pred uses FilterIncomplete.
func (c *Collection) Filter(pred FilterFunc) []Task {
	if pred == nil {
		pred = FilterIncomplete
	}
	var matches []Task
	for _, t := range c.tasks {
		if pred(t) {
			matches = append(matches, t)
		}
	}
	c.recorder.Record("filter_tasks", fmt.Sprintf("%d match(es)", len(matches)))
	return matches
}

// All returns a snapshot of the collection's current stored sequence.
func (c *Collection) All() []Task {
	return append([]Task(nil), c.tasks...)
}

// Len returns the number of stored tasks.
func (c *Collection) Len() int {
	return len(c.tasks)
}

// sortTasks sorts by the Compare relation. Collection tasks always carry
// validated priorities, so Compare cannot fail here.
func sortTasks(tasks []Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		ordering, err := Compare(tasks[i], tasks[j])
		if err != nil {
			return false
		}
		return ordering < 0
	})
}
