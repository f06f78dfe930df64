// Package task implements a personal task tracker.
//
// A Task is a single trackable unit of work with a priority, a due date,
// an optional category, and a list of dependency names. A Collection owns
// an ordered list of tasks and keeps them sorted by the Compare relation
// after every add. The whole collection persists as one JSON file.
//
// The public API mirrors the CLI commands:
//   - Add, Remove, MarkComplete for task lifecycle
//   - List, Search, Filter for querying
//   - Save, Load for persistence
package task

// Priority represents the importance level of a task.
type Priority string

const (
	// PriorityLow is the lowest importance level.
	PriorityLow Priority = "low"

	// PriorityMedium is the default importance level.
	PriorityMedium Priority = "medium"

	// PriorityHigh is the highest importance level.
	PriorityHigh Priority = "high"
)

// ValidPriorities returns all valid priority values in ascending rank order.
func ValidPriorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// IsValid returns true if the priority is a known valid value.
func (p Priority) IsValid() bool {
	_, ok := priorityRank(p)
	return ok
}

// Levels returns a copy of the fixed priority-name-to-rank mapping.
// Callers may use it to build validation or UI without being able to
// mutate the mapping itself.
func Levels() map[Priority]int {
	return map[Priority]int{
		PriorityLow:    1,
		PriorityMedium: 2,
		PriorityHigh:   3,
	}
}

func priorityRank(p Priority) (int, bool) {
	switch p {
	case PriorityLow:
		return 1, true
	case PriorityMedium:
		return 2, true
	case PriorityHigh:
		return 3, true
	default:
		return 0, false
	}
}

// DueDateFormat is the calendar date layout used by task due dates.
// The layout is fixed-width and zero-padded, so lexicographic order over
// formatted dates matches chronological order.
const DueDateFormat = "2006-01-02"
