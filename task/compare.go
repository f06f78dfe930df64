package task

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Compare orders two tasks: first by priority rank, then by due date.
// Due dates compare lexicographically, which matches chronological order
// for the fixed zero-padded layout. Comparing a task whose priority is
// outside the fixed enumeration fails with ErrInvalidPriority.
func Compare(a, b Task) (int, error) {
	rankA, ok := priorityRank(a.Priority)
	if !ok {
		return 0, ValidatePriority(a.Priority)
	}
	rankB, ok := priorityRank(b.Priority)
	if !ok {
		return 0, ValidatePriority(b.Priority)
	}

	if rankA != rankB {
		if rankA < rankB {
			return -1, nil
		}
		return 1, nil
	}
	return strings.Compare(a.DueDate, b.DueDate), nil
}

// Less reports whether a orders strictly before b under Compare.
func Less(a, b Task) (bool, error) {
	ordering, err := Compare(a, b)
	if err != nil {
		return false, err
	}
	return ordering < 0, nil
}

// Merge combines two tasks into a new task named "A & B" whose dependency
// set is the union of both operands' dependencies, deduplicated and sorted.
// Every other field takes a construction default; neither operand is
// mutated.
func Merge(a, b Task) Task {
	seen := make(map[string]struct{}, len(a.Dependencies)+len(b.Dependencies))
	union := make([]string, 0, len(a.Dependencies)+len(b.Dependencies))
	for _, name := range a.Dependencies {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		union = append(union, name)
	}
	for _, name := range b.Dependencies {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		union = append(union, name)
	}
	sort.Strings(union)

	return Task{
		Name:         a.Name + " & " + b.Name,
		Priority:     PriorityMedium,
		DueDate:      time.Now().Format(DueDateFormat),
		Dependencies: union,
	}
}

// MergeAny merges a with an arbitrary operand. It returns ErrNotTask when
// the operand is not a Task, letting callers detect incompatible values
// and fall back instead of failing later.
func MergeAny(a Task, operand any) (Task, error) {
	switch other := operand.(type) {
	case Task:
		return Merge(a, other), nil
	case *Task:
		if other != nil {
			return Merge(a, *other), nil
		}
	}
	return Task{}, fmt.Errorf("%w: %T", ErrNotTask, operand)
}
