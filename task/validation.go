package task

import (
	"errors"
	"fmt"
	"strings"
	"time"

	internalstrings "github.com/amonks/tasktrack/internal/strings"
	"github.com/amonks/tasktrack/internal/validation"
)

var (
	// ErrEmptyName is returned when a task name is empty or whitespace-only.
	ErrEmptyName = errors.New("task name must be a non-empty string")

	// ErrInvalidPriority is returned when a priority is not one of the fixed levels.
	ErrInvalidPriority = errors.New("invalid priority")

	// ErrInvalidDate is returned when a due date does not parse as YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid due date format")

	// ErrNotTask is returned when a merge operand is not a task.
	ErrNotTask = errors.New("merge operand is not a task")
)

// ValidateName checks that a task name is non-empty after trimming whitespace.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	return nil
}

// ValidatePriority checks that the priority is one of the fixed levels.
func ValidatePriority(p Priority) error {
	if !p.IsValid() {
		return validation.FormatInvalidValueError(ErrInvalidPriority, p, ValidPriorities())
	}
	return nil
}

// ParseDueDate parses a due date in the fixed YYYY-MM-DD layout.
// The result is midnight local time on the due date.
func ParseDueDate(value string) (time.Time, error) {
	due, err := time.ParseInLocation(DueDateFormat, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	return due, nil
}

func normalizePriority(p Priority) Priority {
	return Priority(internalstrings.NormalizeLowerTrimSpace(string(p)))
}
