package task

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a    Task
		b    Task
		want int
	}{
		{
			"higher priority orders first",
			Task{Priority: PriorityHigh, DueDate: "2026-12-31"},
			Task{Priority: PriorityLow, DueDate: "2026-01-01"},
			1,
		},
		{
			"lower rank orders before higher rank",
			Task{Priority: PriorityLow, DueDate: "2026-01-01"},
			Task{Priority: PriorityMedium, DueDate: "2026-01-01"},
			-1,
		},
		{
			"equal priority falls back to due date",
			Task{Priority: PriorityMedium, DueDate: "2026-01-01"},
			Task{Priority: PriorityMedium, DueDate: "2026-06-01"},
			-1,
		},
		{
			"equal priority and date",
			Task{Priority: PriorityHigh, DueDate: "2026-03-01"},
			Task{Priority: PriorityHigh, DueDate: "2026-03-01"},
			0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compare(tt.a, tt.b)
			if err != nil {
				t.Fatalf("Compare: %v", err)
			}
			if got != tt.want {
				t.Errorf("Compare(%#v, %#v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestCompareInvalidPriority(t *testing.T) {
	valid := Task{Priority: PriorityMedium, DueDate: "2026-01-01"}
	invalid := Task{Priority: "urgent", DueDate: "2026-01-01"}

	if _, err := Compare(invalid, valid); !errors.Is(err, ErrInvalidPriority) {
		t.Errorf("Compare(invalid, valid) error = %v, want %v", err, ErrInvalidPriority)
	}
	if _, err := Compare(valid, invalid); !errors.Is(err, ErrInvalidPriority) {
		t.Errorf("Compare(valid, invalid) error = %v, want %v", err, ErrInvalidPriority)
	}
}

func TestCompareAntisymmetry(t *testing.T) {
	tasks := []Task{
		{Priority: PriorityLow, DueDate: "2026-01-01"},
		{Priority: PriorityMedium, DueDate: "2026-01-01"},
		{Priority: PriorityMedium, DueDate: "2026-06-01"},
		{Priority: PriorityHigh, DueDate: "2025-12-31"},
	}

	for i, a := range tasks {
		for j, b := range tasks {
			forward, err := Compare(a, b)
			if err != nil {
				t.Fatalf("Compare: %v", err)
			}
			backward, err := Compare(b, a)
			if err != nil {
				t.Fatalf("Compare: %v", err)
			}
			if forward != -backward {
				t.Errorf("Compare(tasks[%d], tasks[%d]) = %d but reversed = %d", i, j, forward, backward)
			}
		}
	}
}

func TestLess(t *testing.T) {
	a := Task{Priority: PriorityHigh, DueDate: "2026-01-01"}
	b := Task{Priority: PriorityLow, DueDate: "2026-01-01"}

	got, err := Less(a, b)
	if err != nil {
		t.Fatalf("Less: %v", err)
	}
	if got {
		t.Error("high priority task should not order before low priority task")
	}

	got, err = Less(b, a)
	if err != nil {
		t.Fatalf("Less: %v", err)
	}
	if !got {
		t.Error("low priority task should order before high priority task")
	}
}

func TestMerge(t *testing.T) {
	a := Task{
		Name:         "Plan trip",
		Priority:     PriorityHigh,
		DueDate:      "2026-01-01",
		Dependencies: []string{"x", "y"},
	}
	b := Task{
		Name:         "Book hotel",
		Priority:     PriorityLow,
		DueDate:      "2026-02-01",
		Dependencies: []string{"y", "z"},
	}

	merged := Merge(a, b)

	if merged.Name != "Plan trip & Book hotel" {
		t.Errorf("merged Name = %q, want %q", merged.Name, "Plan trip & Book hotel")
	}
	if merged.Priority != PriorityMedium {
		t.Errorf("merged Priority = %q, want %q", merged.Priority, PriorityMedium)
	}
	if want := time.Now().Format(DueDateFormat); merged.DueDate != want {
		t.Errorf("merged DueDate = %q, want today (%q)", merged.DueDate, want)
	}
	if want := []string{"x", "y", "z"}; !reflect.DeepEqual(merged.Dependencies, want) {
		t.Errorf("merged Dependencies = %v, want %v", merged.Dependencies, want)
	}
	if merged.Completed {
		t.Error("merged task should not be completed")
	}

	// Neither operand is mutated.
	if !reflect.DeepEqual(a.Dependencies, []string{"x", "y"}) {
		t.Errorf("first operand mutated: %v", a.Dependencies)
	}
	if !reflect.DeepEqual(b.Dependencies, []string{"y", "z"}) {
		t.Errorf("second operand mutated: %v", b.Dependencies)
	}
}

func TestMergeAny(t *testing.T) {
	a := Task{Name: "A", Priority: PriorityMedium, DueDate: "2026-01-01"}
	b := Task{Name: "B", Priority: PriorityMedium, DueDate: "2026-01-01"}

	merged, err := MergeAny(a, b)
	if err != nil {
		t.Fatalf("MergeAny(Task): %v", err)
	}
	if merged.Name != "A & B" {
		t.Errorf("merged Name = %q, want %q", merged.Name, "A & B")
	}

	merged, err = MergeAny(a, &b)
	if err != nil {
		t.Fatalf("MergeAny(*Task): %v", err)
	}
	if merged.Name != "A & B" {
		t.Errorf("merged Name = %q, want %q", merged.Name, "A & B")
	}

	for _, operand := range []any{"not a task", 42, nil, (*Task)(nil)} {
		if _, err := MergeAny(a, operand); !errors.Is(err, ErrNotTask) {
			t.Errorf("MergeAny(%T) error = %v, want %v", operand, err, ErrNotTask)
		}
	}
}
