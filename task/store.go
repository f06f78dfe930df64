package task

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultStoreFile is the filename used for the task store when no
// explicit path is given.
const DefaultStoreFile = "tasks.json"

// Save serializes every task to a JSON file at path, replacing any
// existing content. The write goes through a temp file and rename so the
// destination is never left half-written.
func (c *Collection) Save(path string) error {
	if err := writeTaskFile(path, c.tasks); err != nil {
		return err
	}
	c.recorder.Record("save_tasks", fmt.Sprintf("%d task(s) saved to %s", len(c.tasks), path))
	return nil
}

// Load replaces the collection with the tasks stored at path. Each record
// is reconstructed with the same field semantics as construction, so
// missing optional fields get construction defaults. A missing file is
// not an error: the collection is left empty and a diagnostic is
// recorded. Any other read or parse failure propagates.
func (c *Collection) Load(path string) error {
	records, err := readTaskFile(path)
	if errors.Is(err, os.ErrNotExist) {
		c.tasks = nil
		c.recorder.Record("load_tasks", "no saved tasks found")
		return nil
	}
	if err != nil {
		return err
	}

	tasks := make([]Task, 0, len(records))
	for i, record := range records {
		restored, err := restoreTask(record)
		if err != nil {
			return fmt.Errorf("task %d: %w", i+1, err)
		}
		tasks = append(tasks, restored)
	}

	// Stored order is preserved; Load does not re-sort.
	c.tasks = tasks
	c.recorder.Record("load_tasks", fmt.Sprintf("%d task(s) loaded from %s", len(tasks), path))
	return nil
}

// restoreTask rebuilds a task from a stored record via the construction
// path, then restores the completion flag, which construction always
// leaves false.
func restoreTask(record Task) (Task, error) {
	restored, err := New(record.Name, TaskOptions{
		Priority:     record.Priority,
		DueDate:      record.DueDate,
		Category:     record.Category,
		Notes:        record.Notes,
		Dependencies: record.Dependencies,
	})
	if err != nil {
		return Task{}, err
	}
	restored.Completed = record.Completed
	return restored, nil
}

func readTaskFile(path string) ([]Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read task file: %w", err)
	}

	var records []Task
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse task file %s: %w", path, err)
	}
	return records, nil
}

func writeTaskFile(path string, tasks []Task) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create parent dir: %w", err)
	}

	records := tasks
	if records == nil {
		records = []Task{}
	}

	tmpPath := path + ".tmp"
	f, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	encoder := json.NewEncoder(f)
	if err := encoder.Encode(records); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("encode tasks: %w", err)
	}

	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}
