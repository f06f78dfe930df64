package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/amonks/tasktrack/task"
)

func runAdd(cmd *cobra.Command, args []string) error {
	collection, path, cfg, err := openCollection()
	if err != nil {
		return err
	}

	if addDue != "" {
		if _, err := task.ParseDueDate(addDue); err != nil {
			return err
		}
	}

	category := addCategory
	if category == "" {
		category = cfg.Task.Category
	}

	message, err := collection.Add(args[0], task.TaskOptions{
		Priority:     task.Priority(addPriority),
		DueDate:      addDue,
		Category:     category,
		Notes:        addNotes,
		Dependencies: addDeps,
	})
	if err != nil {
		return err
	}

	if err := collection.Save(path); err != nil {
		return err
	}

	fmt.Println(message)
	return nil
}

func runRemove(cmd *cobra.Command, args []string) error {
	collection, path, _, err := openCollection()
	if err != nil {
		return err
	}

	message, err := collection.Remove(args[0])
	if err != nil {
		return err
	}

	if err := collection.Save(path); err != nil {
		return err
	}

	fmt.Println(message)
	return nil
}

func runDone(cmd *cobra.Command, args []string) error {
	collection, path, _, err := openCollection()
	if err != nil {
		return err
	}

	message, err := collection.MarkComplete(args[0])
	if err != nil {
		return err
	}

	if err := collection.Save(path); err != nil {
		return err
	}

	fmt.Println(message)
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	collection, _, _, err := openCollection()
	if err != nil {
		return err
	}

	tasks, err := collection.List(listCategory)
	if err != nil {
		return err
	}
	if listIncomplete {
		incomplete := tasks[:0]
		for _, t := range tasks {
			if task.FilterIncomplete(t) {
				incomplete = append(incomplete, t)
			}
		}
		tasks = incomplete
	}

	if listJSON {
		return encodeJSONToStdout(tasks)
	}

	printOverdueSection(tasks, time.Now())
	printTaskTable(tasks, time.Now())
	return nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	collection, _, _, err := openCollection()
	if err != nil {
		return err
	}

	matches := collection.Search(args[0])

	if searchJSON {
		return encodeJSONToStdout(matches)
	}

	if len(matches) == 0 {
		fmt.Println("No tasks found with that keyword.")
		return nil
	}
	printTaskTable(matches, time.Now())
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	collection, _, _, err := openCollection()
	if err != nil {
		return err
	}

	found, ok := findTask(collection, args[0])
	if !ok {
		fmt.Printf("Task '%s' not found.\n", args[0])
		return nil
	}

	printTaskDetail(found, time.Now())
	return nil
}

func runMerge(cmd *cobra.Command, args []string) error {
	collection, path, _, err := openCollection()
	if err != nil {
		return err
	}

	first, ok := findTask(collection, args[0])
	if !ok {
		fmt.Printf("Task '%s' not found.\n", args[0])
		return nil
	}
	second, ok := findTask(collection, args[1])
	if !ok {
		fmt.Printf("Task '%s' not found.\n", args[1])
		return nil
	}

	merged := task.Merge(first, second)
	message, err := collection.Add(merged.Name, task.TaskOptions{
		Dependencies: merged.Dependencies,
	})
	if err != nil {
		return err
	}

	if err := collection.Save(path); err != nil {
		return err
	}

	fmt.Println(message)
	return nil
}

// findTask returns the first stored task whose name matches exactly.
func findTask(collection *task.Collection, name string) (task.Task, bool) {
	for _, t := range collection.All() {
		if t.Name == name {
			return t, true
		}
	}
	return task.Task{}, false
}
