package main

import "github.com/spf13/cobra"

// add
var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a new task",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdd,
}

var (
	addPriority string
	addDue      string
	addCategory string
	addNotes    string
	addDeps     []string
)

// remove
var removeCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a task by name",
	Aliases: []string{
		"rm",
	},
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

// done
var doneCmd = &cobra.Command{
	Use:   "done <name>",
	Short: "Mark a task as completed",
	Aliases: []string{
		"complete",
	},
	Args: cobra.ExactArgs(1),
	RunE: runDone,
}

// list
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks sorted by priority and due date",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var (
	listCategory   string
	listJSON       bool
	listIncomplete bool
)

// search
var searchCmd = &cobra.Command{
	Use:   "search <keyword>",
	Short: "Search tasks by name keyword",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

var searchJSON bool

// show
var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show detailed information about a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

// merge
var mergeCmd = &cobra.Command{
	Use:   "merge <name> <name>",
	Short: "Combine two tasks into a new task with their merged dependencies",
	Args:  cobra.ExactArgs(2),
	RunE:  runMerge,
}

func init() {
	rootCmd.AddCommand(addCmd, removeCmd, doneCmd, listCmd, searchCmd, showCmd, mergeCmd)
	addCategoryFlagAliases(addCmd, listCmd)

	addCmd.Flags().StringVarP(&addPriority, "priority", "p", "", "Priority (low, medium, high; default medium)")
	addCmd.Flags().StringVarP(&addDue, "due", "d", "", "Due date in YYYY-MM-DD form (default today)")
	addCmd.Flags().StringVarP(&addCategory, "category", "c", "", "Category label")
	addCmd.Flags().StringVarP(&addNotes, "notes", "n", "", "Free-text notes (markdown)")
	addCmd.Flags().StringSliceVar(&addDeps, "deps", nil, "Comma-separated dependency task names")

	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "Only list tasks in this category")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
	listCmd.Flags().BoolVar(&listIncomplete, "incomplete", false, "Only list incomplete tasks")

	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "Output as JSON")
}
