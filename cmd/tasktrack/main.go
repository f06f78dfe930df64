// Package main implements the tasktrack CLI tool.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/amonks/tasktrack/internal/config"
	"github.com/amonks/tasktrack/internal/paths"
	"github.com/amonks/tasktrack/task"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tasktrack",
	Short: "Tasktrack - track personal tasks from the command line",
}

var (
	rootStorePath string
	rootVerbose   bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&rootStorePath, "store", "", "Task store file (default: config, then ~/.local/share/tasktrack/tasks.json)")
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Record every operation to stderr")
}

// loadConfig loads configuration for the current working directory.
func loadConfig() (*config.Config, error) {
	cwd, err := paths.WorkingDir()
	if err != nil {
		return nil, err
	}
	return config.Load(cwd)
}

// resolveStorePath picks the store path: flag, then config, then default.
func resolveStorePath(cfg *config.Config) (string, error) {
	if rootStorePath != "" {
		return rootStorePath, nil
	}
	if cfg != nil && cfg.Store.Path != "" {
		return cfg.Store.Path, nil
	}
	return paths.DefaultStorePath()
}

func newRecorder() task.Recorder {
	if !rootVerbose {
		return nil
	}
	return task.NewConsoleRecorder(os.Stderr)
}

// openCollection loads the task store, resolving the path from the
// persistent flag, configuration, and the default location.
func openCollection() (*task.Collection, string, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, "", nil, err
	}

	path, err := resolveStorePath(cfg)
	if err != nil {
		return nil, "", nil, err
	}

	collection := task.NewCollection(task.CollectionOptions{Recorder: newRecorder()})
	if err := collection.Load(path); err != nil {
		return nil, "", nil, err
	}
	return collection, path, cfg, nil
}
