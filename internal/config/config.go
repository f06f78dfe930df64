// Package config handles loading tasktrack.toml configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/amonks/tasktrack/internal/paths"
)

// Config represents the tasktrack.toml configuration file.
type Config struct {
	Store Store `toml:"store"`
	Task  Task  `toml:"task"`
}

// Store contains persistence-related configuration.
type Store struct {
	// Path overrides the default task store location.
	Path string `toml:"path"`
}

// Task contains defaults applied to newly created tasks.
type Task struct {
	// Category is used when a task is created without a category.
	Category string `toml:"category"`
}

// Load loads configuration from dir and the global config file. Values
// defined in dir's tasktrack.toml win over global values, per key.
// Returns an empty config if no config files exist.
func Load(dir string) (*Config, error) {
	globalPath, err := paths.GlobalConfigPath()
	if err != nil {
		return nil, err
	}

	globalCfg, globalMeta, err := loadConfigFile(globalPath)
	if err != nil {
		return nil, err
	}

	localCfg, localMeta, err := loadConfigFile(filepath.Join(dir, "tasktrack.toml"))
	if err != nil {
		return nil, err
	}

	return mergeConfigs(globalCfg, localCfg, globalMeta, localMeta), nil
}

func loadConfigFile(path string) (*Config, toml.MetaData, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, toml.MetaData{}, nil
	}
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return &cfg, meta, nil
}

func mergeConfigs(globalCfg, localCfg *Config, globalMeta, localMeta toml.MetaData) *Config {
	if globalCfg == nil {
		globalCfg = &Config{}
	}
	if localCfg == nil {
		localCfg = &Config{}
	}

	merged := Config{}
	merged.Store.Path = mergeString(localMeta.IsDefined("store", "path"), localCfg.Store.Path, globalCfg.Store.Path)
	merged.Task.Category = mergeString(localMeta.IsDefined("task", "category"), localCfg.Task.Category, globalCfg.Task.Category)
	return &merged
}

func mergeString(localDefined bool, localValue, globalValue string) string {
	value := globalValue
	if localDefined {
		value = localValue
	}
	return strings.TrimSpace(value)
}
