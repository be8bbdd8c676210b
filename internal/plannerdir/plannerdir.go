// Package plannerdir provides constants and utilities for the .planner directory structure.
package plannerdir

import "path/filepath"

const (
	// Dir is the name of the planner state directory.
	Dir = ".planner"

	// DefaultTodoFile is the default todo file name (inside .planner).
	DefaultTodoFile = "todos.json"

	// DefaultConfigFile is the default config file name (inside .planner).
	DefaultConfigFile = "planner.toml"

	// AppName names the directory used under OS-specific config roots.
	AppName = "planner"
)

// TodoPath returns the full path to the todo file within a base directory.
func TodoPath(baseDir string) string {
	return joinPath(baseDir, DefaultTodoFile)
}

// ConfigPath returns the full path to the config file within a base directory.
func ConfigPath(baseDir string) string {
	return joinPath(baseDir, DefaultConfigFile)
}

// DirPath returns the full path to the .planner directory within a base directory.
func DirPath(baseDir string) string {
	if baseDir == "." || baseDir == "" {
		return Dir
	}
	return baseDir + string(filepath.Separator) + Dir
}

func joinPath(baseDir, file string) string {
	if baseDir == "." || baseDir == "" {
		return Dir + string(filepath.Separator) + file
	}
	return baseDir + string(filepath.Separator) + Dir + string(filepath.Separator) + file
}
