package config

import (
	"os"

	"github.com/nibzard/planner-go/internal/plannerdir"
)

// ConfigSource represents where a configuration value came from.
type ConfigSource string

const (
	SourceDefault  ConfigSource = "default"
	SourceUserFile ConfigSource = "user file"
	SourceProjFile ConfigSource = "project file"
	SourceEnv      ConfigSource = "environment"
	SourceFlag     ConfigSource = "flag"
)

// ConfigWithSources holds configuration along with source information for each field.
type ConfigWithSources struct {
	Config  *Config
	Sources map[string]ConfigSource

	// Files lists the config files that were read, lowest priority first.
	Files []string
}

// Default values.
const (
	DefaultPrompt    = "> "
	DefaultColor     = true
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// DefaultTodoFile returns the default todo file path, ~/.planner/todos.json.
// It falls back to .planner/todos.json in the working directory when the
// home directory is unknown.
func DefaultTodoFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return plannerdir.TodoPath(".")
	}
	return plannerdir.TodoPath(home)
}

// Config holds the full configuration for planner.
type Config struct {
	// Todo list location
	TodoFile string `toml:"todo_file"`

	// Interactive prompt shown before each line
	Prompt string `toml:"prompt"`

	// Colored output
	Color bool `toml:"color"`

	// Logging configuration
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogFile       string `toml:"log_file"`
	LogTimestamps bool   `toml:"log_timestamps"`
	LogCaller     bool   `toml:"log_caller"`
}

// configFields returns the list of configurable field names for source tracking.
func configFields() []string {
	return []string{
		"todo_file",
		"prompt",
		"color",
		"log_level",
		"log_format",
		"log_file",
		"log_timestamps",
		"log_caller",
	}
}

// Fields returns the configurable keys in display order.
func Fields() []string {
	return configFields()
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	cfg.TodoFile = DefaultTodoFile()
	cfg.Prompt = DefaultPrompt
	cfg.Color = DefaultColor
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
	cfg.LogFile = ""
	cfg.LogTimestamps = false
	cfg.LogCaller = false
}

// Value returns the display value of a configurable key.
func (c *Config) Value(field string) string {
	switch field {
	case "todo_file":
		return c.TodoFile
	case "prompt":
		return c.Prompt
	case "color":
		return formatBool(c.Color)
	case "log_level":
		return c.LogLevel
	case "log_format":
		return c.LogFormat
	case "log_file":
		return c.LogFile
	case "log_timestamps":
		return formatBool(c.LogTimestamps)
	case "log_caller":
		return formatBool(c.LogCaller)
	default:
		return ""
	}
}

func formatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
