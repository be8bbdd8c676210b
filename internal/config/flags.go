package config

import (
	"flag"
)

// flagToSource maps flag names to source field names.
var flagToSource = map[string]string{
	"todo":           "todo_file",
	"prompt":         "prompt",
	"color":          "color",
	"no-color":       "color",
	"log-level":      "log_level",
	"log-format":     "log_format",
	"log-file":       "log_file",
	"log-timestamps": "log_timestamps",
	"log-caller":     "log_caller",
}

// parseFlags defines the global flags on fs, parses args and records
// SourceFlag for every flag given explicitly. Flags default to the values
// already in cfg, so unset flags leave earlier layers intact.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string, sources map[string]ConfigSource) error {
	if fs == nil {
		fs = flag.NewFlagSet("planner", flag.ContinueOnError)
	}

	var noColor bool

	// Paths
	fs.StringVar(&cfg.TodoFile, "todo", cfg.TodoFile, "Path to the todo file")

	// Interaction
	fs.StringVar(&cfg.Prompt, "prompt", cfg.Prompt, "Prompt shown before each command")
	fs.BoolVar(&cfg.Color, "color", cfg.Color, "Colorize output")
	fs.BoolVar(&noColor, "no-color", false, "Disable colored output")

	// Logging
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text, json, logfmt)")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Append logs to this file instead of stderr")
	fs.BoolVar(&cfg.LogTimestamps, "log-timestamps", cfg.LogTimestamps, "Show timestamps in logs")
	fs.BoolVar(&cfg.LogCaller, "log-caller", cfg.LogCaller, "Show caller location in logs")

	if err := fs.Parse(args); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		if fieldName, ok := flagToSource[f.Name]; ok {
			sources[fieldName] = SourceFlag
		}
	})
	if noColor {
		cfg.Color = false
	}

	return nil
}
