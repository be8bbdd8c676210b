package config

import (
	"os"

	"github.com/nibzard/planner-go/internal/utils"
)

// loadFromEnv overrides config from environment variables and records
// SourceEnv for every value it sets.
func loadFromEnv(cfg *Config, sources map[string]ConfigSource) {
	setString := func(env, field string, target *string) {
		if v := os.Getenv(env); v != "" {
			*target = v
			sources[field] = SourceEnv
		}
	}
	setBool := func(env, field string, target *bool) {
		if v := os.Getenv(env); v != "" {
			*target = utils.BoolFromString(v)
			sources[field] = SourceEnv
		}
	}

	setString("PLANNER_TODO", "todo_file", &cfg.TodoFile)
	setString("PLANNER_PROMPT", "prompt", &cfg.Prompt)
	setBool("PLANNER_COLOR", "color", &cfg.Color)

	// https://no-color.org: any non-empty value disables color.
	if os.Getenv("NO_COLOR") != "" {
		cfg.Color = false
		sources["color"] = SourceEnv
	}

	// Logging configuration
	setString("PLANNER_LOG_LEVEL", "log_level", &cfg.LogLevel)
	setString("PLANNER_LOG_FORMAT", "log_format", &cfg.LogFormat)
	setString("PLANNER_LOG_FILE", "log_file", &cfg.LogFile)
	setBool("PLANNER_LOG_TIMESTAMPS", "log_timestamps", &cfg.LogTimestamps)
	setBool("PLANNER_LOG_CALLER", "log_caller", &cfg.LogCaller)
}
