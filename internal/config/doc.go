// Package config handles configuration loading and defaults.
//
// Configuration is loaded from multiple sources in priority order:
// 1. Built-in defaults
// 2. User config file (~/.planner/planner.toml or OS-specific config directory)
// 3. Project config file (planner.toml or .planner.toml in the working directory)
// 4. Environment variables (PLANNER_*, NO_COLOR)
// 5. CLI flags
//
// Each level overrides the previous one, so CLI flags take precedence.
//
// User-level config locations:
// - ~/.planner/planner.toml (preferred)
// - Windows: %APPDATA%\planner\planner.toml
// - macOS: ~/Library/Application Support/planner/planner.toml
// - Linux/BSD: $XDG_CONFIG_HOME/planner/planner.toml or ~/.config/planner/planner.toml
//
// Project-level config locations (overrides user config):
// - ./planner.toml (preferred)
// - ./.planner.toml
package config
