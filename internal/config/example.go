package config

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# Planner configuration file
# Values can be overridden by environment variables (PLANNER_*) or CLI flags

# Todo file (supports ~ and $VAR expansion; relative paths use the working directory)
todo_file = "~/.planner/todos.json"

# Prompt shown before each command in the interactive loop
prompt = "> "

# Colored output (NO_COLOR in the environment also disables it)
color = true

# Logging: debug, info, warn or error
log_level = "warn"

# Log format: text, json or logfmt
log_format = "text"

# Append logs to a file instead of stderr
# log_file = "~/.planner/planner.log"

# Show timestamps and caller locations in log lines
log_timestamps = false
log_caller = false
`
}
