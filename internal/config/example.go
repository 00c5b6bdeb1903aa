package config

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# todotxt configuration file
# Looked up in ~/.todotxt/todotxt.toml, then ./todotxt.toml or ./.todotxt.toml.
# Values can be overridden by TODOTXT_* environment variables or CLI flags.

# Task file (relative to the working directory, supports ~ expansion)
todo_file = "todo.txt"

# Optional JSON Schema applied by "todotxt check"
# schema_file = "todo.schema.json"

# Reject malformed priorities such as (a) and impossible dates such as
# 2024-13-01 instead of keeping them as description text
strict = false

# Sort by priority before every save
sort_on_save = false

# Logging: debug, info, warn, error
log_level = "info"
# Formats: text, json, logfmt
log_format = "text"
log_timestamps = false
log_caller = false
`
}
