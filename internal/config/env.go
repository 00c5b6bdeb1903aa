package config

import "os"

// Environment variable names.
const (
	EnvTodoFile      = "TODOTXT_FILE"
	EnvSchemaFile    = "TODOTXT_SCHEMA"
	EnvStrict        = "TODOTXT_STRICT"
	EnvSortOnSave    = "TODOTXT_SORT_ON_SAVE"
	EnvLogLevel      = "TODOTXT_LOG_LEVEL"
	EnvLogFormat     = "TODOTXT_LOG_FORMAT"
	EnvLogTimestamps = "TODOTXT_LOG_TIMESTAMPS"
	EnvLogCaller     = "TODOTXT_LOG_CALLER"
)

// loadFromEnv overrides config from environment variables.
// If sources is non-nil, it tracks the source of each value.
func loadFromEnv(cfg *Config, sources map[string]ConfigSource) {
	mark := func(field string) {
		if sources != nil {
			sources[field] = SourceEnv
		}
	}

	if v := os.Getenv(EnvTodoFile); v != "" {
		cfg.TodoFile = v
		mark("todo_file")
	}
	if v := os.Getenv(EnvSchemaFile); v != "" {
		cfg.SchemaFile = v
		mark("schema_file")
	}
	if v := os.Getenv(EnvStrict); v != "" {
		cfg.Strict = boolFromString(v)
		mark("strict")
	}
	if v := os.Getenv(EnvSortOnSave); v != "" {
		cfg.SortOnSave = boolFromString(v)
		mark("sort_on_save")
	}

	// Logging configuration
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
		mark("log_level")
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.LogFormat = v
		mark("log_format")
	}
	if v := os.Getenv(EnvLogTimestamps); v != "" {
		cfg.LogTimestamps = boolFromString(v)
		mark("log_timestamps")
	}
	if v := os.Getenv(EnvLogCaller); v != "" {
		cfg.LogCaller = boolFromString(v)
		mark("log_caller")
	}
}
