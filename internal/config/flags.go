package config

import "flag"

// flagToField maps flag names to config field names for source tracking.
var flagToField = map[string]string{
	"todo":           "todo_file",
	"schema":         "schema_file",
	"strict":         "strict",
	"sort-on-save":   "sort_on_save",
	"log-level":      "log_level",
	"log-format":     "log_format",
	"log-timestamps": "log_timestamps",
	"log-caller":     "log_caller",
}

// parseFlags defines the global flags on fs and parses args into cfg.
// If sources is non-nil, explicitly set flags are recorded as SourceFlag.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string, sources map[string]ConfigSource) error {
	if fs == nil {
		fs = flag.NewFlagSet("todotxt", flag.ContinueOnError)
	}

	// Paths
	fs.StringVar(&cfg.TodoFile, "todo", cfg.TodoFile, "Path to task file")
	fs.StringVar(&cfg.SchemaFile, "schema", cfg.SchemaFile, "Path to JSON Schema for check")

	// Parsing and saving
	fs.BoolVar(&cfg.Strict, "strict", cfg.Strict, "Reject malformed priorities and impossible dates")
	fs.BoolVar(&cfg.SortOnSave, "sort-on-save", cfg.SortOnSave, "Sort by priority before saving")

	// Logging
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text, json, logfmt)")
	fs.BoolVar(&cfg.LogTimestamps, "log-timestamps", cfg.LogTimestamps, "Show timestamps in logs")
	fs.BoolVar(&cfg.LogCaller, "log-caller", cfg.LogCaller, "Show caller location in logs")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if sources != nil {
		fs.Visit(func(f *flag.Flag) {
			if field, ok := flagToField[f.Name]; ok {
				sources[field] = SourceFlag
			}
		})
	}
	return nil
}
