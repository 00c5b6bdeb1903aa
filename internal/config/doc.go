// Package config loads todotxt settings.
//
// Values are layered, each source overriding the one before it:
// built-in defaults, the user file, the project file, TODOTXT_* environment
// variables and finally command line flags. LoadWithSources reports which
// layer supplied each field.
//
// The user file is ~/.todotxt/todotxt.toml, falling back to todotxt.toml in
// the OS config directory (for example $XDG_CONFIG_HOME/todotxt). The project
// file is todotxt.toml or .todotxt.toml in the working directory.
package config
