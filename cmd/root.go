// Package cmd implements the CLI command structure for todotxt.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nibzard/todotxt-go/internal/config"
	"github.com/nibzard/todotxt-go/internal/logging"
	"github.com/nibzard/todotxt-go/internal/todo"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Run executes the todotxt CLI.
func Run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("todotxt", flag.ContinueOnError)
	fs.Usage = func() {
		printUsage(fs, os.Stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	// Global flags
	cws, err := config.LoadWithSources(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg := cws.Config
	if *help {
		printUsage(fs, os.Stdout)
		return nil
	}
	if *showVersion {
		return versionCommand()
	}

	events := logging.NewEventWriter(logging.NewFromConfig(os.Stderr, cfg))

	// No subcommand lists tasks
	subcommand := "ls"
	remainingArgs := fs.Args()
	if len(remainingArgs) > 0 && !strings.HasPrefix(remainingArgs[0], "-") {
		subcommand = remainingArgs[0]
		remainingArgs = remainingArgs[1:]
	}

	switch subcommand {
	case "ls", "list":
		return lsCommand(cfg, events, remainingArgs)
	case "add", "a":
		return addCommand(cfg, events, remainingArgs)
	case "sort":
		return sortCommand(cfg, events, remainingArgs)
	case "check":
		return checkCommand(cfg, events, remainingArgs)
	case "export":
		return exportCommand(cfg, events, remainingArgs)
	case "config":
		return configCommand(cws, remainingArgs)
	case "init":
		return initCommand(cfg, events, remainingArgs)
	case "tui":
		return tuiCommand(ctx, cfg, remainingArgs)
	case "version":
		return versionCommand()
	case "help":
		printUsage(fs, os.Stdout)
		return nil
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", subcommand)
		printUsage(fs, os.Stderr)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// todoPathArg resolves an optional trailing file argument against the
// project root, falling back to the configured todo file.
func todoPathArg(cfg *config.Config, remaining []string) (string, error) {
	if len(remaining) > 1 {
		return "", fmt.Errorf("unexpected arguments: %v", remaining[1:])
	}
	if len(remaining) == 1 {
		return cfg.ResolveTodoPath(remaining[0]), nil
	}
	return cfg.TodoFile, nil
}

// loadList loads path and logs the outcome. Parse errors are logged with
// their line number before being returned.
func loadList(cfg *config.Config, events *logging.EventWriter, path string, allowMissing bool) (*todo.List, error) {
	load := todo.Load
	if allowMissing {
		load = todo.LoadOrEmpty
	}
	list, err := load(path, todo.WithStrict(cfg.Strict))
	if err != nil {
		var pe *todo.ParseError
		if errors.As(err, &pe) {
			events.Write(logging.Event{Type: "error", Path: path, Line: pe.Line, Err: pe.Kind})
		}
		return nil, fmt.Errorf("loading todo file: %w", err)
	}
	events.Write(logging.Event{Type: "load", Path: path, Items: list.Len()})
	return list, nil
}

// saveList saves list to path, sorting first when sort_on_save is set.
func saveList(cfg *config.Config, events *logging.EventWriter, list *todo.List, path string) error {
	if cfg.SortOnSave {
		list.SortByPriority()
	}
	if err := list.Save(path); err != nil {
		return fmt.Errorf("saving todo file: %w", err)
	}
	events.Write(logging.Event{Type: "save", Path: path, Items: list.Len()})
	return nil
}

// versionCommand prints version information.
func versionCommand() error {
	fmt.Printf("todotxt version %s\n", Version)
	return nil
}

// printUsage prints the usage message.
func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "todotxt - read, edit and write todo.txt task files")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  todotxt [global options] [command] [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  ls [file]           List tasks (default command)")
	fmt.Fprintln(w, "  add <text...>       Append a task and save")
	fmt.Fprintln(w, "  sort [file]         Sort tasks by priority and save")
	fmt.Fprintln(w, "  check [file]        Validate the task file")
	fmt.Fprintln(w, "  export [file]       Write tasks as JSON or YAML")
	fmt.Fprintln(w, "  config              Show effective configuration and its sources")
	fmt.Fprintln(w, "  init                Create an empty task file and todotxt.toml")
	fmt.Fprintln(w, "  tui [file]          Launch the interactive editor")
	fmt.Fprintln(w, "  version             Show version information")
	fmt.Fprintln(w, "  help                Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Ls Options:")
	fmt.Fprintln(w, "  -sort          Sort by priority (A first, unprioritized last)")
	fmt.Fprintln(w, "  -n             Prefix each task with its line number")
	fmt.Fprintln(w, "  -project list  Only tasks with all of these projects (comma-separated)")
	fmt.Fprintln(w, "  -context list  Only tasks with all of these contexts (comma-separated)")
	fmt.Fprintln(w, "  -done, -pending")
	fmt.Fprintln(w, "                 Only completed or only open tasks")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check Options:")
	fmt.Fprintln(w, "  -v             List every task after validation")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Export Options:")
	fmt.Fprintln(w, "  -format string json or yaml (default json)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Tui Options:")
	fmt.Fprintln(w, "  -no-watch      Do not reload when the file changes on disk")
	fmt.Fprintln(w, "  -log file      Append log events to file")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Config Options:")
	fmt.Fprintln(w, "  -example       Print an example todotxt.toml")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Init Options:")
	fmt.Fprintln(w, "  -force         Overwrite existing files")
	fmt.Fprintln(w, "  -skip-config   Do not write todotxt.toml")
}
