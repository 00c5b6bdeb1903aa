package cmd

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/nibzard/todotxt-go/internal/config"
)

// configCommand prints the effective configuration and where each value
// came from.
func configCommand(cws *config.ConfigWithSources, args []string) error {
	fs := flag.NewFlagSet("todotxt config", flag.ContinueOnError)
	example := fs.Bool("example", false, "Print an example config file")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	if *example {
		fmt.Print(config.ExampleConfig())
		return nil
	}

	cfg := cws.Config
	values := map[string]string{
		"todo_file":      cfg.TodoFile,
		"schema_file":    cfg.SchemaFile,
		"strict":         fmt.Sprint(cfg.Strict),
		"sort_on_save":   fmt.Sprint(cfg.SortOnSave),
		"log_level":      cfg.LogLevel,
		"log_format":     cfg.LogFormat,
		"log_timestamps": fmt.Sprint(cfg.LogTimestamps),
		"log_caller":     fmt.Sprint(cfg.LogCaller),
	}

	fmt.Printf("Project root: %s\n", cfg.ProjectRoot)
	if len(cws.Files) == 0 {
		fmt.Println("Config files: (none)")
	} else {
		fmt.Println("Config files:")
		for _, f := range cws.Files {
			fmt.Printf("  %s\n", f)
		}
	}
	fmt.Println()

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tVALUE\tSOURCE")
	for _, field := range config.Fields() {
		value := values[field]
		if value == "" {
			value = "(unset)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", field, value, cws.Source(field))
	}
	return tw.Flush()
}
