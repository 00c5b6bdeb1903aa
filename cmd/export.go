package cmd

import (
	"flag"
	"os"

	"github.com/nibzard/todotxt-go/internal/config"
	"github.com/nibzard/todotxt-go/internal/export"
	"github.com/nibzard/todotxt-go/internal/logging"
)

// exportCommand writes the task file to stdout as JSON or YAML.
func exportCommand(cfg *config.Config, events *logging.EventWriter, args []string) error {
	fs := flag.NewFlagSet("todotxt export", flag.ContinueOnError)
	formatName := fs.String("format", string(export.FormatJSON), "Output format (json|yaml)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	format, err := export.ParseFormat(*formatName)
	if err != nil {
		return err
	}

	todoPath, err := todoPathArg(cfg, fs.Args())
	if err != nil {
		return err
	}

	list, err := loadList(cfg, events, todoPath, false)
	if err != nil {
		return err
	}

	return export.Write(os.Stdout, list, format)
}
