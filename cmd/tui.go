package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/nibzard/todotxt-go/internal/config"
	"github.com/nibzard/todotxt-go/internal/logging"
	"github.com/nibzard/todotxt-go/internal/ui"
)

// tuiCommand launches the interactive editor. Log output would corrupt the
// screen, so events are only written when -log names a file.
func tuiCommand(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("todotxt tui", flag.ContinueOnError)
	noWatch := fs.Bool("no-watch", false, "Do not reload when the file changes on disk")
	logPath := fs.String("log", "", "Append log events to this file")

	if err := fs.Parse(args); err != nil {
		return err
	}

	todoPath, err := todoPathArg(cfg, fs.Args())
	if err != nil {
		return err
	}

	var opts []ui.Option
	if *logPath != "" {
		f, err := os.OpenFile(cfg.ResolveTodoPath(*logPath), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		opts = append(opts, ui.WithEvents(logging.NewEventWriter(logging.NewFromConfig(f, cfg))))
	}
	if *noWatch {
		opts = append(opts, ui.WithoutWatch())
	}
	return ui.Run(ctx, cfg, todoPath, opts...)
}
