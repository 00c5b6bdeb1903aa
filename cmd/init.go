package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/nibzard/todotxt-go/internal/config"
	"github.com/nibzard/todotxt-go/internal/logging"
	"github.com/nibzard/todotxt-go/internal/todo"
)

// initCommand creates an empty task file and an example todotxt.toml in the
// project root. Existing files are kept unless -force is given.
func initCommand(cfg *config.Config, events *logging.EventWriter, args []string) error {
	flags := flag.NewFlagSet("todotxt init", flag.ContinueOnError)
	force := flags.Bool("force", false, "Overwrite existing files")
	skipConfig := flags.Bool("skip-config", false, "Do not write todotxt.toml")

	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", flags.Args())
	}

	if exists(cfg.TodoFile) && !*force {
		fmt.Printf("Skipping %s (exists)\n", cfg.TodoFile)
	} else {
		if err := saveList(cfg, events, todo.NewList(), cfg.TodoFile); err != nil {
			return err
		}
		fmt.Printf("Created %s\n", cfg.TodoFile)
	}

	if *skipConfig {
		return nil
	}
	configPath := filepath.Join(cfg.ProjectRoot, "todotxt.toml")
	if exists(configPath) && !*force {
		fmt.Printf("Skipping %s (exists)\n", configPath)
		return nil
	}
	if err := os.WriteFile(configPath, []byte(config.ExampleConfig()), 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	fmt.Printf("Created %s\n", configPath)
	return nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}
