package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/nibzard/todotxt-go/internal/config"
	"github.com/nibzard/todotxt-go/internal/logging"
	"github.com/nibzard/todotxt-go/internal/todo"
)

// checkCommand loads and validates the task file.
func checkCommand(cfg *config.Config, events *logging.EventWriter, args []string) error {
	fs := flag.NewFlagSet("todotxt check", flag.ContinueOnError)
	verbose := fs.Bool("v", false, "Verbose output")

	if err := fs.Parse(args); err != nil {
		return err
	}

	todoPath, err := todoPathArg(cfg, fs.Args())
	if err != nil {
		return err
	}

	fmt.Println("todotxt check")
	fmt.Println("=============")
	fmt.Println()

	allOK := true

	fmt.Printf("Todo file: %s\n", todoPath)
	info, err := os.Stat(todoPath)
	switch {
	case err != nil:
		fmt.Printf("  ❌ Error: %v\n", err)
		allOK = false
	case info.IsDir():
		fmt.Println("  ❌ Error: path is a directory")
		allOK = false
	default:
		if cfg.Strict {
			fmt.Println("  Parsing: strict")
		}
		list, loadErr := loadList(cfg, events, todoPath, false)
		if loadErr != nil {
			fmt.Printf("  ❌ Load error: %v\n", loadErr)
			allOK = false
			break
		}
		fmt.Printf("  ✅ Loaded %d tasks\n", list.Len())

		result := list.Validate(todo.ValidationOptions{SchemaPath: cfg.SchemaFile})
		for _, w := range result.Warnings {
			fmt.Printf("  ⚠️  %s\n", w)
		}
		if result.Valid {
			if result.UsedSchema {
				fmt.Println("  ✅ Valid (schema)")
			} else {
				fmt.Println("  ✅ Valid")
			}
		} else {
			fmt.Println("  ❌ Validation failed:")
			for _, e := range result.Errors {
				fmt.Printf("     - %v\n", e)
			}
			allOK = false
		}

		if *verbose {
			for i, item := range list.Items() {
				fmt.Printf("    %d: %s\n", i+1, item.String())
			}
		}
	}
	fmt.Println()

	if cfg.SchemaFile != "" {
		fmt.Printf("Schema file: %s\n", cfg.SchemaFile)
		if info, err := os.Stat(cfg.SchemaFile); err != nil {
			fmt.Printf("  ❌ Error: %v\n", err)
			allOK = false
		} else if info.IsDir() {
			fmt.Println("  ❌ Error: path is a directory")
			allOK = false
		} else {
			fmt.Println("  ✅ OK")
		}
		fmt.Println()
	}

	if allOK {
		fmt.Println("✅ All checks passed!")
		return nil
	}
	fmt.Println("⚠️  Some checks failed.")
	return fmt.Errorf("check failed")
}
