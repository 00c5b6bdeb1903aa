package cmd

import (
	"flag"
	"fmt"
	"sort"
	"strings"

	"github.com/nibzard/todotxt-go/internal/config"
	"github.com/nibzard/todotxt-go/internal/logging"
	"github.com/nibzard/todotxt-go/internal/todo"
	"github.com/nibzard/todotxt-go/internal/utils"
)

// lsCommand prints tasks in file order, optionally filtered and sorted.
func lsCommand(cfg *config.Config, events *logging.EventWriter, args []string) error {
	fs := flag.NewFlagSet("todotxt ls", flag.ContinueOnError)
	sortByPriority := fs.Bool("sort", false, "Sort by priority")
	number := fs.Bool("n", false, "Prefix each task with its line number")
	projects := fs.String("project", "", "Only tasks with all of these projects (comma-separated)")
	contexts := fs.String("context", "", "Only tasks with all of these contexts (comma-separated)")
	done := fs.Bool("done", false, "Only completed tasks")
	pending := fs.Bool("pending", false, "Only open tasks")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *done && *pending {
		return fmt.Errorf("-done and -pending are mutually exclusive")
	}

	todoPath, err := todoPathArg(cfg, fs.Args())
	if err != nil {
		return err
	}

	list, err := loadList(cfg, events, todoPath, false)
	if err != nil {
		return err
	}

	wantProjects := utils.NormalizeTags(utils.SplitAndTrim(*projects, ","))
	wantContexts := utils.NormalizeTags(utils.SplitAndTrim(*contexts, ","))

	// Numbers refer to positions in the file, so keep them through
	// filtering and sorting.
	type row struct {
		n    int
		item todo.Item
	}
	var rows []row
	for i, item := range list.Items() {
		if (*done && !item.Completed) || (*pending && item.Completed) {
			continue
		}
		if !hasAll(item.Projects, wantProjects) || !hasAll(item.Contexts, wantContexts) {
			continue
		}
		rows = append(rows, row{n: i + 1, item: item})
	}

	if *sortByPriority {
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].item.Priority.Rank() < rows[j].item.Priority.Rank()
		})
	}

	width := len(fmt.Sprint(list.Len()))
	for _, r := range rows {
		if *number {
			fmt.Printf("%*d %s\n", width, r.n, r.item.String())
			continue
		}
		fmt.Println(r.item.String())
	}
	return nil
}

func hasAll(set todo.TagSet, names []string) bool {
	for _, name := range names {
		if !set.Has(name) {
			return false
		}
	}
	return true
}

// addCommand appends one task built from the remaining arguments. A missing
// file is created.
func addCommand(cfg *config.Config, events *logging.EventWriter, args []string) error {
	fs := flag.NewFlagSet("todotxt add", flag.ContinueOnError)
	file := fs.String("file", "", "Task file (defaults to the configured todo file)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	line := strings.Join(fs.Args(), " ")
	if strings.TrimSpace(line) == "" {
		return fmt.Errorf("add requires task text")
	}

	todoPath := cfg.ResolveTodoPath(*file)
	list, err := loadList(cfg, events, todoPath, true)
	if err != nil {
		return err
	}

	if err := list.Add(line); err != nil {
		return fmt.Errorf("adding task: %w", err)
	}
	added := list.Item(list.Len() - 1)

	if err := saveList(cfg, events, list, todoPath); err != nil {
		return err
	}
	events.Write(logging.Event{Type: "add", Path: todoPath, Items: list.Len()})
	fmt.Println(added.String())
	return nil
}

// sortCommand sorts the file by priority in place.
func sortCommand(cfg *config.Config, events *logging.EventWriter, args []string) error {
	fs := flag.NewFlagSet("todotxt sort", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
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

	list.SortByPriority()
	events.Write(logging.Event{Type: "sort", Path: todoPath, Items: list.Len()})

	if err := list.Save(todoPath); err != nil {
		return fmt.Errorf("saving todo file: %w", err)
	}
	events.Write(logging.Event{Type: "save", Path: todoPath, Items: list.Len()})
	fmt.Printf("Sorted %d tasks in %s\n", list.Len(), todoPath)
	return nil
}
