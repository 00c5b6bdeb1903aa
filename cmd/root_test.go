package cmd

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/nibzard/todotxt-go/internal/config"
	"github.com/nibzard/todotxt-go/internal/todo"
)

func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe() error = %v", err)
	}
	os.Stdout = w
	defer func() {
		os.Stdout = oldStdout
	}()

	runErr := fn()
	_ = w.Close()

	output, readErr := io.ReadAll(r)
	_ = r.Close()
	if readErr != nil {
		t.Fatalf("ReadAll() error = %v", readErr)
	}

	return string(output), runErr
}

// setupProject isolates the test from user config and TODOTXT_* variables
// and changes into a fresh project directory, which it returns.
func setupProject(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("APPDATA", filepath.Join(home, "AppData"))
	for _, name := range []string{
		config.EnvTodoFile, config.EnvSchemaFile, config.EnvStrict, config.EnvSortOnSave,
		config.EnvLogLevel, config.EnvLogFormat, config.EnvLogTimestamps, config.EnvLogCaller,
	} {
		t.Setenv(name, "")
	}
	// Keep test output clean.
	t.Setenv(config.EnvLogLevel, "error")

	dir := t.TempDir()
	chdir(t, dir)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	return wd
}

func writeTodo(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, config.DefaultTodoFile)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	return string(data)
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return captureStdout(t, func() error {
		return Run(context.Background(), args)
	})
}

// TestRun tests the main Run function.
func TestRun(t *testing.T) {
	t.Run("shows help with --help flag", func(t *testing.T) {
		setupProject(t)
		out, err := run(t, "--help")
		if err != nil {
			t.Errorf("expected no error with --help, got %v", err)
		}
		if !strings.Contains(out, "Commands:") {
			t.Errorf("help output missing commands:\n%s", out)
		}
	})

	t.Run("shows help with -h flag", func(t *testing.T) {
		setupProject(t)
		if _, err := run(t, "-h"); err != nil {
			t.Errorf("expected no error with -h, got %v", err)
		}
	})

	t.Run("shows version with -v flag", func(t *testing.T) {
		setupProject(t)
		out, err := run(t, "-v")
		if err != nil {
			t.Errorf("expected no error with -v, got %v", err)
		}
		if !strings.Contains(out, "todotxt version "+Version) {
			t.Errorf("version output = %q", out)
		}
	})

	t.Run("shows version with version command", func(t *testing.T) {
		setupProject(t)
		if _, err := run(t, "version"); err != nil {
			t.Errorf("expected no error with version command, got %v", err)
		}
	})

	t.Run("shows help with help command", func(t *testing.T) {
		setupProject(t)
		if _, err := run(t, "help"); err != nil {
			t.Errorf("expected no error with help command, got %v", err)
		}
	})

	t.Run("unknown command returns error", func(t *testing.T) {
		setupProject(t)
		_, err := run(t, "unknown-command")
		if err == nil || !strings.Contains(err.Error(), "unknown command") {
			t.Errorf("expected 'unknown command' error, got %v", err)
		}
	})

	t.Run("bad global flag value returns config error", func(t *testing.T) {
		setupProject(t)
		_, err := run(t, "-log-format", "xml", "ls")
		if err == nil || !strings.Contains(err.Error(), "loading config") {
			t.Errorf("expected config error, got %v", err)
		}
	})

	t.Run("ls without todo file shows reasonable error", func(t *testing.T) {
		setupProject(t)
		_, err := run(t, "ls")
		if err == nil || !strings.Contains(err.Error(), "loading todo file") {
			t.Errorf("expected load error, got %v", err)
		}
	})

	t.Run("default command is ls", func(t *testing.T) {
		dir := setupProject(t)
		writeTodo(t, dir, "only task\n")
		out, err := run(t)
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		if out != "only task\n" {
			t.Errorf("output = %q, want %q", out, "only task\n")
		}
	})
}

func TestAddCommand(t *testing.T) {
	t.Run("creates missing file", func(t *testing.T) {
		dir := setupProject(t)

		out, err := run(t, "add", "(B)", "call", "mom", "+family")
		if err != nil {
			t.Fatalf("add error = %v", err)
		}
		if out != "(B) call mom +family\n" {
			t.Errorf("output = %q", out)
		}
		got := readFile(t, filepath.Join(dir, config.DefaultTodoFile))
		if got != "(B) call mom +family\n" {
			t.Errorf("file = %q", got)
		}
	})

	t.Run("appends to existing file", func(t *testing.T) {
		dir := setupProject(t)
		path := writeTodo(t, dir, "first\n\nsecond\n")

		if _, err := run(t, "add", "third   with  spaces"); err != nil {
			t.Fatalf("add error = %v", err)
		}
		if got := readFile(t, path); got != "first\nsecond\nthird with spaces\n" {
			t.Errorf("file = %q", got)
		}
	})

	t.Run("sort on save", func(t *testing.T) {
		dir := setupProject(t)
		path := writeTodo(t, dir, "plain\n(C) c\n")

		if _, err := run(t, "-sort-on-save", "add", "(A) urgent"); err != nil {
			t.Fatalf("add error = %v", err)
		}
		if got := readFile(t, path); got != "(A) urgent\n(C) c\nplain\n" {
			t.Errorf("file = %q", got)
		}
	})

	t.Run("custom file flag", func(t *testing.T) {
		dir := setupProject(t)

		if _, err := run(t, "add", "-file", "work.txt", "ship it"); err != nil {
			t.Fatalf("add error = %v", err)
		}
		if got := readFile(t, filepath.Join(dir, "work.txt")); got != "ship it\n" {
			t.Errorf("file = %q", got)
		}
	})

	t.Run("strict rejects invalid line and keeps file", func(t *testing.T) {
		dir := setupProject(t)
		path := writeTodo(t, dir, "keep me\n")

		_, err := run(t, "-strict", "add", "(a)", "lowercase")
		if err == nil || !strings.Contains(err.Error(), "invalid priority") {
			t.Fatalf("expected invalid priority error, got %v", err)
		}
		if got := readFile(t, path); got != "keep me\n" {
			t.Errorf("file changed: %q", got)
		}
	})

	t.Run("requires text", func(t *testing.T) {
		setupProject(t)
		if _, err := run(t, "add"); err == nil {
			t.Error("expected error for add without text")
		}
	})
}

func TestLsCommand(t *testing.T) {
	content := strings.Join([]string{
		"plain task @home",
		"(C) third +work",
		"x (A) 2024-03-20 2024-01-01 done thing +work @office",
		"(A) first +work @office",
	}, "\n") + "\n"

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "file order",
			args: []string{"ls"},
			want: content,
		},
		{
			name: "sorted",
			args: []string{"ls", "-sort"},
			want: "x (A) 2024-03-20 2024-01-01 done thing +work @office\n(A) first +work @office\n(C) third +work\nplain task @home\n",
		},
		{
			name: "numbered keeps file positions",
			args: []string{"ls", "-n", "-sort", "-pending"},
			want: "4 (A) first +work @office\n2 (C) third +work\n1 plain task @home\n",
		},
		{
			name: "project and context filters",
			args: []string{"ls", "-project", "+work", "-context", "office"},
			want: "x (A) 2024-03-20 2024-01-01 done thing +work @office\n(A) first +work @office\n",
		},
		{
			name: "done only",
			args: []string{"ls", "-done"},
			want: "x (A) 2024-03-20 2024-01-01 done thing +work @office\n",
		},
		{
			name: "no matches",
			args: []string{"ls", "-project", "garden"},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := setupProject(t)
			writeTodo(t, dir, content)

			out, err := run(t, tt.args...)
			if err != nil {
				t.Fatalf("ls error = %v", err)
			}
			if out != tt.want {
				t.Errorf("output:\n got  %q\n want %q", out, tt.want)
			}
		})
	}

	t.Run("done and pending conflict", func(t *testing.T) {
		dir := setupProject(t)
		writeTodo(t, dir, content)
		if _, err := run(t, "ls", "-done", "-pending"); err == nil {
			t.Error("expected error for -done with -pending")
		}
	})

	t.Run("explicit file argument", func(t *testing.T) {
		dir := setupProject(t)
		if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("elsewhere\n"), 0644); err != nil {
			t.Fatal(err)
		}
		out, err := run(t, "ls", "other.txt")
		if err != nil {
			t.Fatalf("ls error = %v", err)
		}
		if out != "elsewhere\n" {
			t.Errorf("output = %q", out)
		}
	})

	t.Run("too many arguments", func(t *testing.T) {
		setupProject(t)
		if _, err := run(t, "ls", "a.txt", "b.txt"); err == nil || !strings.Contains(err.Error(), "unexpected arguments") {
			t.Errorf("expected unexpected arguments error, got %v", err)
		}
	})
}

func TestSortCommand(t *testing.T) {
	dir := setupProject(t)
	path := writeTodo(t, dir, "none one\n(C) c\n(A) a\nnone two\n")

	out, err := run(t, "sort")
	if err != nil {
		t.Fatalf("sort error = %v", err)
	}
	if !strings.Contains(out, "Sorted 4 tasks") {
		t.Errorf("output = %q", out)
	}
	if got := readFile(t, path); got != "(A) a\n(C) c\nnone one\nnone two\n" {
		t.Errorf("file = %q", got)
	}
	assertNoTempFiles(t, dir)
}

func TestCheckCommand(t *testing.T) {
	t.Run("valid file passes", func(t *testing.T) {
		dir := setupProject(t)
		writeTodo(t, dir, "(A) fine\nx 2024-01-02 2024-01-01 done\n")

		out, err := run(t, "check", "-v")
		if err != nil {
			t.Fatalf("check error = %v\n%s", err, out)
		}
		for _, want := range []string{"Loaded 2 tasks", "Valid", "All checks passed", "2: x 2024-01-02 2024-01-01 done"} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("warnings do not fail", func(t *testing.T) {
		dir := setupProject(t)
		writeTodo(t, dir, "x 2024-01-01 2024-02-01 finished before it started\n")

		out, err := run(t, "check")
		if err != nil {
			t.Fatalf("check error = %v\n%s", err, out)
		}
		if !strings.Contains(out, "before it was created") {
			t.Errorf("expected warning:\n%s", out)
		}
	})

	t.Run("strict parse error fails", func(t *testing.T) {
		dir := setupProject(t)
		writeTodo(t, dir, "ok\n2024-02-30 impossible\n")

		out, err := run(t, "-strict", "check")
		if err == nil {
			t.Fatalf("expected check failure:\n%s", out)
		}
		if !strings.Contains(out, "line 2: invalid date") {
			t.Errorf("expected parse error with line number:\n%s", out)
		}
	})

	t.Run("missing file fails", func(t *testing.T) {
		setupProject(t)
		if _, err := run(t, "check"); err == nil {
			t.Error("expected failure for missing file")
		}
	})

	t.Run("schema violations fail", func(t *testing.T) {
		dir := setupProject(t)
		writeTodo(t, dir, "(A) has priority\nno priority\n")
		schema := `{
  "type": "object",
  "properties": {
    "items": {
      "type": "array",
      "items": {"type": "object", "required": ["priority"]}
    }
  }
}`
		if err := os.WriteFile(filepath.Join(dir, "todo.schema.json"), []byte(schema), 0644); err != nil {
			t.Fatal(err)
		}

		out, err := run(t, "-schema", "todo.schema.json", "check")
		if err == nil {
			t.Fatalf("expected schema failure:\n%s", out)
		}
		if !strings.Contains(out, "Validation failed") || !strings.Contains(out, "items[1]") {
			t.Errorf("expected schema error for items[1]:\n%s", out)
		}
	})

	t.Run("missing schema file fails", func(t *testing.T) {
		dir := setupProject(t)
		writeTodo(t, dir, "task\n")

		out, err := run(t, "-schema", "nope.json", "check")
		if err == nil {
			t.Fatalf("expected failure for missing schema:\n%s", out)
		}
		if !strings.Contains(out, "minimal checks") {
			t.Errorf("expected fallback warning:\n%s", out)
		}
	})
}

func TestExportCommand(t *testing.T) {
	content := "(A) 2024-01-01 call +mom\nplain\n"

	t.Run("json", func(t *testing.T) {
		dir := setupProject(t)
		writeTodo(t, dir, content)

		out, err := run(t, "export")
		if err != nil {
			t.Fatalf("export error = %v", err)
		}
		var records []todo.Record
		if err := json.Unmarshal([]byte(out), &records); err != nil {
			t.Fatalf("invalid json: %v\n%s", err, out)
		}
		if len(records) != 2 || records[0].Priority != "A" || records[0].CreationDate != "2024-01-01" {
			t.Errorf("records = %+v", records)
		}
	})

	t.Run("yaml", func(t *testing.T) {
		dir := setupProject(t)
		writeTodo(t, dir, content)

		out, err := run(t, "export", "-format", "yaml")
		if err != nil {
			t.Fatalf("export error = %v", err)
		}
		var records []todo.Record
		if err := yaml.Unmarshal([]byte(out), &records); err != nil {
			t.Fatalf("invalid yaml: %v\n%s", err, out)
		}
		if len(records) != 2 || records[1].Description != "plain" {
			t.Errorf("records = %+v", records)
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		dir := setupProject(t)
		writeTodo(t, dir, content)
		if _, err := run(t, "export", "-format", "csv"); err == nil {
			t.Error("expected error for unknown format")
		}
	})
}

func TestConfigCommand(t *testing.T) {
	t.Run("shows sources", func(t *testing.T) {
		dir := setupProject(t)
		if err := os.WriteFile(filepath.Join(dir, "todotxt.toml"), []byte("strict = true\n"), 0644); err != nil {
			t.Fatal(err)
		}

		out, err := run(t, "-sort-on-save", "config")
		if err != nil {
			t.Fatalf("config error = %v", err)
		}
		for _, want := range []string{"todotxt.toml", "project file", "flag", "environment", "default"} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("example", func(t *testing.T) {
		setupProject(t)
		out, err := run(t, "config", "-example")
		if err != nil {
			t.Fatalf("config error = %v", err)
		}
		if out != config.ExampleConfig() {
			t.Error("output does not match example config")
		}
	})
}

func TestInitCommand(t *testing.T) {
	t.Run("creates files", func(t *testing.T) {
		dir := setupProject(t)

		if _, err := run(t, "init"); err != nil {
			t.Fatalf("init error = %v", err)
		}
		if got := readFile(t, filepath.Join(dir, config.DefaultTodoFile)); got != "" {
			t.Errorf("todo file = %q, want empty", got)
		}
		if got := readFile(t, filepath.Join(dir, "todotxt.toml")); got != config.ExampleConfig() {
			t.Error("config file does not match example config")
		}
	})

	t.Run("skips existing files", func(t *testing.T) {
		dir := setupProject(t)
		path := writeTodo(t, dir, "existing\n")

		out, err := run(t, "init", "-skip-config")
		if err != nil {
			t.Fatalf("init error = %v", err)
		}
		if !strings.Contains(out, "Skipping") {
			t.Errorf("output = %q", out)
		}
		if got := readFile(t, path); got != "existing\n" {
			t.Errorf("todo file was overwritten without -force")
		}
		if _, err := os.Stat(filepath.Join(dir, "todotxt.toml")); !os.IsNotExist(err) {
			t.Error("-skip-config should not write todotxt.toml")
		}
	})
}

func TestTuiCommandRequiresTTY(t *testing.T) {
	dir := setupProject(t)
	writeTodo(t, dir, "task\n")

	_, err := run(t, "tui")
	if err == nil || !strings.Contains(err.Error(), "TTY") {
		t.Errorf("expected TTY error, got %v", err)
	}
}

func assertNoTempFiles(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if e.Name() != config.DefaultTodoFile {
			t.Errorf("unexpected file %s", e.Name())
		}
	}
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent to testing.T.Chdir from Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
