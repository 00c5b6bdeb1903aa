// Package ui provides the interactive terminal editor for task files.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nibzard/todotxt-go/internal/config"
	"github.com/nibzard/todotxt-go/internal/logging"
)

// Option configures the editor.
type Option func(*Model)

// WithEvents logs load and save events to w.
func WithEvents(w *logging.EventWriter) Option {
	return func(m *Model) {
		m.events = w
	}
}

// WithoutWatch disables reloading on external file changes.
func WithoutWatch() Option {
	return func(m *Model) {
		m.watch = false
	}
}

// Run starts the editor on the task file at path.
func Run(ctx context.Context, cfg *config.Config, path string, opts ...Option) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}

	model := NewModel(cfg, path, opts...)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	finalModel, err := program.Run()
	if err != nil {
		return err
	}
	if m, ok := finalModel.(*Model); ok && m.dirty {
		return fmt.Errorf("quit with unsaved changes to %s", m.path)
	}
	return nil
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
