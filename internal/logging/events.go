package logging

import "github.com/charmbracelet/log"

// Event describes something that happened to a task file.
type Event struct {
	Type    string // load, save, add, sort, reload, error
	Path    string
	Items   int
	Line    int // 1-based line number for parse errors
	Content string
	Err     error
}

// EventWriter logs file events at a level chosen by event type.
type EventWriter struct {
	logger *log.Logger
}

// NewEventWriter wraps logger.
func NewEventWriter(logger *log.Logger) *EventWriter {
	return &EventWriter{logger: logger}
}

// Logger returns the underlying logger.
func (w *EventWriter) Logger() *log.Logger {
	return w.logger
}

// Write logs event. A nil writer discards it.
func (w *EventWriter) Write(event Event) {
	if w == nil || w.logger == nil {
		return
	}
	msg := formatMessage(event)
	fields := extractFields(event)

	switch event.Type {
	case "error":
		w.logger.Error(msg, fields...)
	case "save", "add", "sort":
		w.logger.Info(msg, fields...)
	default:
		w.logger.Debug(msg, fields...)
	}
}

func extractFields(event Event) []any {
	var fields []any
	if event.Path != "" {
		fields = append(fields, "path", event.Path)
	}
	if event.Items > 0 {
		fields = append(fields, "items", event.Items)
	}
	if event.Line > 0 {
		fields = append(fields, "line", event.Line)
	}
	if event.Err != nil {
		fields = append(fields, "err", event.Err)
	}
	return fields
}

func formatMessage(event Event) string {
	if event.Content != "" {
		return event.Content
	}
	switch event.Type {
	case "load":
		return "Loaded tasks"
	case "save":
		return "Saved tasks"
	case "add":
		return "Added task"
	case "sort":
		return "Sorted tasks"
	case "reload":
		return "Reloaded tasks"
	case "error":
		return "Error"
	default:
		return event.Type
	}
}
