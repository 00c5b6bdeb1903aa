package todo

import (
	"errors"
	"fmt"
)

// Parse error kinds. Match them with errors.Is.
var (
	ErrInvalidPriority = errors.New("invalid priority")
	ErrInvalidDate     = errors.New("invalid date")
	ErrEmptyLine       = errors.New("line is empty")
	ErrMalformed       = errors.New("malformed line")
	ErrUnknown         = errors.New("unknown parse error")
)

// ErrCompletionWithoutCreation is returned when formatting an item that has a
// completion date but no creation date. The line could not be parsed back.
var ErrCompletionWithoutCreation = errors.New("completion date set without creation date")

// ParseError reports why a single line could not be parsed.
type ParseError struct {
	Line int    // 1-based line number, 0 when parsing a lone line
	Text string // offending line or token
	Kind error  // one of the Err* kinds above
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s: %q", e.Line, e.Kind, e.Text)
	}
	return fmt.Sprintf("%s: %q", e.Kind, e.Text)
}

// Unwrap returns the error kind.
func (e *ParseError) Unwrap() error {
	return e.Kind
}

// IOError reports a failure to open, read, or write a task file.
type IOError struct {
	Op   string // "open", "read", "write" or "save"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %s", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *IOError) Unwrap() error {
	return e.Err
}

// FormatError reports an item that cannot be rendered as a line.
type FormatError struct {
	Index int // position in the list, -1 for a lone item
	Err   error
}

func (e *FormatError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("format item %d: %s", e.Index, e.Err)
	}
	return fmt.Sprintf("format item: %s", e.Err)
}

// Unwrap returns the underlying error.
func (e *FormatError) Unwrap() error {
	return e.Err
}
