package todo

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/natefinch/atomic"
)

// maxLineSize bounds a single task line.
const maxLineSize = 1024 * 1024

// newFilePerm is applied to task files created by Save.
const newFilePerm = 0644

// Load reads a task file. Blank lines are skipped; the first line that
// fails to parse aborts the load and no items are returned.
func Load(path string, opts ...ListOption) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	l, err := Read(f, opts...)
	if err != nil {
		var ioErr *IOError
		if errors.As(err, &ioErr) && ioErr.Path == "" {
			ioErr.Path = path
		}
		return nil, err
	}
	return l, nil
}

// LoadOrEmpty is like Load but returns an empty list if path does not exist.
func LoadOrEmpty(path string, opts ...ListOption) (*List, error) {
	l, err := Load(path, opts...)
	if errors.Is(err, fs.ErrNotExist) {
		return NewList(opts...), nil
	}
	return l, err
}

// Read parses task lines from r.
func Read(r io.Reader, opts ...ListOption) (*List, error) {
	l := NewList(opts...)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		item, err := l.parser.Parse(line)
		if err != nil {
			var pe *ParseError
			if errors.As(err, &pe) {
				pe.Line = lineNo
				pe.Text = line
			}
			return nil, err
		}
		l.items = append(l.items, item)
	}
	if err := scanner.Err(); err != nil {
		return nil, &IOError{Op: "read", Err: err}
	}

	return l, nil
}

// WriteTo writes one line per item to w. Every item is formatted before
// anything is written, so a FormatError leaves w untouched.
func (l *List) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	if err := l.render(&buf); err != nil {
		return 0, err
	}
	n, err := buf.WriteTo(w)
	if err != nil {
		return n, &IOError{Op: "write", Err: err}
	}
	return n, nil
}

// Save writes the list to path atomically. The lines go to a temporary file
// in the same directory, which then replaces path with a rename. If anything
// fails, path keeps its previous contents.
func (l *List) Save(path string) error {
	var buf bytes.Buffer
	if err := l.render(&buf); err != nil {
		return err
	}
	return writeAtomic(path, &buf)
}

func (l *List) render(buf *bytes.Buffer) error {
	for i, item := range l.items {
		line, err := item.Format()
		if err != nil {
			var fe *FormatError
			if errors.As(err, &fe) {
				fe.Index = i
			}
			return err
		}
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	return nil
}

// writeAtomic replaces path with the contents of r. atomic.WriteFile removes
// its temporary file on failure.
func writeAtomic(path string, r io.Reader) error {
	_, statErr := os.Stat(path)
	existed := statErr == nil

	if err := atomic.WriteFile(path, r); err != nil {
		return &IOError{Op: "save", Path: path, Err: err}
	}
	if !existed {
		// Temp files are created 0600; give new task files the usual mode.
		if err := os.Chmod(path, newFilePerm); err != nil {
			return &IOError{Op: "save", Path: path, Err: err}
		}
	}
	return nil
}
