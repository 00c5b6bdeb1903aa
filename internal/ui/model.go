package ui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/nibzard/todotxt-go/internal/config"
	"github.com/nibzard/todotxt-go/internal/logging"
	"github.com/nibzard/todotxt-go/internal/todo"
)

type mode int

const (
	modeList mode = iota
	modeAdd
	modeFilter
)

// Model is the bubbletea model for the task editor.
type Model struct {
	path       string
	strict     bool
	sortOnSave bool
	watch      bool
	events     *logging.EventWriter

	list    *todo.List
	loadErr error
	visible []int // indices into list, in display order
	cursor  int

	mode   mode
	input  textinput.Model
	filter string

	dirty       bool
	confirmQuit bool
	showHelp    bool
	status      string
	statusErr   bool

	width  int
	height int
}

// NewModel creates an editor for path and loads it. A missing file starts
// an empty list.
func NewModel(cfg *config.Config, path string, opts ...Option) *Model {
	if path == "" {
		path = cfg.TodoFile
	}
	input := textinput.New()
	input.CharLimit = 0
	input.Width = 60

	m := &Model{
		path:       path,
		strict:     cfg.Strict,
		sortOnSave: cfg.SortOnSave,
		watch:      true,
		input:      input,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.reload()
	return m
}

func (m *Model) Init() tea.Cmd {
	if !m.watch {
		return nil
	}
	return watchCmd(m.path)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case fileChangedMsg:
		m.onFileChanged()
		return m, m.rewatch()
	case watchErrMsg:
		m.setError(fmt.Errorf("watch stopped: %w", msg.err))
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case modeAdd:
			return m.updateAdd(msg)
		case modeFilter:
			return m.updateFilter(msg)
		default:
			return m.updateList(msg)
		}
	}
	return m, nil
}

func (m *Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key != "q" {
		m.confirmQuit = false
	}

	switch key {
	case "ctrl+c":
		return m, tea.Quit
	case "q":
		if m.dirty && !m.confirmQuit {
			m.confirmQuit = true
			m.setStatus("Unsaved changes. Press q again to quit, s to save.")
			return m, nil
		}
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
	case "home", "g":
		m.cursor = 0
	case "end", "G":
		m.cursor = max(len(m.visible)-1, 0)
	case "a":
		if m.list == nil {
			m.setError(errors.New("cannot add: file failed to load, press r to retry"))
			return m, nil
		}
		m.mode = modeAdd
		m.input.Reset()
		m.input.Placeholder = "(A) 2024-01-01 Call mom +family @phone"
		return m, m.input.Focus()
	case "/":
		if m.list == nil {
			return m, nil
		}
		m.mode = modeFilter
		m.input.SetValue(m.filter)
		m.input.CursorEnd()
		m.input.Placeholder = "filter"
		return m, m.input.Focus()
	case "esc":
		if m.filter != "" {
			m.filter = ""
			m.applyFilter()
		}
	case "p":
		m.sort()
	case "s":
		m.save()
	case "r":
		m.reload()
	case "?", "h":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

func (m *Model) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeList
		m.input.Blur()
		m.input.Reset()
		return m, nil
	case "enter":
		line := m.input.Value()
		if err := m.list.Add(line); err != nil {
			// Keep the input so the line can be fixed.
			m.setError(err)
			return m, nil
		}
		m.dirty = true
		m.mode = modeList
		m.input.Blur()
		m.input.Reset()
		m.applyFilter()
		m.selectIndex(m.list.Len() - 1)
		m.setStatus("Added: " + m.list.Item(m.list.Len()-1).String())
		m.events.Write(logging.Event{Type: "add", Path: m.path, Items: m.list.Len()})
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeList
		m.input.Blur()
		m.filter = ""
		m.applyFilter()
		return m, nil
	case "enter":
		m.mode = modeList
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.filter = m.input.Value()
	m.applyFilter()
	return m, cmd
}

// reload replaces the list with the file contents, dropping unsaved changes.
func (m *Model) reload() {
	list, err := todo.LoadOrEmpty(m.path, todo.WithStrict(m.strict))
	if err != nil {
		m.list = nil
		m.loadErr = err
		m.visible = nil
		m.cursor = 0
		m.setError(err)
		m.events.Write(logging.Event{Type: "error", Path: m.path, Line: parseLine(err), Err: err})
		return
	}
	m.list = list
	m.loadErr = nil
	m.dirty = false
	m.applyFilter()
	m.setStatus(fmt.Sprintf("Loaded %d tasks", list.Len()))
	m.events.Write(logging.Event{Type: "load", Path: m.path, Items: list.Len()})
}

func (m *Model) sort() {
	if m.list == nil {
		return
	}
	m.list.SortByPriority()
	m.dirty = true
	m.applyFilter()
	m.setStatus("Sorted by priority")
	m.events.Write(logging.Event{Type: "sort", Path: m.path, Items: m.list.Len()})
}

func (m *Model) save() {
	if m.list == nil {
		return
	}
	if m.sortOnSave {
		m.list.SortByPriority()
		m.applyFilter()
	}
	if err := m.list.Save(m.path); err != nil {
		m.setError(err)
		m.events.Write(logging.Event{Type: "error", Path: m.path, Err: err})
		return
	}
	m.dirty = false
	m.setStatus(fmt.Sprintf("Saved %d tasks to %s", m.list.Len(), m.path))
	m.events.Write(logging.Event{Type: "save", Path: m.path, Items: m.list.Len()})
}

func (m *Model) onFileChanged() {
	if m.dirty {
		m.setStatus("File changed on disk. Unsaved changes kept; press r to reload.")
		return
	}
	m.reload()
	if m.loadErr == nil {
		m.setStatus("Reloaded after external change")
		m.events.Write(logging.Event{Type: "reload", Path: m.path, Items: m.list.Len()})
	}
}

func (m *Model) rewatch() tea.Cmd {
	if !m.watch {
		return nil
	}
	return watchCmd(m.path)
}

// applyFilter rebuilds the visible rows. An empty filter shows every item in
// list order; otherwise rows are fuzzy matches on the description, best first.
func (m *Model) applyFilter() {
	m.visible = m.visible[:0]
	if m.list == nil {
		m.cursor = 0
		return
	}

	if m.filter == "" {
		for i := 0; i < m.list.Len(); i++ {
			m.visible = append(m.visible, i)
		}
	} else {
		descriptions := make([]string, m.list.Len())
		for i := range descriptions {
			descriptions[i] = m.list.Item(i).Description
		}
		for _, match := range fuzzy.Find(m.filter, descriptions) {
			m.visible = append(m.visible, match.Index)
		}
	}

	if m.cursor >= len(m.visible) {
		m.cursor = max(len(m.visible)-1, 0)
	}
}

// selectIndex moves the cursor to list index i when it is visible.
func (m *Model) selectIndex(i int) {
	for row, idx := range m.visible {
		if idx == i {
			m.cursor = row
			return
		}
	}
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(err error) {
	m.status = err.Error()
	m.statusErr = true
}

func parseLine(err error) int {
	var pe *todo.ParseError
	if errors.As(err, &pe) {
		return pe.Line
	}
	return 0
}
