package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nibzard/todotxt-go/internal/todo"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	selectedStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("238"))
	doneStyle      = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	projectStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	contextStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpKeyStyle   = lipgloss.NewStyle().Bold(true)
	priorityStyles = map[todo.Priority]lipgloss.Style{
		'A': lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		'B': lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		'C': lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	}
)

func (m *Model) View() string {
	var b strings.Builder
	m.writeHeader(&b)

	if m.showHelp {
		writeHelp(&b)
		return b.String()
	}

	switch {
	case m.loadErr != nil:
		b.WriteString("Error loading todo file:\n")
		b.WriteString("  " + m.loadErr.Error() + "\n\n")
	case m.list.Len() == 0:
		b.WriteString("  No tasks. Press a to add one.\n\n")
	case len(m.visible) == 0:
		b.WriteString("  No tasks match the filter.\n\n")
	default:
		m.writeItems(&b)
	}

	switch m.mode {
	case modeAdd:
		b.WriteString("Add: " + m.input.View() + "\n")
	case modeFilter:
		b.WriteString("Filter: " + m.input.View() + "\n")
	}

	m.writeStatus(&b)
	writeFooter(&b, m.mode)
	return b.String()
}

func (m *Model) writeHeader(b *strings.Builder) {
	title := "todo.txt"
	if m.dirty {
		title += " [modified]"
	}
	b.WriteString(titleStyle.Render(title) + "  " + statusStyle.Render(m.path) + "\n")
	if m.filter != "" && m.mode != modeFilter {
		b.WriteString(statusStyle.Render(fmt.Sprintf("filter: %q (esc to clear)", m.filter)) + "\n")
	}
	b.WriteString("\n")
}

func (m *Model) writeItems(b *strings.Builder) {
	start, end := m.window()
	for row := start; row < end; row++ {
		item := m.list.Item(m.visible[row])
		line := renderItem(item)
		if row == m.cursor {
			line = selectedStyle.Render("> " + item.String())
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	if end-start < len(m.visible) {
		b.WriteString(statusStyle.Render(fmt.Sprintf("  %d-%d of %d", start+1, end, len(m.visible))) + "\n")
	}
	b.WriteString("\n")
}

// window returns the visible row range that keeps the cursor on screen.
func (m *Model) window() (int, int) {
	rows := len(m.visible)
	// header, status, footer and input take about eight lines
	capacity := m.height - 8
	if m.height == 0 || capacity >= rows {
		return 0, rows
	}
	if capacity < 1 {
		capacity = 1
	}
	start := m.cursor - capacity/2
	if start < 0 {
		start = 0
	}
	if start+capacity > rows {
		start = rows - capacity
	}
	return start, start + capacity
}

// renderItem styles a task line. Completed tasks are dimmed as a whole.
func renderItem(item todo.Item) string {
	line := item.String()
	if item.Completed {
		return doneStyle.Render(line)
	}

	words := strings.Split(line, " ")
	for i, w := range words {
		switch {
		case i == 0 && item.Priority.IsSet():
			if style, ok := priorityStyles[item.Priority]; ok {
				words[i] = style.Render(w)
			}
		case len(w) > 1 && w[0] == '+':
			words[i] = projectStyle.Render(w)
		case len(w) > 1 && w[0] == '@':
			words[i] = contextStyle.Render(w)
		}
	}
	return strings.Join(words, " ")
}

func (m *Model) writeStatus(b *strings.Builder) {
	if m.status == "" {
		return
	}
	if m.statusErr {
		b.WriteString(errorStyle.Render(m.status) + "\n")
		return
	}
	b.WriteString(statusStyle.Render(m.status) + "\n")
}

func writeHelp(b *strings.Builder) {
	keys := [][2]string{
		{"a", "Add a task"},
		{"p", "Sort by priority"},
		{"s", "Save"},
		{"/", "Fuzzy filter by description"},
		{"esc", "Clear filter"},
		{"r", "Reload from disk, dropping changes"},
		{"j/k", "Move down/up"},
		{"h, ?", "Toggle this help screen"},
		{"q", "Quit"},
	}
	b.WriteString("Keyboard Shortcuts\n\n")
	for _, k := range keys {
		b.WriteString(fmt.Sprintf("  %s %s\n", helpKeyStyle.Render(fmt.Sprintf("%-6s", k[0])), k[1]))
	}
	b.WriteString("\n")
}

func writeFooter(b *strings.Builder, mode mode) {
	switch mode {
	case modeAdd:
		b.WriteString(statusStyle.Render("enter add | esc cancel"))
	case modeFilter:
		b.WriteString(statusStyle.Render("enter keep filter | esc clear"))
	default:
		b.WriteString(statusStyle.Render("a add | p sort | s save | / filter | ? help | q quit"))
	}
	b.WriteString("\n")
}
