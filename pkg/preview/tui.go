package preview

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ViewMode represents the current view mode
type ViewMode int

// View modes for the preview TUI
const (
	ListViewMode ViewMode = iota
	DetailViewMode
	RawViewMode
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("12")).
			Bold(true)

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// Model represents the Bubble Tea model for the preview TUI
type Model struct {
	entries       []Entry
	cursor        int
	viewMode      ViewMode
	feedName      string
	width         int
	height        int
	selectedIndex int // Index of the entry currently being viewed in detail
}

// NewModel creates a new preview model
func NewModel(entries []Entry, feedName string) Model {
	return Model{
		entries:       entries,
		viewMode:      ListViewMode,
		feedName:      feedName,
		selectedIndex: -1,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch m.viewMode {
		case ListViewMode:
			return m.updateListView(msg)
		case DetailViewMode, RawViewMode:
			return m.updateDetailView(msg)
		}
	}

	return m, nil
}

// updateListView handles key presses in list view mode
func (m Model) updateListView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}

	case "enter":
		m.selectedIndex = m.cursor
		m.viewMode = DetailViewMode

	case "r":
		m.selectedIndex = m.cursor
		m.viewMode = RawViewMode
	}

	return m, nil
}

// updateDetailView handles key presses in detail/raw view modes
func (m Model) updateDetailView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.viewMode = ListViewMode

	case "r":
		if m.viewMode == DetailViewMode {
			m.viewMode = RawViewMode
		} else {
			m.viewMode = DetailViewMode
		}
	}

	return m, nil
}

// View implements tea.Model
func (m Model) View() string {
	switch m.viewMode {
	case ListViewMode:
		return m.renderListView()
	case DetailViewMode:
		return m.renderDetailView()
	case RawViewMode:
		return m.renderRawView()
	}
	return ""
}

// visibleRange keeps the cursor near the middle of the screen when the list is taller than the window
func (m Model) visibleRange() (int, int) {
	start, end := 0, len(m.entries)
	if m.height <= 0 {
		return start, end
	}

	maxVisible := m.height - 6 // header, footer and padding
	if maxVisible <= 0 || maxVisible >= len(m.entries) {
		return start, end
	}

	start = max(m.cursor-maxVisible/2, 0)
	end = start + maxVisible
	if end > len(m.entries) {
		end = len(m.entries)
		start = max(end-maxVisible, 0)
	}
	return start, end
}

func (m Model) renderListView() string {
	var b strings.Builder

	header := fmt.Sprintf("Feed Preview - %s (%d items)", m.feedName, len(m.entries))
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n\n")

	start, end := m.visibleRange()
	for i := start; i < end; i++ {
		line := FormatCompactListItem(i, m.entries[i])
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("→ " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(footerStyle.Render("↑/↓ or j/k: navigate • enter: view details • r: raw view • q: quit"))

	return b.String()
}

func (m Model) renderDetailView() string {
	if m.selectedIndex < 0 || m.selectedIndex >= len(m.entries) {
		return "No item selected"
	}

	var b strings.Builder
	b.WriteString(FormatDetailedItem(m.entries[m.selectedIndex]))
	b.WriteString("\n")
	b.WriteString(footerStyle.Render("esc: back to list • r: toggle raw view • q: quit"))

	return b.String()
}

func (m Model) renderRawView() string {
	if m.selectedIndex < 0 || m.selectedIndex >= len(m.entries) {
		return "No item selected"
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("Raw Entry Preview"))
	b.WriteString("\n\n")
	b.WriteString(FormatRawEntry(m.entries[m.selectedIndex]))
	b.WriteString("\n")
	b.WriteString(footerStyle.Render("esc: back to list • r: toggle detail view • q: quit"))

	return b.String()
}

// Run starts the Bubble Tea program
func Run(entries []Entry, feedName string) error {
	if len(entries) == 0 {
		fmt.Println("No items to preview")
		return nil
	}

	p := tea.NewProgram(NewModel(entries, feedName), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
