package compat

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/quelltext/tuilog/pkg/tuilog"
)

// RefreshMsg triggers a buffer re-read in a LogModel. The model schedules
// these itself; hosts only need to forward them through their Update.
type RefreshMsg time.Time

// LogModel renders a tuilog buffer inside a bubbletea program. It is a
// component in the bubbles style: embed it in the host model and forward
// messages to Update. It follows the newest entries until the user scrolls
// up, and resumes following when scrolled back to the bottom (or on
// "G"/"end").
type LogModel struct {
	handle   *tuilog.Handle
	interval time.Duration

	width   int
	height  int
	offset  int
	follow  bool
	entries []tuilog.Entry
}

// NewLogModel creates a log view model over the given handle.
func NewLogModel(handle *tuilog.Handle) LogModel {
	return LogModel{
		handle:   handle,
		interval: 100 * time.Millisecond,
		follow:   true,
	}
}

// Init returns the command that starts the refresh cycle. Call it from
// the host model's Init.
func (m LogModel) Init() tea.Cmd {
	return m.refreshAfter()
}

// Update handles refresh ticks, window sizing and scroll keys. It returns
// the updated component and, after a refresh, the next tick command.
func (m LogModel) Update(msg tea.Msg) (LogModel, tea.Cmd) {
	switch msg := msg.(type) {
	case RefreshMsg:
		m.entries = m.handle.Snapshot()
		m.clampOffset()
		return m, m.refreshAfter()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampOffset()

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			m.scrollBy(-1)
		case "down", "j":
			m.scrollBy(1)
		case "pgup":
			m.scrollBy(-m.pageSize())
		case "pgdown":
			m.scrollBy(m.pageSize())
		case "home", "g":
			m.follow = false
			m.offset = 0
		case "end", "G":
			m.follow = true
		}
	}
	return m, nil
}

// View renders the visible page, one lipgloss-colored line per entry.
func (m LogModel) View() string {
	visible := m.visible()
	lines := make([]string, len(visible))
	for i, e := range visible {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(e.Color.Hex()))
		lines[i] = style.Render(e.Text)
	}
	return strings.Join(lines, "\n")
}

// Following reports whether the view is tracking the newest entries.
func (m LogModel) Following() bool {
	return m.follow
}

func (m LogModel) refreshAfter() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return RefreshMsg(t)
	})
}

func (m LogModel) pageSize() int {
	if m.height <= 0 {
		return 1
	}
	return m.height
}

func (m *LogModel) scrollBy(delta int) {
	if m.follow {
		// Leaving follow mode: anchor at the current top line.
		m.offset = m.maxOffset()
	}
	m.follow = false
	m.offset += delta
	m.clampOffset()
	if m.offset >= m.maxOffset() {
		m.follow = true
	}
}

func (m *LogModel) clampOffset() {
	if m.offset < 0 {
		m.offset = 0
	}
	if max := m.maxOffset(); m.offset > max {
		m.offset = max
	}
}

func (m LogModel) maxOffset() int {
	max := len(m.entries) - m.pageSize()
	if max < 0 {
		return 0
	}
	return max
}

func (m LogModel) visible() []tuilog.Entry {
	if len(m.entries) == 0 {
		return nil
	}
	start := m.offset
	if m.follow {
		start = m.maxOffset()
	}
	end := start + m.pageSize()
	if end > len(m.entries) {
		end = len(m.entries)
	}
	return m.entries[start:end]
}
