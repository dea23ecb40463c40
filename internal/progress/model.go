// Package progress provides the Bubble Tea progress bar shown while a
// dictionary is scanned.
package progress

import (
	"fmt"
	"strings"

	progressBar "github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	padding  = 2
	maxWidth = 60
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

type updateMsg struct {
	done  int
	total int
}

type finishMsg struct{}

// Model implements the Bubble Tea scan progress view.
type Model struct {
	title    string
	bar      progressBar.Model
	done     int
	total    int
	finished bool
}

// NewModel constructs a progress model captioned with title.
func NewModel(title string) *Model {
	return &Model{
		title: title,
		bar:   progressBar.New(progressBar.WithDefaultGradient()),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.bar.Width = min(msg.Width-padding*2, maxWidth)
		if m.bar.Width < 1 {
			m.bar.Width = 1
		}
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		return m, nil
	case updateMsg:
		m.done = msg.done
		m.total = msg.total
		return m, nil
	case finishMsg:
		m.finished = true
		return m, tea.Quit
	default:
		return m, nil
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.finished {
		return ""
	}
	pad := strings.Repeat(" ", padding)
	return pad + titleStyle.Render(m.title) + "\n" +
		pad + m.bar.ViewAs(m.percent()) + "\n" +
		pad + footerStyle.Render(m.renderFooter()) + "\n"
}

func (m *Model) percent() float64 {
	if m.total <= 0 {
		return 0
	}
	return float64(m.done) / float64(m.total)
}

func (m *Model) renderFooter() string {
	return fmt.Sprintf("%d/%d words", m.done, m.total)
}
