package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fadedpez/tucojack/internal/logging"
)

var quitKeys = key.NewBinding(key.WithKeys("ctrl+c", "esc"))

// viewMsg carries a freshly rendered table into the program
type viewMsg string

// ViewMsg wraps a rendered table for Program.Send
func ViewMsg(view string) tea.Msg {
	return viewMsg(view)
}

// Model shows the last rendered table and forwards key presses. Keys are
// handled outside the program loop because handling them re-renders
// through Program.Send.
type Model struct {
	view     string
	keys     chan<- string
	quitting bool
}

// New creates a model showing view that forwards keys to keys
func New(view string, keys chan<- string) *Model {
	return &Model{
		view: view,
		keys: keys,
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case viewMsg:
		m.view = string(msg)

	case tea.KeyMsg:
		if key.Matches(msg, quitKeys) {
			m.quitting = true
			return m, tea.Quit
		}
		select {
		case m.keys <- msg.String():
		default:
			logging.Default.Debug("[TUI] Dropping key %q, input is busy", msg.String())
		}
	}
	return m, nil
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	return m.view + "\n"
}
