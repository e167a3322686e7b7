package tui

import (
	"strings"

	"github.com/bnema/agent-onboard/internal/ports"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type textModel struct {
	req     ports.TextRequest
	styles  styles
	input   textinput.Model
	done    bool
	aborted bool
}

func newTextModel(req ports.TextRequest) textModel {
	input := textinput.New()
	input.Placeholder = req.Placeholder
	input.CharLimit = 512
	input.Width = 60
	if req.Mask {
		input.EchoMode = textinput.EchoPassword
		input.EchoCharacter = '•'
	}
	input.Focus()

	return textModel{req: req, styles: newStyles(), input: input}
}

func (m textModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m textModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m textModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.message.Render(m.req.Message))
	b.WriteString("\n")
	if m.done || m.aborted {
		return b.String()
	}
	b.WriteString(m.input.View())
	b.WriteString("\n")
	return b.String()
}

func (m textModel) value() string {
	return m.input.Value()
}
