package tui

import (
	"strings"

	"github.com/bnema/agent-onboard/internal/ports"
	tea "github.com/charmbracelet/bubbletea"
)

type selectModel struct {
	req     ports.SelectRequest
	styles  styles
	cursor  int
	chosen  int
	aborted bool
}

func newSelectModel(req ports.SelectRequest) selectModel {
	return selectModel{req: req, styles: newStyles(), chosen: -1}
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc":
		m.aborted = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		} else {
			m.cursor = len(m.req.Options) - 1
		}
	case "down", "j":
		if m.cursor < len(m.req.Options)-1 {
			m.cursor++
		} else {
			m.cursor = 0
		}
	case "home", "g":
		m.cursor = 0
	case "end", "G":
		m.cursor = len(m.req.Options) - 1
	case "enter":
		if len(m.req.Options) == 0 {
			return m, nil
		}
		m.chosen = m.cursor
		return m, tea.Quit
	}

	return m, nil
}

func (m selectModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.message.Render(m.req.Message))
	b.WriteString("\n")

	if m.chosen >= 0 {
		b.WriteString("  ")
		b.WriteString(m.styles.answer.Render(m.req.Options[m.chosen].Label))
		b.WriteString("\n")
		return b.String()
	}
	if m.aborted {
		return b.String()
	}

	for i, option := range m.req.Options {
		if i == m.cursor {
			b.WriteString(m.styles.cursor.Render("▸ "))
			b.WriteString(m.styles.selected.Render(option.Label))
			if option.Hint != "" {
				b.WriteString(m.styles.hint.Render("  " + option.Hint))
			}
		} else {
			b.WriteString("  ")
			b.WriteString(m.styles.option.Render(option.Label))
		}
		b.WriteString("\n")
	}
	b.WriteString(m.styles.help.Render("↑/↓ to move, enter to select, esc to cancel"))
	b.WriteString("\n")

	return b.String()
}

func (m selectModel) value() string {
	if m.chosen < 0 {
		return ""
	}

	return m.req.Options[m.chosen].Value
}
