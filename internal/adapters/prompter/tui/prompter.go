package tui

import (
	"context"
	"fmt"
	"io"

	"github.com/bnema/agent-onboard/internal/domain"
	"github.com/bnema/agent-onboard/internal/ports"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Prompter runs one bubbletea program per prompt on a terminal.
type Prompter struct {
	in     io.Reader
	out    io.Writer
	styles styles
}

var _ ports.Prompter = (*Prompter)(nil)

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: in, out: out, styles: newStyles()}
}

func (p *Prompter) Select(ctx context.Context, req ports.SelectRequest) (string, error) {
	if len(req.Options) == 0 {
		return "", fmt.Errorf("select %q: no options", req.Message)
	}

	final, err := p.run(ctx, newSelectModel(req))
	if err != nil {
		return "", err
	}

	result, ok := final.(selectModel)
	if !ok {
		return "", fmt.Errorf("unexpected final select model type %T", final)
	}
	if result.aborted {
		return "", domain.ErrPromptAborted
	}

	return result.value(), nil
}

func (p *Prompter) Text(ctx context.Context, req ports.TextRequest) (string, error) {
	final, err := p.run(ctx, newTextModel(req))
	if err != nil {
		return "", err
	}

	result, ok := final.(textModel)
	if !ok {
		return "", fmt.Errorf("unexpected final text model type %T", final)
	}
	if result.aborted {
		return "", domain.ErrPromptAborted
	}

	return result.value(), nil
}

func (p *Prompter) Note(ctx context.Context, message string, title string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := fmt.Fprintln(p.out, renderNote(message, title, p.styles))
	return err
}

func (p *Prompter) run(ctx context.Context, model tea.Model) (tea.Model, error) {
	program := tea.NewProgram(
		model,
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
		tea.WithContext(ctx),
	)

	return program.Run()
}

func renderNote(message string, title string, s styles) string {
	body := s.noteBody.Render(message)
	if title != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, s.noteTitle.Render(title), body)
	}

	return s.noteBox.Render(body)
}
