package line

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bnema/agent-onboard/internal/domain"
	"github.com/bnema/agent-onboard/internal/ports"
)

// Prompter reads one answer per line. It serves piped stdin, where a
// terminal UI cannot run.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

var _ ports.Prompter = (*Prompter)(nil)

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Select accepts either the 1-based option number or the option value.
// Unrecognised answers are reported and asked again.
func (p *Prompter) Select(ctx context.Context, req ports.SelectRequest) (string, error) {
	if len(req.Options) == 0 {
		return "", fmt.Errorf("select %q: no options", req.Message)
	}

	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		p.printf("%s\n", req.Message)
		for i, option := range req.Options {
			if option.Hint != "" {
				p.printf("  %d) %s - %s\n", i+1, option.Label, option.Hint)
				continue
			}
			p.printf("  %d) %s\n", i+1, option.Label)
		}
		p.printf("> ")

		answer, err := p.readLine()
		if err != nil {
			return "", err
		}

		if value, ok := matchOption(req.Options, answer); ok {
			return value, nil
		}
		p.printf("Invalid choice %q.\n", answer)
	}
}

func (p *Prompter) Text(ctx context.Context, req ports.TextRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if req.Placeholder != "" {
		p.printf("%s (%s)\n> ", req.Message, req.Placeholder)
	} else {
		p.printf("%s\n> ", req.Message)
	}

	return p.readLine()
}

func (p *Prompter) Note(ctx context.Context, message string, title string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if title != "" {
		p.printf("[%s] %s\n", title, message)
		return nil
	}
	p.printf("%s\n", message)
	return nil
}

func (p *Prompter) readLine() (string, error) {
	raw, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && raw != "" {
			return strings.TrimSpace(raw), nil
		}
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("%w: input closed", domain.ErrPromptAborted)
		}
		return "", fmt.Errorf("read answer: %w", err)
	}

	return strings.TrimSpace(raw), nil
}

func (p *Prompter) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}

func matchOption(options []ports.SelectOption, answer string) (string, bool) {
	if answer == "" {
		return "", false
	}

	if index, err := strconv.Atoi(answer); err == nil {
		if index >= 1 && index <= len(options) {
			return options[index-1].Value, true
		}
		return "", false
	}

	for _, option := range options {
		if strings.EqualFold(option.Value, answer) {
			return option.Value, true
		}
	}

	return "", false
}
