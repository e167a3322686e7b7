package line

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/bnema/agent-onboard/internal/domain"
	"github.com/bnema/agent-onboard/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var providerOptions = []ports.SelectOption{
	{Value: "openai", Label: "OpenAI", Hint: "ChatGPT sign-in or API key"},
	{Value: "anthropic", Label: "Anthropic"},
	{Value: "skip", Label: "Skip for now"},
}

func TestSelectAcceptsNumberOrValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		answer string
		want   string
	}{
		{name: "number", answer: "2\n", want: "anthropic"},
		{name: "value", answer: "openai\n", want: "openai"},
		{name: "value case-insensitive", answer: "SKIP\n", want: "skip"},
		{name: "surrounding whitespace", answer: "  1  \n", want: "openai"},
		{name: "no trailing newline", answer: "3", want: "skip"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			prompter := NewPrompter(strings.NewReader(tt.answer), &bytes.Buffer{})
			got, err := prompter.Select(context.Background(), ports.SelectRequest{Message: "Pick", Options: providerOptions})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSelectRepromptsOnInvalidAnswer(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	prompter := NewPrompter(strings.NewReader("9\nnope\n2\n"), out)

	got, err := prompter.Select(context.Background(), ports.SelectRequest{Message: "Model/auth provider", Options: providerOptions})
	require.NoError(t, err)
	assert.Equal(t, "anthropic", got)
	assert.Equal(t, 3, strings.Count(out.String(), "Model/auth provider"))
	assert.Contains(t, out.String(), `Invalid choice "nope".`)
	assert.Contains(t, out.String(), "1) OpenAI - ChatGPT sign-in or API key")
}

func TestSelectReturnsAbortedOnClosedInput(t *testing.T) {
	t.Parallel()

	prompter := NewPrompter(strings.NewReader(""), &bytes.Buffer{})

	_, err := prompter.Select(context.Background(), ports.SelectRequest{Message: "Pick", Options: providerOptions})
	require.ErrorIs(t, err, domain.ErrPromptAborted)
}

func TestSequentialPromptsShareBufferedInput(t *testing.T) {
	t.Parallel()

	prompter := NewPrompter(strings.NewReader("1\nsk-abc\n"), &bytes.Buffer{})

	choice, err := prompter.Select(context.Background(), ports.SelectRequest{Message: "Pick", Options: providerOptions})
	require.NoError(t, err)
	assert.Equal(t, "openai", choice)

	key, err := prompter.Text(context.Background(), ports.TextRequest{Message: "Enter OpenAI API key", Mask: true})
	require.NoError(t, err)
	assert.Equal(t, "sk-abc", key)
}

func TestNoteWritesTitleAndMessage(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	prompter := NewPrompter(strings.NewReader(""), out)

	require.NoError(t, prompter.Note(context.Background(), "No auth methods available for that provider.", "Model/auth choice"))
	assert.Equal(t, "[Model/auth choice] No auth methods available for that provider.\n", out.String())
}

func TestCanceledContextStopsPrompt(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	prompter := NewPrompter(strings.NewReader("1\n"), &bytes.Buffer{})
	_, err := prompter.Select(ctx, ports.SelectRequest{Message: "Pick", Options: providerOptions})
	require.ErrorIs(t, err, context.Canceled)
}
