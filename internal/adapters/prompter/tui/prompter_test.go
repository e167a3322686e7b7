package tui

import (
	"bytes"
	"context"
	"testing"

	"github.com/bnema/agent-onboard/internal/ports"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func providerRequest() ports.SelectRequest {
	return ports.SelectRequest{
		Message: "Model/auth provider",
		Options: []ports.SelectOption{
			{Value: "openai", Label: "OpenAI", Hint: "ChatGPT sign-in or API key"},
			{Value: "anthropic", Label: "Anthropic"},
			{Value: "skip", Label: "Skip for now"},
		},
	}
}

func sendKeys(t *testing.T, model tea.Model, keys ...tea.KeyMsg) tea.Model {
	t.Helper()

	for _, key := range keys {
		model, _ = model.Update(key)
	}
	return model
}

func TestSelectModelMovesCursorAndChooses(t *testing.T) {
	t.Parallel()

	final := sendKeys(t, newSelectModel(providerRequest()),
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyEnter},
	)

	result, ok := final.(selectModel)
	require.True(t, ok)
	assert.False(t, result.aborted)
	assert.Equal(t, "anthropic", result.value())
}

func TestSelectModelWrapsAround(t *testing.T) {
	t.Parallel()

	final := sendKeys(t, newSelectModel(providerRequest()),
		tea.KeyMsg{Type: tea.KeyUp},
		tea.KeyMsg{Type: tea.KeyEnter},
	)

	assert.Equal(t, "skip", final.(selectModel).value())

	final = sendKeys(t, newSelectModel(providerRequest()),
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")},
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")},
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")},
		tea.KeyMsg{Type: tea.KeyEnter},
	)

	assert.Equal(t, "openai", final.(selectModel).value())
}

func TestSelectModelEscAborts(t *testing.T) {
	t.Parallel()

	model, cmd := newSelectModel(providerRequest()).Update(tea.KeyMsg{Type: tea.KeyEsc})

	result := model.(selectModel)
	assert.True(t, result.aborted)
	assert.Empty(t, result.value())
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestSelectModelViewShowsHintOnlyForCursor(t *testing.T) {
	t.Parallel()

	view := newSelectModel(providerRequest()).View()

	assert.Contains(t, view, "Model/auth provider")
	assert.Contains(t, view, "▸ ")
	assert.Contains(t, view, "ChatGPT sign-in or API key")
	assert.Contains(t, view, "Skip for now")

	moved := sendKeys(t, newSelectModel(providerRequest()), tea.KeyMsg{Type: tea.KeyDown})
	assert.NotContains(t, moved.View(), "ChatGPT sign-in or API key")
}

func TestTextModelCollectsInput(t *testing.T) {
	t.Parallel()

	final := sendKeys(t, newTextModel(ports.TextRequest{Message: "Enter OpenAI API key", Mask: true}),
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("sk-123")},
		tea.KeyMsg{Type: tea.KeyEnter},
	)

	result := final.(textModel)
	assert.True(t, result.done)
	assert.Equal(t, "sk-123", result.value())
	assert.NotContains(t, result.View(), "sk-123")
}

func TestPrompterNoteRendersTitleAndMessage(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	prompter := NewPrompter(&bytes.Buffer{}, out)

	require.NoError(t, prompter.Note(context.Background(), "No auth methods available for that provider.", "Model/auth choice"))
	assert.Contains(t, out.String(), "Model/auth choice")
	assert.Contains(t, out.String(), "No auth methods available for that provider.")
}

func TestPrompterSelectWithoutOptionsFails(t *testing.T) {
	t.Parallel()

	prompter := NewPrompter(&bytes.Buffer{}, &bytes.Buffer{})

	_, err := prompter.Select(context.Background(), ports.SelectRequest{Message: "Empty"})
	require.Error(t, err)
	assert.ErrorContains(t, err, "no options")
}
