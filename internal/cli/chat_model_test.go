package cli

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestChatModel(t *testing.T) (*App, *chatModel) {
	t.Helper()
	app := testApp(t)
	sess, err := app.Sessions.NewSession(context.Background())
	require.NoError(t, err)
	return app, newChatModel(app, sess)
}

// submit types a line into the model and presses Enter.
func submit(t *testing.T, m *chatModel, line string) *chatModel {
	t.Helper()
	m.input.SetValue(line)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	got, ok := next.(*chatModel)
	require.True(t, ok)
	return got
}

func TestChatModel_ShowsWelcome(t *testing.T) {
	_, m := newTestChatModel(t)
	view := m.View()
	assert.Contains(t, view, "CODEBOT")
	assert.Contains(t, view, "/save")
}

func TestChatModel_ExchangesTurns(t *testing.T) {
	_, m := newTestChatModel(t)

	m = submit(t, m, "hello there")

	assert.Equal(t, 1, m.sess.Processed())
	require.Len(t, m.sess.History(), 2)
	view := m.View()
	assert.Contains(t, view, "You:")
	assert.Contains(t, view, "hello there")
	assert.Contains(t, view, "CodeBot:")
}

func TestChatModel_BlankEnterIsNoOp(t *testing.T) {
	_, m := newTestChatModel(t)
	before := len(m.messages)

	m = submit(t, m, "   ")

	assert.Len(t, m.messages, before)
	assert.Empty(t, m.sess.History())
}

func TestChatModel_AnalyticsCommand(t *testing.T) {
	_, m := newTestChatModel(t)
	m = submit(t, m, "hello")
	m = submit(t, m, "/analytics")

	assert.Contains(t, m.View(), "TOPIC ANALYTICS")
	// Slash commands do not become conversation turns.
	assert.Len(t, m.sess.History(), 2)
}

func TestChatModel_ClearCommand(t *testing.T) {
	_, m := newTestChatModel(t)
	m = submit(t, m, "hello")
	m = submit(t, m, "/clear")

	assert.Empty(t, m.sess.History())
	assert.Equal(t, 0, m.sess.Processed())
	assert.Contains(t, m.View(), "Conversation cleared.")
	assert.NotContains(t, m.View(), "You:")
}

func TestChatModel_SaveCommand(t *testing.T) {
	app, m := newTestChatModel(t)
	m = submit(t, m, "hello there")
	m = submit(t, m, "/save My first chat")

	assert.Contains(t, m.View(), "Saved conversation")

	records, err := app.Archive.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "My first chat", records[0].Title)
}

func TestChatModel_SaveEmptySessionFails(t *testing.T) {
	_, m := newTestChatModel(t)
	m = submit(t, m, "/save nothing yet")

	assert.Contains(t, m.View(), "Save failed")
}

func TestChatModel_UnknownSlashCommand(t *testing.T) {
	_, m := newTestChatModel(t)
	m = submit(t, m, "/frobnicate")

	assert.Contains(t, m.View(), "Unknown command /frobnicate")
}

func TestChatModel_QuitWithNoTurnsExitsImmediately(t *testing.T) {
	_, m := newTestChatModel(t)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	got := next.(*chatModel)

	assert.True(t, got.quitting)
	assert.NotNil(t, cmd)
}

func TestChatModel_QuitWithTurnsAsksToSave(t *testing.T) {
	_, m := newTestChatModel(t)
	m = submit(t, m, "hello")

	m = submit(t, m, "/quit")

	assert.Equal(t, modeConfirmSave, m.mode)
	require.NotNil(t, m.form)
	assert.False(t, m.quitting)
}

func TestChatModel_EscCancelsQuitConfirm(t *testing.T) {
	_, m := newTestChatModel(t)
	m = submit(t, m, "hello")
	m = submit(t, m, "/quit")
	require.Equal(t, modeConfirmSave, m.mode)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	got := next.(*chatModel)

	assert.Equal(t, modePrompt, got.mode)
	assert.Nil(t, got.form)
	assert.False(t, got.quitting)
}
