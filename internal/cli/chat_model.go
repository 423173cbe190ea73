package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/codebot/internal/cli/formatter"
	"github.com/alexanderramin/codebot/internal/domain"
	"github.com/alexanderramin/codebot/internal/session"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// chatMode tracks which interaction mode the chat is in.
type chatMode int

const (
	modePrompt      chatMode = iota // Normal message input.
	modeConfirmSave                 // huh confirm for archiving on quit.
)

// chatModel is the bubbletea Model for the interactive chat.
type chatModel struct {
	app  *App
	sess *session.Session

	input textinput.Model
	form  *huh.Form // active confirm form (nil outside modeConfirmSave)
	mode  chatMode

	messages   []string
	saveOnQuit bool
	quitting   bool
}

func newChatModel(app *App, sess *session.Session) *chatModel {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.CharLimit = 500

	return &chatModel{
		app:      app,
		sess:     sess,
		input:    ti,
		messages: []string{formatter.FormatChatWelcome(sess.BotName())},
	}
}

// ── tea.Model interface ──────────────────────────────────────────────────────

func (m *chatModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.mode == modeConfirmSave {
		return m.updateConfirm(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m.beginQuit()
		case tea.KeyEnter:
			input := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if input == "" {
				return m, nil
			}
			return m.handleInput(input)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *chatModel) View() string {
	var b strings.Builder

	for _, msg := range m.messages {
		b.WriteString(msg)
		b.WriteString("\n")
	}

	if m.mode == modeConfirmSave && m.form != nil {
		b.WriteString(m.form.View())
		return b.String()
	}

	if m.quitting {
		return b.String()
	}

	prompt := formatter.StyleBlue.Render("you") + formatter.Dim("> ")
	b.WriteString(prompt)
	b.WriteString(m.input.View())

	return b.String()
}

// ── input handling ───────────────────────────────────────────────────────────

func (m *chatModel) handleInput(input string) (tea.Model, tea.Cmd) {
	if strings.HasPrefix(input, "/") {
		return m.handleSlashCommand(input)
	}

	reply := m.sess.ProcessTurn(context.Background(), input)
	m.messages = append(m.messages,
		formatter.FormatTurnLine(turnOf(domain.SpeakerUser, input), m.sess.BotName()),
		formatter.FormatTurnLine(turnOf(domain.SpeakerBot, reply), m.sess.BotName()),
	)
	return m, nil
}

func (m *chatModel) handleSlashCommand(input string) (tea.Model, tea.Cmd) {
	cmd, rest, _ := strings.Cut(input, " ")
	switch strings.ToLower(cmd) {
	case "/quit", "/exit", "/q":
		return m.beginQuit()

	case "/save":
		title := strings.TrimSpace(rest)
		rec, err := m.app.Archive.Save(context.Background(), title, m.sess)
		if err != nil {
			m.messages = append(m.messages, formatter.StyleRed.Render("Save failed: "+err.Error()))
			return m, nil
		}
		m.messages = append(m.messages,
			formatter.Dim(fmt.Sprintf("Saved conversation %q (%s).", rec.Title, rec.ID[:8])))
		return m, nil

	case "/analytics":
		counts := session.SortAnalytics(m.sess.TopicAnalytics())
		m.messages = append(m.messages, formatter.FormatAnalytics(counts))
		return m, nil

	case "/clear":
		m.sess.Clear()
		m.messages = []string{
			formatter.FormatChatWelcome(m.sess.BotName()),
			formatter.Dim("Conversation cleared."),
		}
		return m, nil

	default:
		m.messages = append(m.messages, formatter.Dim("Unknown command "+cmd))
		return m, nil
	}
}

// beginQuit either quits directly or, when there is an unsaved transcript,
// asks whether to archive it first.
func (m *chatModel) beginQuit() (tea.Model, tea.Cmd) {
	if m.sess.Processed() == 0 {
		m.quitting = true
		return m, tea.Quit
	}

	m.mode = modeConfirmSave
	m.saveOnQuit = false
	m.form = confirmForm("Save this conversation before leaving?", &m.saveOnQuit)
	return m, m.form.Init()
}

func (m *chatModel) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Escape cancels the quit.
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.mode = modePrompt
		m.form = nil
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.mode = modePrompt
		m.form = nil

		if m.saveOnQuit {
			rec, err := m.app.Archive.Save(context.Background(), "", m.sess)
			if err != nil {
				m.messages = append(m.messages, formatter.StyleRed.Render("Save failed: "+err.Error()))
				return m, cmd
			}
			m.messages = append(m.messages,
				formatter.Dim(fmt.Sprintf("Saved conversation %q (%s).", rec.Title, rec.ID[:8])))
		}

		m.quitting = true
		return m, tea.Batch(cmd, tea.Quit)
	}

	return m, cmd
}

func turnOf(speaker domain.Speaker, text string) domain.ConversationTurn {
	return domain.ConversationTurn{Speaker: speaker, Text: text}
}
