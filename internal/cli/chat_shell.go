package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/anirudhsk/jarvis/internal/cli/formatter"
)

// chatModel is the bubbletea Model for the interactive chat loop.
type chatModel struct {
	input textinput.Model
	app   *App

	history    []string
	historyIdx int

	quitting bool
}

// newChatModel creates a new bubbletea chat model.
func newChatModel(app *App) chatModel {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.Placeholder = `try "show events this week"`
	ti.CharLimit = 500

	return chatModel{
		input: ti,
		app:   app,
	}
}

// replyMsg carries the assistant's reply back into the update loop.
type replyMsg string

func (m chatModel) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tea.Println(formatter.Header("Jarvis")+"\n"+formatter.Dim(`Ask about events, faculty or notifications. "exit" to leave.`)),
	)
}

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.input.Width = msg.Width - 3
		return m, nil

	case replyMsg:
		return m, tea.Println(formatter.FormatReply(string(msg)))

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			m.quitting = true
			return m, tea.Quit

		case tea.KeyUp:
			if m.historyIdx > 0 {
				m.historyIdx--
				m.input.SetValue(m.history[m.historyIdx])
				m.input.CursorEnd()
			}
			return m, nil

		case tea.KeyDown:
			if m.historyIdx < len(m.history)-1 {
				m.historyIdx++
				m.input.SetValue(m.history[m.historyIdx])
				m.input.CursorEnd()
			} else {
				m.historyIdx = len(m.history)
				m.input.SetValue("")
			}
			return m, nil

		case tea.KeyEnter:
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if line == "" {
				return m, nil
			}
			if line == "exit" || line == "quit" {
				m.quitting = true
				return m, tea.Quit
			}

			m.history = append(m.history, line)
			m.historyIdx = len(m.history)

			echo := tea.Println(formatter.StyleBlue.Render("you") + formatter.Dim(" · ") + line)
			return m, tea.Sequence(echo, m.resolveCmd(line))
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m chatModel) View() string {
	if m.quitting {
		return ""
	}
	return formatter.StyleGreen.Render("> ") + m.input.View()
}

// resolveCmd runs interpretation and dispatch off the update loop.
func (m chatModel) resolveCmd(line string) tea.Cmd {
	app := m.app
	return func() tea.Msg {
		now := app.now()
		action := app.Resolver.Resolve(context.Background(), line, now)
		return replyMsg(app.Dispatcher.Execute(context.Background(), action, now))
	}
}
