package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/clavrhq/clavr/internal/cli/formatter"
	"github.com/clavrhq/clavr/internal/intelligence"
)

// chatMode tracks which interaction state the chat session is in.
type chatMode int

const (
	chatIdle    chatMode = iota // awaiting input
	chatWorking                 // query in flight
	chatConfirm                 // awaiting y/n for a write intent
)

// chatAnswerMsg carries an executed query's output back into the model.
type chatAnswerMsg struct {
	output string
	err    error
}

// chatRouteMsg carries a routed (but not yet executed) resolution.
type chatRouteMsg struct {
	query      string
	resolution *intelligence.Resolution
	err        error
}

// chatModel is the bubbletea model for the interactive assistant session.
type chatModel struct {
	app     *App
	input   textinput.Model
	spin    spinner.Model
	mode    chatMode
	pending *chatRouteMsg // routed write intent awaiting confirmation

	history    []string
	historyIdx int

	quitting bool
}

func newChatModel(app *App) chatModel {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.Placeholder = `Try "am I free tomorrow at 3pm?"`
	ti.CharLimit = 500

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = formatter.StyleHeader

	return chatModel{
		app:        app,
		input:      ti,
		spin:       sp,
		historyIdx: 0,
	}
}

func (m chatModel) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tea.Println(chatWelcome()),
	)
}

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.input.Width = msg.Width - 3
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		switch m.mode {
		case chatIdle:
			return m.updateIdle(msg)
		case chatConfirm:
			return m.updateConfirm(msg)
		case chatWorking:
			return m, nil // ignore typing while in flight
		}

	case chatRouteMsg:
		return m.handleRoute(msg)

	case chatAnswerMsg:
		m.mode = chatIdle
		if msg.err != nil {
			return m, tea.Println(formatter.StyleRed.Render(fmt.Sprintf("Error: %v", msg.err)))
		}
		return m, tea.Println(strings.TrimRight(msg.output, "\n"))

	case spinner.TickMsg:
		if m.mode == chatWorking {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m chatModel) updateIdle(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		query := strings.TrimSpace(m.input.Value())
		if query == "" {
			return m, nil
		}
		switch strings.ToLower(query) {
		case "exit", "quit", "/quit":
			m.quitting = true
			return m, tea.Sequence(tea.Println(formatter.Dim("Goodbye.")), tea.Quit)
		}

		m.history = append(m.history, query)
		m.historyIdx = len(m.history)
		m.input.Reset()
		m.mode = chatWorking

		echo := tea.Println(formatter.StylePurple.Render("you ❯ ") + query)
		return m, tea.Batch(echo, m.spin.Tick, routeQuery(m.app, query))

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
			m.input.Reset()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m chatModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	answer := strings.ToLower(msg.String())
	switch answer {
	case "y":
		pending := m.pending
		m.pending = nil
		m.mode = chatWorking
		return m, tea.Batch(m.spin.Tick, executeResolved(m.app, pending))
	case "n", "esc", "enter":
		m.pending = nil
		m.mode = chatIdle
		return m, tea.Println(formatter.Dim("Cancelled."))
	}
	return m, nil
}

func (m chatModel) handleRoute(msg chatRouteMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.mode = chatIdle
		return m, tea.Println(formatter.StyleRed.Render(fmt.Sprintf("Error: %v", msg.err)))
	}

	switch msg.resolution.ExecutionState {
	case intelligence.StateExecuted:
		routed := msg
		return m, executeResolved(m.app, &routed)

	case intelligence.StateNeedsConfirmation:
		routed := msg
		m.pending = &routed
		m.mode = chatConfirm
		prompt := formatter.StyleYellow.Render(
			fmt.Sprintf("%s changes your calendar or tasks. Go ahead? [y/N]", msg.resolution.ParsedIntent.Intent))
		return m, tea.Println(prompt)

	default:
		m.mode = chatIdle
		return m, tea.Println(formatter.FormatResolution(msg.resolution))
	}
}

func (m chatModel) View() string {
	if m.quitting {
		return ""
	}
	if m.mode == chatWorking {
		return m.spin.View() + formatter.Dim(" thinking…") + "\n"
	}
	if m.mode == chatConfirm {
		return ""
	}
	return formatter.StyleHeader.Render("clavr ❯ ") + m.input.View() + "\n"
}

// routeQuery parses the query off the UI goroutine.
func routeQuery(app *App, query string) tea.Cmd {
	return func() tea.Msg {
		resolution, err := app.Intent.Route(context.Background(), query)
		return chatRouteMsg{query: query, resolution: resolution, err: err}
	}
}

// executeResolved dispatches a routed intent and rephrases the factual
// answer when the LLM reply voice is available.
func executeResolved(app *App, routed *chatRouteMsg) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		result, err := dispatchIntent(ctx, app, routed.resolution.ParsedIntent)
		if err != nil {
			return chatAnswerMsg{err: err}
		}

		output := result.Display
		if app.Reply != nil {
			if voiced := app.Reply.Rephrase(ctx, result.Factual); voiced != result.Factual {
				output += formatter.StyleFg.Render(voiced) + "\n"
			}
		}

		if app.History != nil {
			_ = app.History.Record(ctx, routed.query, string(routed.resolution.ParsedIntent.Intent), result.Factual)
		}
		return chatAnswerMsg{output: output}
	}
}

func chatWelcome() string {
	var b strings.Builder
	b.WriteString(formatter.Header("Clavr"))
	b.WriteString("\n")
	b.WriteString(formatter.Dim("Ask about your calendar, tasks, or inbox. \"exit\" to leave."))
	return b.String()
}
