// Package bubbletea provides the Bubble Tea TUI for the voyage chat
// client: conversation viewport, multi-line composer, interactive
// reply elements, and the session sidebar.
package bubbletea

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/voyagecli/voyage"
)

// RunOption configures Run.
type RunOption func(*runConfig)

type runConfig struct {
	altScreen bool
}

// WithoutAltScreen renders inline in the current terminal buffer
// instead of the alternate screen.
func WithoutAltScreen() RunOption {
	return func(c *runConfig) { c.altScreen = false }
}

// Run creates and runs the Bubble Tea TUI program. It blocks until the
// program exits. The context is used for graceful shutdown: when
// cancelled, the program quits.
func Run(ctx context.Context, m Model, opts ...RunOption) error {
	cfg := runConfig{altScreen: true}
	for _, o := range opts {
		o(&cfg)
	}
	var progOpts []tea.ProgramOption
	if cfg.altScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	p := tea.NewProgram(m, progOpts...)
	go func() {
		<-ctx.Done()
		p.Quit()
	}()
	_, err := p.Run()
	return err
}

// HistoryMsg delivers a wholesale history load for the active session.
// The rendered list is replaced, never merged.
type HistoryMsg struct {
	Messages []voyage.Message
	Err      error
}

// ReplyMsg delivers the assistant's reply to a sent message.
type ReplyMsg struct {
	Reply voyage.Message
	Err   error
}

// ActionMsg delivers the outcome of activating a UI element.
type ActionMsg struct {
	Action voyage.Action
	Reply  voyage.Message
	Err    error
}

// SessionsMsg delivers the session list for the sidebar.
type SessionsMsg struct {
	Sessions []voyage.ConversationSession
	Err      error
}

// SessionDeletedMsg delivers the outcome of a sidebar delete.
// Switched is true when the active session was deleted and a fresh one
// replaced it.
type SessionDeletedMsg struct {
	ID       string
	Switched bool
	Err      error
}

// historyLimit is the number of messages requested on a history load.
const historyLimit = 50

// Commands. Calls are fire-once and deliberately not cancellable:
// nothing aborts an issued request, matching the gateway's contract.

func loadHistory(chat *voyage.Chat) tea.Cmd {
	return func() tea.Msg {
		msgs, err := chat.History(context.Background(), historyLimit)
		return HistoryMsg{Messages: msgs, Err: err}
	}
}

func sendMessage(chat *voyage.Chat, text string) tea.Cmd {
	return func() tea.Msg {
		reply, err := chat.Send(context.Background(), text)
		return ReplyMsg{Reply: reply, Err: err}
	}
}

func dispatchElement(chat *voyage.Chat, el voyage.UIElement) tea.Cmd {
	return func() tea.Msg {
		reply, err := chat.Dispatch(context.Background(), el)
		return ActionMsg{Action: el.Action, Reply: reply, Err: err}
	}
}

func loadSessions(chat *voyage.Chat) tea.Cmd {
	return func() tea.Msg {
		sessions, err := chat.Sessions(context.Background())
		return SessionsMsg{Sessions: sessions, Err: err}
	}
}

func deleteSession(chat *voyage.Chat, id string) tea.Cmd {
	return func() tea.Msg {
		switched, err := chat.DeleteSession(context.Background(), id)
		return SessionDeletedMsg{ID: id, Switched: switched, Err: err}
	}
}
