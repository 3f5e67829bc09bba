package bubbletea_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/stretchr/testify/require"

	"github.com/voyagecli/voyage"
	"github.com/voyagecli/voyage/bubbletea"
	"github.com/voyagecli/voyage/mock"
)

// Full program-loop tests driven through a pty-like terminal.

func TestProgram_SendAndReply(t *testing.T) {
	t.Parallel()

	api := &mock.API{
		HistoryFn: func(ctx context.Context, sessionID string, limit int) ([]voyage.Message, error) {
			return nil, nil
		},
		ChatFn: func(ctx context.Context, req voyage.ChatRequest) (voyage.ChatResponse, error) {
			return voyage.ChatResponse{
				Message: "I found 2 flights to Paris.",
				Intent:  "flight_search",
				Elements: []voyage.UIElement{
					{Kind: voyage.KindButton, Text: "Book AF123", Action: voyage.ActionBookFlight},
				},
			}, nil
		},
	}
	m := bubbletea.New(newTestChat(api), voyage.DefaultTheme())

	tm := teatest.NewTestModel(t, m,
		teatest.WithInitialTermSize(80, 24),
	)

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("flights to Paris")})
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("I found 2 flights to Paris.")) &&
			bytes.Contains(out, []byte("Book AF123"))
	}, teatest.WithDuration(5*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlC})

	fm := tm.FinalModel(t, teatest.WithFinalTimeout(5*time.Second))
	final, ok := fm.(bubbletea.Model)
	require.True(t, ok)
	require.Len(t, final.Blocks(), 3)
}

func TestProgram_HistoryShownOnStartup(t *testing.T) {
	t.Parallel()

	api := &mock.API{
		HistoryFn: func(ctx context.Context, sessionID string, limit int) ([]voyage.Message, error) {
			return []voyage.Message{
				{ID: "1", Role: voyage.RoleUser, Content: "hotels in Rome"},
				{ID: "2", Role: voyage.RoleAssistant, Content: "Here are 3 hotels in Rome."},
			}, nil
		},
	}
	m := bubbletea.New(newTestChat(api), voyage.DefaultTheme())

	tm := teatest.NewTestModel(t, m,
		teatest.WithInitialTermSize(80, 24),
	)

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("hotels in Rome")) &&
			bytes.Contains(out, []byte("Here are 3 hotels in Rome."))
	}, teatest.WithDuration(5*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
	tm.WaitFinished(t, teatest.WithFinalTimeout(5*time.Second))
}

func TestProgram_FailedSendShowsFallback(t *testing.T) {
	t.Parallel()

	api := &mock.API{
		HistoryFn: func(ctx context.Context, sessionID string, limit int) ([]voyage.Message, error) {
			return nil, nil
		},
		ChatFn: func(ctx context.Context, req voyage.ChatRequest) (voyage.ChatResponse, error) {
			return voyage.ChatResponse{}, context.DeadlineExceeded
		},
	}
	m := bubbletea.New(newTestChat(api), voyage.DefaultTheme())

	tm := teatest.NewTestModel(t, m,
		teatest.WithInitialTermSize(80, 24),
	)

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hello")})
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("hello")) &&
			bytes.Contains(out, []byte("Sorry, I encountered an error"))
	}, teatest.WithDuration(5*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
	tm.WaitFinished(t, teatest.WithFinalTimeout(5*time.Second))
}
