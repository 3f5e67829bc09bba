package bubbletea_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyagecli/voyage"
	"github.com/voyagecli/voyage/bubbletea"
)

func TestSidebarToggle(t *testing.T) {
	t.Parallel()

	s := bubbletea.NewSidebar(testStyles())
	require.False(t, s.Visible())

	s = s.Toggle()
	assert.True(t, s.Visible())
	assert.Contains(t, s.View(28, 10, ""), "Loading...")

	s = s.Toggle()
	assert.False(t, s.Visible())
}

func TestSidebarSelection(t *testing.T) {
	t.Parallel()

	s := bubbletea.NewSidebar(testStyles()).Toggle()
	s = s.SetSessions([]voyage.ConversationSession{
		{SessionID: "s-1"},
		{SessionID: "s-2"},
		{SessionID: "s-3"},
	}, nil)

	sel, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, "s-1", sel.SessionID)

	s = s.MoveDown()
	s = s.MoveDown()
	sel, _ = s.Selected()
	assert.Equal(t, "s-3", sel.SessionID)

	// Clamped at the ends.
	s = s.MoveDown()
	sel, _ = s.Selected()
	assert.Equal(t, "s-3", sel.SessionID)

	s = s.MoveUp().MoveUp().MoveUp()
	sel, _ = s.Selected()
	assert.Equal(t, "s-1", sel.SessionID)
}

func TestSidebarSelectedEmpty(t *testing.T) {
	t.Parallel()

	s := bubbletea.NewSidebar(testStyles()).Toggle()
	s = s.SetSessions(nil, nil)

	_, ok := s.Selected()
	assert.False(t, ok)
	assert.Contains(t, s.View(28, 10, ""), "No past sessions")
}

func TestSidebarRemoveClampsSelection(t *testing.T) {
	t.Parallel()

	s := bubbletea.NewSidebar(testStyles()).Toggle()
	s = s.SetSessions([]voyage.ConversationSession{
		{SessionID: "s-1"},
		{SessionID: "s-2"},
	}, nil)
	s = s.MoveDown()

	s = s.Remove("s-2")

	require.Len(t, s.Sessions(), 1)
	sel, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, "s-1", sel.SessionID)
}

func TestSidebarViewMarksActiveSession(t *testing.T) {
	t.Parallel()

	s := bubbletea.NewSidebar(testStyles()).Toggle()
	s = s.SetSessions([]voyage.ConversationSession{
		{SessionID: "aaaaaaaa-1111", MessageCount: 7},
		{SessionID: "bbbbbbbb-2222", MessageCount: 2},
	}, nil)

	view := s.View(28, 10, "bbbbbbbb-2222")
	assert.Contains(t, view, "* bbbbbbbb")
	assert.Contains(t, view, "  aaaaaaaa")
	assert.Contains(t, view, "(7)")
}

func TestSidebarViewError(t *testing.T) {
	t.Parallel()

	s := bubbletea.NewSidebar(testStyles()).Toggle()
	s = s.SetSessions(nil, errors.New("boom"))

	assert.Contains(t, s.View(28, 10, ""), "Failed to load sessions")
}
