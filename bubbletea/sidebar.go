package bubbletea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/voyagecli/voyage"
)

// Sidebar lists past sessions with its own fetch lifecycle, separate
// from the chat pane. It supports switching to and deleting sessions;
// pagination and search are out of scope.
type Sidebar struct {
	visible  bool
	loading  bool
	sessions []voyage.ConversationSession
	index    int
	err      error
	styles   Styles
}

// NewSidebar creates a hidden Sidebar.
func NewSidebar(styles Styles) Sidebar {
	return Sidebar{styles: styles}
}

// Visible reports whether the sidebar is shown.
func (s Sidebar) Visible() bool { return s.visible }

// Sessions returns the fetched session list.
func (s Sidebar) Sessions() []voyage.ConversationSession { return s.sessions }

// Selected returns the highlighted session, or false when the list is
// empty.
func (s Sidebar) Selected() (voyage.ConversationSession, bool) {
	if len(s.sessions) == 0 || s.index >= len(s.sessions) {
		return voyage.ConversationSession{}, false
	}
	return s.sessions[s.index], true
}

// Toggle flips visibility. Opening marks the list as loading; the root
// model issues the fetch.
func (s Sidebar) Toggle() Sidebar {
	s.visible = !s.visible
	if s.visible {
		s.loading = true
		s.err = nil
	}
	return s
}

// SetSessions applies a fetch result.
func (s Sidebar) SetSessions(sessions []voyage.ConversationSession, err error) Sidebar {
	s.loading = false
	s.err = err
	s.sessions = sessions
	if s.index >= len(sessions) {
		s.index = 0
	}
	return s
}

// Remove drops a session from the local list after a successful
// delete.
func (s Sidebar) Remove(id string) Sidebar {
	kept := s.sessions[:0]
	for _, sess := range s.sessions {
		if sess.SessionID != id {
			kept = append(kept, sess)
		}
	}
	s.sessions = kept
	if s.index >= len(kept) && s.index > 0 {
		s.index = len(kept) - 1
	}
	return s
}

// MoveUp moves the highlight up one entry.
func (s Sidebar) MoveUp() Sidebar {
	if s.index > 0 {
		s.index--
	}
	return s
}

// MoveDown moves the highlight down one entry.
func (s Sidebar) MoveDown() Sidebar {
	if s.index < len(s.sessions)-1 {
		s.index++
	}
	return s
}

// View renders the sidebar pane. activeID marks the session the chat
// pane currently targets.
func (s Sidebar) View(width, height int, activeID string) string {
	var b strings.Builder
	b.WriteString(s.styles.Accent.Render("Sessions"))
	b.WriteString("\n")

	switch {
	case s.loading:
		b.WriteString(s.styles.Muted.Render("Loading..."))
	case s.err != nil:
		b.WriteString(s.styles.Error.Render("Failed to load sessions"))
	case len(s.sessions) == 0:
		b.WriteString(s.styles.Muted.Render("No past sessions"))
	default:
		for i, sess := range s.sessions {
			line := fmt.Sprintf("%s (%d)", shortID(sess.SessionID), sess.MessageCount)
			if sess.SessionID == activeID {
				line = "* " + line
			} else {
				line = "  " + line
			}
			if i == s.index {
				line = s.styles.ElementFocus.Render(line)
			} else {
				line = s.styles.Element.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(s.styles.Muted.Render("enter switch · ctrl+x delete"))
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		MaxHeight(height).
		Render(b.String())
}

// shortID abbreviates a session identifier for display.
func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
