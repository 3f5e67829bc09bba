package voyage

import "time"

// Message is a single conversation turn. Messages are immutable once
// created and form an append-only sequence per session; ordering is
// whatever order they were appended in.
type Message struct {
	ID        string
	Role      Role
	Content   string
	Timestamp time.Time

	// Elements are interactive affordances attached to an assistant
	// reply. Nil for plain text messages and all user messages.
	Elements []UIElement

	// Intent is the backend's classification of the turn, when present
	// (e.g. "search_flight"). Informational only.
	Intent string

	// Entities is a free-form map of values the backend extracted from
	// the conversation. Informational only.
	Entities map[string]any
}

// FallbackText is the assistant message substituted for a reply when
// the chat call fails.
const FallbackText = "Sorry, I encountered an error. Please try again."
