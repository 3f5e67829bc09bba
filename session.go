package voyage

import "time"

// ConversationSession describes a server-tracked conversation thread
// as listed by the sessions endpoint. Messages are not included; they
// are loaded separately when the session is selected.
type ConversationSession struct {
	SessionID    string
	UserID       string
	CreatedAt    time.Time
	LastActivity time.Time
	MessageCount int
}

// Identity is the client-side session identity: the session the client
// is currently talking in, plus an optional user identifier. Exactly
// one identity is active at a time.
type Identity struct {
	SessionID string
	UserID    string
}
