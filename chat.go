package voyage

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Chat orchestrates the conversation for the active session: history
// loads, optimistic sends, and UI element action dispatch. It holds no
// message state itself; the caller owns the rendered sequence and
// appends what Chat returns.
type Chat struct {
	api   API
	store *SessionStore
	ids   IDGenerator
	log   *slog.Logger
	now   func() time.Time
}

// ChatOption configures a [Chat].
type ChatOption func(*Chat)

// WithLogger sets the orchestrator's logger.
func WithLogger(l *slog.Logger) ChatOption {
	return func(c *Chat) { c.log = l }
}

// WithClock sets the time source. Useful for tests.
func WithClock(now func() time.Time) ChatOption {
	return func(c *Chat) { c.now = now }
}

// NewChat creates a Chat over the given gateway, session store and
// identifier generator.
func NewChat(api API, store *SessionStore, ids IDGenerator, opts ...ChatOption) *Chat {
	c := &Chat{
		api:   api,
		store: store,
		ids:   ids,
		log:   slog.New(slog.DiscardHandler),
		now:   time.Now,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Store returns the session store the orchestrator targets.
func (c *Chat) Store() *SessionStore { return c.store }

// History fetches the full message sequence for the active session.
// The result replaces whatever the caller currently renders; there is
// no incremental merge.
func (c *Chat) History(ctx context.Context, limit int) ([]Message, error) {
	id := c.store.SessionID()
	msgs, err := c.api.History(ctx, id, limit)
	if err != nil {
		c.log.Error("load history", "session_id", id, "error", err)
		return nil, err
	}
	c.log.Info("history loaded", "session_id", id, "messages", len(msgs))
	return msgs, nil
}

// NewUserMessage builds the optimistic local copy of a user message:
// generated identifier, current time, the given text. It is rendered
// immediately and never reconciled with the server's stored copy.
func (c *Chat) NewUserMessage(text string) Message {
	return Message{
		ID:        c.ids.NewID(),
		Role:      RoleUser,
		Content:   text,
		Timestamp: c.now(),
	}
}

// Send issues the chat request for the active session and returns the
// assistant's reply as a Message. On failure the caller keeps the
// optimistic user message and appends [Fallback] instead; there is no
// retry and no rollback.
func (c *Chat) Send(ctx context.Context, text string) (Message, error) {
	identity := c.store.Identity()
	req := ChatRequest{
		Message:   text,
		SessionID: identity.SessionID,
		UserID:    identity.UserID,
	}
	if err := req.Validate(); err != nil {
		return Message{}, err
	}

	resp, err := c.api.Chat(ctx, req)
	if err != nil {
		c.log.Error("send message", "session_id", identity.SessionID, "error", err)
		return Message{}, err
	}

	ts := resp.Timestamp
	if ts.IsZero() {
		ts = c.now()
	}
	c.log.Info("reply received", "session_id", identity.SessionID, "intent", resp.Intent, "elements", len(resp.Elements))
	return Message{
		ID:        c.ids.NewID(),
		Role:      RoleAssistant,
		Content:   resp.Message,
		Timestamp: ts,
		Elements:  resp.Elements,
		Intent:    resp.Intent,
		Entities:  resp.Entities,
	}, nil
}

// Fallback builds the fixed assistant message substituted for a reply
// when Send fails.
func (c *Chat) Fallback() Message {
	return Message{
		ID:        c.ids.NewID(),
		Role:      RoleAssistant,
		Content:   FallbackText,
		Timestamp: c.now(),
	}
}

// Dispatch activates a UI element by its action. Booking actions call
// the booking endpoint and then send a confirmation chat message; the
// detail and search actions send a follow-up chat message directly.
// The reply to the follow-up is returned for the caller to append.
// Actions outside the supported set return [ErrUnsupportedAction].
func (c *Chat) Dispatch(ctx context.Context, el UIElement) (Message, error) {
	action, ok := ActionOf(string(el.Action))
	if !ok {
		c.log.Warn("unsupported element action", "action", string(el.Action))
		return Message{}, fmt.Errorf("action %q: %w", string(el.Action), ErrUnsupportedAction)
	}

	switch action {
	case ActionBookFlight, ActionBookHotel:
		return c.book(ctx, action, el)
	case ActionViewDetails:
		return c.Send(ctx, "Tell me more about "+el.Text)
	case ActionSearchAgain:
		return c.Send(ctx, "Show me more options")
	}
	// Unreachable: ActionOf only admits the cases above.
	return Message{}, fmt.Errorf("action %q: %w", string(el.Action), ErrUnsupportedAction)
}

// book calls the booking endpoint and, on success, sends a follow-up
// confirmation chat message. Passenger and payment details are sent
// empty; the backend contract for them is unresolved.
func (c *Chat) book(ctx context.Context, action Action, el UIElement) (Message, error) {
	bookingType := "flight"
	if action == ActionBookHotel {
		bookingType = "hotel"
	}

	req := BookingRequest{
		BookingType:      bookingType,
		BookingID:        el.BookingID(),
		PassengerDetails: map[string]any{},
		PaymentInfo:      map[string]any{},
	}
	if err := req.Validate(); err != nil {
		return Message{}, err
	}

	conf, err := c.api.BookTrip(ctx, req)
	if err != nil {
		c.log.Error("booking failed", "booking_type", bookingType, "booking_id", req.BookingID, "error", err)
		return Message{}, err
	}
	c.log.Info("booking created", "booking_type", bookingType, "booking_id", req.BookingID, "status", conf.Status)

	return c.Send(ctx, fmt.Sprintf("Please confirm my %s booking for %s", bookingType, el.Text))
}

// Sessions lists the sessions known to the backend, most recently
// active first.
func (c *Chat) Sessions(ctx context.Context) ([]ConversationSession, error) {
	sessions, err := c.api.ListSessions(ctx)
	if err != nil {
		c.log.Error("list sessions", "error", err)
		return nil, err
	}
	return sessions, nil
}

// DeleteSession deletes a session's conversation on the backend and
// removes it locally. Deleting the active session generates a fresh
// one so that exactly one session is always active; the returned flag
// reports that a switch happened (the caller should reload history).
func (c *Chat) DeleteSession(ctx context.Context, id string) (switched bool, err error) {
	if err := c.api.DeleteConversation(ctx, id); err != nil {
		c.log.Error("delete session", "session_id", id, "error", err)
		return false, err
	}
	if id == c.store.SessionID() {
		fresh := c.store.NewSession()
		c.log.Info("active session deleted, created replacement", "session_id", fresh)
		return true, nil
	}
	return false, nil
}

// SwitchSession makes an existing session the active one. The caller
// reloads history afterwards; no session-A message may survive the
// switch to session B.
func (c *Chat) SwitchSession(id string) {
	c.store.SetSessionID(id)
	c.log.Info("switched session", "session_id", id)
}
