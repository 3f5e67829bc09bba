package resty

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/voyagecli/voyage"
)

// Wire types for the backend's JSON bodies. Field names follow the
// backend contract, not Go conventions.

type chatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id,omitempty"`
}

type chatResponse struct {
	Message   string         `json:"message"`
	Intent    string         `json:"intent,omitempty"`
	Entities  map[string]any `json:"entities,omitempty"`
	Elements  []wireElement  `json:"ui_elements,omitempty"`
	SessionID string         `json:"session_id"`
	Timestamp wireTime       `json:"timestamp"`
}

type wireElement struct {
	Type   string         `json:"type"`
	Text   string         `json:"text"`
	Action string         `json:"action"`
	Data   map[string]any `json:"data,omitempty"`
}

type flightSearchRequest struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departure_date"`
	ReturnDate    string `json:"return_date,omitempty"`
	Passengers    int    `json:"passengers"`
	ClassType     string `json:"class_type"`
}

type hotelSearchRequest struct {
	Location string `json:"location"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
	Guests   int    `json:"guests"`
	Rooms    int    `json:"rooms"`
}

type bookingRequest struct {
	BookingType      string         `json:"booking_type"`
	BookingID        string         `json:"booking_id"`
	PassengerDetails map[string]any `json:"passenger_details"`
	PaymentInfo      map[string]any `json:"payment_info"`
}

type historyResponse struct {
	SessionID string        `json:"session_id"`
	Messages  []wireMessage `json:"messages"`
}

type wireMessage struct {
	ID          wireID         `json:"id"`
	MessageType string         `json:"message_type"`
	Content     string         `json:"content"`
	Timestamp   wireTime       `json:"timestamp"`
	Metadata    *wireMetadata  `json:"metadata,omitempty"`
}

type wireMetadata struct {
	Elements []wireElement  `json:"ui_elements,omitempty"`
	Intent   string         `json:"intent,omitempty"`
	Entities map[string]any `json:"entities,omitempty"`
}

type sessionsResponse struct {
	Sessions []wireSession `json:"sessions"`
}

type wireSession struct {
	SessionID    string   `json:"session_id"`
	UserID       string   `json:"user_id,omitempty"`
	CreatedAt    wireTime `json:"created_at"`
	LastActivity wireTime `json:"last_activity"`
	MessageCount int      `json:"message_count"`
}

type newSessionResponse struct {
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id,omitempty"`
	Status    string `json:"status"`
}

// wireID tolerates both string and numeric message identifiers; the
// backend stores integer primary keys but other endpoints use UUIDs.
type wireID string

func (id *wireID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = wireID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*id = wireID(n.String())
	return nil
}

// wireTime tolerates both RFC 3339 timestamps and the backend's naive
// ISO form without a zone offset (datetime.utcnow().isoformat()), which
// is read as UTC.
type wireTime struct {
	time.Time
}

const naiveISO = "2006-01-02T15:04:05.999999999"

func (t *wireTime) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) || bytes.Equal(data, []byte(`""`)) {
		t.Time = time.Time{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if parsed, err := time.Parse(time.RFC3339Nano, s); err == nil {
		t.Time = parsed
		return nil
	}
	parsed, err := time.Parse(naiveISO, s)
	if err != nil {
		return fmt.Errorf("unrecognized timestamp %q", s)
	}
	t.Time = parsed.UTC()
	return nil
}

func toElements(wire []wireElement) []voyage.UIElement {
	if len(wire) == 0 {
		return nil
	}
	elements := make([]voyage.UIElement, len(wire))
	for i, e := range wire {
		elements[i] = voyage.UIElement{
			Kind:   voyage.ElementKind(e.Type),
			Text:   e.Text,
			Action: voyage.Action(e.Action),
			Data:   e.Data,
		}
	}
	return elements
}

func toMessage(w wireMessage) voyage.Message {
	msg := voyage.Message{
		ID:        string(w.ID),
		Role:      voyage.Role(w.MessageType),
		Content:   w.Content,
		Timestamp: w.Timestamp.Time,
	}
	if w.Metadata != nil {
		msg.Elements = toElements(w.Metadata.Elements)
		msg.Intent = w.Metadata.Intent
		msg.Entities = w.Metadata.Entities
	}
	return msg
}

func toSession(w wireSession) voyage.ConversationSession {
	return voyage.ConversationSession{
		SessionID:    w.SessionID,
		UserID:       w.UserID,
		CreatedAt:    w.CreatedAt.Time,
		LastActivity: w.LastActivity.Time,
		MessageCount: w.MessageCount,
	}
}
