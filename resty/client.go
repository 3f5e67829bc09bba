// Package resty implements the travel assistant API gateway over HTTP
// using go-resty. One method per backend endpoint; every call is
// independent and fire-once, with no caching and no retries.
package resty

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/voyagecli/voyage"
)

// Interface compliance check.
var _ voyage.API = (*Client)(nil)

// Client implements [voyage.API] against a configured base URL.
type Client struct {
	rc *resty.Client
}

// Option configures a [Client].
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client. Useful for testing with
// httptest.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		base := c.rc.BaseURL
		c.rc = resty.NewWithClient(hc)
		c.rc.SetBaseURL(base)
	}
}

// WithTimeout sets a per-request timeout. Zero (the default) means no
// timeout; cancellation then flows only through the context.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.rc.SetTimeout(d) }
}

// New creates a gateway Client for the given base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{rc: resty.New()}
	c.rc.SetBaseURL(baseURL)
	c.rc.SetHeader("Content-Type", "application/json")
	for _, o := range opts {
		o(c)
	}
	return c
}

// Chat sends a user message and returns the assistant's reply.
func (c *Client) Chat(ctx context.Context, req voyage.ChatRequest) (voyage.ChatResponse, error) {
	var out chatResponse
	resp, err := c.rc.R().
		SetContext(ctx).
		SetBody(chatRequest{Message: req.Message, SessionID: req.SessionID, UserID: req.UserID}).
		SetResult(&out).
		Post("/chat")
	if err := fail("POST /chat", resp, err); err != nil {
		return voyage.ChatResponse{}, err
	}
	return voyage.ChatResponse{
		Message:   out.Message,
		Intent:    out.Intent,
		Entities:  out.Entities,
		Elements:  toElements(out.Elements),
		SessionID: out.SessionID,
		Timestamp: out.Timestamp.Time,
	}, nil
}

// SearchFlights runs a direct flight search.
func (c *Client) SearchFlights(ctx context.Context, req voyage.FlightSearchRequest) (voyage.FlightSearchResponse, error) {
	var out voyage.FlightSearchResponse
	resp, err := c.rc.R().
		SetContext(ctx).
		SetBody(flightSearchRequest{
			Origin:        req.Origin,
			Destination:   req.Destination,
			DepartureDate: req.DepartureDate,
			ReturnDate:    req.ReturnDate,
			Passengers:    req.Passengers,
			ClassType:     req.ClassType,
		}).
		SetResult(&out).
		Post("/search-flight")
	if err := fail("POST /search-flight", resp, err); err != nil {
		return voyage.FlightSearchResponse{}, err
	}
	return out, nil
}

// SearchHotels runs a direct hotel search.
func (c *Client) SearchHotels(ctx context.Context, req voyage.HotelSearchRequest) (voyage.HotelSearchResponse, error) {
	var out voyage.HotelSearchResponse
	resp, err := c.rc.R().
		SetContext(ctx).
		SetBody(hotelSearchRequest{
			Location: req.Location,
			CheckIn:  req.CheckIn,
			CheckOut: req.CheckOut,
			Guests:   req.Guests,
			Rooms:    req.Rooms,
		}).
		SetResult(&out).
		Post("/search-hotel")
	if err := fail("POST /search-hotel", resp, err); err != nil {
		return voyage.HotelSearchResponse{}, err
	}
	return out, nil
}

// BookTrip creates a booking.
func (c *Client) BookTrip(ctx context.Context, req voyage.BookingRequest) (voyage.BookingConfirmation, error) {
	var out voyage.BookingConfirmation
	resp, err := c.rc.R().
		SetContext(ctx).
		SetBody(bookingRequest{
			BookingType:      req.BookingType,
			BookingID:        req.BookingID,
			PassengerDetails: req.PassengerDetails,
			PaymentInfo:      req.PaymentInfo,
		}).
		SetResult(&out).
		Post("/book-trip")
	if err := fail("POST /book-trip", resp, err); err != nil {
		return voyage.BookingConfirmation{}, err
	}
	return out, nil
}

// History fetches a session's messages in chronological order. A
// non-positive limit falls back to the backend default.
func (c *Client) History(ctx context.Context, sessionID string, limit int) ([]voyage.Message, error) {
	r := c.rc.R().
		SetContext(ctx).
		SetPathParam("sessionID", sessionID)
	if limit > 0 {
		r.SetQueryParam("limit", strconv.Itoa(limit))
	}
	var out historyResponse
	resp, err := r.SetResult(&out).Get("/conversation/{sessionID}")
	if err := fail("GET /conversation", resp, err); err != nil {
		return nil, err
	}
	msgs := make([]voyage.Message, len(out.Messages))
	for i, w := range out.Messages {
		msgs[i] = toMessage(w)
	}
	return msgs, nil
}

// DeleteConversation deletes a session and its messages.
func (c *Client) DeleteConversation(ctx context.Context, sessionID string) error {
	resp, err := c.rc.R().
		SetContext(ctx).
		SetPathParam("sessionID", sessionID).
		Delete("/conversation/{sessionID}")
	return fail("DELETE /conversation", resp, err)
}

// ListSessions lists the sessions known to the backend.
func (c *Client) ListSessions(ctx context.Context) ([]voyage.ConversationSession, error) {
	var out sessionsResponse
	resp, err := c.rc.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/sessions")
	if err := fail("GET /sessions", resp, err); err != nil {
		return nil, err
	}
	sessions := make([]voyage.ConversationSession, len(out.Sessions))
	for i, w := range out.Sessions {
		sessions[i] = toSession(w)
	}
	return sessions, nil
}

// CreateSession asks the backend to register a new session and returns
// its identifier. The client normally generates identifiers itself;
// this covers backends that want to mint them.
func (c *Client) CreateSession(ctx context.Context, userID string) (string, error) {
	r := c.rc.R().SetContext(ctx)
	if userID != "" {
		r.SetQueryParam("user_id", userID)
	}
	var out newSessionResponse
	resp, err := r.SetResult(&out).Post("/session/new")
	if err := fail("POST /session/new", resp, err); err != nil {
		return "", err
	}
	return out.SessionID, nil
}

// Health checks backend liveness.
func (c *Client) Health(ctx context.Context) (voyage.HealthStatus, error) {
	var out voyage.HealthStatus
	resp, err := c.rc.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/health")
	if err := fail("GET /health", resp, err); err != nil {
		return voyage.HealthStatus{}, err
	}
	return out, nil
}

// fail collapses transport errors and non-2xx statuses into the single
// generic failure the rest of the app handles. Nil when the call
// succeeded.
func fail(op string, resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("api: %s: %v: %w", op, err, voyage.ErrRequestFailed)
	}
	if resp.IsError() {
		return fmt.Errorf("api: %s: HTTP %d: %w", op, resp.StatusCode(), voyage.ErrRequestFailed)
	}
	return nil
}
