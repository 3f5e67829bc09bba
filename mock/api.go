// Package mock provides test doubles for voyage interfaces using function fields.
package mock

import (
	"context"

	"github.com/voyagecli/voyage"
)

// Interface compliance check.
var _ voyage.API = (*API)(nil)

// API is a test double for voyage.API.
// Set the function fields for the methods you need.
type API struct {
	ChatFn               func(ctx context.Context, req voyage.ChatRequest) (voyage.ChatResponse, error)
	SearchFlightsFn      func(ctx context.Context, req voyage.FlightSearchRequest) (voyage.FlightSearchResponse, error)
	SearchHotelsFn       func(ctx context.Context, req voyage.HotelSearchRequest) (voyage.HotelSearchResponse, error)
	BookTripFn           func(ctx context.Context, req voyage.BookingRequest) (voyage.BookingConfirmation, error)
	HistoryFn            func(ctx context.Context, sessionID string, limit int) ([]voyage.Message, error)
	DeleteConversationFn func(ctx context.Context, sessionID string) error
	ListSessionsFn       func(ctx context.Context) ([]voyage.ConversationSession, error)
	CreateSessionFn      func(ctx context.Context, userID string) (string, error)
	HealthFn             func(ctx context.Context) (voyage.HealthStatus, error)
}

// Chat delegates to ChatFn.
func (a *API) Chat(ctx context.Context, req voyage.ChatRequest) (voyage.ChatResponse, error) {
	return a.ChatFn(ctx, req)
}

// SearchFlights delegates to SearchFlightsFn.
func (a *API) SearchFlights(ctx context.Context, req voyage.FlightSearchRequest) (voyage.FlightSearchResponse, error) {
	return a.SearchFlightsFn(ctx, req)
}

// SearchHotels delegates to SearchHotelsFn.
func (a *API) SearchHotels(ctx context.Context, req voyage.HotelSearchRequest) (voyage.HotelSearchResponse, error) {
	return a.SearchHotelsFn(ctx, req)
}

// BookTrip delegates to BookTripFn.
func (a *API) BookTrip(ctx context.Context, req voyage.BookingRequest) (voyage.BookingConfirmation, error) {
	return a.BookTripFn(ctx, req)
}

// History delegates to HistoryFn.
func (a *API) History(ctx context.Context, sessionID string, limit int) ([]voyage.Message, error) {
	return a.HistoryFn(ctx, sessionID, limit)
}

// DeleteConversation delegates to DeleteConversationFn.
func (a *API) DeleteConversation(ctx context.Context, sessionID string) error {
	return a.DeleteConversationFn(ctx, sessionID)
}

// ListSessions delegates to ListSessionsFn.
func (a *API) ListSessions(ctx context.Context) ([]voyage.ConversationSession, error) {
	return a.ListSessionsFn(ctx)
}

// CreateSession delegates to CreateSessionFn.
func (a *API) CreateSession(ctx context.Context, userID string) (string, error) {
	return a.CreateSessionFn(ctx, userID)
}

// Health delegates to HealthFn.
func (a *API) Health(ctx context.Context) (voyage.HealthStatus, error) {
	return a.HealthFn(ctx)
}
