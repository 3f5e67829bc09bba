package voyage

import (
	"context"
	"time"
)

// API is the gateway to the travel assistant backend, one method per
// endpoint. Every call is independent and fire-once: no caching, no
// retries, no deduplication. Implementations return parsed responses
// on HTTP success and an error wrapping [ErrRequestFailed] on any
// transport failure or non-2xx status.
type API interface {
	Chat(ctx context.Context, req ChatRequest) (ChatResponse, error)
	SearchFlights(ctx context.Context, req FlightSearchRequest) (FlightSearchResponse, error)
	SearchHotels(ctx context.Context, req HotelSearchRequest) (HotelSearchResponse, error)
	BookTrip(ctx context.Context, req BookingRequest) (BookingConfirmation, error)
	History(ctx context.Context, sessionID string, limit int) ([]Message, error)
	DeleteConversation(ctx context.Context, sessionID string) error
	ListSessions(ctx context.Context) ([]ConversationSession, error)
	CreateSession(ctx context.Context, userID string) (string, error)
	Health(ctx context.Context) (HealthStatus, error)
}

// ChatRequest is the payload for the chat endpoint.
type ChatRequest struct {
	Message   string
	SessionID string
	UserID    string // optional
}

// ChatResponse is the assistant's reply to a chat request.
type ChatResponse struct {
	Message   string
	Intent    string
	Entities  map[string]any
	Elements  []UIElement
	SessionID string
	Timestamp time.Time
}

// FlightSearchRequest is the payload for the flight search endpoint.
type FlightSearchRequest struct {
	Origin        string
	Destination   string
	DepartureDate string // YYYY-MM-DD
	ReturnDate    string // optional, round trip when set
	Passengers    int
	ClassType     string // economy, business, first
}

// FlightResult is a single flight option.
type FlightResult struct {
	FlightID       string  `json:"flight_id"`
	Airline        string  `json:"airline"`
	FlightNumber   string  `json:"flight_number"`
	Origin         string  `json:"origin"`
	Destination    string  `json:"destination"`
	DepartureTime  string  `json:"departure_time"`
	ArrivalTime    string  `json:"arrival_time"`
	Duration       string  `json:"duration"`
	Price          float64 `json:"price"`
	Currency       string  `json:"currency"`
	AvailableSeats int     `json:"available_seats"`
}

// FlightSearchResponse is the flight search result set.
type FlightSearchResponse struct {
	Flights      []FlightResult `json:"flights"`
	TotalResults int            `json:"total_results"`
}

// HotelSearchRequest is the payload for the hotel search endpoint.
type HotelSearchRequest struct {
	Location string
	CheckIn  string // YYYY-MM-DD
	CheckOut string // YYYY-MM-DD
	Guests   int
	Rooms    int
}

// HotelResult is a single hotel option.
type HotelResult struct {
	HotelID        string   `json:"hotel_id"`
	Name           string   `json:"name"`
	Location       string   `json:"location"`
	Rating         float64  `json:"rating"`
	PricePerNight  float64  `json:"price_per_night"`
	Currency       string   `json:"currency"`
	Amenities      []string `json:"amenities"`
	AvailableRooms int      `json:"available_rooms"`
}

// HotelSearchResponse is the hotel search result set.
type HotelSearchResponse struct {
	Hotels       []HotelResult `json:"hotels"`
	TotalResults int           `json:"total_results"`
}

// BookingRequest is the payload for the booking endpoint.
//
// PassengerDetails and PaymentInfo are accepted by the backend but the
// client currently sends them empty; the backend contract for them is
// unresolved.
type BookingRequest struct {
	BookingType      string // flight, hotel, package
	BookingID        string
	PassengerDetails map[string]any
	PaymentInfo      map[string]any
}

// BookingResult is a booking confirmation record.
type BookingResult struct {
	BookingID          string         `json:"booking_id"`
	BookingType        string         `json:"booking_type"`
	Status             string         `json:"status"`
	ConfirmationNumber string         `json:"confirmation_number"`
	TotalPrice         float64        `json:"total_price"`
	Currency           string         `json:"currency"`
	Details            map[string]any `json:"booking_details"`
}

// BookingConfirmation is the booking endpoint's response envelope.
type BookingConfirmation struct {
	Booking BookingResult `json:"booking"`
	Status  string        `json:"status"`
	Message string        `json:"message"`
}

// HealthStatus is the health endpoint's response.
type HealthStatus struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}
