package voyage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/voyagecli/voyage"
)

func TestChatRequest_Validate(t *testing.T) {
	t.Parallel()

	valid := voyage.ChatRequest{Message: "hi", SessionID: "s1"}
	assert.NoError(t, valid.Validate())

	assert.ErrorIs(t, voyage.ChatRequest{SessionID: "s1"}.Validate(), voyage.ErrValidation)
	assert.ErrorIs(t, voyage.ChatRequest{Message: "hi"}.Validate(), voyage.ErrValidation)
}

func TestFlightSearchRequest_Validate(t *testing.T) {
	t.Parallel()

	valid := voyage.FlightSearchRequest{
		Origin:        "ZRH",
		Destination:   "LIS",
		DepartureDate: "2025-07-01",
		Passengers:    2,
		ClassType:     "economy",
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*voyage.FlightSearchRequest)
	}{
		{"missing origin", func(r *voyage.FlightSearchRequest) { r.Origin = "" }},
		{"missing destination", func(r *voyage.FlightSearchRequest) { r.Destination = "" }},
		{"missing departure date", func(r *voyage.FlightSearchRequest) { r.DepartureDate = "" }},
		{"zero passengers", func(r *voyage.FlightSearchRequest) { r.Passengers = 0 }},
		{"too many passengers", func(r *voyage.FlightSearchRequest) { r.Passengers = 10 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := valid
			tt.mutate(&r)
			assert.ErrorIs(t, r.Validate(), voyage.ErrValidation)
		})
	}
}

func TestHotelSearchRequest_Validate(t *testing.T) {
	t.Parallel()

	valid := voyage.HotelSearchRequest{
		Location: "Lisbon",
		CheckIn:  "2025-07-01",
		CheckOut: "2025-07-04",
		Guests:   2,
		Rooms:    1,
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*voyage.HotelSearchRequest)
	}{
		{"missing location", func(r *voyage.HotelSearchRequest) { r.Location = "" }},
		{"missing check-in", func(r *voyage.HotelSearchRequest) { r.CheckIn = "" }},
		{"missing check-out", func(r *voyage.HotelSearchRequest) { r.CheckOut = "" }},
		{"too many guests", func(r *voyage.HotelSearchRequest) { r.Guests = 11 }},
		{"zero rooms", func(r *voyage.HotelSearchRequest) { r.Rooms = 0 }},
		{"too many rooms", func(r *voyage.HotelSearchRequest) { r.Rooms = 6 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := valid
			tt.mutate(&r)
			assert.ErrorIs(t, r.Validate(), voyage.ErrValidation)
		})
	}
}

func TestBookingRequest_Validate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, voyage.BookingRequest{BookingType: "flight", BookingID: "F1"}.Validate())
	assert.NoError(t, voyage.BookingRequest{BookingType: "package", BookingID: "P1"}.Validate())

	assert.ErrorIs(t, voyage.BookingRequest{BookingType: "cruise", BookingID: "C1"}.Validate(), voyage.ErrValidation)
	assert.ErrorIs(t, voyage.BookingRequest{BookingType: "flight"}.Validate(), voyage.ErrValidation)
}
