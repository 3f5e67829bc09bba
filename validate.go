package voyage

import "fmt"

// Validate checks universal constraints on ChatRequest. The backend
// applies its own validation on top.
func (r ChatRequest) Validate() error {
	if r.Message == "" {
		return fmt.Errorf("message must not be empty: %w", ErrValidation)
	}
	if r.SessionID == "" {
		return fmt.Errorf("session_id must not be empty: %w", ErrValidation)
	}
	return nil
}

// Validate checks field constraints on FlightSearchRequest.
func (r FlightSearchRequest) Validate() error {
	if r.Origin == "" {
		return fmt.Errorf("origin must not be empty: %w", ErrValidation)
	}
	if r.Destination == "" {
		return fmt.Errorf("destination must not be empty: %w", ErrValidation)
	}
	if r.DepartureDate == "" {
		return fmt.Errorf("departure_date must not be empty: %w", ErrValidation)
	}
	if r.Passengers < 1 || r.Passengers > 9 {
		return fmt.Errorf("passengers must be in [1, 9], got %d: %w", r.Passengers, ErrValidation)
	}
	return nil
}

// Validate checks field constraints on HotelSearchRequest.
func (r HotelSearchRequest) Validate() error {
	if r.Location == "" {
		return fmt.Errorf("location must not be empty: %w", ErrValidation)
	}
	if r.CheckIn == "" {
		return fmt.Errorf("check_in must not be empty: %w", ErrValidation)
	}
	if r.CheckOut == "" {
		return fmt.Errorf("check_out must not be empty: %w", ErrValidation)
	}
	if r.Guests < 1 || r.Guests > 10 {
		return fmt.Errorf("guests must be in [1, 10], got %d: %w", r.Guests, ErrValidation)
	}
	if r.Rooms < 1 || r.Rooms > 5 {
		return fmt.Errorf("rooms must be in [1, 5], got %d: %w", r.Rooms, ErrValidation)
	}
	return nil
}

// Validate checks field constraints on BookingRequest.
func (r BookingRequest) Validate() error {
	switch r.BookingType {
	case "flight", "hotel", "package":
	default:
		return fmt.Errorf("booking_type must be flight, hotel or package, got %q: %w", r.BookingType, ErrValidation)
	}
	if r.BookingID == "" {
		return fmt.Errorf("booking_id must not be empty: %w", ErrValidation)
	}
	return nil
}
