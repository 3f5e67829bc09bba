package voyage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/voyagecli/voyage"
)

func TestActionOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want voyage.Action
		ok   bool
	}{
		{"book_flight", voyage.ActionBookFlight, true},
		{"book_hotel", voyage.ActionBookHotel, true},
		{"view_details", voyage.ActionViewDetails, true},
		{"search_again", voyage.ActionSearchAgain, true},
		{"launch_rocket", voyage.Action("launch_rocket"), false},
		{"", voyage.Action(""), false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()
			got, ok := voyage.ActionOf(tt.raw)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestUIElement_StringData(t *testing.T) {
	t.Parallel()

	el := voyage.UIElement{Data: map[string]any{"location": "Lisbon", "price": 120.0}}

	v, ok := el.StringData("location")
	assert.True(t, ok)
	assert.Equal(t, "Lisbon", v)

	_, ok = el.StringData("price") // numeric, not coerced
	assert.False(t, ok)

	_, ok = el.StringData("missing")
	assert.False(t, ok)
}

func TestUIElement_FloatData(t *testing.T) {
	t.Parallel()

	el := voyage.UIElement{Data: map[string]any{"price": 120.0, "rating": 4.5, "name": "x"}}

	price, ok := el.FloatData("price")
	assert.True(t, ok)
	assert.Equal(t, 120.0, price)

	rating, ok := el.FloatData("rating")
	assert.True(t, ok)
	assert.Equal(t, 4.5, rating)

	_, ok = el.FloatData("name")
	assert.False(t, ok)

	_, ok = el.FloatData("duration")
	assert.False(t, ok)
}

func TestUIElement_BookingID(t *testing.T) {
	t.Parallel()

	t.Run("prefers booking_id", func(t *testing.T) {
		t.Parallel()
		el := voyage.UIElement{Data: map[string]any{"booking_id": "B1", "flight_id": "F1"}}
		assert.Equal(t, "B1", el.BookingID())
	})

	t.Run("falls back through known keys", func(t *testing.T) {
		t.Parallel()
		el := voyage.UIElement{Data: map[string]any{"hotel_id": "H1"}}
		assert.Equal(t, "H1", el.BookingID())
	})

	t.Run("empty without data", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, voyage.UIElement{}.BookingID())
	})
}
