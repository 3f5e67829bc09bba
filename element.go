package voyage

// ElementKind identifies how a UI element is presented.
type ElementKind string

const (
	KindButton ElementKind = "button"
	KindLink   ElementKind = "link"
	KindCard   ElementKind = "card"
)

// Action identifies what activating a UI element does. The set is
// closed: identifiers outside it parse as unsupported rather than
// being silently ignored.
type Action string

const (
	ActionBookFlight  Action = "book_flight"
	ActionBookHotel   Action = "book_hotel"
	ActionViewDetails Action = "view_details"
	ActionSearchAgain Action = "search_again"
)

// ActionOf maps a raw action identifier to an Action. The second
// return value is false for identifiers with no registered handler.
func ActionOf(s string) (Action, bool) {
	switch a := Action(s); a {
	case ActionBookFlight, ActionBookHotel, ActionViewDetails, ActionSearchAgain:
		return a, true
	default:
		return a, false
	}
}

// UIElement is a structured, activatable affordance attached to an
// assistant reply. Elements are attached at message creation and never
// mutated.
type UIElement struct {
	Kind   ElementKind
	Text   string
	Action Action

	// Data carries optional element payload: price, rating, location,
	// duration, booking identifiers. Any field may be absent.
	Data map[string]any
}

// StringData returns Data[key] as a string. Numeric JSON values are not
// coerced; the second return value is false when the key is absent or
// holds a non-string value.
func (e UIElement) StringData(key string) (string, bool) {
	v, ok := e.Data[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// FloatData returns Data[key] as a float64. JSON numbers decode as
// float64, so this covers both integral and fractional values. Returns
// false when the key is absent or holds a non-numeric value.
func (e UIElement) FloatData(key string) (float64, bool) {
	v, ok := e.Data[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}

// BookingID returns the booking identifier carried by the element's
// data, checking the keys the backend is known to use. Empty when none
// is present.
func (e UIElement) BookingID() string {
	for _, key := range []string{"booking_id", "flight_id", "hotel_id", "id"} {
		if id, ok := e.StringData(key); ok && id != "" {
			return id
		}
	}
	return ""
}
