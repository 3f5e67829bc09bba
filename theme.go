package voyage

// Theme defines semantic color mappings using ANSI color indices (0-15).
// The user's terminal theme determines the actual RGB values, so the app
// automatically matches any color scheme.
type Theme struct {
	UserMsg int // User message accent
	Element int // Button/link element text
	Card    int // Card borders and titles
	Price   int // Price figures on cards
	Error   int // Error messages
	Success int // Success indicators
	Muted   int // Status bar, placeholders, timestamps
	Accent  int // Headings, links
}

// DefaultTheme returns the default ANSI color mapping.
func DefaultTheme() Theme {
	return Theme{
		UserMsg: 4,
		Element: 6,
		Card:    3,
		Price:   2,
		Error:   1,
		Success: 2,
		Muted:   8,
		Accent:  5,
	}
}
