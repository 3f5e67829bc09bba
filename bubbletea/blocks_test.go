package bubbletea_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyagecli/voyage"
	"github.com/voyagecli/voyage/bubbletea"
)

func testStyles() bubbletea.Styles {
	return bubbletea.NewStyles(voyage.DefaultTheme())
}

func TestUserMessageBlock(t *testing.T) {
	t.Parallel()

	b := bubbletea.NewUserMessageBlock("Find me a hotel in Lisbon", testStyles())
	view := b.View(80)

	assert.Contains(t, view, "> ")
	assert.Contains(t, view, "Find me a hotel in Lisbon")
}

func TestAssistantMessageBlock(t *testing.T) {
	t.Parallel()

	b := bubbletea.NewAssistantMessageBlock("I found **3 flights** for you.", voyage.DefaultTheme())
	view := b.View(80)

	assert.Contains(t, view, "3 flights")
	assert.NotContains(t, view, "**", "markdown syntax should be rendered away")
}

func TestAssistantMessageBlockZeroWidth(t *testing.T) {
	t.Parallel()

	b := bubbletea.NewAssistantMessageBlock("anything", voyage.DefaultTheme())
	assert.Empty(t, b.View(0))
}

func TestErrorBlock(t *testing.T) {
	t.Parallel()

	b := bubbletea.NewErrorBlock(errors.New("gateway timeout"), testStyles())
	view := b.View(80)

	assert.Contains(t, view, "Error:")
	assert.Contains(t, view, "gateway timeout")
}

func TestElementBlockButton(t *testing.T) {
	t.Parallel()

	el := voyage.UIElement{Kind: voyage.KindButton, Text: "Book Flight AF123", Action: voyage.ActionBookFlight}
	b := bubbletea.NewElementBlock(el, testStyles())

	assert.Contains(t, b.View(80), "[ Book Flight AF123 ]")
}

func TestElementBlockLink(t *testing.T) {
	t.Parallel()

	el := voyage.UIElement{Kind: voyage.KindLink, Text: "View full itinerary", Action: voyage.ActionViewDetails}
	b := bubbletea.NewElementBlock(el, testStyles())

	assert.Contains(t, b.View(80), "View full itinerary")
}

func TestElementBlockUnknownKindRendersAsButton(t *testing.T) {
	t.Parallel()

	el := voyage.UIElement{Kind: "carousel", Text: "More"}
	b := bubbletea.NewElementBlock(el, testStyles())

	assert.Contains(t, b.View(80), "[ More ]")
}

func TestElementBlockCard(t *testing.T) {
	t.Parallel()

	el := voyage.UIElement{
		Kind:   voyage.KindCard,
		Text:   "Hotel Lisboa Plaza",
		Action: voyage.ActionBookHotel,
		Data: map[string]any{
			"hotel_id": "ht-1",
			"price":    120.0,
			"rating":   4.5,
			"location": "Lisbon, Portugal",
		},
	}
	b := bubbletea.NewElementBlock(el, testStyles())
	view := b.View(60)

	assert.Contains(t, view, "Hotel Lisboa Plaza")
	assert.Contains(t, view, "$120.00")
	assert.Contains(t, view, "★ 4.5")
	assert.Contains(t, view, "Lisbon, Portugal")
}

func TestElementBlockCardSkipsAbsentFields(t *testing.T) {
	t.Parallel()

	el := voyage.UIElement{Kind: voyage.KindCard, Text: "Mystery Deal"}
	b := bubbletea.NewElementBlock(el, testStyles())
	view := b.View(60)

	assert.Contains(t, view, "Mystery Deal")
	assert.NotContains(t, view, "$")
	assert.NotContains(t, view, "★")
}

func TestElementBlockCardIntegerPrice(t *testing.T) {
	t.Parallel()

	// Decoded JSON may carry whole-number prices as float64 or, from
	// hand-built test data, as int. Both must render.
	el := voyage.UIElement{
		Kind: voyage.KindCard,
		Text: "Flight AF123",
		Data: map[string]any{"price": 450},
	}
	b := bubbletea.NewElementBlock(el, testStyles())

	assert.Contains(t, b.View(60), "$450.00")
}

func TestElementBlockFocus(t *testing.T) {
	t.Parallel()

	el := voyage.UIElement{Kind: voyage.KindButton, Text: "Book", Action: voyage.ActionBookFlight}
	b := bubbletea.NewElementBlock(el, testStyles())
	require.False(t, b.Focused())

	updated, cmd := b.Update(bubbletea.FocusMsg{Focused: true})
	assert.Nil(t, cmd)

	eb, ok := updated.(*bubbletea.ElementBlock)
	require.True(t, ok)
	assert.True(t, eb.Focused())
	assert.Equal(t, el, eb.Element())
}
