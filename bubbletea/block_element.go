package bubbletea

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/voyagecli/voyage"
)

var _ MessageBlock = (*ElementBlock)(nil)

// ElementBlock renders one interactive UI element from an assistant
// reply. Buttons and links render as a single line; cards render as a
// bordered box with whatever detail fields the element's data carries.
// The focused block is highlighted and activated with Tab.
type ElementBlock struct {
	element voyage.UIElement
	focused bool
	styles  Styles
}

// NewElementBlock creates an ElementBlock.
func NewElementBlock(el voyage.UIElement, styles Styles) *ElementBlock {
	return &ElementBlock{element: el, styles: styles}
}

// Element returns the underlying UI element for action dispatch.
func (b *ElementBlock) Element() voyage.UIElement { return b.element }

// Focused reports whether the block currently holds focus.
func (b *ElementBlock) Focused() bool { return b.focused }

func (b *ElementBlock) Update(msg tea.Msg) (MessageBlock, tea.Cmd) {
	if f, ok := msg.(FocusMsg); ok {
		b.focused = f.Focused
	}
	return b, nil
}

func (b *ElementBlock) View(width int) string {
	switch b.element.Kind {
	case voyage.KindCard:
		return b.viewCard(width)
	case voyage.KindLink:
		return b.viewLink(width)
	default:
		// Buttons, and anything unrecognized, render as a button.
		return b.viewButton(width)
	}
}

func (b *ElementBlock) viewButton(width int) string {
	label := "[ " + b.element.Text + " ]"
	style := b.styles.Element
	if b.focused {
		style = b.styles.ElementFocus
	}
	return lipgloss.NewStyle().Width(width).Render(style.Render(label))
}

func (b *ElementBlock) viewLink(width int) string {
	style := b.styles.Element.Underline(true)
	if b.focused {
		style = b.styles.ElementFocus.Underline(true)
	}
	return lipgloss.NewStyle().Width(width).Render(style.Render(b.element.Text))
}

func (b *ElementBlock) viewCard(width int) string {
	var lines []string
	lines = append(lines, b.styles.CardTitle.Render(b.element.Text))
	lines = append(lines, b.detailLines()...)

	border := b.styles.CardBorder
	if b.focused {
		border = border.Bold(true)
	}
	box := border.
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	// Leave room for the border and padding.
	inner := width - 4
	if inner < 10 {
		inner = 10
	}
	content := lipgloss.NewStyle().Width(inner).Render(strings.Join(lines, "\n"))
	return box.Render(content)
}

// detailLines formats the optional card fields that are present.
// Absent fields are skipped; a card with no data renders as just its
// title.
func (b *ElementBlock) detailLines() []string {
	var lines []string
	if price, ok := b.element.FloatData("price"); ok {
		lines = append(lines, b.styles.Price.Render(fmt.Sprintf("$%.2f", price)))
	}
	if rating, ok := b.element.FloatData("rating"); ok {
		lines = append(lines, b.styles.Element.Render(fmt.Sprintf("★ %.1f", rating)))
	}
	if location, ok := b.element.StringData("location"); ok {
		lines = append(lines, b.styles.Muted.Render(location))
	}
	if duration, ok := b.element.StringData("duration"); ok {
		lines = append(lines, b.styles.Muted.Render(duration))
	}
	return lines
}
