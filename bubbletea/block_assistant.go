package bubbletea

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/voyagecli/voyage"
	"github.com/voyagecli/voyage/goldmark"
)

var _ MessageBlock = (*AssistantMessageBlock)(nil)

// AssistantMessageBlock renders an assistant reply body with markdown
// formatting. Content is fixed at construction; rendering is cached
// per width because the viewport re-renders every block on resize.
type AssistantMessageBlock struct {
	content string
	theme   voyage.Theme

	byWidth map[int]string
}

// NewAssistantMessageBlock creates a block for an assistant reply body.
func NewAssistantMessageBlock(content string, theme voyage.Theme) *AssistantMessageBlock {
	return &AssistantMessageBlock{
		content: content,
		theme:   theme,
		byWidth: make(map[int]string),
	}
}

func (b *AssistantMessageBlock) Update(msg tea.Msg) (MessageBlock, tea.Cmd) {
	return b, nil
}

func (b *AssistantMessageBlock) View(width int) string {
	if width <= 0 {
		return ""
	}
	if cached, ok := b.byWidth[width]; ok {
		return cached
	}
	rendered := goldmark.Render(b.content, width, b.theme)
	b.byWidth[width] = rendered
	return rendered
}
