// Package goldmark renders markdown text to ANSI-styled terminal
// output using goldmark for parsing and lipgloss for styling. It
// covers the subset assistant replies actually use: paragraphs,
// headings, lists, links, emphasis, and the occasional code block.
package goldmark

import "github.com/voyagecli/voyage"

// Render parses markdown source and returns ANSI-styled terminal output.
// Paragraphs and list items are word-wrapped to width. Code blocks are
// rendered at full width without reflow.
func Render(source string, width int, theme voyage.Theme) string {
	if source == "" {
		return ""
	}
	if width <= 0 {
		width = 80
	}
	r := newRenderer(theme)
	return r.render([]byte(source), width)
}
