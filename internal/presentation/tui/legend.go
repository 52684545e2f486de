package tui

import (
	"github.com/charmbracelet/glamour"
)

const legendMarkdown = `## Controls

| Key | Action |
| --- | --- |
| space / p | play or pause |
| + / - | speed up or slow down |
| ] / [ | grow or shrink the array |
| s | shuffle |
| q | quit |

## Colors

| Mark | Meaning |
| --- | --- |
| red | compared pair |
| bright red (x) | swapped pair |
| yellow (p) | pivot |
| purple (l) / mint (r) | left and right swap candidates |
| cyan bar | partition boundary |
| orange line | pivot height |
| green | sorted |
`

// NewMarkdownRenderer returns a function that renders markdown using glamour,
// wrapping at width columns when width is positive.
func NewMarkdownRenderer(width int) (func(string) (string, error), error) {
	opts := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, err
	}
	return r.Render, nil
}

// Legend renders the key bindings and color legend.
func Legend(width int) (string, error) {
	render, err := NewMarkdownRenderer(width)
	if err != nil {
		return "", err
	}
	return render(legendMarkdown)
}
