package tui

import (
	"context"
	"fmt"
	"io"
	"math"
	"strings"
	"sync"

	"github.com/aretw0/sortvis/pkg/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

const (
	// DefaultHeight is the number of terminal rows a bar chart spans.
	DefaultHeight = 12
	// DefaultWidth is assumed when the output is not a terminal.
	DefaultWidth = 80

	barGlyph      = "█"
	boundaryGlyph = "│"
	pivotGlyph    = "─"
)

var titles = map[domain.Algorithm]string{
	domain.Bubble: "Bubble sort",
	domain.Quick:  "Quicksort",
}

// BarRenderer draws every board as a vertical bar chart, side by side when
// the terminal is wide enough and stacked otherwise.
type BarRenderer struct {
	mu sync.Mutex

	w       io.Writer
	out     *termenv.Output
	style   *lipgloss.Renderer
	profile *termenv.Profile

	height int
	width  int
	clear  bool
}

// BarOption configures a BarRenderer.
type BarOption func(*BarRenderer)

// WithHeight sets the chart height in rows.
func WithHeight(rows int) BarOption {
	return func(r *BarRenderer) {
		if rows > 0 {
			r.height = rows
		}
	}
}

// WithWidth pins the available width instead of querying the terminal.
func WithWidth(cols int) BarOption {
	return func(r *BarRenderer) { r.width = cols }
}

// WithProfile forces a color profile. termenv.Ascii disables colors.
func WithProfile(p termenv.Profile) BarOption {
	return func(r *BarRenderer) { r.profile = &p }
}

// WithClearScreen redraws every frame from the top-left corner.
func WithClearScreen(enabled bool) BarOption {
	return func(r *BarRenderer) { r.clear = enabled }
}

// NewBarRenderer creates a renderer writing frames to w.
func NewBarRenderer(w io.Writer, opts ...BarOption) *BarRenderer {
	r := &BarRenderer{w: w, height: DefaultHeight}
	for _, opt := range opts {
		opt(r)
	}
	var outOpts []termenv.OutputOption
	if r.profile != nil {
		outOpts = append(outOpts, termenv.WithProfile(*r.profile))
	}
	r.out = termenv.NewOutput(w, outOpts...)
	r.style = lipgloss.NewRenderer(w, outOpts...)
	return r
}

// Render implements ports.Renderer.
func (r *BarRenderer) Render(_ context.Context, boards []domain.Snapshot) error {
	frame := r.Frame(boards)

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.clear {
		r.out.ClearScreen()
	}
	_, err := io.WriteString(r.out, frame+"\n")
	return err
}

// Frame lays out one panel per board.
func (r *BarRenderer) Frame(boards []domain.Snapshot) string {
	panels := make([]string, 0, len(boards))
	total := 0
	for _, s := range boards {
		p := r.panel(s)
		total += lipgloss.Width(p) + 1
		panels = append(panels, p)
	}
	if total-1 <= r.availableWidth() {
		return lipgloss.JoinHorizontal(lipgloss.Top, spaced(panels)...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, panels...)
}

func spaced(panels []string) []string {
	out := make([]string, 0, 2*len(panels))
	for i, p := range panels {
		if i > 0 {
			out = append(out, " ")
		}
		out = append(out, p)
	}
	return out
}

func (r *BarRenderer) availableWidth() int {
	if r.width > 0 {
		return r.width
	}
	return terminalWidth(r.w)
}

func terminalWidth(w io.Writer) int {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return DefaultWidth
	}
	cols, _, err := term.GetSize(int(f.Fd()))
	if err != nil || cols <= 0 {
		return DefaultWidth
	}
	return cols
}

func (r *BarRenderer) panel(s domain.Snapshot) string {
	title, ok := titles[s.Algorithm]
	if !ok {
		title = string(s.Algorithm)
	}
	header := r.style.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorHeader)).Render(title)
	meta := r.style.NewStyle().Foreground(lipgloss.Color(ColorMuted)).
		Render(fmt.Sprintf("steps %d/%d  %s", s.Cursor, s.StepCount, s.Status))

	return r.style.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, header+"  "+meta, r.bars(s)))
}

// bars draws the chart rows followed by a marker row. Each column is a gap
// cell, where the partition boundary is drawn, and a bar cell.
func (r *BarRenderer) bars(s domain.Snapshot) string {
	n := len(s.Data)
	if n == 0 {
		return r.paint("(empty)", ColorMuted)
	}
	maxV := domain.MaxValue(s.Data)
	o := s.Overlay

	classes := make([]Class, n)
	levels := make([]int, n)
	for i, v := range s.Data {
		classes[i] = CellClass(s, i)
		levels[i] = level(float64(v)/float64(maxV), r.height)
	}
	pivotRow := 0
	if s.PivotHeight != nil {
		pivotRow = level(*s.PivotHeight/100, r.height)
	}
	boundary := domain.NoIndex
	if o.BoundaryVisible {
		boundary = o.Boundary
	}

	var b strings.Builder
	for row := r.height; row >= 1; row-- {
		for i := range n {
			switch {
			case i == boundary:
				b.WriteString(r.paint(boundaryGlyph, ColorBoundary))
			case row == pivotRow:
				b.WriteString(r.paint(pivotGlyph, ColorPivotLine))
			default:
				b.WriteByte(' ')
			}
			switch {
			case levels[i] >= row:
				b.WriteString(r.paint(barGlyph, classColors[classes[i]]))
			case row == pivotRow:
				b.WriteString(r.paint(pivotGlyph, ColorPivotLine))
			default:
				b.WriteByte(' ')
			}
		}
		if boundary == n {
			b.WriteString(r.paint(boundaryGlyph, ColorBoundary))
		}
		b.WriteByte('\n')
	}

	for i := range n {
		if i == boundary {
			b.WriteString(r.paint(boundaryGlyph, ColorBoundary))
		} else {
			b.WriteByte(' ')
		}
		if m, ok := classMarks[classes[i]]; ok {
			b.WriteString(r.paint(string(m), classColors[classes[i]]))
		} else {
			b.WriteByte(' ')
		}
	}
	if boundary == n {
		b.WriteString(r.paint(boundaryGlyph, ColorBoundary))
	}
	return b.String()
}

func (r *BarRenderer) paint(s, hex string) string {
	return r.out.String(s).Foreground(r.out.Color(hex)).String()
}

// level maps a fraction of the tallest bar to a row count. Any positive
// fraction occupies at least one row.
func level(frac float64, rows int) int {
	if frac <= 0 {
		return 0
	}
	return min(rows, int(math.Ceil(frac*float64(rows))))
}
