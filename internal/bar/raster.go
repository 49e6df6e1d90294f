package bar

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Terminal cell size in bar pixels.
const (
	CellWidth  = 8.0
	CellHeight = 16.0
)

// Glyphs used by the rasteriser.
const (
	glyphSplit = "▌"
	glyphRight = "▐"
	glyphMark  = "●"
	glyphPlay  = "▶"
	glyphTop   = "▔"
	glyphBot   = "▁"
)

// Raster draws frames into terminal cells. Each cell is sampled twice
// horizontally; differing samples are drawn as a half block.
type Raster struct {
	Backdrop colorful.Color
}

// NewRaster creates a rasteriser blending translucent colours over backdrop.
func NewRaster(backdrop colorful.Color) *Raster {
	return &Raster{Backdrop: backdrop}
}

// RowsFor converts a bar height in pixels to terminal rows (at least one).
func RowsFor(heightPx float64) int {
	return max(1, int(math.Round(heightPx/CellHeight)))
}

// ColsFor converts a bar width in pixels to terminal columns.
func ColsFor(widthPx float64) int {
	return max(1, int(widthPx/CellWidth))
}

// FitStyle adapts st to a bar drawn width pixels wide on the cell grid. The
// segment inset shrinks with the marble width and is dropped once a marble
// is narrower than a cell, where the grid can no longer show it.
func FitStyle(st Style, total int, width float64) Style {
	mw := width / float64(max(total, 1))
	if mw < CellWidth {
		st.Gap = 0
	} else {
		st.Gap = min(st.Gap, mw/4)
	}
	return st
}

type sample struct {
	color colorful.Color
	ok    bool
}

type cell struct {
	left, right sample
	glyph       string
	fg          sample
}

// Draw renders f into rows of cols cells. The frame should have been
// rendered at cols*CellWidth by rows*CellHeight pixels.
func (r *Raster) Draw(f Frame, cols, rows int) []string {
	grid := make([][]cell, rows)
	for row := range grid {
		grid[row] = make([]cell, cols)
		y := (float64(row) + 0.5) * CellHeight
		for col := range grid[row] {
			x := float64(col) * CellWidth
			grid[row][col] = cell{
				left:  r.sampleAt(f, x+CellWidth/4, y),
				right: r.sampleAt(f, x+3*CellWidth/4, y),
			}
		}
	}

	r.drawBorders(f, grid)
	r.drawMarks(f, grid)
	if f.Paused {
		r.drawOverlay(f, grid)
	}

	lines := make([]string, rows)
	for row := range grid {
		lines[row] = renderRow(grid[row])
	}
	return lines
}

func (r *Raster) blend(c RGBA) colorful.Color {
	if c.Opaque() {
		return c.Color
	}
	return r.Backdrop.BlendRgb(c.Color, float64(c.Alpha)/255).Clamped()
}

func (r *Raster) sampleAt(f Frame, x, y float64) sample {
	for _, seg := range f.Segments {
		if !seg.Rect.Contains(x, y) {
			continue
		}
		if !seg.Progress.Empty() && seg.Progress.Contains(x, y) {
			return sample{color: r.blend(seg.ProgressFill), ok: true}
		}
		return sample{color: r.blend(seg.Fill), ok: true}
	}
	return sample{}
}

// drawBorders outlines segments on their first and last covered rows.
func (r *Raster) drawBorders(f Frame, grid [][]cell) {
	if len(grid) < 2 || len(f.Segments) == 0 || f.Segments[0].Border == nil {
		return
	}
	rect := f.Segments[0].Rect
	first, last := -1, -1
	for row := range grid {
		y := (float64(row) + 0.5) * CellHeight
		if y >= rect.Y && y < rect.Bottom() {
			if first < 0 {
				first = row
			}
			last = row
		}
	}
	if first < 0 || first == last {
		return
	}

	for _, seg := range f.Segments {
		border := sample{color: r.blend(*seg.Border), ok: true}
		startCol := int(seg.Rect.X / CellWidth)
		endCol := int(math.Ceil(seg.Rect.Right()/CellWidth)) - 1
		for col := max(startCol, 0); col <= endCol && col < len(grid[first]); col++ {
			grid[first][col].glyph = glyphTop
			grid[first][col].fg = border
			grid[last][col].glyph = glyphBot
			grid[last][col].fg = border
		}
	}
}

func (r *Raster) drawMarks(f Frame, grid [][]cell) {
	for _, m := range f.Marks {
		cx := m.Rect.X + m.Rect.W/2
		cy := m.Rect.Y + m.Rect.H/2
		r.put(grid, cx, cy, glyphMark, m.Color)
	}
}

func (r *Raster) drawOverlay(f Frame, grid [][]cell) {
	if len(f.Play) > 0 {
		var cx, cy float64
		for _, p := range f.Play {
			cx += p.X
			cy += p.Y
		}
		n := float64(len(f.Play))
		r.put(grid, cx/n, cy/n, glyphPlay, f.PlayColor)
	}

	for _, l := range f.Labels {
		lastCol := int(math.Floor(l.Box.Right()/CellWidth)) - 1
		startCol := lastCol - len(l.Text) + 1
		y := l.Box.Y + l.Box.H/2
		for i, ch := range l.Text {
			col := startCol + i
			if col < 0 {
				continue
			}
			r.put(grid, (float64(col)+0.5)*CellWidth, y, string(ch), l.Color)
		}
	}
}

func (r *Raster) put(grid [][]cell, x, y float64, glyph string, c RGBA) {
	row := int(y / CellHeight)
	col := int(x / CellWidth)
	if row < 0 || row >= len(grid) || col < 0 || col >= len(grid[row]) {
		return
	}
	grid[row][col].glyph = glyph
	grid[row][col].fg = sample{color: r.blend(c), ok: true}
}

func (c cell) style() (string, lipgloss.Style) {
	st := lipgloss.NewStyle()
	if c.glyph != "" {
		bg := c.left
		if !bg.ok {
			bg = c.right
		}
		if bg.ok {
			st = st.Background(lipgloss.Color(bg.color.Hex()))
		}
		if c.fg.ok {
			st = st.Foreground(lipgloss.Color(c.fg.color.Hex()))
		}
		return c.glyph, st
	}

	switch {
	case !c.left.ok && !c.right.ok:
		return " ", st
	case c.left.ok && c.right.ok && c.left.color.Hex() == c.right.color.Hex():
		return " ", st.Background(lipgloss.Color(c.left.color.Hex()))
	case !c.left.ok:
		return glyphRight, st.Foreground(lipgloss.Color(c.right.color.Hex()))
	default:
		st = st.Foreground(lipgloss.Color(c.left.color.Hex()))
		if c.right.ok {
			st = st.Background(lipgloss.Color(c.right.color.Hex()))
		}
		return glyphSplit, st
	}
}

// renderRow merges runs of identically styled cells before styling them.
func renderRow(cells []cell) string {
	var b strings.Builder
	var run strings.Builder
	var runStyle lipgloss.Style
	var runKey string

	flush := func() {
		if run.Len() > 0 {
			b.WriteString(runStyle.Render(run.String()))
			run.Reset()
		}
	}

	for _, c := range cells {
		glyph, st := c.style()
		key := styleKey(st)
		if key != runKey {
			flush()
			runKey = key
			runStyle = st
		}
		run.WriteString(glyph)
	}
	flush()
	return b.String()
}

func styleKey(st lipgloss.Style) string {
	return colorKey(st.GetForeground()) + "/" + colorKey(st.GetBackground())
}

func colorKey(c lipgloss.TerminalColor) string {
	if col, ok := c.(lipgloss.Color); ok {
		return string(col)
	}
	return ""
}
