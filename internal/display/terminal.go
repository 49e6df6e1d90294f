package display

import (
	"os"
	"sync"

	"golang.org/x/term"
)

// Terminal cell size in pixels. Matches the bar rasteriser.
const (
	CellWidth  = 8
	CellHeight = 16
)

// TerminalScreens reports the terminal as a single screen, measured in
// virtual pixels (one cell is CellWidth×CellHeight).
type TerminalScreens struct {
	mu         sync.Mutex
	cols, rows int
}

// NewTerminalScreens creates a screen of the given size in cells.
func NewTerminalScreens(cols, rows int) *TerminalScreens {
	return &TerminalScreens{cols: cols, rows: rows}
}

// DetectTerminalScreens sizes the screen from the controlling terminal,
// falling back to 80x24 when stdout is not a terminal.
func DetectTerminalScreens() *TerminalScreens {
	cols, rows := 80, 24
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, h, err := term.GetSize(fd); err == nil && w > 0 && h > 0 {
			cols, rows = w, h
		}
	}
	return NewTerminalScreens(cols, rows)
}

// Resize updates the terminal size in cells.
func (t *TerminalScreens) Resize(cols, rows int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cols, t.rows = cols, rows
}

// Cells returns the terminal size in cells.
func (t *TerminalScreens) Cells() (cols, rows int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cols, t.rows
}

// Count implements Screens.
func (t *TerminalScreens) Count() int { return 1 }

// Available implements Screens.
func (t *TerminalScreens) Available(int) Rect {
	cols, rows := t.Cells()
	return Rect{X: 0, Y: 0, W: cols * CellWidth, H: rows * CellHeight}
}

// ToCells converts a pixel rectangle to the cell rectangle it covers.
// Width and height are at least one cell.
func ToCells(r Rect) (col, row, cols, rows int) {
	col = r.X / CellWidth
	row = r.Y / CellHeight
	cols = max(1, r.W/CellWidth)
	rows = max(1, (r.H+CellHeight/2)/CellHeight)
	return col, row, cols, rows
}
