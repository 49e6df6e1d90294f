package tui

import (
	"strings"

	"github.com/threebell/threebell/internal/bar"
	"github.com/threebell/threebell/internal/display"
	"github.com/threebell/threebell/internal/models"
)

// barLayout is the cell rectangle the bar occupies in the view.
type barLayout struct {
	window *display.Window
	paused bool
	row    int
	col    int
	rows   int
	cols   int
}

// contains reports whether the cell (x, y) is on the bar.
func (l barLayout) contains(x, y int) bool {
	return y >= l.row && y < l.row+l.rows && x >= l.col && x < l.col+l.cols
}

// barLayout places the first visible window. The status line takes the
// terminal row on the opposite edge.
func (m *Model) barLayout() (barLayout, bool) {
	visible := m.ctl.Displays().Visible()
	if len(visible) == 0 || m.width < 1 || m.height < 2 {
		return barLayout{}, false
	}
	w := visible[0]
	paused := m.ctl.Snapshot().Paused

	col, _, cols, _ := display.ToCells(w.Geometry(m.screens, paused))
	cols = min(cols, m.width-col)
	rows := min(bar.RowsFor(float64(w.DrawHeight(paused))), m.height-1)

	row := 0
	if w.Position == models.PositionBottom {
		row = m.height - rows
	}
	return barLayout{window: w, paused: paused, row: row, col: col, rows: rows, cols: cols}, true
}

// statusRow is the terminal row of the status line.
func (m *Model) statusRow() int {
	if lay, ok := m.barLayout(); ok && lay.window.Position == models.PositionBottom {
		return 0
	}
	return m.height - 1
}

// renderBar draws the bar into lines of the view.
func (m *Model) renderBar(lines []string) {
	lay, ok := m.barLayout()
	if !ok || lay.cols < 1 {
		return
	}
	frame := m.ctl.CellFrame(lay.cols, lay.rows, m.now())
	pad := strings.Repeat(" ", lay.col)
	for i, line := range m.raster.Draw(frame, lay.cols, lay.rows) {
		if r := lay.row + i; r >= 0 && r < len(lines) {
			lines[r] = pad + line
		}
	}
}
