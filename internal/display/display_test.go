package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threebell/threebell/internal/models"
)

type fakeScreens []Rect

func (f fakeScreens) Count() int           { return len(f) }
func (f fakeScreens) Available(i int) Rect { return f[i] }

var twoScreens = fakeScreens{
	{X: 0, Y: 0, W: 1920, H: 1080},
	{X: 1920, Y: 0, W: 1280, H: 1024},
}

func TestWindowGeometry(t *testing.T) {
	tests := []struct {
		name     string
		display  int
		position string
		height   int
		paused   bool
		want     Rect
	}{
		{name: "top running", display: 0, position: models.PositionTop, height: 10, want: Rect{X: 2, Y: 2, W: 1916, H: 10}},
		{name: "top paused", display: 0, position: models.PositionTop, height: 10, paused: true, want: Rect{X: 2, Y: 2, W: 1916, H: 40}},
		{name: "bottom running", display: 1, position: models.PositionBottom, height: 10, want: Rect{X: 1922, Y: 1023 - 10 - 2, W: 1276, H: 10}},
		{name: "tiny height raised", display: 0, position: models.PositionTop, height: 3, want: Rect{X: 2, Y: 2, W: 1916, H: 10}},
		{name: "huge height capped", display: 0, position: models.PositionTop, height: 90, want: Rect{X: 2, Y: 2, W: 1916, H: 40}},
		{name: "missing display falls back", display: 7, position: models.PositionTop, height: 10, want: Rect{X: 2, Y: 2, W: 1916, H: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWindow(tt.display, tt.position, tt.height)
			assert.Equal(t, tt.want, w.Geometry(twoScreens, tt.paused))
		})
	}
}

func TestDrawHeight(t *testing.T) {
	w := NewWindow(0, models.PositionTop, 3)
	assert.Equal(t, 3, w.DrawHeight(false))
	assert.Equal(t, 10, w.Height(false))
	assert.Equal(t, 40, w.DrawHeight(true))
}

func TestInPlayArea(t *testing.T) {
	w := NewWindow(0, models.PositionTop, 10)
	assert.True(t, w.InPlayArea(0, true))
	assert.True(t, w.InPlayArea(39, true))
	assert.False(t, w.InPlayArea(40, true))
	assert.False(t, w.InPlayArea(5, false))
}

func TestParseDisplays(t *testing.T) {
	got, err := ParseDisplays("all", 3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, got)

	got, err = ParseDisplays(" 1, 0,1 ", 3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, got)

	_, err = ParseDisplays("one", 3)
	assert.Error(t, err)

	_, err = ParseDisplays("-1", 3)
	assert.Error(t, err)
}

func TestManagerCycle(t *testing.T) {
	m := NewManager(twoScreens, []int{0, 1}, models.PositionTop, 10)
	assert.Equal(t, AllDisplays, m.Mode())
	assert.Len(t, m.Visible(), 2)
	assert.Equal(t, "all displays", m.ModeName())

	assert.Equal(t, 0, m.CycleTarget())
	visible := m.Visible()
	require.Len(t, visible, 1)
	assert.Equal(t, 0, visible[0].Display)

	assert.Equal(t, 1, m.CycleTarget())
	assert.Equal(t, "display 1", m.ModeName())

	assert.Equal(t, AllDisplays, m.CycleTarget())
	assert.Len(t, m.Visible(), 2)
}

func TestManagerMoveAll(t *testing.T) {
	m := NewManager(twoScreens, []int{0, 1}, models.PositionTop, 10)
	m.MoveAll(models.PositionBottom)
	for _, w := range m.Windows() {
		assert.Equal(t, models.PositionBottom, w.Position)
	}

	m.MoveAll("sideways")
	for _, w := range m.Windows() {
		assert.Equal(t, models.PositionTop, w.Position)
	}

	layout := m.Layout(true)
	assert.Len(t, layout, 2)
}

func TestTerminalScreens(t *testing.T) {
	s := NewTerminalScreens(100, 30)
	assert.Equal(t, 1, s.Count())
	assert.Equal(t, Rect{W: 800, H: 480}, s.Available(0))

	s.Resize(40, 10)
	cols, rows := s.Cells()
	assert.Equal(t, 40, cols)
	assert.Equal(t, 10, rows)

	col, row, c, r := ToCells(Rect{X: 2, Y: 2, W: 316, H: 40})
	assert.Equal(t, 0, col)
	assert.Equal(t, 0, row)
	assert.Equal(t, 39, c)
	assert.Equal(t, 3, r)
}
