// Package display places timer windows on screens and cycles between them.
package display

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/threebell/threebell/internal/models"
)

// Window sizing, in pixels.
const (
	DefaultMargin       = 2
	DefaultPausedHeight = 40
	MinRunningHeight    = 10
)

// Rect is a screen rectangle in pixels.
type Rect struct {
	X, Y, W, H int
}

// Bottom returns the last row inside r.
func (r Rect) Bottom() int { return r.Y + r.H - 1 }

// Screens enumerates the available geometry of each display.
type Screens interface {
	Count() int
	Available(index int) Rect
}

// Window is one bar placed on one display.
type Window struct {
	Display       int
	Position      string
	Margin        int
	PausedHeight  int
	RunningHeight int
	// BarHeight is the drawn height of the running bar; the window may be taller.
	BarHeight int
}

// NewWindow creates a window for a display with the given running bar height.
func NewWindow(displayIndex int, position string, barHeight int) *Window {
	return &Window{
		Display:       displayIndex,
		Position:      position,
		Margin:        DefaultMargin,
		PausedHeight:  DefaultPausedHeight,
		RunningHeight: min(DefaultPausedHeight, max(barHeight, MinRunningHeight)),
		BarHeight:     barHeight,
	}
}

// Height returns the window height for the paused or running state.
func (w *Window) Height(paused bool) int {
	if paused {
		return w.PausedHeight
	}
	return w.RunningHeight
}

// DrawHeight returns the bar height to render for the paused or running state.
func (w *Window) DrawHeight(paused bool) int {
	if paused {
		return w.PausedHeight
	}
	return w.BarHeight
}

// Geometry computes the window rectangle on its screen. A display index that
// no longer exists falls back to the first screen.
func (w *Window) Geometry(screens Screens, paused bool) Rect {
	idx := w.Display
	if idx < 0 || idx >= screens.Count() {
		idx = 0
	}
	avail := screens.Available(idx)
	h := w.Height(paused)

	y := avail.Y + w.Margin
	if w.Position == models.PositionBottom {
		y = avail.Bottom() - h - w.Margin
	}
	return Rect{
		X: avail.X + w.Margin,
		Y: y,
		W: avail.W - 2*w.Margin,
		H: h,
	}
}

// InPlayArea reports whether a click at window-relative x hits the resume affordance.
func (w *Window) InPlayArea(x int, paused bool) bool {
	return paused && x >= 0 && x < w.PausedHeight
}

// ParseDisplays parses "all" or a comma-separated list of display indices.
// "all" expands to every index below count.
func ParseDisplays(value string, count int) ([]int, error) {
	value = strings.TrimSpace(strings.ToLower(value))
	if value == "" || value == "all" {
		indices := make([]int, count)
		for i := range indices {
			indices[i] = i
		}
		return indices, nil
	}

	var indices []int
	seen := make(map[int]bool)
	for _, part := range strings.Split(value, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid display index %q: %w", part, err)
		}
		if n < 0 {
			return nil, fmt.Errorf("invalid display index %d", n)
		}
		if !seen[n] {
			seen[n] = true
			indices = append(indices, n)
		}
	}
	return indices, nil
}
