package display

import (
	"fmt"
	"sync"

	"github.com/threebell/threebell/internal/models"
)

// AllDisplays is the display mode that shows every window.
const AllDisplays = -1

// Manager owns one window per selected display and the display-target cycle:
// all windows first, then each display on its own.
type Manager struct {
	mu      sync.Mutex
	screens Screens
	windows []*Window
	modes   []int
	current int
}

// NewManager creates windows for the given display indices.
func NewManager(screens Screens, indices []int, position string, barHeight int) *Manager {
	m := &Manager{
		screens: screens,
		modes:   append([]int{AllDisplays}, indices...),
	}
	for _, idx := range indices {
		m.windows = append(m.windows, NewWindow(idx, position, barHeight))
	}
	return m
}

// Screens returns the injected screen enumerator.
func (m *Manager) Screens() Screens {
	return m.screens
}

// Windows returns all windows, visible or not.
func (m *Manager) Windows() []*Window {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*Window(nil), m.windows...)
}

// CycleTarget advances to the next display mode and returns it.
func (m *Manager) CycleTarget() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = (m.current + 1) % len(m.modes)
	return m.modes[m.current]
}

// Mode returns the current display mode (AllDisplays or a display index).
func (m *Manager) Mode() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.modes[m.current]
}

// ModeName describes the current display mode.
func (m *Manager) ModeName() string {
	mode := m.Mode()
	if mode == AllDisplays {
		return "all displays"
	}
	return fmt.Sprintf("display %d", mode)
}

// Visible returns the windows shown in the current mode.
func (m *Manager) Visible() []*Window {
	m.mu.Lock()
	defer m.mu.Unlock()
	mode := m.modes[m.current]
	var out []*Window
	for _, w := range m.windows {
		if mode == AllDisplays || w.Display == mode {
			out = append(out, w)
		}
	}
	return out
}

// MoveAll sets the position of every window.
func (m *Manager) MoveAll(position string) {
	if position != models.PositionBottom {
		position = models.PositionTop
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, w := range m.windows {
		w.Position = position
	}
}

// Layout computes the geometry of every visible window.
func (m *Manager) Layout(paused bool) map[*Window]Rect {
	out := make(map[*Window]Rect)
	for _, w := range m.Visible() {
		out[w] = w.Geometry(m.screens, paused)
	}
	return out
}
