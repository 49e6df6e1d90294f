package tui

import (
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threebell/threebell/internal/app"
	"github.com/threebell/threebell/internal/bar"
	"github.com/threebell/threebell/internal/display"
	"github.com/threebell/threebell/internal/models"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newTestModel(t *testing.T, opts Options) (Model, *app.Controller, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Unix(1000, 0)}
	screens := display.NewTerminalScreens(80, 24)
	ctl, err := app.New(app.Options{
		Bells:    models.NewBellTimes(),
		Style:    bar.ClassicStyle(),
		Clock:    clock,
		Displays: display.NewManager(screens, []int{0}, models.PositionTop, 10),
	})
	require.NoError(t, err)

	opts.Screens = screens
	opts.Now = clock.Now
	return NewModel(ctl, opts, &programRef{}), ctl, clock
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestSpaceTogglesPause(t *testing.T) {
	m, ctl, _ := newTestModel(t, Options{})
	assert.True(t, ctl.Snapshot().Paused)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	assert.False(t, ctl.Snapshot().Paused)

	_, _ = update(t, m, runes("p"))
	assert.True(t, ctl.Snapshot().Paused)
}

func TestMoveAndCycleKeys(t *testing.T) {
	m, ctl, _ := newTestModel(t, Options{})

	m, _ = update(t, m, runes("b"))
	assert.Equal(t, models.PositionBottom, ctl.Displays().Windows()[0].Position)
	assert.Equal(t, 0, m.statusRow())

	m, _ = update(t, m, runes("t"))
	assert.Equal(t, models.PositionTop, ctl.Displays().Windows()[0].Position)
	assert.Equal(t, 23, m.statusRow())

	m, cmd := update(t, m, runes("d"))
	assert.NotNil(t, cmd)
	assert.Equal(t, "display 0", m.notice)
}

func TestBellFormReconfigures(t *testing.T) {
	m, ctl, clock := newTestModel(t, Options{})
	ctl.TogglePause()
	clock.Advance(5 * time.Minute)

	m, _ = update(t, m, runes("c"))
	require.Equal(t, overlayBellForm, m.activeOverlay)
	require.NotNil(t, m.bellForm)

	m.bellForm.SetValue(0, "8")
	m.bellForm.SetValue(1, "6")
	m.bellForm.SetValue(2, "12")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, overlayNone, m.activeOverlay)
	assert.Nil(t, m.err)
	assert.Equal(t, models.BellTimes{Hint: 8, PresentationEnd: 8, Total: 12}, ctl.Bells())
	assert.True(t, ctl.Snapshot().Paused)
	assert.Zero(t, ctl.Snapshot().Elapsed)
}

func TestBellFormRejectsOutOfRange(t *testing.T) {
	m, ctl, _ := newTestModel(t, Options{PromptTimes: true})
	require.Equal(t, overlayBellForm, m.activeOverlay)

	m.bellForm.SetValue(2, "0")
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.NotNil(t, cmd)
	assert.Error(t, m.err)
	assert.Equal(t, overlayBellForm, m.activeOverlay)
	assert.Equal(t, models.NewBellTimes(), ctl.Bells())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, overlayNone, m.activeOverlay)
	assert.Nil(t, m.bellForm)
}

func TestBellFormFocusAndTyping(t *testing.T) {
	m, _, _ := newTestModel(t, Options{})
	m, _ = update(t, m, runes("c"))

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, m.bellForm.FocusIndex())
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, 2, m.bellForm.FocusIndex())

	m, _ = update(t, m, runes("5"))
	assert.Equal(t, "205", m.bellForm.Input().Value())
}

func TestClickPlayAreaResumes(t *testing.T) {
	m, ctl, _ := newTestModel(t, Options{})

	m, _ = update(t, m, tea.MouseMsg{X: 1, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.False(t, ctl.Snapshot().Paused)
	assert.Equal(t, overlayNone, m.activeOverlay)

	// running: the same spot now opens the menu instead
	m, _ = update(t, m, tea.MouseMsg{X: 1, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.False(t, ctl.Snapshot().Paused)
	assert.Equal(t, overlayMenu, m.activeOverlay)
}

func TestClickOutsidePlayAreaOpensMenu(t *testing.T) {
	m, ctl, _ := newTestModel(t, Options{})

	m, _ = update(t, m, tea.MouseMsg{X: 40, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.True(t, ctl.Snapshot().Paused)
	assert.Equal(t, overlayMenu, m.activeOverlay)

	// click off the menu closes it
	m, _ = update(t, m, tea.MouseMsg{X: 0, Y: 23, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, overlayNone, m.activeOverlay)

	// clicks below the bar do nothing
	m, _ = update(t, m, tea.MouseMsg{X: 40, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, overlayNone, m.activeOverlay)
}

func TestMenuClickRunsAction(t *testing.T) {
	m, ctl, _ := newTestModel(t, Options{})
	m, _ = update(t, m, runes("m"))
	require.Equal(t, overlayMenu, m.activeOverlay)

	top, left := overlayOrigin(m.menu.View(), m.width, m.height)
	// row 4 is "Resume / Pause"
	m, _ = update(t, m, tea.MouseMsg{X: left + 3, Y: top + 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, overlayNone, m.activeOverlay)
	assert.False(t, ctl.Snapshot().Paused)
}

func TestMenuKeys(t *testing.T) {
	m, ctl, _ := newTestModel(t, Options{})
	m, _ = update(t, m, runes("m"))

	for i := 0; i < 4; i++ {
		m, _ = update(t, m, runes("j"))
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, models.PositionBottom, ctl.Displays().Windows()[0].Position)

	m, _ = update(t, m, runes("m"))
	m, _ = update(t, m, runes("j"))
	m, _ = update(t, m, runes("j"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, overlayBellForm, m.activeOverlay)
}

func TestMenuItemAt(t *testing.T) {
	mn := NewMenu()
	tests := map[int]int{0: -1, 1: -1, 2: 0, 3: -1, 4: 1, 5: 2, 6: -1, 7: 3, 8: 4, 9: -1, 10: 5, 11: -1}
	for row, want := range tests {
		assert.Equal(t, want, mn.ItemAt(row), "row %d", row)
	}
	assert.Equal(t, 2+len(contextMenuItems)+3+2, strings.Count(mn.View(), "\n")+1)
}

func TestQuitRecordsAndExits(t *testing.T) {
	m, ctl, _ := newTestModel(t, Options{})
	_, cmd := update(t, m, runes("q"))
	assert.True(t, isQuit(cmd))

	select {
	case <-ctl.Done():
	default:
		t.Fatal("controller not quit")
	}
}

func TestTickStopsAfterExternalQuit(t *testing.T) {
	m, ctl, _ := newTestModel(t, Options{})

	_, cmd := update(t, m, TickMsg(time.Now()))
	assert.NotNil(t, cmd)

	ctl.Quit()
	_, cmd = update(t, m, TickMsg(time.Now()))
	assert.True(t, isQuit(cmd))
}

func TestMessagesFromOtherSurfaces(t *testing.T) {
	m, _, _ := newTestModel(t, Options{})

	m, _ = update(t, m, OpenBellFormMsg{})
	assert.Equal(t, overlayBellForm, m.activeOverlay)

	m, _ = update(t, m, ErrorMsg{Err: assert.AnError})
	assert.Equal(t, assert.AnError, m.err)
	m, _ = update(t, m, ClearErrorMsg{})
	assert.Nil(t, m.err)

	_, cmd := update(t, m, QuitMsg{})
	assert.True(t, isQuit(cmd))
}

func TestViewPausedAndRunning(t *testing.T) {
	m, ctl, clock := newTestModel(t, Options{})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	lines := strings.Split(ansi.Strip(m.View()), "\n")
	require.Len(t, lines, 24)
	assert.Contains(t, lines[1], "▶")
	assert.Contains(t, lines[23], "00:00")
	assert.Contains(t, lines[23], "paused")

	ctl.TogglePause()
	clock.Advance(10*time.Minute + 30*time.Second)
	lines = strings.Split(ansi.Strip(m.View()), "\n")
	assert.NotContains(t, lines[1], "▶")
	assert.Contains(t, lines[23], "10:30")
	assert.Contains(t, lines[23], "presentation")
}

func TestViewTooSmall(t *testing.T) {
	m, _, _ := newTestModel(t, Options{})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 10, Height: 1})
	assert.Contains(t, m.View(), "Terminal too small")
}

func TestHelpOverlay(t *testing.T) {
	m, _, _ := newTestModel(t, Options{})
	m, _ = update(t, m, runes("?"))
	assert.Equal(t, overlayHelp, m.activeOverlay)
	assert.Contains(t, ansi.Strip(m.View()), "Keyboard Shortcuts")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, overlayNone, m.activeOverlay)
}

func TestControllerChangesRequestRedraw(t *testing.T) {
	_, ctl, _ := newTestModel(t, Options{})

	msgs := make(chan tea.Msg, 8)
	stop := redrawOnChange(ctl, func(msg tea.Msg) { msgs <- msg })

	expectRedraw := func(name string) {
		t.Helper()
		select {
		case msg := <-msgs:
			assert.IsType(t, StateChangedMsg{}, msg, name)
		case <-time.After(2 * time.Second):
			t.Fatalf("%s: no StateChangedMsg", name)
		}
	}

	// The tray and the settings watcher call the controller directly.
	ctl.TogglePause()
	expectRedraw("toggle")
	ctl.Move(models.PositionBottom)
	expectRedraw("move")
	require.NoError(t, ctl.Reconfigure(models.BellTimes{Hint: 1, PresentationEnd: 2, Total: 3}))
	expectRedraw("reconfigure")

	stop()
	ctl.TogglePause()
	select {
	case msg := <-msgs:
		t.Fatalf("unexpected %T after stop", msg)
	case <-time.After(50 * time.Millisecond):
	}
}
