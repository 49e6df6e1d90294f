package tray

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/getlantern/systray"

	"github.com/threebell/threebell/internal/bar"
)

// statusRefresh is how often the status entry and tooltip are updated.
const statusRefresh = time.Second

var (
	state   TimerState
	hooks   Hooks
	palette bar.Palette
	logger  *log.Logger
	onStart func()
	onExit  func()

	statusItem *systray.MenuItem
	menuItems  map[action]*systray.MenuItem
	stopCh     chan struct{}
)

// Run starts the system tray. This blocks the calling goroutine (must be main).
// onStartFn is called when the tray is ready (start the terminal UI here).
// onExitFn is called when the tray exits (cleanup here).
func Run(s TimerState, h Hooks, p bar.Palette, l *log.Logger, onStartFn, onExitFn func()) {
	state = s
	hooks = h
	palette = p
	logger = l
	onStart = onStartFn
	onExit = onExitFn
	stopCh = make(chan struct{})
	systray.Run(onReady, onQuit)
}

// Quit signals the tray to exit.
func Quit() {
	systray.Quit()
}

func onReady() {
	if icon, err := IconPNG(palette); err == nil {
		systray.SetIcon(icon)
	} else if logger != nil {
		logger.Warn("failed to render tray icon", "error", err)
	}
	systray.SetTitle("3bt")
	systray.SetTooltip(formatTooltip(state.Status()))

	// Header
	header := systray.AddMenuItem(formatHeader(state), "")
	header.Disable()
	statusItem = systray.AddMenuItem(state.Status(), "")
	statusItem.Disable()

	systray.AddSeparator()

	menuItems = map[action]*systray.MenuItem{
		actionCycleDisplay: systray.AddMenuItem("Cycle Display Target", "Show the bar on all displays or one at a time"),
	}
	systray.AddSeparator()
	menuItems[actionToggle] = systray.AddMenuItem("Resume / Pause", "Start or stop the timer")
	menuItems[actionChangeBells] = systray.AddMenuItem("Change Bell Times", "Set the bells and reset the timer")
	systray.AddSeparator()
	menuItems[actionTop] = systray.AddMenuItem("Move to Top", "")
	menuItems[actionBottom] = systray.AddMenuItem("Move to Bottom", "")
	systray.AddSeparator()
	menuItems[actionExit] = systray.AddMenuItem("Exit", "Quit the timer")

	if onStart != nil {
		onStart()
	}

	// Handle click events
	go handleClicks(header)
}

func onQuit() {
	close(stopCh)
	if onExit != nil {
		onExit()
	}
}

func handleClicks(header *systray.MenuItem) {
	ticker := time.NewTicker(statusRefresh)
	defer ticker.Stop()

	for {
		var a action
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			refresh(header)
			continue
		case <-menuItems[actionCycleDisplay].ClickedCh:
			a = actionCycleDisplay
		case <-menuItems[actionToggle].ClickedCh:
			a = actionToggle
		case <-menuItems[actionChangeBells].ClickedCh:
			a = actionChangeBells
		case <-menuItems[actionTop].ClickedCh:
			a = actionTop
		case <-menuItems[actionBottom].ClickedCh:
			a = actionBottom
		case <-menuItems[actionExit].ClickedCh:
			a = actionExit
		}

		if logger != nil {
			logger.Debug("tray action", "action", int(a))
		}
		dispatch(a, state, hooks)
		refresh(header)
	}
}

func refresh(header *systray.MenuItem) {
	status := state.Status()
	statusItem.SetTitle(status)
	header.SetTitle(formatHeader(state))
	systray.SetTooltip(formatTooltip(status))
}

func formatHeader(s TimerState) string {
	return fmt.Sprintf("Three Bell Timer %s", s.Bells())
}

func formatTooltip(status string) string {
	return "3bt: " + status
}
