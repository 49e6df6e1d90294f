// Package tray implements the system tray icon and menu.
package tray

import "github.com/threebell/threebell/internal/models"

// TimerState is the controller surface the tray drives.
type TimerState interface {
	Status() string
	Bells() models.BellTimes
	TogglePause() bool
	CycleDisplay() string
	Move(position string)
	Quit()
}

// Hooks connect menu entries that belong to the front-end.
type Hooks struct {
	// ChangeBells opens the bell time form.
	ChangeBells func()
	// Exit is called after the controller has quit.
	Exit func()
}

// action is a tray menu entry.
type action int

const (
	actionCycleDisplay action = iota
	actionToggle
	actionChangeBells
	actionTop
	actionBottom
	actionExit
)

// dispatch runs a menu action against the controller. Redraws follow from
// the controller's own change notifications.
func dispatch(a action, s TimerState, h Hooks) {
	switch a {
	case actionCycleDisplay:
		s.CycleDisplay()
	case actionToggle:
		s.TogglePause()
	case actionChangeBells:
		if h.ChangeBells != nil {
			h.ChangeBells()
		}
	case actionTop:
		s.Move(models.PositionTop)
	case actionBottom:
		s.Move(models.PositionBottom)
	case actionExit:
		s.Quit()
		if h.Exit != nil {
			h.Exit()
		}
	}
}
