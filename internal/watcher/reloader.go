package watcher

import (
	"github.com/threebell/threebell/internal/models"
)

// Reloader applies bell time changes from reloaded settings. Only a change
// relative to the previously loaded file triggers a reconfigure; bell times
// set interactively stay in effect until the file itself changes them.
type Reloader struct {
	last  models.BellTimes
	apply func(models.BellTimes) error
}

// NewReloader creates a reloader seeded with the bell times loaded at startup.
func NewReloader(initial models.BellTimes, apply func(models.BellTimes) error) *Reloader {
	return &Reloader{last: initial.Normalize(), apply: apply}
}

// Handle processes one event. It reports whether the bell times were applied.
func (r *Reloader) Handle(ev Event) (bool, error) {
	if ev.Type == EventSettingsInvalid {
		return false, ev.Err
	}
	if ev.Settings == nil || ev.Settings.Bells == r.last {
		return false, nil
	}
	if err := r.apply(ev.Settings.Bells); err != nil {
		return false, err
	}
	r.last = ev.Settings.Bells
	return true, nil
}
