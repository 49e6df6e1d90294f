// Package timer keeps track of elapsed talk time across pause and resume.
package timer

import "time"

// Clock provides the current time. Readings from the system clock carry a
// monotonic component, so differences between them are immune to wall-clock
// adjustments.
type Clock interface {
	Now() time.Time
}

// SystemClock is the default Clock implementation using the standard library.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }
