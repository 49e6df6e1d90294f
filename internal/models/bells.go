// Package models contains shared data structures used across the application.
package models

import (
	"errors"
	"fmt"
)

// Default bell times in minutes.
const (
	DefaultHintTime        = 10
	DefaultPresentationEnd = 15
	DefaultTotalMinutes    = 20
)

// ErrInvalidBellTimes is returned when a bell time is not a positive number of minutes.
var ErrInvalidBellTimes = errors.New("invalid bell times")

// Phase is the colour phase a minute belongs to.
type Phase int

// Phases in the order they occur during a talk.
const (
	PhaseHint Phase = iota
	PhasePresentation
	PhaseOvertime
)

func (p Phase) String() string {
	switch p {
	case PhaseHint:
		return "hint"
	case PhasePresentation:
		return "presentation"
	case PhaseOvertime:
		return "overtime"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// BellTimes holds the three bell thresholds, in minutes.
// After Normalize, Hint <= PresentationEnd <= Total.
type BellTimes struct {
	Hint            int `yaml:"hint"`
	PresentationEnd int `yaml:"presentation_end"`
	Total           int `yaml:"total"`
}

// NewBellTimes returns the default 10/15/20 configuration.
func NewBellTimes() BellTimes {
	return BellTimes{
		Hint:            DefaultHintTime,
		PresentationEnd: DefaultPresentationEnd,
		Total:           DefaultTotalMinutes,
	}
}

// ParseBellTimes maps positional minute values to bell times:
// one value sets all three bells, two values set the first bell and
// the last two, three or more values set each bell (extra values are ignored).
func ParseBellTimes(values []int) BellTimes {
	switch {
	case len(values) == 0:
		return NewBellTimes()
	case len(values) == 1:
		return BellTimes{Hint: values[0], PresentationEnd: values[0], Total: values[0]}
	case len(values) == 2:
		return BellTimes{Hint: values[0], PresentationEnd: values[1], Total: values[1]}
	default:
		return BellTimes{Hint: values[0], PresentationEnd: values[1], Total: values[2]}
	}
}

// Normalize raises out-of-order thresholds to the larger value.
func (b BellTimes) Normalize() BellTimes {
	b.PresentationEnd = max(b.Hint, b.PresentationEnd)
	b.Total = max(b.PresentationEnd, b.Total)
	return b
}

// Validate rejects non-positive thresholds.
func (b BellTimes) Validate() error {
	if b.Hint < 1 || b.PresentationEnd < 1 || b.Total < 1 {
		return fmt.Errorf("%w: %d/%d/%d (each bell must be at least 1 minute)",
			ErrInvalidBellTimes, b.Hint, b.PresentationEnd, b.Total)
	}
	return nil
}

// Phase returns the phase of the 0-based minute index i.
func (b BellTimes) Phase(i int) Phase {
	switch {
	case i < b.Hint:
		return PhaseHint
	case i < b.PresentationEnd:
		return PhasePresentation
	default:
		return PhaseOvertime
	}
}

// Marks returns the three thresholds in bell order.
func (b BellTimes) Marks() [3]int {
	return [3]int{b.Hint, b.PresentationEnd, b.Total}
}

func (b BellTimes) String() string {
	return fmt.Sprintf("%d/%d/%d", b.Hint, b.PresentationEnd, b.Total)
}
