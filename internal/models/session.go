package models

import (
	"time"

	"github.com/google/uuid"
)

// Session end reasons.
const (
	EndReasonReset = "reset"
	EndReasonExit  = "exit"
)

// SessionRecord describes one timed talk.
// This corresponds to ~/.threebell/sessions/<id>.yaml.
type SessionRecord struct {
	Version        int       `yaml:"version"`
	ID             string    `yaml:"id"`
	Bells          BellTimes `yaml:"bells"`
	StartedAt      time.Time `yaml:"started_at"`
	EndedAt        time.Time `yaml:"ended_at"`
	ElapsedSeconds float64   `yaml:"elapsed_seconds"`
	Pauses         int       `yaml:"pauses"`
	Reason         string    `yaml:"reason"`
}

// NewSessionRecord creates a record with a fresh ID, ended now.
func NewSessionRecord(bells BellTimes, startedAt time.Time, elapsed time.Duration, pauses int, reason string) *SessionRecord {
	return &SessionRecord{
		Version:        1,
		ID:             uuid.New().String(),
		Bells:          bells,
		StartedAt:      startedAt.UTC(),
		EndedAt:        time.Now().UTC(),
		ElapsedSeconds: elapsed.Seconds(),
		Pauses:         pauses,
		Reason:         reason,
	}
}

// Elapsed returns the recorded running time.
func (r *SessionRecord) Elapsed() time.Duration {
	return time.Duration(r.ElapsedSeconds * float64(time.Second))
}

// Overtime reports whether the talk ran past the final bell.
func (r *SessionRecord) Overtime() bool {
	return r.ElapsedSeconds > float64(r.Bells.Total*60)
}
