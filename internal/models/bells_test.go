package models

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseBellTimes(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		want   BellTimes
	}{
		{name: "no values uses defaults", values: nil, want: BellTimes{10, 15, 20}},
		{name: "one value sets all", values: []int{7}, want: BellTimes{7, 7, 7}},
		{name: "two values share last", values: []int{5, 12}, want: BellTimes{5, 12, 12}},
		{name: "three values", values: []int{3, 8, 9}, want: BellTimes{3, 8, 9}},
		{name: "extra values ignored", values: []int{1, 2, 3, 4}, want: BellTimes{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseBellTimes(tt.values))
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   BellTimes
		want BellTimes
	}{
		{name: "ordered unchanged", in: BellTimes{10, 15, 20}, want: BellTimes{10, 15, 20}},
		{name: "presentation end raised", in: BellTimes{10, 5, 20}, want: BellTimes{10, 10, 20}},
		{name: "total raised", in: BellTimes{10, 15, 12}, want: BellTimes{10, 15, 15}},
		{name: "both raised", in: BellTimes{30, 5, 1}, want: BellTimes{30, 30, 30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Normalize())
		})
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, BellTimes{1, 1, 1}.Validate())

	err := BellTimes{0, 5, 10}.Validate()
	assert.True(t, errors.Is(err, ErrInvalidBellTimes))

	err = BellTimes{5, 5, -1}.Validate()
	assert.ErrorIs(t, err, ErrInvalidBellTimes)
}

func TestPhaseBoundaries(t *testing.T) {
	b := BellTimes{Hint: 10, PresentationEnd: 15, Total: 20}
	for i := 0; i < b.Total; i++ {
		var want Phase
		switch {
		case i < 10:
			want = PhaseHint
		case i < 15:
			want = PhasePresentation
		default:
			want = PhaseOvertime
		}
		assert.Equal(t, want, b.Phase(i), "minute %d", i)
	}
}

func TestSettingsNormalize(t *testing.T) {
	s := &Settings{
		Bells:        BellTimes{10, 5, 20},
		Window:       WindowConfig{Position: "left", PixelHeight: 99},
		TickInterval: 5 * time.Second,
	}
	s.Normalize()

	assert.Equal(t, BellTimes{10, 10, 20}, s.Bells)
	assert.Equal(t, PositionTop, s.Window.Position)
	assert.Equal(t, MaxPixelHeight, s.Window.PixelHeight)
	assert.Equal(t, "all", s.Window.Displays)
	assert.Equal(t, MaxTickInterval, s.TickInterval)
	assert.Equal(t, "threebell", s.Appearance.Style)
	assert.Equal(t, "info", s.LogLevel)
}

func TestSessionRecordOvertime(t *testing.T) {
	r := NewSessionRecord(BellTimes{1, 2, 3}, time.Now(), 200*time.Second, 2, EndReasonExit)
	assert.True(t, r.Overtime())
	assert.NotEmpty(t, r.ID)
	assert.Equal(t, 200*time.Second, r.Elapsed())

	r = NewSessionRecord(BellTimes{1, 2, 3}, time.Now(), 90*time.Second, 0, EndReasonReset)
	assert.False(t, r.Overtime())
}
