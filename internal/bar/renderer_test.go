package bar

import (
	"testing"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threebell/threebell/internal/models"
)

var talk = models.BellTimes{Hint: 10, PresentationEnd: 15, Total: 20}

func render(t *testing.T, style Style, elapsed time.Duration, paused bool) Frame {
	t.Helper()
	return NewRenderer(style).Render(Input{
		Bells:   talk,
		Elapsed: elapsed,
		Paused:  paused,
		Width:   640,
		Height:  40,
		Now:     time.Unix(1000, 0),
	})
}

func TestStateAt(t *testing.T) {
	tests := []struct {
		name    string
		index   int
		elapsed float64
		want    SegmentState
	}{
		{name: "before start", index: 3, elapsed: 100, want: SegmentState{Kind: NotStarted}},
		{name: "exact start", index: 2, elapsed: 120, want: SegmentState{Kind: NotStarted}},
		{name: "half way", index: 10, elapsed: 630, want: SegmentState{Kind: InProgress, Fraction: 0.5}},
		{name: "exact end", index: 1, elapsed: 120, want: SegmentState{Kind: Elapsed}},
		{name: "long past", index: 0, elapsed: 5000, want: SegmentState{Kind: Elapsed}},
		{name: "zero elapsed", index: 0, elapsed: 0, want: SegmentState{Kind: NotStarted}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StateAt(tt.index, tt.elapsed))
		})
	}
}

func TestRenderTalkScenario(t *testing.T) {
	f := render(t, ClassicStyle(), 630*time.Second, false)
	require.Len(t, f.Segments, 20)

	for _, seg := range f.Segments {
		switch {
		case seg.Index < 10:
			assert.Equal(t, Elapsed, seg.State.Kind, "segment %d", seg.Index)
			assert.Equal(t, models.PhaseHint, seg.Phase)
		case seg.Index == 10:
			assert.Equal(t, InProgress, seg.State.Kind)
			assert.InDelta(t, 0.5, seg.State.Fraction, 1e-9)
			assert.Equal(t, models.PhasePresentation, seg.Phase)
		case seg.Index < 15:
			assert.Equal(t, NotStarted, seg.State.Kind, "segment %d", seg.Index)
			assert.Equal(t, models.PhasePresentation, seg.Phase)
		default:
			assert.Equal(t, NotStarted, seg.State.Kind, "segment %d", seg.Index)
			assert.Equal(t, models.PhaseOvertime, seg.Phase)
		}
	}

	seg := f.Segments[10]
	assert.InDelta(t, seg.Rect.W/2, seg.Progress.W, 1e-9)
	assert.Equal(t, seg.Rect.X, seg.Progress.X)
	assert.True(t, f.HasBoundary)
	assert.InDelta(t, seg.Progress.Right(), f.Boundary, 1e-9)
	assert.Equal(t, 10, f.InProgress())
}

func TestRenderExactlyOneInProgress(t *testing.T) {
	r := NewRenderer(ThreeBellStyle())
	for e := 0.0; e < float64(talk.Total*60); e += 7.3 {
		f := r.Render(Input{Bells: talk, Elapsed: time.Duration(e * float64(time.Second)), Width: 400, Height: 10})
		current := int(e / 60)

		inProgress := 0
		for _, seg := range f.Segments {
			switch {
			case seg.Index < current:
				assert.Equal(t, Elapsed, seg.State.Kind)
			case seg.Index > current:
				assert.Equal(t, NotStarted, seg.State.Kind)
			}
			if seg.State.Kind == InProgress {
				inProgress++
				assert.Greater(t, seg.State.Fraction, 0.0)
				assert.Less(t, seg.State.Fraction, 1.0)
			}
		}

		if e == float64(current*60) {
			assert.Zero(t, inProgress, "elapsed %.1f on a boundary", e)
		} else {
			assert.Equal(t, 1, inProgress, "elapsed %.1f", e)
		}
	}
}

func TestRenderPastTotal(t *testing.T) {
	for _, elapsed := range []time.Duration{20 * time.Minute, 25 * time.Minute, 10 * time.Hour} {
		f := render(t, ClassicStyle(), elapsed, false)
		for _, seg := range f.Segments {
			assert.Equal(t, Elapsed, seg.State.Kind)
			assert.True(t, seg.Progress.Empty())
		}
		assert.Equal(t, -1, f.InProgress())
		assert.False(t, f.HasBoundary)
		assert.Empty(t, f.Marks)
	}
}

func TestRenderFillSelection(t *testing.T) {
	style := ClassicStyle()
	f := render(t, style, 630*time.Second, false)
	hint := style.VariantsFor(style.Palette.Hint)
	pres := style.VariantsFor(style.Palette.Presentation)
	over := style.VariantsFor(style.Palette.Overtime)

	assert.Equal(t, hint.Dark, f.Segments[0].Fill)
	assert.Equal(t, pres.Light, f.Segments[10].Fill)
	assert.Equal(t, pres.Dark, f.Segments[10].ProgressFill)
	assert.Equal(t, pres.Light, f.Segments[12].Fill)
	assert.Equal(t, over.Light, f.Segments[19].Fill)

	assert.Equal(t, uint8(80), f.Segments[19].Fill.Alpha)
	assert.Equal(t, uint8(180), f.Segments[0].Fill.Alpha)
}

func TestVariantsShiftValue(t *testing.T) {
	style := ClassicStyle()
	base := style.Palette.Presentation
	v := style.VariantsFor(base)

	_, _, baseV := base.Hsv()
	_, _, lightV := v.Light.Color.Hsv()
	_, _, darkV := v.Dark.Color.Hsv()
	assert.InDelta(t, baseV+0.1, lightV, 1e-6)
	assert.InDelta(t, baseV-0.1, darkV, 1e-6)

	white := colorful.Color{R: 1, G: 1, B: 1}
	_, _, v1 := ModifyHSV(white, 0, 0, 0.3).Hsv()
	assert.InDelta(t, 1.0, v1, 1e-9)

	black := colorful.Color{}
	_, _, v0 := ModifyHSV(black, 0, 0, -0.3).Hsv()
	assert.InDelta(t, 0.0, v0, 1e-9)
}

func TestThreeBellDarkFillIsShifted(t *testing.T) {
	style := ThreeBellStyle()
	for _, base := range []colorful.Color{style.Palette.Hint, style.Palette.Presentation, style.Palette.Overtime} {
		_, _, baseV := base.Hsv()
		_, _, darkV := style.VariantsFor(base).Dark.Color.Hsv()
		assert.InDelta(t, baseV-0.1, darkV, 1e-6)
	}
}

func TestRenderGeometry(t *testing.T) {
	f := render(t, ClassicStyle(), 0, false)
	assert.InDelta(t, 32.0, f.MarbleWidth, 1e-9)

	seg := f.Segments[3]
	assert.InDelta(t, 3*32.0+2, seg.Rect.X, 1e-9)
	assert.InDelta(t, 28.0, seg.Rect.W, 1e-9)
	assert.InDelta(t, 2.0, seg.Rect.Y, 1e-9)
	assert.InDelta(t, 36.0, seg.Rect.H, 1e-9)
	assert.InDelta(t, 12.0, seg.Radius, 1e-9)

	tiny := NewRenderer(ClassicStyle()).Render(Input{Bells: talk, Width: 640, Height: 5})
	assert.Zero(t, tiny.Segments[0].Radius, "radius below the minimum is dropped")
}

func TestRenderBorderOnlyWhilePaused(t *testing.T) {
	running := render(t, ClassicStyle(), 90*time.Second, false)
	for _, seg := range running.Segments {
		assert.Nil(t, seg.Border)
	}
	assert.Empty(t, running.Play)
	assert.Empty(t, running.Labels)

	paused := render(t, ClassicStyle(), 90*time.Second, true)
	for _, seg := range paused.Segments {
		require.NotNil(t, seg.Border)
		assert.Equal(t, uint8(240), seg.Border.Alpha)
	}
}

func TestRenderPausedOverlay(t *testing.T) {
	style := ClassicStyle()
	f := render(t, style, 0, true)

	require.Len(t, f.Play, 3)
	assert.Equal(t, Rect{X: 0, Y: 0, W: 40, H: 40}, f.PlayArea)

	require.Len(t, f.Labels, 3)
	texts := []string{f.Labels[0].Text, f.Labels[1].Text, f.Labels[2].Text}
	assert.Equal(t, []string{"10", "15", "20"}, texts)

	inset := style.Gap + style.BorderWidth
	assert.InDelta(t, 10*32.0-inset, f.Labels[0].Box.Right(), 1e-9)
	assert.InDelta(t, 15*32.0-inset, f.Labels[1].Box.Right(), 1e-9)
	assert.InDelta(t, 20*32.0-inset, f.Labels[2].Box.Right(), 1e-9)
}

func TestDotsIndicator(t *testing.T) {
	r := NewRenderer(ClassicStyle())
	in := Input{Bells: talk, Elapsed: 90 * time.Second, Width: 640, Height: 40}

	for sec, want := range map[int64]int{999: 1, 1000: 2, 1001: 3, 1002: 1} {
		in.Now = time.Unix(sec, 0)
		f := r.Render(in)
		assert.Len(t, f.Marks, want, "second %d", sec)
	}

	in.Paused = true
	in.Now = time.Unix(1001, 0)
	f := r.Render(in)
	require.Len(t, f.Marks, 1)
	centre := f.Marks[0].Rect.X + f.Marks[0].Rect.W/2
	assert.InDelta(t, f.Boundary, centre, 1e-9)
}

func TestBlinkIndicator(t *testing.T) {
	r := NewRenderer(ThreeBellStyle())
	in := Input{Bells: talk, Elapsed: 90 * time.Second, Width: 640, Height: 40}

	in.Now = time.Unix(1000, 0)
	assert.Empty(t, r.Render(in).Marks)

	in.Now = time.Unix(1001, 0)
	marks := r.Render(in).Marks
	require.Len(t, marks, 1)
	assert.Equal(t, MarkEllipse, marks[0].Shape)

	in.Paused = true
	in.Now = time.Unix(1000, 0)
	assert.Len(t, r.Render(in).Marks, 1)
}

func TestIndicatorDoesNotChangeSegments(t *testing.T) {
	r := NewRenderer(ClassicStyle())
	in := Input{Bells: talk, Elapsed: 630 * time.Second, Width: 640, Height: 40}

	in.Now = time.Unix(1000, 0)
	a := r.Render(in)
	in.Now = time.Unix(1001, 0)
	b := r.Render(in)
	assert.Equal(t, a.Segments, b.Segments)
}

func TestRenderPanicsOnEmptyConfiguration(t *testing.T) {
	r := NewRenderer(ClassicStyle())
	assert.Panics(t, func() {
		r.Render(Input{Bells: models.BellTimes{}, Width: 100, Height: 10})
	})
	assert.Panics(t, func() {
		r.Render(Input{Bells: talk, Width: 0, Height: 10})
	})
}

func TestStyleByName(t *testing.T) {
	st, err := StyleByName("classic")
	require.NoError(t, err)
	assert.Equal(t, IndicatorDots, st.Indicator)

	_, err = StyleByName("neon")
	assert.Error(t, err)
	assert.Equal(t, []string{"classic", "threebell"}, StyleNames())
}
