package bar

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/threebell/threebell/internal/models"
)

// Rect is an axis-aligned rectangle in bar pixels.
type Rect struct {
	X, Y, W, H float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Point is a position in bar pixels.
type Point struct {
	X, Y float64
}

// SegmentKind is the progress state of one minute.
type SegmentKind int

// Segment kinds.
const (
	NotStarted SegmentKind = iota
	InProgress
	Elapsed
)

func (k SegmentKind) String() string {
	switch k {
	case NotStarted:
		return "not-started"
	case InProgress:
		return "in-progress"
	case Elapsed:
		return "elapsed"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// SegmentState is the progress of one minute. Fraction is in (0, 1) for
// InProgress and zero otherwise.
type SegmentState struct {
	Kind     SegmentKind
	Fraction float64
}

// StateAt returns the state of minute i given elapsed seconds.
func StateAt(i int, elapsed float64) SegmentState {
	start := float64(i) * SecondsPerMarble
	end := start + SecondsPerMarble
	switch {
	case elapsed >= end:
		return SegmentState{Kind: Elapsed}
	case elapsed <= start:
		return SegmentState{Kind: NotStarted}
	default:
		return SegmentState{Kind: InProgress, Fraction: (elapsed - start) / SecondsPerMarble}
	}
}

// Segment is the draw description of one minute marble.
type Segment struct {
	Index  int
	Phase  models.Phase
	State  SegmentState
	Rect   Rect
	Radius float64

	// Fill covers the whole rect.
	Fill RGBA
	// Progress, when non-empty, is the left part of Rect refilled with ProgressFill.
	Progress     Rect
	ProgressFill RGBA

	// Border is nil while running.
	Border      *RGBA
	BorderWidth float64
}

// MarkShape is the shape of an indicator mark.
type MarkShape int

// Mark shapes.
const (
	MarkRounded MarkShape = iota
	MarkEllipse
)

// Mark is one indicator glyph at the in-progress boundary.
type Mark struct {
	Rect   Rect
	Radius float64
	Shape  MarkShape
	Color  RGBA
}

// Label is a right-aligned, vertically centred numeric label.
type Label struct {
	Text     string
	Box      Rect
	FontSize float64
	Color    RGBA
}

// Frame is everything needed to draw the bar once.
type Frame struct {
	Width, Height float64
	Paused        bool
	MarbleWidth   float64

	Segments []Segment
	// Boundary is the x position of the in-progress boundary, valid when HasBoundary.
	Boundary    float64
	HasBoundary bool
	Marks       []Mark

	// Paused-only overlay.
	Play      []Point
	PlayArea  Rect
	PlayColor RGBA
	Labels    []Label
}

// InProgress returns the index of the in-progress segment, or -1.
func (f Frame) InProgress() int {
	for _, s := range f.Segments {
		if s.State.Kind == InProgress {
			return s.Index
		}
	}
	return -1
}

// Input is what one frame is computed from.
type Input struct {
	Bells   models.BellTimes
	Elapsed time.Duration
	Paused  bool
	// Width and Height of the bar area. Height is the paused or running
	// height as chosen by the caller.
	Width, Height float64
	// Now drives the indicator animation only.
	Now time.Time
}

// Renderer produces frames in a given style.
type Renderer struct {
	Style Style
}

// NewRenderer creates a renderer.
func NewRenderer(style Style) *Renderer {
	return &Renderer{Style: style}
}

// Render computes the frame for in. It panics when Bells.Total < 1 or the
// bar has no area; configuration must be validated before it gets here.
func (r *Renderer) Render(in Input) Frame {
	total := in.Bells.Total
	if total < 1 {
		panic(fmt.Sprintf("bar: total minutes must be at least 1, got %d", total))
	}
	if in.Width <= 0 || in.Height <= 0 {
		panic(fmt.Sprintf("bar: invalid size %gx%g", in.Width, in.Height))
	}

	st := r.Style
	gap := st.Gap
	mw := in.Width / float64(total)
	inner := max(in.Height-2*gap, 0)
	radius := inner * st.RadiusFactor
	if radius < MinRadius {
		radius = 0
	}
	elapsed := in.Elapsed.Seconds()

	f := Frame{
		Width:       in.Width,
		Height:      in.Height,
		Paused:      in.Paused,
		MarbleWidth: mw,
		Segments:    make([]Segment, 0, total),
	}

	for i := 0; i < total; i++ {
		phase := in.Bells.Phase(i)
		v := st.VariantsFor(st.Palette.For(phase))
		seg := Segment{
			Index:  i,
			Phase:  phase,
			State:  StateAt(i, elapsed),
			Rect:   Rect{X: float64(i)*mw + gap, Y: gap, W: max(mw-2*gap, 0), H: inner},
			Radius: radius,
		}

		switch seg.State.Kind {
		case Elapsed:
			seg.Fill = v.Dark
		case NotStarted:
			seg.Fill = v.Light
		case InProgress:
			seg.Fill = v.Light
			seg.Progress = Rect{X: seg.Rect.X, Y: seg.Rect.Y, W: seg.Rect.W * seg.State.Fraction, H: seg.Rect.H}
			seg.ProgressFill = v.Dark
			f.Boundary = seg.Progress.Right()
			f.HasBoundary = true
		}

		if in.Paused && st.Border {
			border := v.Border
			seg.Border = &border
			seg.BorderWidth = st.BorderWidth
		}
		f.Segments = append(f.Segments, seg)
	}

	if f.HasBoundary {
		f.Marks = r.marks(f.Boundary, in, inner, radius, elapsed)
	}

	if in.Paused {
		r.pausedOverlay(&f, in.Bells, mw)
	}
	return f
}

func (r *Renderer) marks(boundary float64, in Input, inner, radius, elapsed float64) []Mark {
	st := r.Style
	sec := in.Now.Unix()

	switch st.Indicator {
	case IndicatorBlink:
		if elapsed <= 0 || (!in.Paused && sec%2 != 1) {
			return nil
		}
		size := max(st.MarkerMinSize, inner*st.MarkerFactor)
		return []Mark{{
			Rect:  Rect{X: boundary - size/2, Y: (in.Height - size) / 2, W: size, H: size},
			Shape: MarkEllipse,
			Color: st.MarkerColor,
		}}

	default:
		n := 1
		if !in.Paused {
			n = int(sec%3) + 1
		}
		size := max(st.MarkerMinSize, inner*st.MarkerFactor)
		width := float64(n)*size + float64(n-1)*st.MarkerSpacing
		start := boundary - width/2
		marks := make([]Mark, 0, n)
		for j := 0; j < n; j++ {
			marks = append(marks, Mark{
				Rect:   Rect{X: start + float64(j)*(size+st.MarkerSpacing), Y: (in.Height - size) / 2, W: size, H: size},
				Radius: radius,
				Shape:  MarkRounded,
				Color:  st.MarkerColor,
			})
		}
		return marks
	}
}

func (r *Renderer) pausedOverlay(f *Frame, bells models.BellTimes, mw float64) {
	st := r.Style
	a := f.Height
	f.Play = []Point{
		{X: a * 0.3, Y: a * 0.2},
		{X: a * 0.3, Y: a * 0.8},
		{X: a * 0.8, Y: a * 0.5},
	}
	f.PlayArea = Rect{X: 0, Y: 0, W: a, H: a}
	f.PlayColor = st.MarkerColor

	for _, mark := range bells.Marks() {
		f.Labels = append(f.Labels, Label{
			Text:     strconv.Itoa(mark),
			Box:      Rect{X: 0, Y: 0, W: math.Max(float64(mark)*mw-(st.Gap+st.BorderWidth), 0), H: f.Height},
			FontSize: f.Height * 0.5,
			Color:    st.MarkerColor,
		})
	}
}
