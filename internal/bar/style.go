// Package bar computes the per-frame draw description of the timer bar.
package bar

import (
	"fmt"
	"sort"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/threebell/threebell/internal/models"
)

// Geometry constants.
const (
	// MinRadius is the smallest corner radius worth drawing.
	MinRadius = 0.5

	// SecondsPerMarble is the span of one segment.
	SecondsPerMarble = 60.0
)

// IndicatorStyle selects how the in-progress boundary marker is animated.
type IndicatorStyle int

// Indicator styles.
const (
	// IndicatorDots cycles 1..3 rounded marks once per second while running.
	IndicatorDots IndicatorStyle = iota
	// IndicatorBlink shows a single ellipse on odd seconds, steady while paused.
	IndicatorBlink
)

func (s IndicatorStyle) String() string {
	switch s {
	case IndicatorDots:
		return "dots"
	case IndicatorBlink:
		return "blink"
	default:
		return fmt.Sprintf("indicator(%d)", int(s))
	}
}

// ParseIndicator maps a settings value to an IndicatorStyle.
func ParseIndicator(name string) (IndicatorStyle, error) {
	switch name {
	case "dots":
		return IndicatorDots, nil
	case "blink":
		return IndicatorBlink, nil
	default:
		return 0, fmt.Errorf("unknown indicator %q (expected dots or blink)", name)
	}
}

// RGBA is a colour with 8-bit alpha.
type RGBA struct {
	Color colorful.Color
	Alpha uint8
}

// Opaque reports whether the colour has full alpha.
func (c RGBA) Opaque() bool { return c.Alpha == 255 }

// Palette holds the base colour of each phase.
type Palette struct {
	Hint         colorful.Color
	Presentation colorful.Color
	Overtime     colorful.Color
}

// For returns the base colour of a phase.
func (p Palette) For(phase models.Phase) colorful.Color {
	switch phase {
	case models.PhaseHint:
		return p.Hint
	case models.PhasePresentation:
		return p.Presentation
	default:
		return p.Overtime
	}
}

// Style bundles everything that differs between visual variants of the bar.
type Style struct {
	Name    string
	Palette Palette

	// HSV value shifts for the not-yet-elapsed (light) and elapsed (dark) fills.
	LightShift float64
	DarkShift  float64
	LightAlpha uint8
	DarkAlpha  uint8

	// Border is drawn around every segment while paused.
	Border           bool
	BorderAlpha      uint8
	BorderSaturation float64
	BorderWidth      float64

	Gap          float64
	RadiusFactor float64

	Indicator     IndicatorStyle
	MarkerFactor  float64
	MarkerMinSize float64
	MarkerSpacing float64
	MarkerColor   RGBA
}

func rgb(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// ClassicStyle is the single-display look: dots indicator, centred value shift.
func ClassicStyle() Style {
	return Style{
		Name: "classic",
		Palette: Palette{
			Hint:         rgb(0, 48, 146),
			Presentation: rgb(0, 135, 158),
			Overtime:     rgb(255, 171, 91),
		},
		LightShift:    0.1,
		DarkShift:     -0.1,
		LightAlpha:    80,
		DarkAlpha:     180,
		Border:        true,
		BorderAlpha:   240,
		BorderWidth:   1,
		Gap:           2,
		RadiusFactor:  1.0 / 3,
		Indicator:     IndicatorDots,
		MarkerFactor:  0.7,
		MarkerSpacing: 1,
		MarkerColor:   RGBA{Color: rgb(255, 255, 255), Alpha: 180},
	}
}

// ThreeBellStyle is the multi-display look: blinking ellipse, saturated borders.
// Its elapsed fill is shifted darker like classic rather than drawn in the base colour.
func ThreeBellStyle() Style {
	return Style{
		Name: "threebell",
		Palette: Palette{
			Hint:         rgb(0, 53, 153),
			Presentation: rgb(0, 125, 145),
			Overtime:     rgb(229, 153, 82),
		},
		LightShift:       0.1,
		DarkShift:        -0.1,
		LightAlpha:       80,
		DarkAlpha:        240,
		Border:           true,
		BorderAlpha:      255,
		BorderSaturation: 0.3,
		BorderWidth:      1.3,
		Gap:              2,
		RadiusFactor:     0.25,
		Indicator:        IndicatorBlink,
		MarkerFactor:     0.72,
		MarkerMinSize:    4,
		MarkerColor:      RGBA{Color: rgb(240, 240, 240), Alpha: 240},
	}
}

var styles = map[string]func() Style{
	"classic":   ClassicStyle,
	"threebell": ThreeBellStyle,
}

// StyleByName returns a built-in style.
func StyleByName(name string) (Style, error) {
	fn, ok := styles[name]
	if !ok {
		return Style{}, fmt.Errorf("unknown style %q (available: %v)", name, StyleNames())
	}
	return fn(), nil
}

// StyleNames lists the built-in styles.
func StyleNames() []string {
	names := make([]string, 0, len(styles))
	for name := range styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
