package bar

import "github.com/lucasb-eyer/go-colorful"

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}

// ModifyHSV shifts hue (degrees), saturation and value, clamping s and v to [0, 1].
func ModifyHSV(c colorful.Color, dh, ds, dv float64) colorful.Color {
	h, s, v := c.Hsv()
	h += dh
	for h < 0 {
		h += 360
	}
	for h >= 360 {
		h -= 360
	}
	return colorful.Hsv(h, clamp01(s+ds), clamp01(v+dv)).Clamped()
}

// Variants holds the colours derived from one phase's base colour.
type Variants struct {
	Light  RGBA
	Dark   RGBA
	Border RGBA
}

// VariantsFor derives the light, dark and border colours of a base colour.
func (s Style) VariantsFor(base colorful.Color) Variants {
	return Variants{
		Light:  RGBA{Color: ModifyHSV(base, 0, 0, s.LightShift), Alpha: s.LightAlpha},
		Dark:   RGBA{Color: ModifyHSV(base, 0, 0, s.DarkShift), Alpha: s.DarkAlpha},
		Border: RGBA{Color: ModifyHSV(base, 0, s.BorderSaturation, 0), Alpha: s.BorderAlpha},
	}
}
