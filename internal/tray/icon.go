package tray

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/threebell/threebell/internal/bar"
)

// Icon geometry in pixels.
const (
	iconSize   = 32
	iconMargin = 2
	iconGap    = 2
)

// IconPNG draws three vertical marbles in the palette's phase colours.
func IconPNG(p bar.Palette) ([]byte, error) {
	img := image.NewNRGBA(image.Rect(0, 0, iconSize, iconSize))

	colours := []colorful.Color{p.Hint, p.Presentation, p.Overtime}
	w := (iconSize - 2*iconMargin - 2*iconGap) / len(colours)
	radius := w / 2
	for i, c := range colours {
		x0 := iconMargin + i*(w+iconGap)
		fillRounded(img, image.Rect(x0, iconMargin, x0+w, iconSize-iconMargin), radius, toNRGBA(c))
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func toNRGBA(c colorful.Color) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// fillRounded fills r with corners of the given radius cut away.
func fillRounded(img *image.NRGBA, r image.Rectangle, radius int, c color.NRGBA) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if insideRounded(x, y, r, radius) {
				img.SetNRGBA(x, y, c)
			}
		}
	}
}

func insideRounded(x, y int, r image.Rectangle, radius int) bool {
	cx, cy := x, y
	switch {
	case x < r.Min.X+radius:
		cx = r.Min.X + radius
	case x >= r.Max.X-radius:
		cx = r.Max.X - radius - 1
	}
	switch {
	case y < r.Min.Y+radius:
		cy = r.Min.Y + radius
	case y >= r.Max.Y-radius:
		cy = r.Max.Y - radius - 1
	}
	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy <= radius*radius
}
