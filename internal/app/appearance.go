package app

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/threebell/threebell/internal/bar"
	"github.com/threebell/threebell/internal/models"
)

// ResolveStyle builds the bar style and backdrop colour from appearance settings.
func ResolveStyle(cfg models.AppearanceConfig) (bar.Style, colorful.Color, error) {
	style, err := bar.StyleByName(cfg.Style)
	if err != nil {
		return bar.Style{}, colorful.Color{}, err
	}

	if cfg.Indicator != "" {
		ind, err := bar.ParseIndicator(cfg.Indicator)
		if err != nil {
			return bar.Style{}, colorful.Color{}, err
		}
		style.Indicator = ind
	}
	if cfg.Border != nil {
		style.Border = *cfg.Border
	}

	backdrop := colorful.Color{}
	if cfg.Backdrop != "" {
		backdrop, err = colorful.Hex(cfg.Backdrop)
		if err != nil {
			return bar.Style{}, colorful.Color{}, fmt.Errorf("invalid backdrop colour %q: %w", cfg.Backdrop, err)
		}
	}
	return style, backdrop, nil
}
