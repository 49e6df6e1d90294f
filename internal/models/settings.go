package models

import "time"

// Window positions.
const (
	PositionTop    = "top"
	PositionBottom = "bottom"
)

// Tick interval bounds. Finer ticks only make the indicator smoother.
const (
	MinTickInterval     = 100 * time.Millisecond
	MaxTickInterval     = time.Second
	DefaultTickInterval = 100 * time.Millisecond
)

// Running bar height bounds, in pixels.
const (
	DefaultPixelHeight = 10
	MinPixelHeight     = 1
	MaxPixelHeight     = 40
)

// AppearanceConfig holds bar appearance settings.
type AppearanceConfig struct {
	Style     string `yaml:"style"`     // "classic" | "threebell"
	Indicator string `yaml:"indicator"` // "" (style default) | "dots" | "blink"
	Border    *bool  `yaml:"border,omitempty"`
	Backdrop  string `yaml:"backdrop"` // hex colour alpha-blended under the bar
}

// WindowConfig holds placement settings.
type WindowConfig struct {
	Position    string `yaml:"position"`     // "top" | "bottom"
	PixelHeight int    `yaml:"pixel_height"` // running bar height
	Displays    string `yaml:"displays"`     // "all" | "0,1"
}

// Settings represents global application settings.
// This corresponds to ~/.threebell/settings.yaml.
type Settings struct {
	Version      int              `yaml:"version"`
	Bells        BellTimes        `yaml:"bells"`
	Window       WindowConfig     `yaml:"window"`
	Appearance   AppearanceConfig `yaml:"appearance"`
	TickInterval time.Duration    `yaml:"tick_interval"`
	LogLevel     string           `yaml:"log_level"`
	Tray         bool             `yaml:"tray"`
}

// NewSettings creates settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version: 1,
		Bells:   NewBellTimes(),
		Window: WindowConfig{
			Position:    PositionTop,
			PixelHeight: DefaultPixelHeight,
			Displays:    "all",
		},
		Appearance: AppearanceConfig{
			Style:    "threebell",
			Backdrop: "#101010",
		},
		TickInterval: DefaultTickInterval,
		LogLevel:     "info",
	}
}

// Normalize fills zero values with defaults and clamps out-of-range fields.
// Bell times are ordered but not validated; callers validate at the boundary.
func (s *Settings) Normalize() {
	def := NewSettings()
	if s.Bells == (BellTimes{}) {
		s.Bells = def.Bells
	}
	s.Bells = s.Bells.Normalize()

	if s.Window.Position != PositionBottom {
		s.Window.Position = PositionTop
	}
	if s.Window.PixelHeight == 0 {
		s.Window.PixelHeight = def.Window.PixelHeight
	}
	s.Window.PixelHeight = min(max(s.Window.PixelHeight, MinPixelHeight), MaxPixelHeight)
	if s.Window.Displays == "" {
		s.Window.Displays = def.Window.Displays
	}

	if s.Appearance.Style == "" {
		s.Appearance.Style = def.Appearance.Style
	}
	if s.Appearance.Backdrop == "" {
		s.Appearance.Backdrop = def.Appearance.Backdrop
	}

	if s.TickInterval == 0 {
		s.TickInterval = def.TickInterval
	}
	s.TickInterval = min(max(s.TickInterval, MinTickInterval), MaxTickInterval)

	if s.LogLevel == "" {
		s.LogLevel = def.LogLevel
	}
}
