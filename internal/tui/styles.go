package tui

import "github.com/charmbracelet/lipgloss"

// Colors using AdaptiveColor for light/dark terminal support.
var (
	colorWhite  = lipgloss.AdaptiveColor{Light: "0", Dark: "15"}
	colorDim    = lipgloss.AdaptiveColor{Light: "242", Dark: "240"}
	colorGreen  = lipgloss.AdaptiveColor{Light: "28", Dark: "40"}
	colorRed    = lipgloss.AdaptiveColor{Light: "160", Dark: "196"}
	colorYellow = lipgloss.AdaptiveColor{Light: "136", Dark: "220"}
	colorOrange = lipgloss.AdaptiveColor{Light: "166", Dark: "208"}
	colorCyan   = lipgloss.AdaptiveColor{Light: "30", Dark: "45"}
)

// Status bar styles.
var (
	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(lipgloss.AdaptiveColor{Light: "235", Dark: "236"}).
			MaxHeight(1)

	elapsedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite)

	pausedBadgeStyle  = lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
	runningBadgeStyle = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
)

// Phase styles.
var (
	phaseHintStyle         = lipgloss.NewStyle().Foreground(colorCyan)
	phasePresentationStyle = lipgloss.NewStyle().Foreground(colorGreen)
	phaseOvertimeStyle     = lipgloss.NewStyle().Foreground(colorOrange).Bold(true)
)

// Overlay styles.
var (
	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorWhite).
			Padding(1, 2)

	overlayTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorWhite).
				MarginBottom(1)

	overlayDimStyle = lipgloss.NewStyle().
			Foreground(colorDim)
)

// Menu styles.
var (
	menuItemStyle = lipgloss.NewStyle().
			Foreground(colorWhite)

	menuCursorStyle = lipgloss.NewStyle().
			Bold(true).
			Background(lipgloss.AdaptiveColor{Light: "254", Dark: "237"})
)

// Key hint styles for status bar.
var (
	keyStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	hintStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// Form styles.
var (
	formLabelStyle = lipgloss.NewStyle().
			Width(20).
			Foreground(colorDim)

	formFocusedLabelStyle = lipgloss.NewStyle().
				Width(20).
				Bold(true).
				Foreground(colorWhite)
)
