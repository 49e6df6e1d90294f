package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Overlay constants.
const (
	overlayNone     = 0
	overlayHelp     = 1
	overlayBellForm = 2
	overlayMenu     = 3
)

// overlayOrigin returns the top-left cell of an overlay centered in the view.
func overlayOrigin(overlayContent string, width, height int) (top, left int) {
	overlayHeight := lipgloss.Height(overlayContent)
	overlayWidth := lipgloss.Width(overlayContent)
	top = max((height-overlayHeight)/2, 1)
	left = max((width-overlayWidth)/2, 1)
	return top, left
}

// renderOverlay renders an overlay centered on top of the base view.
func renderOverlay(base, overlayContent string, width, height int) string {
	// Dim the background
	baseLines := strings.Split(base, "\n")
	for i, line := range baseLines {
		baseLines[i] = overlayDimStyle.Render(ansi.Strip(line))
	}

	top, left := overlayOrigin(overlayContent, width, height)

	// Place overlay on top of dimmed background using ANSI-aware slicing
	result := baseLines
	for i, line := range strings.Split(overlayContent, "\n") {
		row := top + i
		if row >= len(result) {
			continue
		}
		bg := result[row]
		bgWidth := lipgloss.Width(bg)

		leftPart := ansi.Truncate(bg, left, "")
		if pad := left - lipgloss.Width(leftPart); pad > 0 {
			leftPart += strings.Repeat(" ", pad)
		}

		rightPart := ""
		rightStart := left + lipgloss.Width(line)
		if rightStart < bgWidth {
			rightPart = ansi.Cut(bg, rightStart, bgWidth)
		}

		result[row] = leftPart + "\033[0m" + line + "\033[0m" + rightPart
	}

	return strings.Join(result, "\n")
}
