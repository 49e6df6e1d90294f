package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type helpSection struct {
	title string
	keys  []helpKey
}

type helpKey struct {
	key  string
	desc string
}

var helpSections = []helpSection{
	{
		title: "Timer",
		keys: []helpKey{
			{"Space / p", "Pause or resume"},
			{"c", "Change bell times (resets)"},
			{"q / Ctrl+c", "Quit"},
		},
	},
	{
		title: "Window",
		keys: []helpKey{
			{"d", "Cycle display target"},
			{"t / b", "Move to top / bottom"},
			{"m", "Open menu"},
		},
	},
	{
		title: "Mouse",
		keys: []helpKey{
			{"Click ▶", "Resume while paused"},
			{"Click bar", "Open menu"},
		},
	},
	{
		title: "Bell Times",
		keys: []helpKey{
			{"Tab / ↑↓", "Next field"},
			{"Enter", "Initialize"},
			{"Esc", "Cancel"},
		},
	},
}

// renderHelp renders the help overlay content.
func renderHelp(width int) string {
	maxWidth := min(width-4, 50)
	maxWidth = max(maxWidth, 30)

	title := overlayTitleStyle.Render("Keyboard Shortcuts")
	sections := make([]string, 0, len(helpSections)*4+3)
	sections = append(sections, title)

	for _, sec := range helpSections {
		header := lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Render(sec.title)
		sections = append(sections, "", header)

		for _, k := range sec.keys {
			keyCol := lipgloss.NewStyle().
				Width(14).
				Foreground(colorWhite).
				Bold(true).
				Render(k.key)
			descCol := lipgloss.NewStyle().
				Foreground(colorDim).
				Render(k.desc)
			sections = append(sections, "  "+keyCol+descCol)
		}
	}

	sections = append(sections, "", lipgloss.NewStyle().Foreground(colorDim).Render("Press Esc or ? to close"))

	content := strings.Join(sections, "\n")
	return overlayStyle.Width(maxWidth).Render(content)
}
