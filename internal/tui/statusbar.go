package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/threebell/threebell/internal/app"
	"github.com/threebell/threebell/internal/models"
)

func renderStatusBar(m *Model, width int) string {
	if m.err != nil {
		return renderErrorBar(m.err.Error(), width)
	}

	snap := m.ctl.Snapshot()
	bells := m.ctl.Bells()
	phase := bells.Phase(int(snap.Elapsed.Minutes()))

	left := " " + elapsedStyle.Render(app.FormatElapsed(snap.Elapsed)) +
		"  " + phaseStyle(phase).Render(phase.String()) +
		"  " + hintStyle.Render(bells.String())
	if snap.Paused {
		left += "  " + pausedBadgeStyle.Render("paused")
	} else {
		left += "  " + runningBadgeStyle.Render("running")
	}
	if m.notice != "" {
		left += "  " + lipgloss.NewStyle().Foreground(colorCyan).Render(m.notice)
	}

	right := getKeyHints(m) + " "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		// Not enough room for hints; keep the timer readout.
		right = ""
		gap = max(width-lipgloss.Width(left), 0)
	}

	return statusBarStyle.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}

func getKeyHints(m *Model) string {
	switch m.activeOverlay {
	case overlayBellForm:
		return keyHint("Enter", "initialize") + "  " + keyHint("Esc", "cancel")
	case overlayMenu:
		return keyHint("j/k", "navigate") + "  " + keyHint("Enter", "select") + "  " + keyHint("Esc", "close")
	case overlayHelp:
		return keyHint("Esc", "close")
	}

	toggle := "resume"
	if !m.ctl.Snapshot().Paused {
		toggle = "pause"
	}
	return keyHint("Space", toggle) + "  " + keyHint("c", "bells") + "  " +
		keyHint("d", "display") + "  " + keyHint("m", "menu") + "  " +
		keyHint("?", "help") + "  " + keyHint("q", "quit")
}

func phaseStyle(p models.Phase) lipgloss.Style {
	switch p {
	case models.PhaseHint:
		return phaseHintStyle
	case models.PhasePresentation:
		return phasePresentationStyle
	default:
		return phaseOvertimeStyle
	}
}

func keyHint(k, desc string) string {
	if k == "" {
		return hintStyle.Render(desc)
	}
	return keyStyle.Render(k) + " " + hintStyle.Render(desc)
}

func renderErrorBar(msg string, width int) string {
	return statusBarStyle.
		Background(colorRed).
		Width(width).
		Render(" " + msg)
}
