package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/threebell/threebell/internal/models"
)

// Bell time input bounds, in minutes.
const (
	minBellMinutes = 1
	maxBellMinutes = 999
)

var bellLabels = [3]string{"Bell 1 (minutes):", "Bell 2 (minutes):", "Bell 3 (minutes):"}

// BellForm is the "Change Bell Times" overlay form.
type BellForm struct {
	inputs     [3]textinput.Model
	focusIndex int
	width      int
}

// NewBellForm creates a form prefilled with the current bell times.
func NewBellForm(current models.BellTimes, width int) *BellForm {
	bf := &BellForm{width: width}
	for i, v := range current.Marks() {
		ti := textinput.New()
		ti.Placeholder = "minutes"
		ti.CharLimit = 3
		ti.Width = 6
		ti.Validate = digitsOnly
		ti.SetValue(strconv.Itoa(v))
		bf.inputs[i] = ti
	}
	bf.inputs[0].Focus()
	return bf
}

func digitsOnly(s string) error {
	for _, r := range s {
		if r < '0' || r > '9' {
			return fmt.Errorf("digits only")
		}
	}
	return nil
}

// FocusNext moves to the next field.
func (bf *BellForm) FocusNext() {
	bf.inputs[bf.focusIndex].Blur()
	bf.focusIndex = (bf.focusIndex + 1) % len(bf.inputs)
	bf.inputs[bf.focusIndex].Focus()
}

// FocusPrev moves to the previous field.
func (bf *BellForm) FocusPrev() {
	bf.inputs[bf.focusIndex].Blur()
	bf.focusIndex--
	if bf.focusIndex < 0 {
		bf.focusIndex = len(bf.inputs) - 1
	}
	bf.inputs[bf.focusIndex].Focus()
}

// FocusIndex returns the currently focused field index.
func (bf *BellForm) FocusIndex() int {
	return bf.focusIndex
}

// Input returns the focused input model for update forwarding.
func (bf *BellForm) Input() *textinput.Model {
	return &bf.inputs[bf.focusIndex]
}

// SetValue replaces the text of field i.
func (bf *BellForm) SetValue(i int, v string) {
	bf.inputs[i].SetValue(v)
}

// BellTimes parses the three fields. Each must be a whole number of minutes
// in [1, 999]. The result is not normalized.
func (bf *BellForm) BellTimes() (models.BellTimes, error) {
	var vals [3]int
	for i, in := range bf.inputs {
		n, err := strconv.Atoi(strings.TrimSpace(in.Value()))
		if err != nil || n < minBellMinutes || n > maxBellMinutes {
			return models.BellTimes{}, fmt.Errorf("bell %d must be between %d and %d minutes", i+1, minBellMinutes, maxBellMinutes)
		}
		vals[i] = n
	}
	return models.ParseBellTimes(vals[:]), nil
}

// View renders the bell form.
func (bf *BellForm) View() string {
	formWidth := min(bf.width, 44)
	formWidth = max(formWidth, 34)

	parts := make([]string, 0, 8)
	parts = append(parts, overlayTitleStyle.Render("Change Bell Times"))

	for i, in := range bf.inputs {
		label := formLabelStyle.Render(bellLabels[i])
		if i == bf.focusIndex {
			label = formFocusedLabelStyle.Render(bellLabels[i])
		}
		parts = append(parts, label+in.View())
	}

	parts = append(parts, "",
		lipgloss.NewStyle().Foreground(colorDim).Render("Initializing resets the timer."),
		"",
		lipgloss.NewStyle().Foreground(colorDim).Render("Enter initialize  |  Tab next  |  Esc cancel"),
	)

	content := strings.Join(parts, "\n")
	return overlayStyle.Width(formWidth).Render(content)
}
