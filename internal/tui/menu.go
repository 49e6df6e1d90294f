package tui

import (
	"strings"
)

// menuAction identifies a context menu entry.
type menuAction int

const (
	actionCycleDisplay menuAction = iota
	actionToggle
	actionBells
	actionTop
	actionBottom
	actionExit
)

type menuItem struct {
	label  string
	action menuAction
	// sep draws a separator line above the item.
	sep bool
}

var contextMenuItems = []menuItem{
	{label: "Cycle Display Target", action: actionCycleDisplay},
	{label: "Resume / Pause", action: actionToggle, sep: true},
	{label: "Change Bell Times", action: actionBells},
	{label: "Move to Top", action: actionTop, sep: true},
	{label: "Move to Bottom", action: actionBottom},
	{label: "Exit", action: actionExit, sep: true},
}

// menuContentTop is the first content row inside the overlay: border + padding.
const menuContentTop = 2

// Menu is the context menu overlay.
type Menu struct {
	items  []menuItem
	cursor int
}

// NewMenu creates the context menu.
func NewMenu() *Menu {
	return &Menu{items: contextMenuItems}
}

// MoveUp moves cursor up.
func (mn *Menu) MoveUp() {
	if mn.cursor > 0 {
		mn.cursor--
	}
}

// MoveDown moves cursor down.
func (mn *Menu) MoveDown() {
	if mn.cursor < len(mn.items)-1 {
		mn.cursor++
	}
}

// Selected returns the action under the cursor.
func (mn *Menu) Selected() menuAction {
	return mn.items[mn.cursor].action
}

// ItemAt maps a row relative to the overlay's top edge to an item index,
// or -1 for borders and separators.
func (mn *Menu) ItemAt(row int) int {
	r := row - menuContentTop
	if r < 0 {
		return -1
	}
	for i, it := range mn.items {
		if it.sep && i > 0 {
			if r == 0 {
				return -1
			}
			r--
		}
		if r == 0 {
			return i
		}
		r--
	}
	return -1
}

// Select moves the cursor to item i.
func (mn *Menu) Select(i int) {
	if i >= 0 && i < len(mn.items) {
		mn.cursor = i
	}
}

// View renders the menu.
func (mn *Menu) View() string {
	width := 0
	for _, it := range mn.items {
		width = max(width, len(it.label))
	}
	width += 2

	lines := make([]string, 0, len(mn.items)*2)
	for i, it := range mn.items {
		if it.sep && i > 0 {
			lines = append(lines, overlayDimStyle.Render(strings.Repeat("─", width)))
		}
		label := " " + it.label + strings.Repeat(" ", width-len(it.label)-1)
		if i == mn.cursor {
			lines = append(lines, menuCursorStyle.Render(label))
		} else {
			lines = append(lines, menuItemStyle.Render(label))
		}
	}
	return overlayStyle.Render(strings.Join(lines, "\n"))
}
