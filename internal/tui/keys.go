package tui

import "github.com/charmbracelet/bubbles/key"

// TimerKeys are active when no overlay is shown.
type TimerKeys struct {
	Toggle  key.Binding
	Bells   key.Binding
	Display key.Binding
	Top     key.Binding
	Bottom  key.Binding
	Menu    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

var timerKeys = TimerKeys{
	Toggle: key.NewBinding(
		key.WithKeys(" ", "p"),
		key.WithHelp("Space", "pause/resume"),
	),
	Bells: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "bell times"),
	),
	Display: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "display"),
	),
	Top: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "top"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "bottom"),
	),
	Menu: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "menu"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// OverlayKeys are active when an overlay is shown.
type OverlayKeys struct {
	Submit key.Binding
	Cancel key.Binding
	Next   key.Binding
	Prev   key.Binding
}

var overlayKeys = OverlayKeys{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "initialize"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "cancel"),
	),
	Next: key.NewBinding(
		key.WithKeys("tab", "down"),
		key.WithHelp("Tab", "next field"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab", "up"),
	),
}

// MenuKeys navigate the context menu.
type MenuKeys struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
}

var menuKeys = MenuKeys{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("j/k", "navigate"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("j/k", "navigate"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("Enter", "select"),
	),
}
