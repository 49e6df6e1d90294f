package tui

import "time"

// TickMsg drives redraws at the configured tick interval.
type TickMsg time.Time

// StateChangedMsg signals that another surface (tray, settings watcher)
// changed the controller.
type StateChangedMsg struct{}

// OpenBellFormMsg asks the TUI to show the bell time form.
type OpenBellFormMsg struct{}

// ErrorMsg carries an error to display.
type ErrorMsg struct {
	Err error
}

// ClearErrorMsg clears the error display.
type ClearErrorMsg struct{}

// NoticeMsg carries a short informational message for the status bar.
type NoticeMsg struct {
	Text string
}

// ClearNoticeMsg clears the notice.
type ClearNoticeMsg struct{}

// QuitMsg asks the TUI to exit.
type QuitMsg struct{}
