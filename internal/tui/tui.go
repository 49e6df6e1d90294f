// Package tui implements the terminal front-end of the timer bar.
package tui

import (
	"sync"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/threebell/threebell/internal/app"
	"github.com/threebell/threebell/internal/display"
)

// programRef is a shared reference to the tea.Program for goroutine sends.
// It's set after tea.NewProgram but before p.Run().
type programRef struct {
	mu sync.Mutex
	p  *tea.Program
}

func (r *programRef) Set(p *tea.Program) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p = p
}

func (r *programRef) Send(msg tea.Msg) {
	r.mu.Lock()
	p := r.p
	r.mu.Unlock()
	if p != nil {
		p.Send(msg)
	}
}

// Clear nils out the program reference, preventing post-exit sends.
func (r *programRef) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p = nil
}

// Options configures the TUI.
type Options struct {
	Screens      *display.TerminalScreens
	Backdrop     colorful.Color
	TickInterval time.Duration
	// PromptTimes opens the bell form at startup.
	PromptTimes bool
	Logger      *log.Logger
	// Now overrides the wall clock used for indicator animation.
	Now func() time.Time
}

// UI is a runnable terminal front-end bound to a controller.
type UI struct {
	ref   *programRef
	model Model
}

// New creates the TUI. Nothing is drawn until Run.
func New(ctl *app.Controller, opts Options) *UI {
	ref := &programRef{}
	return &UI{ref: ref, model: NewModel(ctl, opts, ref)}
}

// Send delivers a message from another goroutine. It is a no-op before Run
// and after exit. Never call it from inside Update.
func (u *UI) Send(msg tea.Msg) {
	u.ref.Send(msg)
}

// Run blocks until the user quits.
func (u *UI) Run() error {
	p := tea.NewProgram(
		u.model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	// Store program reference for goroutine sends
	u.ref.Set(p)
	defer u.ref.Clear()

	stop := redrawOnChange(u.model.ctl, u.ref.Send)
	defer stop()

	_, err := p.Run()
	return err
}

// redrawOnChange forwards controller changes as StateChangedMsg. Changes made
// from inside Update notify on the event loop goroutine, so sends happen on
// their own goroutine; bursts collapse into one pending message.
func redrawOnChange(ctl *app.Controller, send func(tea.Msg)) (stop func()) {
	var pending atomic.Bool
	return ctl.Subscribe(func() {
		if pending.Swap(true) {
			return
		}
		go func() {
			pending.Store(false)
			send(StateChangedMsg{})
		}()
	})
}
