// Package app holds the controller shared by every user surface.
package app

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/threebell/threebell/internal/bar"
	"github.com/threebell/threebell/internal/display"
	"github.com/threebell/threebell/internal/models"
	"github.com/threebell/threebell/internal/timer"
)

// RecordFunc persists a finished session.
type RecordFunc func(*models.SessionRecord) error

// Options configures a Controller.
type Options struct {
	Bells    models.BellTimes
	Style    bar.Style
	Clock    timer.Clock
	Displays *display.Manager
	Logger   *log.Logger
	// Record is called when a session with running time ends. Nil disables history.
	Record RecordFunc
}

// Controller owns the timer state. The terminal, the tray and the settings
// watcher all drive it concurrently. mu orders every transition and every
// read that pairs bell times with the accountant's state.
type Controller struct {
	mu       sync.Mutex
	bells    models.BellTimes
	renderer *bar.Renderer

	clock    timer.Clock
	acc      *timer.Accountant
	displays *display.Manager
	logger   *log.Logger
	record   RecordFunc

	// changed is set by the accountant and drained by flush once mu is released.
	changed atomic.Bool

	subMu  sync.Mutex
	subs   map[int]func()
	nextID int

	quitOnce sync.Once
	done     chan struct{}
}

// New creates a paused controller. Bell times are normalized and must be valid.
func New(opts Options) (*Controller, error) {
	bells := opts.Bells.Normalize()
	if err := bells.Validate(); err != nil {
		return nil, err
	}
	if opts.Displays == nil {
		return nil, fmt.Errorf("display manager is required")
	}
	clock := opts.Clock
	if clock == nil {
		clock = timer.SystemClock
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	c := &Controller{
		bells:    bells,
		renderer: bar.NewRenderer(opts.Style),
		clock:    clock,
		acc:      timer.NewAccountant(clock),
		displays: opts.Displays,
		logger:   logger,
		record:   opts.Record,
		subs:     make(map[int]func()),
		done:     make(chan struct{}),
	}
	c.acc.Subscribe(func(timer.Snapshot) { c.changed.Store(true) })
	return c, nil
}

// Bells returns the current bell times.
func (c *Controller) Bells() models.BellTimes {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bells
}

// Snapshot returns the current timer state.
func (c *Controller) Snapshot() timer.Snapshot {
	return c.acc.Snapshot()
}

// Displays returns the display manager.
func (c *Controller) Displays() *display.Manager {
	return c.displays
}

// TogglePause switches between running and paused and returns the new paused state.
func (c *Controller) TogglePause() bool {
	c.mu.Lock()
	snap := c.toggleLocked()
	c.mu.Unlock()

	c.logToggle(snap)
	c.flush()
	return snap.Paused
}

// Resume starts the timer if it is paused. It reports whether anything changed.
func (c *Controller) Resume() bool {
	c.mu.Lock()
	if !c.acc.Paused() {
		c.mu.Unlock()
		return false
	}
	snap := c.toggleLocked()
	c.mu.Unlock()

	c.logToggle(snap)
	c.flush()
	return true
}

func (c *Controller) toggleLocked() timer.Snapshot {
	c.acc.TogglePause()
	return c.acc.Snapshot()
}

func (c *Controller) logToggle(snap timer.Snapshot) {
	if snap.Paused {
		c.logger.Debug("paused", "elapsed", snap.Elapsed.Round(time.Second))
	} else {
		c.logger.Debug("resumed", "elapsed", snap.Elapsed.Round(time.Second))
	}
}

// Reconfigure applies new bell times. The times are normalized first; invalid
// times leave the controller untouched. A valid change always resets the timer.
func (c *Controller) Reconfigure(b models.BellTimes) error {
	b = b.Normalize()
	if err := b.Validate(); err != nil {
		return fmt.Errorf("failed to reconfigure: %w", err)
	}

	c.mu.Lock()
	rec := c.sessionLocked(models.EndReasonReset)
	c.bells = b
	c.acc.Reset()
	c.mu.Unlock()

	c.save(rec)
	c.logger.Info("bell times changed", "bells", b.String())
	c.flush()
	return nil
}

// CycleDisplay advances the display target and returns its description.
func (c *Controller) CycleDisplay() string {
	c.displays.CycleTarget()
	name := c.displays.ModeName()
	c.logger.Debug("display target", "mode", name)
	c.notify()
	return name
}

// Move places every window at the top or bottom of its display.
func (c *Controller) Move(position string) {
	c.displays.MoveAll(position)
	c.logger.Debug("moved", "position", position)
	c.notify()
}

// Quit records the running session and signals Done. Safe to call more than once.
func (c *Controller) Quit() {
	c.quitOnce.Do(func() {
		c.mu.Lock()
		rec := c.sessionLocked(models.EndReasonExit)
		c.mu.Unlock()

		c.save(rec)
		c.logger.Info("quit")
		close(c.done)
	})
}

// Done is closed after Quit.
func (c *Controller) Done() <-chan struct{} {
	return c.done
}

// state reads the bell times and timer state as one consistent pair.
func (c *Controller) state() (models.BellTimes, timer.Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bells, c.acc.Snapshot()
}

// Frame renders the bar for a window of the given size.
func (c *Controller) Frame(width, height float64, now time.Time) bar.Frame {
	bells, snap := c.state()
	return render(c.renderer, bells, snap, width, height, now)
}

// CellFrame renders the bar for a terminal area of cols by rows cells, with
// the style fitted to the cell grid.
func (c *Controller) CellFrame(cols, rows int, now time.Time) bar.Frame {
	bells, snap := c.state()
	width := float64(cols) * bar.CellWidth
	r := bar.NewRenderer(bar.FitStyle(c.renderer.Style, bells.Total, width))
	return render(r, bells, snap, width, float64(rows)*bar.CellHeight, now)
}

func render(r *bar.Renderer, bells models.BellTimes, snap timer.Snapshot, width, height float64, now time.Time) bar.Frame {
	return r.Render(bar.Input{
		Bells:   bells,
		Elapsed: snap.Elapsed,
		Paused:  snap.Paused,
		Width:   width,
		Height:  height,
		Now:     now,
	})
}

// Phase returns the phase of the minute currently running.
func (c *Controller) Phase() models.Phase {
	bells, snap := c.state()
	return bells.Phase(int(snap.Elapsed / time.Minute))
}

// Status is a one-line summary such as "12:34 presentation (paused)".
func (c *Controller) Status() string {
	bells, snap := c.state()
	s := fmt.Sprintf("%s %s", FormatElapsed(snap.Elapsed), bells.Phase(int(snap.Elapsed/time.Minute)))
	if snap.Paused {
		s += " (paused)"
	}
	return s
}

// Subscribe registers fn to be called after every state change. fn runs on
// the goroutine that made the change, after the controller is unlocked.
func (c *Controller) Subscribe(fn func()) (unsubscribe func()) {
	c.subMu.Lock()
	id := c.nextID
	c.nextID++
	c.subs[id] = fn
	c.subMu.Unlock()

	return func() {
		c.subMu.Lock()
		delete(c.subs, id)
		c.subMu.Unlock()
	}
}

// flush notifies subscribers if the accountant changed since the last flush.
func (c *Controller) flush() {
	if c.changed.Swap(false) {
		c.notify()
	}
}

func (c *Controller) notify() {
	c.subMu.Lock()
	fns := make([]func(), 0, len(c.subs))
	for _, fn := range c.subs {
		fns = append(fns, fn)
	}
	c.subMu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// sessionLocked builds the history record of the session being ended, or
// nil when the timer never ran.
func (c *Controller) sessionLocked(reason string) *models.SessionRecord {
	snap := c.acc.Snapshot()
	if snap.Elapsed <= 0 || c.record == nil {
		return nil
	}

	pauses := snap.Resumes
	if !snap.Paused {
		pauses--
	}
	return models.NewSessionRecord(c.bells, snap.FirstResume, snap.Elapsed, pauses, reason)
}

func (c *Controller) save(rec *models.SessionRecord) {
	if rec == nil {
		return
	}
	if err := c.record(rec); err != nil {
		c.logger.Error("failed to record session", "error", err)
		return
	}
	c.logger.Info("session recorded", "id", rec.ID, "elapsed", rec.Elapsed().Round(time.Second), "reason", rec.Reason)
}

// FormatElapsed formats a duration as mm:ss, or h:mm:ss past an hour.
func FormatElapsed(d time.Duration) string {
	secs := int(d / time.Second)
	if secs < 0 {
		secs = 0
	}
	h, m, s := secs/3600, (secs/60)%60, secs%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
