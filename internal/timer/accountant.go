package timer

import (
	"sync"
	"time"
)

// Snapshot is a consistent view of the accountant's state.
type Snapshot struct {
	Paused  bool
	Elapsed time.Duration
	// Resumes counts Paused→Running transitions since the last reset.
	Resumes int
	// FirstResume is the wall-clock time of the first resume since the last
	// reset, zero if the timer has not run yet.
	FirstResume time.Time
}

// Accountant accumulates running time. It starts paused at zero.
//
// TogglePause and Reset share one mutex so that exactly one transition is in
// flight even when the tray and the terminal deliver input concurrently.
// Observers are called after the lock is released.
type Accountant struct {
	mu          sync.Mutex
	clock       Clock
	accumulated time.Duration
	runStart    time.Time
	paused      bool
	resumes     int
	firstResume time.Time

	// last is the largest elapsed value handed out; Elapsed never goes below it.
	last time.Duration

	subMu  sync.Mutex
	subs   map[int]func(Snapshot)
	nextID int
}

// NewAccountant creates a paused accountant. A nil clock means SystemClock.
func NewAccountant(clock Clock) *Accountant {
	if clock == nil {
		clock = SystemClock
	}
	return &Accountant{
		clock:    clock,
		runStart: clock.Now(),
		paused:   true,
		subs:     make(map[int]func(Snapshot)),
	}
}

// TogglePause switches between running and paused.
func (a *Accountant) TogglePause() {
	a.mu.Lock()
	now := a.clock.Now()
	if a.paused {
		a.runStart = now
		a.paused = false
		a.resumes++
		if a.firstResume.IsZero() {
			a.firstResume = now
		}
	} else {
		if d := now.Sub(a.runStart); d > 0 {
			a.accumulated += d
		}
		a.paused = true
	}
	snap := a.snapshotLocked(now)
	a.mu.Unlock()

	a.notify(snap)
}

// Reset returns to a paused state at zero elapsed time.
func (a *Accountant) Reset() {
	a.mu.Lock()
	now := a.clock.Now()
	a.accumulated = 0
	a.runStart = now
	a.paused = true
	a.resumes = 0
	a.firstResume = time.Time{}
	a.last = 0
	snap := a.snapshotLocked(now)
	a.mu.Unlock()

	a.notify(snap)
}

// Elapsed returns the total running time. It is frozen while paused and
// never decreases between calls.
func (a *Accountant) Elapsed() time.Duration {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.elapsedLocked(a.clock.Now())
}

// Paused reports whether the accountant is paused.
func (a *Accountant) Paused() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.paused
}

// Snapshot returns the current state.
func (a *Accountant) Snapshot() Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.snapshotLocked(a.clock.Now())
}

// Subscribe registers fn to be called after every state change.
// The returned function removes the subscription.
func (a *Accountant) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	a.subMu.Lock()
	id := a.nextID
	a.nextID++
	a.subs[id] = fn
	a.subMu.Unlock()

	return func() {
		a.subMu.Lock()
		delete(a.subs, id)
		a.subMu.Unlock()
	}
}

func (a *Accountant) elapsedLocked(now time.Time) time.Duration {
	e := a.accumulated
	if !a.paused {
		if d := now.Sub(a.runStart); d > 0 {
			e += d
		}
	}
	if e < a.last {
		return a.last
	}
	a.last = e
	return e
}

func (a *Accountant) snapshotLocked(now time.Time) Snapshot {
	return Snapshot{
		Paused:      a.paused,
		Elapsed:     a.elapsedLocked(now),
		Resumes:     a.resumes,
		FirstResume: a.firstResume,
	}
}

func (a *Accountant) notify(snap Snapshot) {
	a.subMu.Lock()
	fns := make([]func(Snapshot), 0, len(a.subs))
	for _, fn := range a.subs {
		fns = append(fns, fn)
	}
	a.subMu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}
