// Package focus implements the focus-mode session timer: a small state
// machine driven by the start/stop/pause/resume/extend voice intents.
package focus

import (
	"errors"
	"sync"
	"time"
)

var (
	ErrActive     = errors.New("focus: session already running")
	ErrNoSession  = errors.New("focus: no session running")
	ErrNotPaused  = errors.New("focus: session is not paused")
	ErrBadMinutes = errors.New("focus: minutes must be positive")
)

// State of the timer.
type State int

const (
	Idle State = iota
	Running
	Paused
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	default:
		return "idle"
	}
}

// Timer is a single focus session. Zero value is not usable; call New.
// Safe for concurrent use.
type Timer struct {
	mu  sync.Mutex
	now func() time.Time

	state     State
	startedAt time.Time
	endsAt    time.Time
	// remaining is only meaningful while paused.
	remaining time.Duration
}

// Option configures a Timer.
type Option func(*Timer)

// WithClock injects the time source.
func WithClock(now func() time.Time) Option {
	return func(t *Timer) { t.now = now }
}

// New returns an idle timer.
func New(opts ...Option) *Timer {
	t := &Timer{now: time.Now}
	for _, o := range opts {
		o(t)
	}
	return t
}

// Start begins a session of the given length. Fails with ErrActive if a
// session is already running or paused.
func (t *Timer) Start(minutes int) error {
	if minutes <= 0 {
		return ErrBadMinutes
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != Idle {
		return ErrActive
	}
	now := t.now()
	t.state = Running
	t.startedAt = now
	t.endsAt = now.Add(time.Duration(minutes) * time.Minute)
	return nil
}

// Stop ends the session and reports how long it ran.
func (t *Timer) Stop() (time.Duration, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state == Idle {
		return 0, ErrNoSession
	}
	elapsed := t.now().Sub(t.startedAt)
	t.state = Idle
	t.remaining = 0
	return elapsed, nil
}

// Pause freezes the countdown.
func (t *Timer) Pause() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	switch t.state {
	case Idle:
		return ErrNoSession
	case Paused:
		return ErrNotPaused
	}
	t.remaining = t.endsAt.Sub(t.now())
	if t.remaining < 0 {
		t.remaining = 0
	}
	t.state = Paused
	return nil
}

// Resume continues a paused session with whatever time was left.
func (t *Timer) Resume() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != Paused {
		return ErrNotPaused
	}
	t.endsAt = t.now().Add(t.remaining)
	t.state = Running
	return nil
}

// Extend adds minutes to the current session, running or paused.
func (t *Timer) Extend(minutes int) error {
	if minutes <= 0 {
		return ErrBadMinutes
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	d := time.Duration(minutes) * time.Minute
	switch t.state {
	case Running:
		t.endsAt = t.endsAt.Add(d)
	case Paused:
		t.remaining += d
	default:
		return ErrNoSession
	}
	return nil
}

// Remaining reports the time left. Zero when idle or when the countdown
// has already run out.
func (t *Timer) Remaining() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	switch t.state {
	case Running:
		if left := t.endsAt.Sub(t.now()); left > 0 {
			return left
		}
		return 0
	case Paused:
		return t.remaining
	default:
		return 0
	}
}

// State reports the current timer state.
func (t *Timer) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}
