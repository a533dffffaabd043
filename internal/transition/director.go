// Package transition serializes scene changes behind a fade to black.
//
// A transition covers the screen, runs its Prepare step off the frame
// thread while the screen is black, applies the result on the frame thread
// with Commit, and only then uncovers. Requests made while one is in
// flight are dropped.
package transition

import (
	"context"
	"time"

	"chosenoffset.com/raccoon/internal/core/clock"
)

// Phase is the director's state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseCovering
	PhasePreparing
	PhaseRevealing
)

func (p Phase) String() string {
	switch p {
	case PhaseCovering:
		return "covering"
	case PhasePreparing:
		return "preparing"
	case PhaseRevealing:
		return "revealing"
	default:
		return "idle"
	}
}

// Setup is one transition's work.
type Setup struct {
	// Prepare runs on its own goroutine once the screen is fully covered.
	// It must not touch game state; it loads what Commit needs.
	Prepare func(ctx context.Context) error
	// Commit runs on the frame thread with Prepare's result, before the
	// cover starts clearing.
	Commit func(err error)
	// Done runs on the frame thread once the cover has fully cleared.
	Done func()
}

// Director runs at most one transition at a time.
type Director struct {
	clock       clock.Clock
	fade        time.Duration
	timeout     time.Duration // Cover wait fallback
	loadTimeout time.Duration

	phase    Phase
	alpha    float64
	deadline time.Time
	setup    Setup
	result   chan error
	cancel   context.CancelFunc
}

// NewDirector creates an idle director. fade is the duration of each half
// of the wipe; timeout bounds the wait for the cover to report it is opaque;
// loadTimeout bounds Prepare.
func NewDirector(c clock.Clock, fade, timeout, loadTimeout time.Duration) *Director {
	return &Director{
		clock:       c,
		fade:        fade,
		timeout:     timeout,
		loadTimeout: loadTimeout,
	}
}

// Run starts a transition. It returns false, and does nothing, when one is
// already in flight.
func (d *Director) Run(s Setup) bool {
	if d.phase != PhaseIdle {
		return false
	}
	d.setup = s
	d.phase = PhaseCovering
	d.alpha = 0
	d.deadline = d.clock.Now().Add(d.timeout)
	return true
}

// Active reports whether a transition is in flight.
func (d *Director) Active() bool {
	return d.phase != PhaseIdle
}

// Phase returns the current phase.
func (d *Director) Phase() Phase {
	return d.phase
}

// Alpha is the cover opacity in [0, 1].
func (d *Director) Alpha() float64 {
	return d.alpha
}

// Update advances the fade by dt seconds and moves between phases.
func (d *Director) Update(dt float64) {
	switch d.phase {
	case PhaseCovering:
		covered := d.step(dt, true)
		// Opaque cover or the fallback deadline, whichever comes first.
		if covered || !d.clock.Now().Before(d.deadline) {
			d.alpha = 1
			d.startPrepare()
		}

	case PhasePreparing:
		select {
		case err := <-d.result:
			d.cancel()
			if d.setup.Commit != nil {
				d.setup.Commit(err)
			}
			d.phase = PhaseRevealing
		default:
		}

	case PhaseRevealing:
		if d.step(dt, false) {
			d.alpha = 0
			done := d.setup.Done
			d.phase = PhaseIdle
			d.setup = Setup{}
			if done != nil {
				done()
			}
		}
	}
}

// step moves alpha by dt/fade toward 1 when rising, else toward 0, and
// reports whether it got there.
func (d *Director) step(dt float64, rising bool) bool {
	if d.fade <= 0 {
		if rising {
			d.alpha = 1
		} else {
			d.alpha = 0
		}
		return true
	}
	delta := dt / d.fade.Seconds()
	if rising {
		d.alpha = min(1, d.alpha+delta)
		return d.alpha >= 1
	}
	d.alpha = max(0, d.alpha-delta)
	return d.alpha <= 0
}

func (d *Director) startPrepare() {
	d.phase = PhasePreparing
	d.result = make(chan error, 1)

	ctx := context.Background()
	if d.loadTimeout > 0 {
		ctx, d.cancel = context.WithTimeout(ctx, d.loadTimeout)
	} else {
		ctx, d.cancel = context.WithCancel(ctx)
	}

	prepare := d.setup.Prepare
	result := d.result
	go func() {
		var err error
		if prepare != nil {
			err = prepare(ctx)
		}
		result <- err
	}()
}
