// Package notice implements a transient notification: a message that stays
// visible for a fixed duration after it was shown.
package notice

import (
	"sync"
	"time"
)

const DefaultDuration = 3 * time.Second

// Flag holds at most one message and a single timer that hides it.
// Flag is safe for concurrent use.
type Flag struct {
	mu       sync.Mutex
	duration time.Duration
	message  string
	visible  bool
	timer    *time.Timer
	// generation is bumped on every Show, Hide and Stop so a timer that
	// fires late cannot hide a newer message.
	generation uint64
}

// New creates a Flag that hides messages after d. Non-positive d falls back
// to DefaultDuration.
func New(d time.Duration) *Flag {
	if d <= 0 {
		d = DefaultDuration
	}

	return &Flag{duration: d}
}

// Show makes msg visible and restarts the hide timer.
func (f *Flag) Show(msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.stopLocked()
	f.generation++
	f.message = msg
	f.visible = true

	gen := f.generation
	f.timer = time.AfterFunc(f.duration, func() {
		f.expire(gen)
	})
}

// Hide hides the current message immediately.
func (f *Flag) Hide() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.stopLocked()
	f.generation++
	f.visible = false
}

// Visible returns the current message and whether it is shown.
func (f *Flag) Visible() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.visible {
		return "", false
	}

	return f.message, true
}

// Stop cancels the pending timer without changing visibility.
func (f *Flag) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.stopLocked()
	f.generation++
}

func (f *Flag) expire(gen uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if gen != f.generation {
		return
	}
	f.visible = false
	f.timer = nil
}

func (f *Flag) stopLocked() {
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
}
