// Package sim models the station's hardware on a host: ADC counts, pin
// levels, and time. All time is virtual and advances only inside Sleep, so
// runs are deterministic regardless of wall-clock speed.
package sim

import (
	"sync"
	"time"
)

type event struct {
	at time.Duration
	fn func()
}

// Clock is a virtual monotonic clock. Sleep advances time, runs any
// scheduled events due in the slept interval (in time order), and notifies
// advance callbacks so continuous models can integrate. Advance callbacks
// run with the clock lock held and must not call back into the Clock.
type Clock struct {
	mu      sync.Mutex
	now     time.Duration
	events  []event
	advance []func(now, dt time.Duration)
}

func NewClock() *Clock { return &Clock{} }

func (c *Clock) Now() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Sleep advances virtual time by d.
func (c *Clock) Sleep(d time.Duration) {
	if d <= 0 {
		return
	}
	c.mu.Lock()
	target := c.now + d
	for {
		i := c.nextDue(target)
		if i < 0 {
			break
		}
		ev := c.events[i]
		c.events = append(c.events[:i], c.events[i+1:]...)
		c.advanceTo(ev.at)
		// Run the event without the lock: it may touch pins or schedule
		// further events.
		c.mu.Unlock()
		ev.fn()
		c.mu.Lock()
	}
	c.advanceTo(target)
	c.mu.Unlock()
}

// At schedules fn to run when virtual time reaches at (absolute).
func (c *Clock) At(at time.Duration, fn func()) {
	c.mu.Lock()
	c.events = append(c.events, event{at: at, fn: fn})
	c.mu.Unlock()
}

// After schedules fn d from the current virtual time.
func (c *Clock) After(d time.Duration, fn func()) {
	c.mu.Lock()
	c.events = append(c.events, event{at: c.now + d, fn: fn})
	c.mu.Unlock()
}

// OnAdvance registers a callback invoked on every time advance.
func (c *Clock) OnAdvance(fn func(now, dt time.Duration)) {
	c.mu.Lock()
	c.advance = append(c.advance, fn)
	c.mu.Unlock()
}

// nextDue returns the index of the earliest event with at <= target, -1 if
// none. Caller holds the lock.
func (c *Clock) nextDue(target time.Duration) int {
	best := -1
	for i, ev := range c.events {
		if ev.at > target {
			continue
		}
		if best < 0 || ev.at < c.events[best].at {
			best = i
		}
	}
	return best
}

// advanceTo moves the clock forward and ticks advance callbacks. Caller
// holds the lock.
func (c *Clock) advanceTo(t time.Duration) {
	if t <= c.now {
		return
	}
	dt := t - c.now
	c.now = t
	for _, fn := range c.advance {
		fn(t, dt)
	}
}
