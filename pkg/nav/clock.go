package nav

import (
	"sort"
	"time"
)

// Clock is a manually advanced timeline. The host pumps it from its frame
// tick, and everything scheduled on it fires synchronously inside Advance,
// on the caller's goroutine. Scheduling and cancelling are the only
// primitives; there is no wall-clock coupling, which also makes tests a
// matter of calling Advance with the right deltas.
type Clock struct {
	now    time.Duration
	timers []*Timer
}

// NewClock returns a clock at time zero.
func NewClock() *Clock {
	return &Clock{}
}

// Now returns the clock's current position on its own timeline.
func (c *Clock) Now() time.Duration {
	return c.now
}

// AfterFunc schedules fn to run once d from now. The returned Timer can be
// stopped before it fires.
func (c *Clock) AfterFunc(d time.Duration, fn func()) *Timer {
	t := &Timer{deadline: c.now + d, fn: fn}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves the timeline forward and fires every due timer in deadline
// order. Callbacks may schedule new timers; those fire too if already due.
func (c *Clock) Advance(dt time.Duration) {
	c.now += dt
	for {
		t := c.takeDue()
		if t == nil {
			return
		}
		t.fn()
	}
}

func (c *Clock) takeDue() *Timer {
	sort.SliceStable(c.timers, func(i, j int) bool {
		return c.timers[i].deadline < c.timers[j].deadline
	})
	for i, t := range c.timers {
		if t.stopped {
			continue
		}
		if t.deadline > c.now {
			break
		}
		c.timers = append(c.timers[:i], c.timers[i+1:]...)
		return t
	}
	// Compact out stopped timers while we are here.
	live := c.timers[:0]
	for _, t := range c.timers {
		if !t.stopped {
			live = append(live, t)
		}
	}
	c.timers = live
	return nil
}

// Timer is a pending callback on a Clock.
type Timer struct {
	deadline time.Duration
	fn       func()
	stopped  bool
}

// Stop cancels the timer. Safe to call after it has fired.
func (t *Timer) Stop() {
	t.stopped = true
}
