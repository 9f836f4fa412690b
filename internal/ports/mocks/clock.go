package mocks

import (
	"sync"
	"time"

	"github.com/bnema/gamectl/internal/ports"
)

// FakeClock is a deterministic ports.Clock. Time moves only on Advance, and
// due AfterFunc callbacks run synchronously inside Advance in deadline order.
// Callbacks may schedule new timers; those fire within the same Advance when
// their deadline falls inside the advanced window.
type FakeClock struct {
	mu      sync.Mutex
	current time.Time
	seq     uint64
	timers  []*fakeTimer
}

type fakeTimer struct {
	clock    *FakeClock
	seq      uint64
	deadline time.Time
	callback func()
	stopped  bool
	fired    bool
}

var _ ports.Clock = (*FakeClock)(nil)

func NewFakeClock(initial time.Time) *FakeClock {
	return &FakeClock{current: initial}
}

func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.current
}

// AfterFunc never runs f synchronously; a non-positive d fires on the next
// Advance, including Advance(0).
func (c *FakeClock) AfterFunc(d time.Duration, f func()) ports.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	if d < 0 {
		d = 0
	}
	c.seq++
	timer := &fakeTimer{
		clock:    c,
		seq:      c.seq,
		deadline: c.current.Add(d),
		callback: f,
	}
	c.timers = append(c.timers, timer)

	return timer
}

func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.current.Add(d)
	c.mu.Unlock()

	for {
		c.mu.Lock()
		next := c.nextDueLocked(target)
		if next == nil {
			c.current = target
			c.mu.Unlock()
			return
		}
		if next.deadline.After(c.current) {
			c.current = next.deadline
		}
		next.fired = true
		c.mu.Unlock()

		next.callback()
	}
}

// PendingTimers counts timers that are neither stopped nor fired.
func (c *FakeClock) PendingTimers() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	for _, timer := range c.timers {
		if !timer.stopped && !timer.fired {
			count++
		}
	}

	return count
}

func (c *FakeClock) nextDueLocked(target time.Time) *fakeTimer {
	var next *fakeTimer
	live := c.timers[:0]
	for _, timer := range c.timers {
		if timer.stopped || timer.fired {
			continue
		}
		live = append(live, timer)
		if timer.deadline.After(target) {
			continue
		}
		if next == nil || timer.deadline.Before(next.deadline) ||
			(timer.deadline.Equal(next.deadline) && timer.seq < next.seq) {
			next = timer
		}
	}
	c.timers = live

	return next
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()

	if t.stopped || t.fired {
		return false
	}
	t.stopped = true

	return true
}
