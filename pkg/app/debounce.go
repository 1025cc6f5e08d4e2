package app

import (
	"sync"
	"time"
)

// debouncer runs fn once after calls to Trigger have been quiet for delay.
type debouncer struct {
	mu      sync.Mutex
	timer   *time.Timer
	delay   time.Duration
	fn      func()
	gen     uint64
	pending sync.WaitGroup
}

func newDebouncer(delay time.Duration, fn func()) *debouncer {
	return &debouncer{delay: delay, fn: fn}
}

// Trigger (re)starts the quiet period.
func (d *debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil && d.timer.Stop() {
		d.timer.Reset(d.delay)
		return
	}
	d.pending.Add(1)
	d.gen++
	gen := d.gen
	d.timer = time.AfterFunc(d.delay, func() { d.fire(gen) })
}

func (d *debouncer) fire(gen uint64) {
	defer d.pending.Done()
	d.mu.Lock()
	if d.gen == gen {
		d.timer = nil
	}
	d.mu.Unlock()
	d.fn()
}

// Now cancels the quiet period, if any, and runs fn immediately.
func (d *debouncer) Now() {
	d.mu.Lock()
	t := d.timer
	d.timer = nil
	stopped := t != nil && t.Stop()
	d.mu.Unlock()
	if stopped {
		d.pending.Done()
	}
	d.fn()
}

// Flush runs a pending fn right away and waits for any run in progress.
func (d *debouncer) Flush() {
	d.mu.Lock()
	t := d.timer
	d.timer = nil
	stopped := t != nil && t.Stop()
	d.mu.Unlock()
	if stopped {
		d.fn()
		d.pending.Done()
	}
	d.pending.Wait()
}
