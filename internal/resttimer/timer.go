// Package resttimer schedules the rest period between two sets.
package resttimer

import (
	"context"
	"errors"
	"sync"
	"time"
)

var (
	// ErrCanceled is returned by Wait when the rest period was canceled or
	// replaced by a new one.
	ErrCanceled = errors.New("rest timer canceled")
	// ErrNotStarted is returned by Wait before the first Start.
	ErrNotStarted = errors.New("rest timer not started")
)

// Timer counts down one rest period at a time. The completion callback of a
// period runs at most once, on its own goroutine, and never after Cancel
// has returned true. The zero value is ready to use.
type Timer struct {
	mu  sync.Mutex
	cur *period
}

type period struct {
	// deadline carries the monotonic clock reading of time.Now.
	deadline time.Time
	timer    *time.Timer
	onDone   func()
	done     chan struct{}
	finished bool
	err      error
}

// Start begins a rest period of d. A period still running is canceled
// first. onDone may be nil.
func (t *Timer) Start(d time.Duration, onDone func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cur != nil {
		t.cur.finish(ErrCanceled)
	}
	p := &period{
		deadline: time.Now().Add(d),
		onDone:   onDone,
		done:     make(chan struct{}),
	}
	p.timer = time.AfterFunc(d, func() { t.fire(p) })
	t.cur = p
}

func (t *Timer) fire(p *period) {
	t.mu.Lock()
	if p.finished {
		t.mu.Unlock()
		return
	}
	// The deadline may have moved while this call was pending.
	if left := time.Until(p.deadline); left > 0 {
		p.timer.Reset(left)
		t.mu.Unlock()
		return
	}
	p.finish(nil)
	t.mu.Unlock()

	if p.onDone != nil {
		p.onDone()
	}
}

// finish must be called with t.mu held.
func (p *period) finish(err error) {
	if p.finished {
		return
	}
	p.finished = true
	p.err = err
	p.timer.Stop()
	close(p.done)
}

// Remaining returns the time left in the running period, or 0.
func (t *Timer) Remaining() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cur == nil || t.cur.finished {
		return 0
	}
	return max(time.Until(t.cur.deadline), 0)
}

// Extend moves the deadline of the running period by d, which may be
// negative. It reports false when no period is running.
func (t *Timer) Extend(d time.Duration) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	p := t.cur
	if p == nil || p.finished {
		return false
	}
	p.deadline = p.deadline.Add(d)
	if p.timer.Stop() {
		p.timer.Reset(max(time.Until(p.deadline), 0))
	}
	return true
}

// Cancel stops the running period without calling its callback. It reports
// whether a period was running.
func (t *Timer) Cancel() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cur == nil || t.cur.finished {
		return false
	}
	t.cur.finish(ErrCanceled)
	return true
}

// Done returns a channel closed when the current period ends, whether it
// elapsed or was canceled. It is nil before the first Start.
func (t *Timer) Done() <-chan struct{} {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cur == nil {
		return nil
	}
	return t.cur.done
}

// Wait blocks until the current period ends or ctx is done. It returns nil
// when the period elapsed.
func (t *Timer) Wait(ctx context.Context) error {
	t.mu.Lock()
	p := t.cur
	t.mu.Unlock()
	if p == nil {
		return ErrNotStarted
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-p.done:
		t.mu.Lock()
		defer t.mu.Unlock()
		return p.err
	}
}
