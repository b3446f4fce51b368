package clock

import (
	"sync"
	"time"
)

// Mock is a manually-advanced Clock for tests. Time only moves when
// Advance or Set is called; tickers fire synchronously during the call
// that crosses their deadline.
type Mock struct {
	mu      sync.Mutex
	now     time.Time
	tickers []*mockTicker
	waiters []*mockWaiter
}

// NewMock returns a Mock pinned to the given start time.
func NewMock(start time.Time) *Mock {
	return &Mock{now: start}
}

func (m *Mock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Set jumps the clock to t, firing any timers whose deadline falls in
// the crossed window.
func (m *Mock) Set(t time.Time) {
	m.mu.Lock()
	now := m.now
	m.mu.Unlock()
	if t.After(now) {
		m.Advance(t.Sub(now))
		return
	}
	m.mu.Lock()
	m.now = t
	m.mu.Unlock()
}

// Advance moves time forward by d, delivering every tick and After
// deadline that falls inside the window, in order.
func (m *Mock) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now.Add(d)

	for {
		// Find the earliest pending deadline within the window.
		var earliest time.Time
		found := false
		for _, tk := range m.tickers {
			if tk.stopped {
				continue
			}
			if !tk.next.After(target) && (!found || tk.next.Before(earliest)) {
				earliest = tk.next
				found = true
			}
		}
		for _, w := range m.waiters {
			if w.fired {
				continue
			}
			if !w.at.After(target) && (!found || w.at.Before(earliest)) {
				earliest = w.at
				found = true
			}
		}
		if !found {
			break
		}

		m.now = earliest
		for _, tk := range m.tickers {
			if !tk.stopped && tk.next.Equal(earliest) {
				tk.next = tk.next.Add(tk.period)
				select {
				case tk.ch <- earliest:
				default:
				}
			}
		}
		for _, w := range m.waiters {
			if !w.fired && w.at.Equal(earliest) {
				w.fired = true
				select {
				case w.ch <- earliest:
				default:
				}
			}
		}

		// Let goroutines blocked on the channels run before the next step.
		m.mu.Unlock()
		time.Sleep(time.Millisecond)
		m.mu.Lock()
	}

	m.now = target
	m.mu.Unlock()
	time.Sleep(time.Millisecond)
}

func (m *Mock) NewTicker(d time.Duration) Ticker {
	m.mu.Lock()
	defer m.mu.Unlock()
	tk := &mockTicker{
		ch:     make(chan time.Time, 1),
		period: d,
		next:   m.now.Add(d),
		mock:   m,
	}
	m.tickers = append(m.tickers, tk)
	return tk
}

func (m *Mock) After(d time.Duration) <-chan time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	w := &mockWaiter{ch: make(chan time.Time, 1), at: m.now.Add(d)}
	m.waiters = append(m.waiters, w)
	return w.ch
}

type mockTicker struct {
	ch      chan time.Time
	period  time.Duration
	next    time.Time
	stopped bool
	mock    *Mock
}

func (t *mockTicker) C() <-chan time.Time { return t.ch }

func (t *mockTicker) Stop() {
	t.mock.mu.Lock()
	defer t.mock.mu.Unlock()
	t.stopped = true
}

type mockWaiter struct {
	ch    chan time.Time
	at    time.Time
	fired bool
}
