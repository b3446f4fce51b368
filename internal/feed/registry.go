package feed

import (
	"log"
	"sync"
	"time"

	"tradepulse/internal/clock"
	"tradepulse/internal/models"
	"tradepulse/internal/session"
)

// Listener is a callback invoked with every new snapshot for a symbol.
type Listener func(models.MarketSnapshot)

// Registry fans synthetic ticks out to per-symbol subscribers. It owns
// exactly one timer per symbol: the first subscriber starts it, the last
// unsubscribe tears it down. The registry holds no business data, only
// wiring.
type Registry struct {
	mu     sync.Mutex
	feed   Provider
	clk    clock.Clock
	subs   map[string]*subscription
	nextID int
}

// subscription is the per-symbol timer plus its listener set.
type subscription struct {
	listeners map[int]Listener
	ticker    clock.Ticker
	stop      chan struct{}
	done      chan struct{}
}

// NewRegistry builds a Registry around the given feed and clock.
func NewRegistry(feed Provider, clk clock.Clock) *Registry {
	return &Registry{
		feed: feed,
		clk:  clk,
		subs: make(map[string]*subscription),
	}
}

// Subscribe registers fn for the symbol and returns a subscriber id for
// later removal. The first subscriber starts the shared timer: at
// interval while the session is open (crypto always counts as open), or
// at 3x interval with the reduced-volatility tick while it is closed.
// Later subscribers only join the listener set; a second timer is never
// started.
func (r *Registry) Subscribe(symbol string, interval time.Duration, fn Listener) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	id := r.nextID

	if sub, ok := r.subs[symbol]; ok {
		sub.listeners[id] = fn
		return id
	}

	status := session.Status(symbol, r.clk.Now())
	historical := !status.IsOpen && !session.IsCrypto(symbol)
	if historical {
		// Slower cadence while the market is closed.
		interval *= 3
		log.Printf("Market closed for %s, using historical data", symbol)
	}

	sub := &subscription{
		listeners: map[int]Listener{id: fn},
		ticker:    r.clk.NewTicker(interval),
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}
	r.subs[symbol] = sub

	go r.run(symbol, sub, historical)
	return id
}

// run drives one symbol's timer until its stop channel closes.
func (r *Registry) run(symbol string, sub *subscription, historical bool) {
	defer close(sub.done)
	for {
		select {
		case <-sub.stop:
			return
		case <-sub.ticker.C():
			now := r.clk.Now()
			var snap models.MarketSnapshot
			if historical {
				snap = r.feed.HistoricalTick(symbol, now)
			} else {
				snap = r.feed.Tick(symbol, now)
			}

			r.mu.Lock()
			fns := make([]Listener, 0, len(sub.listeners))
			for _, fn := range sub.listeners {
				fns = append(fns, fn)
			}
			r.mu.Unlock()

			for _, fn := range fns {
				fn(snap)
			}
		}
	}
}

// Unsubscribe removes one subscriber from the symbol. When the listener
// set becomes empty the shared timer is cancelled and removed.
func (r *Registry) Unsubscribe(symbol string, id int) {
	r.mu.Lock()
	sub, ok := r.subs[symbol]
	if ok {
		delete(sub.listeners, id)
		if len(sub.listeners) == 0 {
			delete(r.subs, symbol)
		} else {
			sub = nil
		}
	}
	r.mu.Unlock()

	if ok && sub != nil {
		stopSubscription(sub)
	}
}

// UnsubscribeAll drops every listener for the symbol and cancels its timer.
func (r *Registry) UnsubscribeAll(symbol string) {
	r.mu.Lock()
	sub, ok := r.subs[symbol]
	delete(r.subs, symbol)
	r.mu.Unlock()

	if ok {
		stopSubscription(sub)
	}
}

// Cleanup cancels all timers and clears all listener sets. Used at
// process teardown.
func (r *Registry) Cleanup() {
	r.mu.Lock()
	subs := r.subs
	r.subs = make(map[string]*subscription)
	r.mu.Unlock()

	for _, sub := range subs {
		stopSubscription(sub)
	}
}

// ActiveTimers reports how many symbol timers are currently running.
func (r *Registry) ActiveTimers() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.subs)
}

func stopSubscription(sub *subscription) {
	close(sub.stop)
	sub.ticker.Stop()
	<-sub.done
}
