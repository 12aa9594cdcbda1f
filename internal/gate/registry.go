package gate

import (
	"context"
	"sync"
	"time"
)

// Registry is the process-wide observable view of registration state, keyed
// by session ID. The session cookie remains the durable record; the registry
// exists so concurrently open tabs sharing one session can observe an
// authorization change without a reload. Entries are fed by request handling
// and re-evaluated by a polling adapter, so expiry flips subscribers to
// unauthorized within roughly one poll interval.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*entry
	now     func() time.Time

	pollInterval time.Duration
	stop         chan struct{}
	stopOnce     sync.Once
}

type entry struct {
	reg  Registration
	last Status
	subs map[chan Status]struct{}
	seen time.Time
}

// staleAfter bounds registry growth: entries with no subscribers and no
// recent touch are dropped by the poll loop. The cookie still authorizes the
// visitor; the entry is recreated on their next request.
const staleAfter = 30 * time.Minute

const defaultPollInterval = 750 * time.Millisecond

// NewRegistry builds a Registry polling at the given interval; zero or
// negative means the default (~750ms, matching the product's 0.5–1s cross-tab
// staleness budget).
func NewRegistry(pollInterval time.Duration) *Registry {
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}
	return &Registry{
		entries:      map[string]*entry{},
		now:          time.Now,
		pollInterval: pollInterval,
		stop:         make(chan struct{}),
	}
}

// SetClock overrides the time source (tests only).
func (r *Registry) SetClock(now func() time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if now != nil {
		r.now = now
	}
}

// Observe records the registration seen on a request and notifies
// subscribers of the session when its status changed.
func (r *Registry) Observe(sessionID string, reg Registration) {
	if sessionID == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	e, ok := r.entries[sessionID]
	if !ok {
		e = &entry{last: StatusChecking, subs: map[chan Status]struct{}{}}
		r.entries[sessionID] = e
	}
	e.reg = reg
	e.seen = now
	r.publishLocked(e, reg.Evaluate(now))
}

// Get returns the current status for a session, StatusChecking when the
// session has not been observed yet.
func (r *Registry) Get(sessionID string) Status {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[sessionID]
	if !ok {
		return StatusChecking
	}
	return e.reg.Evaluate(r.now())
}

// Subscribe returns a channel receiving status transitions for the session,
// starting with the current status. The subscription ends when ctx is done.
func (r *Registry) Subscribe(ctx context.Context, sessionID string) <-chan Status {
	ch := make(chan Status, 4)
	r.mu.Lock()
	e, ok := r.entries[sessionID]
	if !ok {
		e = &entry{last: StatusChecking, subs: map[chan Status]struct{}{}}
		r.entries[sessionID] = e
	}
	e.subs[ch] = struct{}{}
	e.seen = r.now()
	// The initial status goes only to the new channel. e.last stays untouched:
	// it belongs to publishLocked and the poll loop, and resetting it here
	// would swallow a pending transition for earlier subscribers. The new
	// subscriber may see one duplicate event on the next tick, which is
	// harmless.
	current := e.reg.Evaluate(r.now())
	r.mu.Unlock()

	ch <- current

	go func() {
		<-ctx.Done()
		r.mu.Lock()
		if e, ok := r.entries[sessionID]; ok {
			delete(e.subs, ch)
		}
		r.mu.Unlock()
	}()
	return ch
}

// Start launches the polling adapter that re-evaluates every entry. This is
// what flips subscribers to unauthorized when the 7-day window lapses while a
// tab stays open, and what evicts idle entries.
func (r *Registry) Start() {
	go func() {
		ticker := time.NewTicker(r.pollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-r.stop:
				return
			case <-ticker.C:
				r.sweep()
			}
		}
	}()
}

// Stop terminates the polling adapter.
func (r *Registry) Stop() {
	r.stopOnce.Do(func() { close(r.stop) })
}

func (r *Registry) sweep() {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	for id, e := range r.entries {
		if len(e.subs) == 0 && now.Sub(e.seen) > staleAfter {
			delete(r.entries, id)
			continue
		}
		r.publishLocked(e, e.reg.Evaluate(now))
	}
}

// publishLocked delivers status to subscribers when it changed. Slow
// subscribers are skipped rather than blocked on; the next transition or poll
// tick catches them up.
func (r *Registry) publishLocked(e *entry, s Status) {
	if s == e.last {
		return
	}
	e.last = s
	for ch := range e.subs {
		select {
		case ch <- s:
		default:
		}
	}
}
