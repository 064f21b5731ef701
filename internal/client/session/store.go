package session

import (
	"bytes"
	"context"
	"encoding/json"
	"sync"

	"github.com/dmitrijs2005/inkwell/internal/logging"
)

// Ticket identifies one in-flight request.
type Ticket struct {
	Kind       Kind
	Generation uint64
	Epoch      uint64
}

type listener struct {
	id int
	fn func(State)
}

// Store owns the session state. It is safe for concurrent use.
type Store struct {
	mu        sync.Mutex
	state     State
	gens      map[Kind]uint64
	epoch     uint64
	listeners []listener
	nextID    int

	notifyMu sync.Mutex
	pending  *State
	notified uint64
	draining bool

	persister Persister
	saveMu    sync.Mutex
	saved     uint64
	lastSaved []byte

	log logging.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithPersister saves snapshots through p.
func WithPersister(p Persister) Option {
	return func(s *Store) { s.persister = p }
}

func WithLogger(l logging.Logger) Option {
	return func(s *Store) { s.log = l }
}

// NewStore returns a store in the anonymous initial state.
func NewStore(opts ...Option) *Store {
	s := &Store{
		gens: make(map[Kind]uint64),
		log:  logging.Nop{},
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// State returns a copy of the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Dispatch applies a synchronous action and returns the resulting state.
func (s *Store) Dispatch(ctx context.Context, a Action) State {
	s.mu.Lock()
	next, changed := s.apply(a)
	s.mu.Unlock()

	s.after(ctx, next, changed)
	return next
}

// Begin applies the pending action of kind and returns the ticket its
// completion must present. A newer Begin of the same kind supersedes older
// tickets.
func (s *Store) Begin(ctx context.Context, kind Kind) Ticket {
	s.mu.Lock()
	s.gens[kind]++
	t := Ticket{Kind: kind, Generation: s.gens[kind], Epoch: s.epoch}
	next, changed := s.apply(Action{Type: kind.Submit()})
	s.mu.Unlock()

	s.log.Debug(ctx, "request started", "kind", kind, "generation", t.Generation, "epoch", t.Epoch)
	s.after(ctx, next, changed)
	return t
}

// Resolve applies the completion a of t. It returns false and leaves the
// state alone when t is stale: superseded by a newer ticket of its kind,
// abandoned, or issued before the last logout.
func (s *Store) Resolve(ctx context.Context, t Ticket, a Action) (State, bool) {
	s.mu.Lock()
	if !s.current(t) {
		st := s.state.Clone()
		s.mu.Unlock()
		s.log.Warn(ctx, "dropping stale response", "kind", t.Kind, "action", a.Type, "generation", t.Generation, "epoch", t.Epoch)
		return st, false
	}
	// a ticket resolves once
	s.gens[t.Kind]++
	next, changed := s.apply(a)
	s.mu.Unlock()

	s.after(ctx, next, changed)
	return next, true
}

// Abandon clears the loading flag of a cancelled request. Stale tickets are
// ignored.
func (s *Store) Abandon(ctx context.Context, t Ticket) bool {
	s.mu.Lock()
	if !s.current(t) {
		s.mu.Unlock()
		return false
	}
	s.gens[t.Kind]++
	next, changed := s.apply(Action{Type: Cancelled, Kind: t.Kind})
	s.mu.Unlock()

	s.log.Debug(ctx, "request abandoned", "kind", t.Kind, "generation", t.Generation)
	s.after(ctx, next, changed)
	return true
}

// Subscribe registers fn to run after applied transitions (see notify). The
// returned function removes it.
func (s *Store) Subscribe(fn func(State)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, listener{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, l := range s.listeners {
			if l.id == id {
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// Load rehydrates the store from its persister. A missing or unreadable
// snapshot leaves the store anonymous.
func (s *Store) Load(ctx context.Context) (State, error) {
	if s.persister == nil {
		return s.State(), nil
	}
	snap, err := s.persister.Load(ctx)
	if err != nil {
		return s.State(), err
	}
	if snap == nil {
		return s.State(), nil
	}
	if b, err := json.Marshal(snap); err == nil {
		s.saveMu.Lock()
		s.lastSaved = b
		s.saveMu.Unlock()
	}
	return s.Dispatch(ctx, Action{Type: Rehydrate, Snapshot: *snap}), nil
}

func (s *Store) current(t Ticket) bool {
	return t.Epoch == s.epoch && t.Generation == s.gens[t.Kind]
}

// apply runs under s.mu.
func (s *Store) apply(a Action) (State, bool) {
	if endsSession(a.Type) {
		s.epoch++
	}
	next := Reduce(s.state, a)
	changed := next.Version != s.state.Version
	s.state = next
	return next.Clone(), changed
}

// after persists and notifies outside the lock.
func (s *Store) after(ctx context.Context, st State, changed bool) {
	if !changed {
		return
	}
	s.persist(ctx, st)
	s.notify(st)
}

// notify hands st to the listeners unless a newer state was already handed
// out. One caller drains at a time; states queued meanwhile collapse to the
// newest, so listeners see strictly increasing versions.
func (s *Store) notify(st State) {
	s.notifyMu.Lock()
	if st.Version > s.notified && (s.pending == nil || st.Version > s.pending.Version) {
		s.pending = &st
	}
	if s.draining {
		s.notifyMu.Unlock()
		return
	}
	s.draining = true

	for s.pending != nil {
		next := *s.pending
		s.pending = nil
		s.notified = next.Version
		s.notifyMu.Unlock()

		s.mu.Lock()
		ls := make([]listener, len(s.listeners))
		copy(ls, s.listeners)
		s.mu.Unlock()

		for _, l := range ls {
			l.fn(next.Clone())
		}
		s.notifyMu.Lock()
	}
	s.draining = false
	s.notifyMu.Unlock()
}

func (s *Store) persist(ctx context.Context, st State) {
	if s.persister == nil {
		return
	}
	snap := st.Snapshot()
	b, err := json.Marshal(snap)
	if err != nil {
		s.log.Error(ctx, "encode session snapshot", "error", err)
		return
	}

	s.saveMu.Lock()
	defer s.saveMu.Unlock()
	if st.Version <= s.saved || bytes.Equal(b, s.lastSaved) {
		return
	}

	// persist even when the caller was cancelled
	ctx = context.WithoutCancel(ctx)
	if snap.Empty() {
		err = s.persister.Clear(ctx)
	} else {
		err = s.persister.Save(ctx, snap)
	}
	if err != nil {
		s.log.Warn(ctx, "persist session failed", "version", st.Version, "error", err)
		return
	}
	s.saved = st.Version
	s.lastSaved = b
}
