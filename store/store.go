package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/weegigs/wee-crud-go/crud"
)

const tracerName = "crud-store"

// Snapshot is a state together with the revision it was stored under.
type Snapshot struct {
	State    *crud.State
	Revision Revision
}

type Listener func(snapshot Snapshot, action crud.Action)

type Option func(store *Store)

func Logger(log *zerolog.Logger) Option {
	return func(store *Store) {
		store.log = log
	}
}

// Clock sets the time source used for revisions.
func Clock(now func() time.Time) Option {
	return func(store *Store) {
		store.now = now
	}
}

// Store serialises dispatches to a reducer and keeps the latest state.
type Store struct {
	log    *zerolog.Logger
	now    func() time.Time
	reduce crud.Reducer

	lk        sync.Mutex
	current   Snapshot
	sequence  uint64
	listeners []subscription
	nextID    uint64
}

type subscription struct {
	id       uint64
	listener Listener
}

func New(reducer crud.Reducer, initial *crud.State, options ...Option) *Store {
	store := &Store{
		now:     time.Now,
		reduce:  reducer,
		current: Snapshot{State: initial, Revision: InitialRevision},
	}
	for _, option := range options {
		option(store)
	}
	if store.log == nil {
		store.log = &log.Logger
	}

	return store
}

func (s *Store) State() Snapshot {
	s.lk.Lock()
	defer s.lk.Unlock()

	return s.current
}

// Dispatch applies action to the current state. The revision only advances
// when the reducer returns a different state.
func (s *Store) Dispatch(ctx context.Context, action crud.Action) (Snapshot, error) {
	_, span := otel.Tracer(tracerName).Start(ctx, fmt.Sprintf("dispatch %s", action.Type),
		trace.WithAttributes(attribute.String("crud.action", action.Type.String())),
	)
	defer span.End()

	s.lk.Lock()
	next, err := s.apply(action)
	listeners := s.subscribers()
	changed := err == nil && next.Revision != s.current.Revision
	if changed {
		s.current = next
	}
	s.lk.Unlock()

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.log.Warn().Err(err).Str("action", action.Type.String()).Msg("failed to dispatch action")
		return s.State(), err
	}

	span.SetAttributes(attribute.String("crud.revision", next.Revision.String()))

	if !changed {
		return next, nil
	}

	s.log.Debug().Str("action", action.Type.String()).Str("revision", next.Revision.String()).Msg("state changed")
	for _, listener := range listeners {
		listener(next, action)
	}

	return next, nil
}

func (s *Store) apply(action crud.Action) (snapshot Snapshot, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = ReducerPanic(action.Type, r)
		}
	}()

	state := s.reduce(s.current.State, action)
	if state == s.current.State {
		return s.current, nil
	}

	revision, err := EncodeRevision(s.now(), s.sequence+1)
	if err != nil {
		return Snapshot{}, errors.Wrap(err, "failed to advance revision")
	}
	s.sequence++

	return Snapshot{State: state, Revision: revision}, nil
}

func (s *Store) subscribers() []Listener {
	listeners := make([]Listener, len(s.listeners))
	for i, sub := range s.listeners {
		listeners[i] = sub.listener
	}

	return listeners
}

// Subscribe registers listener for state changes. Listeners run after the
// store lock is released, in subscription order.
func (s *Store) Subscribe(listener Listener) (unsubscribe func()) {
	s.lk.Lock()
	defer s.lk.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners = append(s.listeners, subscription{id: id, listener: listener})

	var once sync.Once
	return func() {
		once.Do(func() {
			s.lk.Lock()
			defer s.lk.Unlock()

			for i, sub := range s.listeners {
				if sub.id == id {
					s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
					return
				}
			}
		})
	}
}
