package store

import (
	"context"
	"testing"
	"time"

	"github.com/jaswdr/faker"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weegigs/wee-crud-go/crud"
)

type fixture struct {
	store    *Store
	creators crud.Creators
	initial  *crud.State
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	options := []crud.Option{crud.WithDefaults(crud.AllOperations())}

	actions, err := crud.CreateActions(crud.Config{"explode": nil}, options...)
	require.NoError(t, err)

	initial, err := crud.CreateState(crud.Record{}, crud.AllOperations())
	require.NoError(t, err)

	reducer, err := crud.CreateReducer(initial, crud.Handlers{
		actions.Types["explode"]: func(*crud.State, crud.Action) *crud.State {
			panic("boom")
		},
	}, options...)
	require.NoError(t, err)

	logger := zerolog.Nop()
	clock := func() time.Time { return time.UnixMilli(1_700_000_000_000) }

	return fixture{
		store:    New(reducer, initial, Logger(&logger), Clock(clock)),
		creators: actions.Creators,
		initial:  initial,
	}
}

func startsAtTheInitialRevision(t *testing.T) {
	f := newFixture(t)

	snapshot := f.store.State()

	assert.Same(t, f.initial, snapshot.State)
	assert.Equal(t, InitialRevision, snapshot.Revision)
}

func advancesTheRevisionOnChange(t *testing.T) {
	f := newFixture(t)
	fake := faker.New()

	items := []crud.Record{
		{"id": fake.UUID().V4(), "title": fake.Lorem().Sentence(4)},
		{"id": fake.UUID().V4(), "title": fake.Lorem().Sentence(4)},
	}

	first, err := f.store.Dispatch(context.Background(), f.creators[crud.GetRequest]())
	require.NoError(t, err)

	second, err := f.store.Dispatch(context.Background(), f.creators[crud.GetSuccess](items))
	require.NoError(t, err)

	assert.Len(t, second.State.Get.Results, 2)
	assert.Equal(t, second, f.store.State())

	sequence, err := first.Revision.Sequence()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), sequence)

	sequence, err = second.Revision.Sequence()
	require.NoError(t, err)
	assert.Equal(t, uint64(2), sequence)

	timestamp, err := second.Revision.Timestamp()
	require.NoError(t, err)
	assert.Equal(t, "2023-11-14T22:13:20Z", timestamp)
}

func keepsTheRevisionWithoutChange(t *testing.T) {
	f := newFixture(t)

	snapshot, err := f.store.Dispatch(context.Background(), crud.Action{Type: "UNKNOWN"})
	require.NoError(t, err)

	assert.Equal(t, InitialRevision, snapshot.Revision)
	assert.Same(t, f.initial, snapshot.State)
}

func recoversReducerPanics(t *testing.T) {
	f := newFixture(t)

	before, err := f.store.Dispatch(context.Background(), f.creators[crud.CreateRequest]())
	require.NoError(t, err)

	after, err := f.store.Dispatch(context.Background(), f.creators["explode"]())

	var panicked ReducerPanicError
	require.ErrorAs(t, err, &panicked)
	assert.Equal(t, "EXPLODE", panicked.Action)
	assert.Equal(t, "boom", panicked.Recovered)
	assert.Equal(t, before, after)
	assert.Equal(t, before, f.store.State())
}

func notifiesSubscribers(t *testing.T) {
	f := newFixture(t)

	var seen []crud.ActionType
	unsubscribe := f.store.Subscribe(func(snapshot Snapshot, action crud.Action) {
		seen = append(seen, action.Type)
	})

	_, err := f.store.Dispatch(context.Background(), f.creators[crud.GetRequest]())
	require.NoError(t, err)

	_, err = f.store.Dispatch(context.Background(), crud.Action{Type: "UNKNOWN"})
	require.NoError(t, err)

	unsubscribe()
	unsubscribe()

	_, err = f.store.Dispatch(context.Background(), f.creators[crud.GetReset]())
	require.NoError(t, err)

	assert.Equal(t, []crud.ActionType{"GET_REQUEST"}, seen)
}

func TestStore(t *testing.T) {
	t.Run("starts at the initial revision", startsAtTheInitialRevision)
	t.Run("advances the revision on change", advancesTheRevisionOnChange)
	t.Run("keeps the revision without change", keepsTheRevisionWithoutChange)
	t.Run("recovers reducer panics", recoversReducerPanics)
	t.Run("notifies subscribers", notifiesSubscribers)
}
