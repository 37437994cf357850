package listings

import (
	"context"
	"log"
	"sync"

	"github.com/criscode097/vacarent/internal/listing"
	"github.com/criscode097/vacarent/internal/notify"
)

// Service owns the single current listing State. Every mutation goes
// through the reducer and the resulting collection is written out as a
// full snapshot before the lock is released, so snapshots land in
// state-transition order. A failed save is logged and swallowed; memory
// stays authoritative.
type Service struct {
	mu       sync.Mutex
	state    listing.State
	store    SnapshotStore
	notifier ChangeNotifier
}

func NewService(ctx context.Context, store SnapshotStore, notifier ChangeNotifier) *Service {
	return &Service{
		state:    listing.NewState(store.Load(ctx)),
		store:    store,
		notifier: notifier,
	}
}

func (s *Service) dispatch(ctx context.Context, event listing.Event) listing.State {
	s.mu.Lock()
	s.state = listing.Reduce(s.state, event)
	next := s.state
	if err := s.store.Save(ctx, next.Items); err != nil {
		log.Printf("listing snapshot save failed: %v", err)
	}
	s.mu.Unlock()

	s.notifier.Broadcast(notify.Changed(notify.ScopeListings))
	return next
}

func (s *Service) snapshot() listing.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Create adds a new listing built from the draft.
func (s *Service) Create(ctx context.Context, draft listing.Draft) listing.Item {
	item := listing.NewItem(draft)
	s.dispatch(ctx, listing.ItemAdded{Item: item})
	return item
}

// Update applies a partial change to one listing.
func (s *Service) Update(ctx context.Context, id int64, ch listing.Changes) (listing.Item, error) {
	if _, ok := listing.Find(s.snapshot().Items, id); !ok {
		return listing.Item{}, ErrItemNotFound
	}
	next := s.dispatch(ctx, listing.ItemUpdated{ID: id, Changes: ch})
	// The item can disappear between the check and the dispatch.
	item, ok := listing.Find(next.Items, id)
	if !ok {
		return listing.Item{}, ErrItemNotFound
	}
	return item, nil
}

// Delete removes one listing.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, ok := listing.Find(s.snapshot().Items, id); !ok {
		return ErrItemNotFound
	}
	s.dispatch(ctx, listing.ItemDeleted{ID: id})
	return nil
}

// Toggle flips availability of one listing.
func (s *Service) Toggle(ctx context.Context, id int64) (listing.Item, error) {
	if _, ok := listing.Find(s.snapshot().Items, id); !ok {
		return listing.Item{}, ErrItemNotFound
	}
	next := s.dispatch(ctx, listing.ItemToggled{ID: id})
	item, ok := listing.Find(next.Items, id)
	if !ok {
		return listing.Item{}, ErrItemNotFound
	}
	return item, nil
}

// ClearInactive drops every occupied listing and reports how many went.
func (s *Service) ClearInactive(ctx context.Context) int {
	before := len(s.snapshot().Items)
	next := s.dispatch(ctx, listing.InactiveCleared{})
	return before - len(next.Items)
}

// List applies the given filters to the current collection.
func (s *Service) List(f listing.Filters) []listing.Item {
	return listing.Apply(s.snapshot().Items, f)
}

// Get returns one listing by id.
func (s *Service) Get(id int64) (listing.Item, error) {
	item, ok := listing.Find(s.snapshot().Items, id)
	if !ok {
		return listing.Item{}, ErrItemNotFound
	}
	return item, nil
}

// Stats aggregates the whole collection, filters ignored.
func (s *Service) Stats() StatsResponse {
	return toStatsResponse(listing.ComputeStats(s.snapshot().Items))
}
