// Package grocery keeps a cached copy of the backend's grocery list.
package grocery

import (
	"context"
	"log/slog"
	"sort"

	"github.com/scylladb/go-set/strset"

	"github.com/malonaz/pantry/internal/backend"
	"github.com/malonaz/pantry/internal/event"
)

// ItemsLister lists the grocery items.
type ItemsLister interface {
	ListItems(ctx context.Context) ([]backend.GroceryItem, error)
}

// Synchronizer caches the grocery list and refetches it whenever its trigger flips.
// The cache is only ever replaced wholesale.
type Synchronizer struct {
	client  ItemsLister
	log     *slog.Logger
	items   []backend.GroceryItem
	added   *strset.Set
	trigger bool
	fetched bool
}

// NewSynchronizer instantiates and returns a new synchronizer with an empty cache.
func NewSynchronizer(client ItemsLister, log *slog.Logger) *Synchronizer {
	return &Synchronizer{client: client, log: log, added: strset.New()}
}

// Items returns a copy of the cached list.
func (s *Synchronizer) Items() []backend.GroceryItem {
	items := make([]backend.GroceryItem, len(s.items))
	copy(items, s.items)
	return items
}

// Added returns the sorted names present in the latest fetch but not in the one before.
// The first fetch marks nothing as added.
func (s *Synchronizer) Added() []string {
	names := s.added.List()
	sort.Strings(names)
	return names
}

// IsAdded returns true if the named item appeared in the latest fetch.
func (s *Synchronizer) IsAdded(name string) bool {
	return s.added.Has(name)
}

// Trigger flips the refetch trigger and returns the fetch the flip requests.
func (s *Synchronizer) Trigger() func(ctx context.Context) []event.Event {
	s.trigger = !s.trigger
	return s.Fetch
}

// Triggered returns the current value of the trigger.
func (s *Synchronizer) Triggered() bool {
	return s.trigger
}

// Fetch lists the items from the backend. It does not touch the cache and can run off the update loop.
func (s *Synchronizer) Fetch(ctx context.Context) []event.Event {
	items, err := s.client.ListItems(ctx)
	if err != nil {
		s.log.Warn("fetching grocery list", "error", err)
		return []event.Event{event.RefetchFailed{Err: err}}
	}
	return []event.Event{event.ItemsReplaced{Items: items}}
}

// Replace swaps the cached list for the given one.
func (s *Synchronizer) Replace(items []backend.GroceryItem) {
	previous := strset.New()
	for _, item := range s.items {
		previous.Add(item.Name)
	}
	current := strset.New()
	for _, item := range items {
		current.Add(item.Name)
	}
	if s.fetched {
		s.added = strset.Difference(current, previous)
	}
	s.fetched = true

	s.items = make([]backend.GroceryItem, len(items))
	copy(s.items, items)
}

// Refetch fetches and applies the list synchronously. Failures leave the cache unchanged.
func (s *Synchronizer) Refetch(ctx context.Context) error {
	for _, e := range s.Fetch(ctx) {
		switch e := e.(type) {
		case event.ItemsReplaced:
			s.Replace(e.Items)
		case event.RefetchFailed:
			return e.Err
		}
	}
	return nil
}
