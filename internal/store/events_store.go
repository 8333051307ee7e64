package store

import (
	"context"
	"sort"
	"sync"

	"github.com/soireehq/soiree-api/internal/models"
	"github.com/soireehq/soiree-api/internal/service"
)

// EventsStore owns the event catalog and the favorites set. The catalog is
// an id-keyed arena; fetches replace it wholesale, there is no incremental
// merge.
type EventsStore struct {
	mu  sync.RWMutex
	svc service.EventService

	events    map[string]models.Event
	order     []string
	favorites map[string]struct{}
	isLoading bool
	err       error
}

func NewEventsStore(svc service.EventService) *EventsStore {
	return &EventsStore{
		svc:       svc,
		events:    make(map[string]models.Event),
		favorites: make(map[string]struct{}),
	}
}

func (s *EventsStore) begin() {
	s.mu.Lock()
	s.isLoading = true
	s.err = nil
	s.mu.Unlock()
}

func (s *EventsStore) fail(err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isLoading = false
	s.err = err
	return err
}

// FetchEvents replaces the whole catalog with the current listing. On
// failure the previous catalog is kept.
func (s *EventsStore) FetchEvents(ctx context.Context) error {
	s.begin()

	events, err := s.svc.ListEvents(ctx)
	if err != nil {
		return s.fail(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.isLoading = false
	s.events = make(map[string]models.Event, len(events))
	s.order = make([]string, 0, len(events))
	for _, e := range events {
		s.events[e.ID] = e
		s.order = append(s.order, e.ID)
	}
	return nil
}

// FetchEventByID resolves a single listing without storing it.
func (s *EventsStore) FetchEventByID(ctx context.Context, id string) (*models.Event, error) {
	s.begin()

	event, err := s.svc.GetEvent(ctx, id)
	if err != nil {
		return nil, s.fail(err)
	}

	s.mu.Lock()
	s.isLoading = false
	s.mu.Unlock()
	return event, nil
}

// ToggleFavorite inverts membership of eventID in the favorites set. Two
// calls restore the original set.
func (s *EventsStore) ToggleFavorite(eventID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.favorites[eventID]; ok {
		delete(s.favorites, eventID)
	} else {
		s.favorites[eventID] = struct{}{}
	}
}

func (s *EventsStore) IsFavorite(eventID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.favorites[eventID]
	return ok
}

func (s *EventsStore) FavoriteEventIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.favorites))
	for id := range s.favorites {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// SearchEvents returns a filtered copy of the catalog; stored state is not
// mutated.
func (s *EventsStore) SearchEvents(ctx context.Context, query string) ([]models.Event, error) {
	s.begin()

	events, err := s.svc.SearchEvents(ctx, query)
	if err != nil {
		return nil, s.fail(err)
	}

	s.mu.Lock()
	s.isLoading = false
	s.mu.Unlock()
	return events, nil
}

// FilterEvents returns the catalog entries matching all given filters.
func (s *EventsStore) FilterEvents(ctx context.Context, filters service.EventFilters) ([]models.Event, error) {
	s.begin()

	events, err := s.svc.FilterEvents(ctx, filters)
	if err != nil {
		return nil, s.fail(err)
	}

	s.mu.Lock()
	s.isLoading = false
	s.mu.Unlock()
	return events, nil
}

// Events returns the catalog in listing order.
func (s *EventsStore) Events() []models.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events := make([]models.Event, 0, len(s.order))
	for _, id := range s.order {
		events = append(events, s.events[id])
	}
	return events
}

func (s *EventsStore) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isLoading
}

func (s *EventsStore) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}
