package repository

import (
	"context"
	"sync"

	"github.com/soireehq/soiree-api/internal/models"
)

type EventRepository interface {
	FindAll(ctx context.Context) ([]models.Event, error)
	FindByID(ctx context.Context, id string) (*models.Event, error)
	Create(ctx context.Context, event *models.Event) error
}

type eventRepository struct {
	mu    sync.RWMutex
	byID  map[string]models.Event
	order []string
}

// NewEventRepository clones the seed catalog into an id-keyed arena.
// Catalog order is preserved; created events append at the end.
func NewEventRepository(seed []models.Event) EventRepository {
	r := &eventRepository{
		byID:  make(map[string]models.Event, len(seed)),
		order: make([]string, 0, len(seed)),
	}
	for _, e := range seed {
		r.byID[e.ID] = e
		r.order = append(r.order, e.ID)
	}
	return r
}

func (r *eventRepository) FindAll(ctx context.Context) ([]models.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	events := make([]models.Event, 0, len(r.order))
	for _, id := range r.order {
		events = append(events, r.byID[id])
	}
	return events, nil
}

func (r *eventRepository) FindByID(ctx context.Context, id string) (*models.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &e, nil
}

func (r *eventRepository) Create(ctx context.Context, event *models.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[event.ID]; !exists {
		r.order = append(r.order, event.ID)
	}
	r.byID[event.ID] = *event
	return nil
}
