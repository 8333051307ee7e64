package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/soireehq/soiree-api/internal/models"
	"github.com/soireehq/soiree-api/internal/repository"
	"github.com/soireehq/soiree-api/pkg/latency"
	"github.com/soireehq/soiree-api/pkg/rabbitmq"
)

var ErrEventNotFound = errors.New("Event not found")

type PriceFilter string

const (
	PriceAll  PriceFilter = "all"
	PriceFree PriceFilter = "free"
	PricePaid PriceFilter = "paid"
)

// EventFilters compose with AND semantics. Zero values mean "no constraint";
// an event matches Tags when it carries at least one of them.
type EventFilters struct {
	Date     string
	Location string
	Price    PriceFilter
	Tags     []string
}

type EventService interface {
	ListEvents(ctx context.Context) ([]models.Event, error)
	GetEvent(ctx context.Context, id string) (*models.Event, error)
	CreateEvent(ctx context.Context, event *models.Event) error
	SearchEvents(ctx context.Context, query string) ([]models.Event, error)
	FilterEvents(ctx context.Context, filters EventFilters) ([]models.Event, error)
}

type eventService struct {
	repo      repository.EventRepository
	publisher *rabbitmq.Publisher
	delay     time.Duration
}

func NewEventService(repo repository.EventRepository, publisher *rabbitmq.Publisher, delay time.Duration) EventService {
	return &eventService{repo: repo, publisher: publisher, delay: delay}
}

func (s *eventService) ListEvents(ctx context.Context) ([]models.Event, error) {
	if err := latency.Wait(ctx, s.delay); err != nil {
		return nil, err
	}
	return s.repo.FindAll(ctx)
}

func (s *eventService) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	if err := latency.Wait(ctx, s.delay); err != nil {
		return nil, err
	}

	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrEventNotFound
	}
	return event, nil
}

func (s *eventService) CreateEvent(ctx context.Context, event *models.Event) error {
	if err := latency.Wait(ctx, s.delay); err != nil {
		return err
	}

	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Reviews == nil {
		event.Reviews = []models.Review{}
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return fmt.Errorf("create event: %w", err)
	}

	if s.publisher != nil {
		_ = s.publisher.Publish(ctx, "event.created", event)
	}

	return nil
}

func (s *eventService) SearchEvents(ctx context.Context, query string) ([]models.Event, error) {
	if err := latency.Wait(ctx, s.delay); err != nil {
		return nil, err
	}

	events, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	matched := make([]models.Event, 0, len(events))
	for _, e := range events {
		if matchesQuery(e, q) {
			matched = append(matched, e)
		}
	}
	return matched, nil
}

func matchesQuery(e models.Event, q string) bool {
	if strings.Contains(strings.ToLower(e.Title), q) ||
		strings.Contains(strings.ToLower(e.Description), q) ||
		strings.Contains(strings.ToLower(e.Location.City), q) {
		return true
	}
	for _, tag := range e.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

func (s *eventService) FilterEvents(ctx context.Context, filters EventFilters) ([]models.Event, error) {
	if err := latency.Wait(ctx, s.delay); err != nil {
		return nil, err
	}

	events, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]models.Event, 0, len(events))
	for _, e := range events {
		if matchesFilters(e, filters) {
			matched = append(matched, e)
		}
	}
	return matched, nil
}

func matchesFilters(e models.Event, f EventFilters) bool {
	if f.Date != "" && e.Date != f.Date {
		return false
	}

	if f.Location != "" {
		loc := strings.ToLower(f.Location)
		if !strings.Contains(strings.ToLower(e.Location.City), loc) &&
			!strings.Contains(strings.ToLower(e.Location.State), loc) &&
			!strings.Contains(strings.ToLower(e.Location.Country), loc) {
			return false
		}
	}

	switch f.Price {
	case PriceFree:
		if !e.IsFree {
			return false
		}
	case PricePaid:
		if e.IsFree {
			return false
		}
	}

	if len(f.Tags) > 0 {
		found := false
		for _, want := range f.Tags {
			for _, have := range e.Tags {
				if have == want {
					found = true
					break
				}
			}
			if found {
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}
