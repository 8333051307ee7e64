package service

import (
	"context"
	"testing"

	"github.com/soireehq/soiree-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mock EventRepository ---

type mockEventRepo struct {
	findAllFn  func(ctx context.Context) ([]models.Event, error)
	findByIDFn func(ctx context.Context, id string) (*models.Event, error)
	createFn   func(ctx context.Context, event *models.Event) error
}

func (m *mockEventRepo) FindAll(ctx context.Context) ([]models.Event, error) {
	return m.findAllFn(ctx)
}
func (m *mockEventRepo) FindByID(ctx context.Context, id string) (*models.Event, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockEventRepo) Create(ctx context.Context, event *models.Event) error {
	return m.createFn(ctx, event)
}

func catalogRepo(events []models.Event) *mockEventRepo {
	return &mockEventRepo{
		findAllFn: func(ctx context.Context) ([]models.Event, error) {
			return events, nil
		},
	}
}

func sampleCatalog() []models.Event {
	return []models.Event{
		{
			ID:       "1",
			Title:    "Summer Night Soiree",
			Date:     "2025-06-15",
			Location: models.Location{City: "Miami", State: "FL", Country: "USA"},
			IsFree:   false,
			Tags:     []string{"nightlife", "rooftop"},
		},
		{
			ID:          "2",
			Title:       "Masquerade Mystery",
			Description: "A masked evening in a hidden garden venue.",
			Date:        "2025-07-22",
			Location:    models.Location{City: "Los Angeles", State: "CA", Country: "USA"},
			IsFree:      false,
			Tags:        []string{"masquerade"},
		},
		{
			ID:       "3",
			Title:    "Beach Sunset Social",
			Date:     "2025-08-09",
			Location: models.Location{City: "San Diego", State: "CA", Country: "USA"},
			IsFree:   true,
			Tags:     []string{"beach", "casual"},
		},
	}
}

// --- Tests ---

func TestGetEvent_NotFound(t *testing.T) {
	repo := &mockEventRepo{
		findByIDFn: func(ctx context.Context, id string) (*models.Event, error) {
			return nil, assert.AnError
		},
	}

	svc := NewEventService(repo, nil, 0)
	event, err := svc.GetEvent(context.Background(), "999")

	assert.ErrorIs(t, err, ErrEventNotFound)
	assert.Nil(t, event)
}

func TestCreateEvent_AssignsID(t *testing.T) {
	var stored *models.Event
	repo := &mockEventRepo{
		createFn: func(ctx context.Context, event *models.Event) error {
			stored = event
			return nil
		},
	}

	svc := NewEventService(repo, nil, 0) // nil publisher = notifications off
	event := &models.Event{Title: "Pop-up Picnic", Capacity: 40}

	require.NoError(t, svc.CreateEvent(context.Background(), event))
	assert.NotEmpty(t, event.ID)
	assert.NotNil(t, event.Reviews)
	assert.Same(t, event, stored)
}

func TestSearchEvents_EmptyQueryMatchesEverything(t *testing.T) {
	svc := NewEventService(catalogRepo(sampleCatalog()), nil, 0)

	matched, err := svc.SearchEvents(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, matched, 3)
}

func TestSearchEvents_CaseInsensitiveAcrossFields(t *testing.T) {
	svc := NewEventService(catalogRepo(sampleCatalog()), nil, 0)

	tests := []struct {
		query string
		want  []string
	}{
		{"SOIREE", []string{"1"}},        // title
		{"hidden garden", []string{"2"}}, // description
		{"san diego", []string{"3"}},     // city
		{"beach", []string{"3"}},         // tag
		{"zzz-no-match", []string{}},
	}

	for _, tt := range tests {
		matched, err := svc.SearchEvents(context.Background(), tt.query)
		require.NoError(t, err)

		ids := make([]string, 0, len(matched))
		for _, e := range matched {
			ids = append(ids, e.ID)
		}
		assert.Equal(t, tt.want, ids, "query %q", tt.query)
	}
}

func TestFilterEvents_PriceBucketsPartitionCatalog(t *testing.T) {
	svc := NewEventService(catalogRepo(sampleCatalog()), nil, 0)
	ctx := context.Background()

	free, err := svc.FilterEvents(ctx, EventFilters{Price: PriceFree})
	require.NoError(t, err)
	for _, e := range free {
		assert.True(t, e.IsFree)
	}

	paid, err := svc.FilterEvents(ctx, EventFilters{Price: PricePaid})
	require.NoError(t, err)
	for _, e := range paid {
		assert.False(t, e.IsFree)
	}

	all, err := svc.FilterEvents(ctx, EventFilters{Price: PriceAll})
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, 3, len(free)+len(paid))
}

func TestFilterEvents_ComposesWithAND(t *testing.T) {
	svc := NewEventService(catalogRepo(sampleCatalog()), nil, 0)

	matched, err := svc.FilterEvents(context.Background(), EventFilters{
		Location: "ca",
		Price:    PriceFree,
	})
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "3", matched[0].ID)
}

func TestFilterEvents_ExactDateMatch(t *testing.T) {
	svc := NewEventService(catalogRepo(sampleCatalog()), nil, 0)

	matched, err := svc.FilterEvents(context.Background(), EventFilters{Date: "2025-07-22"})
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "2", matched[0].ID)
}

func TestFilterEvents_TagIntersection(t *testing.T) {
	svc := NewEventService(catalogRepo(sampleCatalog()), nil, 0)

	// An event matches when it carries at least one requested tag.
	matched, err := svc.FilterEvents(context.Background(), EventFilters{
		Tags: []string{"rooftop", "casual"},
	})
	require.NoError(t, err)
	require.Len(t, matched, 2)
	assert.Equal(t, "1", matched[0].ID)
	assert.Equal(t, "3", matched[1].ID)
}
