package repository

import (
	"context"
	"testing"

	"github.com/soireehq/soiree-api/internal/mocks"
	"github.com/soireehq/soiree-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_FindByEmail(t *testing.T) {
	repo := NewUserRepository(mocks.Users)

	user, err := repo.FindByEmail(context.Background(), "alex@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Alex Johnson", user.Name)

	_, err = repo.FindByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepository_FindAll_PreservesSeedOrder(t *testing.T) {
	repo := NewUserRepository(mocks.Users)

	users, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "1", users[0].ID)
	assert.Equal(t, "3", users[2].ID)
}

func TestEventRepository_FindByID(t *testing.T) {
	repo := NewEventRepository(mocks.Events)

	event, err := repo.FindByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Summer Night Soiree", event.Title)

	_, err = repo.FindByID(context.Background(), "999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEventRepository_Create_AppendsToOrder(t *testing.T) {
	repo := NewEventRepository(mocks.Events)

	created := &models.Event{ID: "new-1", Title: "Pop-up Picnic", Capacity: 40}
	require.NoError(t, repo.Create(context.Background(), created))

	events, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "new-1", events[len(events)-1].ID)
}

func TestEventRepository_Create_SameIDReplacesInPlace(t *testing.T) {
	repo := NewEventRepository(mocks.Events)

	before, err := repo.FindAll(context.Background())
	require.NoError(t, err)

	updated := &models.Event{ID: "2", Title: "Masquerade Mystery II", Capacity: 80}
	require.NoError(t, repo.Create(context.Background(), updated))

	after, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, after, len(before))
	assert.Equal(t, "Masquerade Mystery II", after[1].Title)
}

func TestEventRepository_ReturnsCopies(t *testing.T) {
	repo := NewEventRepository(mocks.Events)

	event, err := repo.FindByID(context.Background(), "1")
	require.NoError(t, err)
	event.Title = "mutated"

	again, err := repo.FindByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Summer Night Soiree", again.Title)
}

func TestTicketRepository_FindByUserID(t *testing.T) {
	repo := NewTicketRepository(mocks.Tickets, mocks.HostRequests)

	tickets, err := repo.FindByUserID(context.Background(), "1")
	require.NoError(t, err)
	require.Len(t, tickets, 2)
	assert.Equal(t, "1", tickets[0].ID)
	assert.Equal(t, "2", tickets[1].ID)

	none, err := repo.FindByUserID(context.Background(), "999")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestTicketRepository_FindAllRequests(t *testing.T) {
	repo := NewTicketRepository(mocks.Tickets, mocks.HostRequests)

	requests, err := repo.FindAllRequests(context.Background())
	require.NoError(t, err)
	require.Len(t, requests, 2)
	assert.Equal(t, models.RequestPending, requests[0].Status)
	assert.Equal(t, models.RequestApproved, requests[1].Status)
}
