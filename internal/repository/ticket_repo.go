package repository

import (
	"context"
	"sync"

	"github.com/soireehq/soiree-api/internal/models"
)

type TicketRepository interface {
	FindByUserID(ctx context.Context, userID string) ([]models.Ticket, error)
	FindByID(ctx context.Context, id string) (*models.Ticket, error)
	FindAllRequests(ctx context.Context) ([]models.HostRequest, error)
}

type ticketRepository struct {
	mu           sync.RWMutex
	tickets      map[string]models.Ticket
	ticketOrder  []string
	requests     map[string]models.HostRequest
	requestOrder []string
}

func NewTicketRepository(ticketSeed []models.Ticket, requestSeed []models.HostRequest) TicketRepository {
	r := &ticketRepository{
		tickets:  make(map[string]models.Ticket, len(ticketSeed)),
		requests: make(map[string]models.HostRequest, len(requestSeed)),
	}
	for _, t := range ticketSeed {
		r.tickets[t.ID] = t
		r.ticketOrder = append(r.ticketOrder, t.ID)
	}
	for _, hr := range requestSeed {
		r.requests[hr.ID] = hr
		r.requestOrder = append(r.requestOrder, hr.ID)
	}
	return r
}

func (r *ticketRepository) FindByUserID(ctx context.Context, userID string) ([]models.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tickets := make([]models.Ticket, 0)
	for _, id := range r.ticketOrder {
		if t := r.tickets[id]; t.UserID == userID {
			tickets = append(tickets, t)
		}
	}
	return tickets, nil
}

func (r *ticketRepository) FindByID(ctx context.Context, id string) (*models.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tickets[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &t, nil
}

func (r *ticketRepository) FindAllRequests(ctx context.Context) ([]models.HostRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	requests := make([]models.HostRequest, 0, len(r.requestOrder))
	for _, id := range r.requestOrder {
		requests = append(requests, r.requests[id])
	}
	return requests, nil
}
