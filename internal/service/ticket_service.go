package service

import (
	"context"
	"time"

	"github.com/soireehq/soiree-api/internal/models"
	"github.com/soireehq/soiree-api/internal/repository"
	"github.com/soireehq/soiree-api/pkg/latency"
	"github.com/soireehq/soiree-api/pkg/rabbitmq"
)

// RequestTicketResult acknowledges a ticket request. The mock backend never
// creates a Ticket or HostRequest for it.
type RequestTicketResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type TicketService interface {
	GetUserTickets(ctx context.Context, userID string) ([]models.Ticket, error)
	GetHostRequests(ctx context.Context, hostID string) ([]models.HostRequest, error)
	RequestTicket(ctx context.Context, eventID, userID string) (*RequestTicketResult, error)
}

type ticketService struct {
	repo      repository.TicketRepository
	publisher *rabbitmq.Publisher
	delay     time.Duration
}

func NewTicketService(repo repository.TicketRepository, publisher *rabbitmq.Publisher, delay time.Duration) TicketService {
	return &ticketService{repo: repo, publisher: publisher, delay: delay}
}

func (s *ticketService) GetUserTickets(ctx context.Context, userID string) ([]models.Ticket, error) {
	if err := latency.Wait(ctx, s.delay); err != nil {
		return nil, err
	}
	return s.repo.FindByUserID(ctx, userID)
}

// GetHostRequests accepts hostID but returns every request regardless. The
// mobile client the surface was built for behaves the same way; filtering by
// host would change what existing screens display.
func (s *ticketService) GetHostRequests(ctx context.Context, hostID string) ([]models.HostRequest, error) {
	if err := latency.Wait(ctx, s.delay); err != nil {
		return nil, err
	}
	return s.repo.FindAllRequests(ctx)
}

func (s *ticketService) RequestTicket(ctx context.Context, eventID, userID string) (*RequestTicketResult, error) {
	if err := latency.Wait(ctx, s.delay); err != nil {
		return nil, err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish(ctx, "ticket.requested", map[string]string{
			"eventId": eventID,
			"userId":  userID,
		})
	}

	return &RequestTicketResult{
		Success: true,
		Message: "Ticket request submitted successfully",
	}, nil
}
