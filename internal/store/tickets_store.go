package store

import (
	"context"
	"sync"
	"time"

	"github.com/soireehq/soiree-api/internal/mocks"
	"github.com/soireehq/soiree-api/internal/models"
	"github.com/soireehq/soiree-api/internal/service"
	"github.com/soireehq/soiree-api/pkg/latency"
)

// Notifier publishes approval-workflow notifications to the broker;
// *rabbitmq.Publisher satisfies it. A nil Notifier disables publishing.
type Notifier interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

// TicketsStore owns the signed-in user's tickets and, for hosts, the request
// inbox. Approve/reject mutate only the request arena; ticket statuses are an
// independent machine and are never transitioned from here. When a notifier
// is configured, a decided request is announced as request.approved or
// request.rejected.
type TicketsStore struct {
	mu       sync.RWMutex
	svc      service.TicketService
	notifier Notifier
	delay    time.Duration

	tickets      map[string]models.Ticket
	ticketOrder  []string
	requests     map[string]models.HostRequest
	requestOrder []string
	isLoading    bool
	err          error
}

func NewTicketsStore(svc service.TicketService, notifier Notifier, delay time.Duration) *TicketsStore {
	return &TicketsStore{
		svc:      svc,
		notifier: notifier,
		delay:    delay,
		tickets:  make(map[string]models.Ticket),
		requests: make(map[string]models.HostRequest),
	}
}

func (s *TicketsStore) begin() {
	s.mu.Lock()
	s.isLoading = true
	s.err = nil
	s.mu.Unlock()
}

func (s *TicketsStore) fail(err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isLoading = false
	s.err = err
	return err
}

// FetchUserTickets replaces the ticket slice with the given user's tickets.
func (s *TicketsStore) FetchUserTickets(ctx context.Context, userID string) error {
	s.begin()

	tickets, err := s.svc.GetUserTickets(ctx, userID)
	if err != nil {
		return s.fail(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.isLoading = false
	s.tickets = make(map[string]models.Ticket, len(tickets))
	s.ticketOrder = make([]string, 0, len(tickets))
	for _, t := range tickets {
		s.tickets[t.ID] = t
		s.ticketOrder = append(s.ticketOrder, t.ID)
	}
	return nil
}

// FetchHostRequests replaces the request inbox. The hostID is passed through
// to the procedure, which returns every request regardless.
func (s *TicketsStore) FetchHostRequests(ctx context.Context, hostID string) error {
	s.begin()

	requests, err := s.svc.GetHostRequests(ctx, hostID)
	if err != nil {
		return s.fail(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.isLoading = false
	s.requests = make(map[string]models.HostRequest, len(requests))
	s.requestOrder = make([]string, 0, len(requests))
	for _, hr := range requests {
		s.requests[hr.ID] = hr
		s.requestOrder = append(s.requestOrder, hr.ID)
	}
	return nil
}

// RequestTicket submits a ticket request. The acknowledgment carries no new
// Ticket or HostRequest, so local state is left untouched.
func (s *TicketsStore) RequestTicket(ctx context.Context, eventID, userID string) error {
	s.begin()

	if _, err := s.svc.RequestTicket(ctx, eventID, userID); err != nil {
		return s.fail(err)
	}

	s.mu.Lock()
	s.isLoading = false
	s.mu.Unlock()
	return nil
}

func (s *TicketsStore) ApproveRequest(ctx context.Context, requestID string) error {
	return s.setRequestStatus(ctx, requestID, models.RequestApproved, "request.approved")
}

func (s *TicketsStore) RejectRequest(ctx context.Context, requestID string) error {
	return s.setRequestStatus(ctx, requestID, models.RequestRejected, "request.rejected")
}

// setRequestStatus is a keyed replace: the targeted request gets the new
// status, every other request is untouched, and an unknown id is a no-op.
// A replace that found its target is published best-effort; no-ops are not.
func (s *TicketsStore) setRequestStatus(ctx context.Context, requestID string, status models.RequestStatus, routingKey string) error {
	s.begin()

	if err := latency.Wait(ctx, s.delay); err != nil {
		return s.fail(err)
	}

	s.mu.Lock()
	hr, ok := s.requests[requestID]
	if ok {
		hr.Status = status
		s.requests[requestID] = hr
	}
	s.isLoading = false
	s.mu.Unlock()

	if ok && s.notifier != nil {
		_ = s.notifier.Publish(ctx, routingKey, hr)
	}
	return nil
}

// GenerateTicketQR returns the placeholder payload for any ticket id. The
// stored ticket is not updated; callers merge the payload where they need it.
func (s *TicketsStore) GenerateTicketQR(ctx context.Context, ticketID string) (string, error) {
	s.begin()

	if err := latency.Wait(ctx, s.delay); err != nil {
		return "", s.fail(err)
	}

	s.mu.Lock()
	s.isLoading = false
	s.mu.Unlock()
	return mocks.QRCodePlaceholder, nil
}

// Tickets returns the user's tickets in fetch order.
func (s *TicketsStore) Tickets() []models.Ticket {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tickets := make([]models.Ticket, 0, len(s.ticketOrder))
	for _, id := range s.ticketOrder {
		tickets = append(tickets, s.tickets[id])
	}
	return tickets
}

// HostRequests returns the request inbox in fetch order.
func (s *TicketsStore) HostRequests() []models.HostRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	requests := make([]models.HostRequest, 0, len(s.requestOrder))
	for _, id := range s.requestOrder {
		requests = append(requests, s.requests[id])
	}
	return requests
}

// HostRequest returns a single request by id.
func (s *TicketsStore) HostRequest(requestID string) (models.HostRequest, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	hr, ok := s.requests[requestID]
	return hr, ok
}

func (s *TicketsStore) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isLoading
}

func (s *TicketsStore) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}
