package models

type TicketStatus string

const (
	TicketPending  TicketStatus = "pending"
	TicketApproved TicketStatus = "approved"
	TicketRejected TicketStatus = "rejected"
	TicketAttended TicketStatus = "attended"
)

func (s TicketStatus) Valid() bool {
	switch s {
	case TicketPending, TicketApproved, TicketRejected, TicketAttended:
		return true
	}
	return false
}

// Ticket is a user's claim to attend an event. Event fields are denormalized
// snapshots taken at purchase time so the ticket renders without a catalog
// lookup. QRCode is empty until explicitly generated.
type Ticket struct {
	ID            string       `json:"id"`
	EventID       string       `json:"eventId"`
	EventTitle    string       `json:"eventTitle"`
	EventDate     string       `json:"eventDate"`
	EventTime     string       `json:"eventTime"`
	EventLocation string       `json:"eventLocation"`
	UserID        string       `json:"userId"`
	PurchaseDate  string       `json:"purchaseDate"`
	Price         float64      `json:"price"`
	Status        TicketStatus `json:"status"`
	QRCode        string       `json:"qrCode,omitempty"`
}

type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

func (s RequestStatus) Valid() bool {
	switch s {
	case RequestPending, RequestApproved, RequestRejected:
		return true
	}
	return false
}

// HostRequest is the host-facing record of a pending attendance claim.
// Its status machine is independent of Ticket.Status: approving a request
// does not transition any ticket.
type HostRequest struct {
	ID          string        `json:"id"`
	UserID      string        `json:"userId"`
	UserName    string        `json:"userName"`
	UserAvatar  string        `json:"userAvatar"`
	EventID     string        `json:"eventId"`
	EventTitle  string        `json:"eventTitle"`
	RequestDate string        `json:"requestDate"`
	Status      RequestStatus `json:"status"`
}
