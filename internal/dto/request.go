package dto

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RequestTicketRequest struct {
	EventID string `json:"eventId" validate:"required"`
	UserID  string `json:"userId" validate:"required"`
}

type CoordinatesRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type LocationRequest struct {
	Name        string             `json:"name" validate:"required"`
	Address     string             `json:"address" validate:"required"`
	City        string             `json:"city" validate:"required"`
	State       string             `json:"state" validate:"required"`
	Country     string             `json:"country" validate:"required"`
	Coordinates CoordinatesRequest `json:"coordinates"`
}

type CreateEventRequest struct {
	Title       string          `json:"title" validate:"required"`
	Description string          `json:"description" validate:"required"`
	Date        string          `json:"date" validate:"required"`
	Time        string          `json:"time" validate:"required"`
	Location    LocationRequest `json:"location" validate:"required"`
	Price       float64         `json:"price" validate:"gte=0"`
	Capacity    int             `json:"capacity" validate:"required,gt=0"`
	HostID      string          `json:"hostId" validate:"required"`
	Images      []string        `json:"images" validate:"min=1"`
	IsFree      bool            `json:"isFree"`
	IsPrivate   bool            `json:"isPrivate"`
	Tags        []string        `json:"tags"`
}
