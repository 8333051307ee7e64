package dto

import "github.com/soireehq/soiree-api/internal/models"

// Domain records carry their own wire tags (the mobile client dictates the
// camelCase field names), so responses embed models directly instead of
// re-mapping field by field.

type LoginResponse struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

type RequestTicketResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}
