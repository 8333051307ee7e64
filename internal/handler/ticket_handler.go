package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/soireehq/soiree-api/internal/dto"
	"github.com/soireehq/soiree-api/internal/service"
)

type TicketHandler struct {
	svc service.TicketService
}

func NewTicketHandler(svc service.TicketService) *TicketHandler {
	return &TicketHandler{svc: svc}
}

func (h *TicketHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/tickets", h.GetUserTickets)
	g.POST("/tickets/request", h.RequestTicket)
	g.GET("/host-requests", h.GetHostRequests)
}

func (h *TicketHandler) GetUserTickets(c echo.Context) error {
	userID := c.QueryParam("userId")
	if userID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "userId is required")
	}

	tickets, err := h.svc.GetUserTickets(c.Request().Context(), userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, tickets)
}

func (h *TicketHandler) GetHostRequests(c echo.Context) error {
	hostID := c.QueryParam("hostId")
	if hostID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "hostId is required")
	}

	requests, err := h.svc.GetHostRequests(c.Request().Context(), hostID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, requests)
}

func (h *TicketHandler) RequestTicket(c echo.Context) error {
	var req dto.RequestTicketRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.svc.RequestTicket(c.Request().Context(), req.EventID, req.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.RequestTicketResponse{
		Success: result.Success,
		Message: result.Message,
	})
}
