package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/soireehq/soiree-api/internal/dto"
	"github.com/soireehq/soiree-api/internal/models"
	"github.com/soireehq/soiree-api/internal/service"
)

type EventHandler struct {
	svc service.EventService
}

func NewEventHandler(svc service.EventService) *EventHandler {
	return &EventHandler{svc: svc}
}

func (h *EventHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.ListEvents)
	g.POST("", h.CreateEvent)
	g.GET("/:id", h.GetEvent)
}

func (h *EventHandler) ListEvents(c echo.Context) error {
	events, err := h.svc.ListEvents(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, events)
}

func (h *EventHandler) GetEvent(c echo.Context) error {
	event, err := h.svc.GetEvent(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, event)
}

func (h *EventHandler) CreateEvent(c echo.Context) error {
	var req dto.CreateEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	event := &models.Event{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		Location: models.Location{
			Name:    req.Location.Name,
			Address: req.Location.Address,
			City:    req.Location.City,
			State:   req.Location.State,
			Country: req.Location.Country,
			Coordinates: models.Coordinates{
				Latitude:  req.Location.Coordinates.Latitude,
				Longitude: req.Location.Coordinates.Longitude,
			},
		},
		Price:     req.Price,
		Capacity:  req.Capacity,
		HostID:    req.HostID,
		Images:    req.Images,
		IsFree:    req.IsFree,
		IsPrivate: req.IsPrivate,
		Tags:      req.Tags,
	}

	if err := h.svc.CreateEvent(c.Request().Context(), event); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, event)
}
