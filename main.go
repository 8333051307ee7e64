package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/soireehq/soiree-api/config"
	"github.com/soireehq/soiree-api/internal/handler"
	"github.com/soireehq/soiree-api/internal/middleware"
	"github.com/soireehq/soiree-api/internal/mocks"
	"github.com/soireehq/soiree-api/internal/repository"
	"github.com/soireehq/soiree-api/internal/service"
	"github.com/soireehq/soiree-api/monitoring"
	"github.com/soireehq/soiree-api/pkg/rabbitmq"
)

func main() {
	cfg := config.Load()

	userRepo := repository.NewUserRepository(mocks.Users)
	eventRepo := repository.NewEventRepository(mocks.Events)
	ticketRepo := repository.NewTicketRepository(mocks.Tickets, mocks.HostRequests)

	var publisher *rabbitmq.Publisher
	if cfg.RabbitURL != "" {
		p, err := rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			log.Printf("notifications disabled, rabbitmq unavailable: %v", err)
		} else {
			publisher = p
			defer publisher.Close()
		}
	}

	authSvc := service.NewAuthService(userRepo, cfg.ProcedureLatency)
	eventSvc := service.NewEventService(eventRepo, publisher, cfg.ProcedureLatency)
	ticketSvc := service.NewTicketService(ticketRepo, publisher, cfg.ProcedureLatency)

	e := echo.New()
	e.Binder = &middleware.StrictBinder{}
	e.Validator = middleware.NewRequestValidator()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	if cfg.EnableMetrics {
		e.Use(monitoring.Middleware())
		e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	}

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "soiree-api"})
	})

	api := e.Group("/api/v1")
	handler.NewAuthHandler(authSvc).RegisterRoutes(api.Group("/auth"))
	handler.NewEventHandler(eventSvc).RegisterRoutes(api.Group("/events"))
	handler.NewTicketHandler(ticketSvc).RegisterRoutes(api)

	log.Printf("Soiree API starting on :%s (simulated latency %s)", cfg.Port, cfg.ProcedureLatency)
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
