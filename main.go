package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/go-playground/validator/v10"
	"github.com/hotelsuite/hotel-management-api/config"
	"github.com/hotelsuite/hotel-management-api/internal/handler"
	"github.com/hotelsuite/hotel-management-api/internal/middleware"
	"github.com/hotelsuite/hotel-management-api/internal/reconciler"
	"github.com/hotelsuite/hotel-management-api/internal/repository"
	"github.com/hotelsuite/hotel-management-api/internal/service"
	"github.com/hotelsuite/hotel-management-api/pkg/database"
	"github.com/hotelsuite/hotel-management-api/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	// RabbitMQ is optional: without a broker the API still runs, it just
	// skips publishing lifecycle events.
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitURL)
	if err != nil {
		log.Printf("rabbitmq unavailable, events disabled: %v", err)
	} else {
		defer publisher.Close()
	}

	// Repositories
	guestRepo := repository.NewGuestRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Services
	guestSvc := service.NewGuestService(guestRepo)
	roomSvc := service.NewRoomService(roomRepo)
	bookingSvc := service.NewBookingService(bookingRepo, roomRepo, guestRepo, publisher, cfg.AvailabilityChecksRoomStatus, nil)
	checker := service.NewAvailabilityChecker(roomRepo, bookingRepo, cfg.AvailabilityChecksRoomStatus)
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry, nil)

	// Background reconciliation sweep
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sweep := reconciler.New(repository.NewSweepStore(db), cfg.ReconcileInterval, publisher, nil)
	sweep.Start(ctx)

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Validator = &requestValidator{validate: validator.New()}
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

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "hotel-management-api"})
	})

	public := e.Group("/api/v1")
	handler.NewAuthHandler(authSvc).RegisterRoutes(public)

	api := e.Group("/api/v1", middleware.JWTAuth(cfg.JWTSecret))
	handler.NewGuestHandler(guestSvc).RegisterRoutes(api)
	handler.NewRoomHandler(roomSvc, checker).RegisterRoutes(api)
	handler.NewBookingHandler(bookingSvc).RegisterRoutes(api)

	log.Printf("Hotel Management API starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
