package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/rail-booking-service/internal/config"
	"github.com/rail-booking-service/internal/delivery/http/handler"
	"github.com/rail-booking-service/internal/delivery/http/middleware"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	stationHandler *handler.StationHandler
	routeHandler   *handler.RouteHandler
	trainHandler   *handler.TrainHandler
	crewHandler    *handler.CrewHandler
	journeyHandler *handler.JourneyHandler
	orderHandler   *handler.OrderHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	stationHandler *handler.StationHandler,
	routeHandler *handler.RouteHandler,
	trainHandler *handler.TrainHandler,
	crewHandler *handler.CrewHandler,
	journeyHandler *handler.JourneyHandler,
	orderHandler *handler.OrderHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Rail Booking Service",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:            app,
		config:         cfg,
		logger:         logger,
		stationHandler: stationHandler,
		routeHandler:   routeHandler,
		trainHandler:   trainHandler,
		crewHandler:    crewHandler,
		journeyHandler: journeyHandler,
		orderHandler:   orderHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(middleware.Identity())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Station routes
	api.Get("/stations", s.stationHandler.ListStations)
	api.Post("/stations", s.stationHandler.CreateStation)
	api.Get("/stations/:id", s.stationHandler.GetStation)

	// Route routes
	api.Get("/routes", s.routeHandler.ListRoutes)
	api.Post("/routes", s.routeHandler.CreateRoute)
	api.Get("/routes/:id", s.routeHandler.GetRoute)

	// Train type routes
	api.Get("/train-types", s.trainHandler.ListTrainTypes)
	api.Post("/train-types", s.trainHandler.CreateTrainType)
	api.Put("/train-types/:id", s.trainHandler.UpdateTrainType)

	// Train routes
	api.Get("/trains", s.trainHandler.ListTrains)
	api.Post("/trains", s.trainHandler.CreateTrain)
	api.Get("/trains/:id", s.trainHandler.GetTrain)
	api.Put("/trains/:id", s.trainHandler.UpdateTrain)
	api.Delete("/trains/:id", s.trainHandler.DeleteTrain)

	// Crew routes
	api.Get("/crews", s.crewHandler.ListCrew)
	api.Post("/crews", s.crewHandler.CreateCrew)
	api.Get("/crews/:id", s.crewHandler.GetCrew)
	api.Put("/crews/:id", s.crewHandler.UpdateCrew)
	api.Delete("/crews/:id", s.crewHandler.DeleteCrew)

	// Journey routes
	api.Get("/journeys", s.journeyHandler.ListJourneys)
	api.Post("/journeys", s.journeyHandler.CreateJourney)
	api.Get("/journeys/:id", s.journeyHandler.GetJourney)

	// Order routes
	api.Get("/orders", s.orderHandler.ListOrders)
	api.Post("/orders", s.orderHandler.PlaceOrder)
	api.Get("/orders/:id", s.orderHandler.GetOrder)
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - кастомный обработчик ошибок
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
