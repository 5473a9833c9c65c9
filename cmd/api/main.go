package main

// @title Rail Booking Service API
// @version 1.0.0
// @description Бэкенд бронирования железнодорожных билетов. Предоставляет API для управления станциями, маршрутами, поездами, экипажем и рейсами, а также для атомарного оформления заказов на билеты.
// @description
// @description Основные возможности:
// @description - Справочники станций, маршрутов, поездов и экипажа
// @description - Рейсы с проверкой пересечений расписания поезда
// @description - Подсчет свободных мест по рейсам с кешированием в Redis
// @description - Атомарное создание заказов с защитой от двойного бронирования мест

// @contact.name API Support
// @contact.email support@rail-booking-service.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/rail-booking-service/docs"
	"github.com/rail-booking-service/internal/config"
	httpDelivery "github.com/rail-booking-service/internal/delivery/http"
	"github.com/rail-booking-service/internal/delivery/http/handler"
	"github.com/rail-booking-service/internal/infrastructure/nominatim"
	"github.com/rail-booking-service/internal/pkg/logger"
	"github.com/rail-booking-service/internal/repository/cache"
	"github.com/rail-booking-service/internal/repository/postgres"
	"github.com/rail-booking-service/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Rail Booking Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()
	log.Info("PostgreSQL connected")

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected")

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize Repositories
	stationRepo := postgres.NewStationRepository(db)
	routeRepo := postgres.NewRouteRepository(db)
	trainTypeRepo := postgres.NewTrainTypeRepository(db)
	trainRepo := postgres.NewTrainRepository(db)
	crewRepo := postgres.NewCrewRepository(db)
	journeyRepo := postgres.NewJourneyRepository(db)
	orderRepo := postgres.NewOrderRepository(db)

	availabilityCache := cache.NewAvailabilityCache(redisClient)
	geocoder := nominatim.NewClient(&cfg.Geocoder, log)

	log.Info("Repositories initialized")

	// 7. Initialize Use Cases
	stationUC := usecase.NewStationUseCase(stationRepo, geocoder, log)
	routeUC := usecase.NewRouteUseCase(routeRepo, stationRepo, log)
	trainTypeUC := usecase.NewTrainTypeUseCase(trainTypeRepo, log)
	trainUC := usecase.NewTrainUseCase(trainRepo, trainTypeRepo, log)
	crewUC := usecase.NewCrewUseCase(crewRepo, log)

	journeyUC := usecase.NewJourneyUseCase(
		journeyRepo,
		routeRepo,
		trainTypeRepo,
		availabilityCache,
		log,
		cfg.Cache.AvailabilityTTL,
	)

	orderUC := usecase.NewOrderUseCase(
		orderRepo,
		journeyRepo,
		availabilityCache,
		log,
	)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP Handlers
	stationHandler := handler.NewStationHandler(stationUC, log)
	routeHandler := handler.NewRouteHandler(routeUC, log)
	trainHandler := handler.NewTrainHandler(trainUC, trainTypeUC, log)
	crewHandler := handler.NewCrewHandler(crewUC, log)
	journeyHandler := handler.NewJourneyHandler(journeyUC, log)
	orderHandler := handler.NewOrderHandler(orderUC, log)

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		stationHandler,
		routeHandler,
		trainHandler,
		crewHandler,
		journeyHandler,
		orderHandler,
	)

	log.Info("HTTP server initialized")

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
