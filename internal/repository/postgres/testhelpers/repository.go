package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/rail-booking-service/internal/domain/repository"
	"github.com/rail-booking-service/internal/repository/postgres"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// NewStationRepositoryForTest creates a station repository with test database and logger
func NewStationRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.StationRepository {
	pgDB := NewDBForTest(db, logger)
	return postgres.NewStationRepository(pgDB)
}

// NewRouteRepositoryForTest creates a route repository with test database and logger
func NewRouteRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.RouteRepository {
	pgDB := NewDBForTest(db, logger)
	return postgres.NewRouteRepository(pgDB)
}

// NewTrainRepositoryForTest creates a train repository with test database and logger
func NewTrainRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.TrainRepository {
	pgDB := NewDBForTest(db, logger)
	return postgres.NewTrainRepository(pgDB)
}

// NewJourneyRepositoryForTest creates a journey repository with test database and logger
func NewJourneyRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.JourneyRepository {
	pgDB := NewDBForTest(db, logger)
	return postgres.NewJourneyRepository(pgDB)
}

// NewOrderRepositoryForTest creates an order repository with test database and logger
func NewOrderRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.OrderRepository {
	pgDB := NewDBForTest(db, logger)
	return postgres.NewOrderRepository(pgDB)
}
