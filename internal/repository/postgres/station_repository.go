package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/rail-booking-service/internal/domain"
	"github.com/rail-booking-service/internal/domain/repository"
	"github.com/rail-booking-service/internal/pkg/errors"
)

type stationRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewStationRepository(db *DB) repository.StationRepository {
	return &stationRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *stationRepository) Create(ctx context.Context, station *domain.Station) error {
	query := `
		INSERT INTO stations (name, latitude, longitude, country, city)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(
		ctx, query,
		station.Name, station.Latitude, station.Longitude, station.Country, station.City,
	).Scan(&station.ID, &station.CreatedAt)

	if isUniqueViolation(err, "stations_name_key") {
		return errors.ErrStationAlreadyExists.WithDetail(
			"name", "Station with this name already exists",
		)
	}
	if err != nil {
		r.logger.Error("Failed to create station", zap.String("name", station.Name), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *stationRepository) GetByID(ctx context.Context, id int64) (*domain.Station, error) {
	query := `
		SELECT id, name, latitude, longitude, country, city, created_at
		FROM stations
		WHERE id = $1
	`

	var station domain.Station
	err := r.db.GetContext(ctx, &station, query, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrStationNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get station by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &station, nil
}

func (r *stationRepository) List(ctx context.Context) ([]domain.Station, error) {
	query := `
		SELECT id, name, latitude, longitude, country, city, created_at
		FROM stations
		ORDER BY name
	`

	var stations []domain.Station
	if err := r.db.SelectContext(ctx, &stations, query); err != nil {
		r.logger.Error("Failed to list stations", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return stations, nil
}
