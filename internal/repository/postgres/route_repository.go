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

type routeRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewRouteRepository(db *DB) repository.RouteRepository {
	return &routeRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

const routeDetailColumns = `
	r.id, r.source_id, r.destination_id,
	src.id, src.name, src.latitude, src.longitude, src.country, src.city, src.created_at,
	dst.id, dst.name, dst.latitude, dst.longitude, dst.country, dst.city, dst.created_at
`

func (r *routeRepository) Create(ctx context.Context, route *domain.Route) error {
	query := `
		INSERT INTO routes (source_id, destination_id)
		VALUES ($1, $2)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query, route.SourceID, route.DestinationID).Scan(&route.ID)
	if isUniqueViolation(err, "routes_source_id_destination_id_key") {
		return errors.ErrRouteAlreadyExists
	}
	if err != nil {
		r.logger.Error("Failed to create route",
			zap.Int64("source_id", route.SourceID),
			zap.Int64("destination_id", route.DestinationID),
			zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *routeRepository) GetByID(ctx context.Context, id int64) (*domain.RouteDetail, error) {
	query := `
		SELECT ` + routeDetailColumns + `
		FROM routes r
		JOIN stations src ON src.id = r.source_id
		JOIN stations dst ON dst.id = r.destination_id
		WHERE r.id = $1
	`

	detail, err := scanRouteDetail(r.db.QueryRowContext(ctx, query, id))
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrRouteNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get route by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return detail, nil
}

func (r *routeRepository) List(ctx context.Context) ([]domain.RouteDetail, error) {
	query := `
		SELECT ` + routeDetailColumns + `
		FROM routes r
		JOIN stations src ON src.id = r.source_id
		JOIN stations dst ON dst.id = r.destination_id
		ORDER BY r.id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("Failed to list routes", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	var routes []domain.RouteDetail
	for rows.Next() {
		detail, err := scanRouteDetail(rows)
		if err != nil {
			r.logger.Error("Failed to scan route", zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
		routes = append(routes, *detail)
	}
	if rows.Err() != nil {
		r.logger.Error("Failed to iterate routes", zap.Error(rows.Err()))
		return nil, errors.ErrDatabaseError
	}

	return routes, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRouteDetail(row rowScanner) (*domain.RouteDetail, error) {
	var d domain.RouteDetail
	err := row.Scan(
		&d.ID, &d.SourceID, &d.DestinationID,
		&d.Source.ID, &d.Source.Name, &d.Source.Latitude, &d.Source.Longitude,
		&d.Source.Country, &d.Source.City, &d.Source.CreatedAt,
		&d.Destination.ID, &d.Destination.Name, &d.Destination.Latitude, &d.Destination.Longitude,
		&d.Destination.Country, &d.Destination.City, &d.Destination.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
