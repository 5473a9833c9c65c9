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

type crewRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewCrewRepository(db *DB) repository.CrewRepository {
	return &crewRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *crewRepository) Create(ctx context.Context, crew *domain.Crew) error {
	query := `INSERT INTO crews (first_name, last_name) VALUES ($1, $2) RETURNING id`

	if err := r.db.QueryRowContext(ctx, query, crew.FirstName, crew.LastName).Scan(&crew.ID); err != nil {
		r.logger.Error("Failed to create crew member", zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *crewRepository) GetByID(ctx context.Context, id int64) (*domain.Crew, error) {
	var crew domain.Crew
	err := r.db.GetContext(ctx, &crew, `SELECT id, first_name, last_name FROM crews WHERE id = $1`, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrCrewNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get crew member by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &crew, nil
}

func (r *crewRepository) List(ctx context.Context) ([]domain.Crew, error) {
	var crews []domain.Crew
	query := `SELECT id, first_name, last_name FROM crews ORDER BY last_name, first_name`
	if err := r.db.SelectContext(ctx, &crews, query); err != nil {
		r.logger.Error("Failed to list crew", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return crews, nil
}

func (r *crewRepository) Update(ctx context.Context, crew *domain.Crew) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE crews SET first_name = $1, last_name = $2 WHERE id = $3`,
		crew.FirstName, crew.LastName, crew.ID,
	)
	if err != nil {
		r.logger.Error("Failed to update crew member", zap.Int64("id", crew.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrCrewNotFound
	}

	return nil
}

func (r *crewRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM crews WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete crew member", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrCrewNotFound
	}

	return nil
}
