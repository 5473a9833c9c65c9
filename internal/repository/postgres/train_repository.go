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

type trainTypeRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewTrainTypeRepository(db *DB) repository.TrainTypeRepository {
	return &trainTypeRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *trainTypeRepository) Create(ctx context.Context, trainType *domain.TrainType) error {
	query := `INSERT INTO train_types (name) VALUES ($1) RETURNING id`

	err := r.db.QueryRowContext(ctx, query, trainType.Name).Scan(&trainType.ID)
	if isUniqueViolation(err, "train_types_name_key") {
		return errors.ErrInvalidRequest.WithDetail(
			"name", "Train type with this name already exists",
		)
	}
	if err != nil {
		r.logger.Error("Failed to create train type", zap.String("name", trainType.Name), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *trainTypeRepository) GetByID(ctx context.Context, id int64) (*domain.TrainType, error) {
	var trainType domain.TrainType
	err := r.db.GetContext(ctx, &trainType, `SELECT id, name FROM train_types WHERE id = $1`, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrTrainTypeNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get train type by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &trainType, nil
}

func (r *trainTypeRepository) List(ctx context.Context) ([]domain.TrainType, error) {
	var types []domain.TrainType
	if err := r.db.SelectContext(ctx, &types, `SELECT id, name FROM train_types ORDER BY name`); err != nil {
		r.logger.Error("Failed to list train types", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return types, nil
}

func (r *trainTypeRepository) Update(ctx context.Context, trainType *domain.TrainType) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE train_types SET name = $1 WHERE id = $2`,
		trainType.Name, trainType.ID,
	)
	if isUniqueViolation(err, "train_types_name_key") {
		return errors.ErrInvalidRequest.WithDetail(
			"name", "Train type with this name already exists",
		)
	}
	if err != nil {
		r.logger.Error("Failed to update train type", zap.Int64("id", trainType.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrTrainTypeNotFound
	}

	return nil
}

type trainRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewTrainRepository(db *DB) repository.TrainRepository {
	return &trainRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *trainRepository) Create(ctx context.Context, train *domain.Train) error {
	query := `
		INSERT INTO trains (name, cargo_number, places_in_cargo, train_type_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRowContext(
		ctx, query,
		train.Name, train.CargoNumber, train.PlacesInCargo, train.TrainTypeID,
	).Scan(&train.ID)

	if isUniqueViolation(err, "trains_name_key") {
		return errors.ErrInvalidRequest.WithDetail(
			"name", "Train with this name already exists",
		)
	}
	if err != nil {
		r.logger.Error("Failed to create train", zap.String("name", train.Name), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *trainRepository) GetByID(ctx context.Context, id int64) (*domain.Train, error) {
	query := `
		SELECT id, name, cargo_number, places_in_cargo, train_type_id
		FROM trains
		WHERE id = $1
	`

	var train domain.Train
	err := r.db.GetContext(ctx, &train, query, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrTrainNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get train by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &train, nil
}

func (r *trainRepository) List(ctx context.Context, trainTypeIDs []int64) ([]domain.Train, error) {
	query := `
		SELECT id, name, cargo_number, places_in_cargo, train_type_id
		FROM trains
	`
	args := []interface{}{}

	if len(trainTypeIDs) > 0 {
		inQuery, inArgs, err := sqlx.In(query+` WHERE train_type_id IN (?)`, trainTypeIDs)
		if err != nil {
			r.logger.Error("Failed to build train filter", zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
		query = r.db.Rebind(inQuery)
		args = inArgs
	}
	query += ` ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to list trains", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	var trains []domain.Train
	for rows.Next() {
		var t domain.Train
		if err := rows.Scan(&t.ID, &t.Name, &t.CargoNumber, &t.PlacesInCargo, &t.TrainTypeID); err != nil {
			r.logger.Error("Failed to scan train", zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
		trains = append(trains, t)
	}
	if rows.Err() != nil {
		r.logger.Error("Failed to iterate trains", zap.Error(rows.Err()))
		return nil, errors.ErrDatabaseError
	}

	return trains, nil
}

func (r *trainRepository) Update(ctx context.Context, train *domain.Train) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE trains
		SET name = $1, cargo_number = $2, places_in_cargo = $3, train_type_id = $4
		WHERE id = $5
	`, train.Name, train.CargoNumber, train.PlacesInCargo, train.TrainTypeID, train.ID)

	if isUniqueViolation(err, "trains_name_key") {
		return errors.ErrInvalidRequest.WithDetail(
			"name", "Train with this name already exists",
		)
	}
	if err != nil {
		r.logger.Error("Failed to update train", zap.Int64("id", train.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrTrainNotFound
	}

	return nil
}

func (r *trainRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM trains WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete train", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrTrainNotFound
	}

	return nil
}
