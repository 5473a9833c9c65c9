package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/rail-booking-service/internal/domain"
	"github.com/rail-booking-service/internal/domain/repository"
	"github.com/rail-booking-service/internal/pkg/errors"
)

type journeyRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewJourneyRepository(db *DB) repository.JourneyRepository {
	return &journeyRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

// Create сохраняет рейс и связки с экипажем в одной транзакции.
// Строка поезда блокируется до проверки пересечения: без блокировки два
// конкурентных создания рейса для одного поезда прошли бы проверку
// одновременно и оба закоммитились.
func (r *journeyRepository) Create(ctx context.Context, journey *domain.Journey, crewIDs []int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin transaction", zap.Error(err))
		return errors.ErrDatabaseError
	}
	defer func() { _ = tx.Rollback() }()

	var trainName string
	err = tx.QueryRowContext(ctx,
		`SELECT name FROM trains WHERE id = $1 FOR UPDATE`,
		journey.TrainID,
	).Scan(&trainName)
	if stderrors.Is(err, sql.ErrNoRows) {
		return errors.ErrTrainNotFound
	}
	if err != nil {
		r.logger.Error("Failed to lock train row", zap.Int64("train_id", journey.TrainID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	// Инклюзивный тест пересечения: совпадение границ окон - тоже конфликт
	var conflict bool
	err = tx.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1
			FROM journeys
			WHERE train_id = $1
			  AND departure_time <= $3
			  AND arrival_time >= $2
		)
	`, journey.TrainID, journey.DepartureTime, journey.ArrivalTime).Scan(&conflict)
	if err != nil {
		r.logger.Error("Failed to check schedule overlap", zap.Int64("train_id", journey.TrainID), zap.Error(err))
		return errors.ErrDatabaseError
	}
	if conflict {
		return errors.ErrTrainScheduleConflict.WithDetail(
			"train", fmt.Sprintf("Train %s is already scheduled for an overlapping journey", trainName),
		)
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO journeys (route_id, train_id, departure_time, arrival_time)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, journey.RouteID, journey.TrainID, journey.DepartureTime, journey.ArrivalTime).Scan(&journey.ID)
	if err != nil {
		r.logger.Error("Failed to insert journey", zap.Error(err))
		return errors.ErrDatabaseError
	}

	for _, crewID := range crewIDs {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO journey_crew (journey_id, crew_id) VALUES ($1, $2)`,
			journey.ID, crewID,
		)
		if err != nil {
			r.logger.Error("Failed to attach crew member",
				zap.Int64("journey_id", journey.ID),
				zap.Int64("crew_id", crewID),
				zap.Error(err))
			return errors.ErrCrewNotFound
		}
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit journey", zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *journeyRepository) GetByID(ctx context.Context, id int64) (*domain.JourneyDetail, error) {
	var journey domain.Journey
	err := r.db.GetContext(ctx, &journey, `
		SELECT id, route_id, train_id, departure_time, arrival_time
		FROM journeys
		WHERE id = $1
	`, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrJourneyNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get journey by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return r.loadDetail(ctx, journey)
}

// List возвращает рейсы по типизированному фильтру. Все условия собираются
// в одном месте; DISTINCT нужен потому, что join-фильтры по станциям могут
// размножать строки.
func (r *journeyRepository) List(ctx context.Context, filter domain.JourneyFilter) ([]domain.JourneyDetail, error) {
	query := `
		SELECT DISTINCT j.id, j.route_id, j.train_id, j.departure_time, j.arrival_time
		FROM journeys j
		JOIN routes rt ON rt.id = j.route_id
		JOIN stations src ON src.id = rt.source_id
		JOIN stations dst ON dst.id = rt.destination_id
	`

	var conditions []string
	var args []interface{}

	if filter.SourceContains != "" {
		args = append(args, "%"+filter.SourceContains+"%")
		conditions = append(conditions, fmt.Sprintf("src.name ILIKE $%d", len(args)))
	}
	if filter.DestinationContains != "" {
		args = append(args, "%"+filter.DestinationContains+"%")
		conditions = append(conditions, fmt.Sprintf("dst.name ILIKE $%d", len(args)))
	}
	if filter.DepartureDate != "" {
		args = append(args, filter.DepartureDate)
		conditions = append(conditions, fmt.Sprintf("j.departure_time::date = $%d::date", len(args)))

		// Фильтр по времени поддерживается только поверх фильтра по дате
		if filter.DepartureTime != "" {
			args = append(args, filter.DepartureTime)
			conditions = append(conditions, fmt.Sprintf("to_char(j.departure_time, 'HH24:MI') = $%d", len(args)))
		}
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY j.departure_time"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to list journeys", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	var journeys []domain.Journey
	for rows.Next() {
		var j domain.Journey
		if err := rows.Scan(&j.ID, &j.RouteID, &j.TrainID, &j.DepartureTime, &j.ArrivalTime); err != nil {
			r.logger.Error("Failed to scan journey", zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
		journeys = append(journeys, j)
	}
	if rows.Err() != nil {
		r.logger.Error("Failed to iterate journeys", zap.Error(rows.Err()))
		return nil, errors.ErrDatabaseError
	}

	details := make([]domain.JourneyDetail, 0, len(journeys))
	for _, j := range journeys {
		detail, err := r.loadDetail(ctx, j)
		if err != nil {
			return nil, err
		}
		details = append(details, *detail)
	}

	return details, nil
}

func (r *journeyRepository) TakenSeats(ctx context.Context, journeyID int64) ([]domain.SeatPosition, error) {
	var seats []domain.SeatPosition
	err := r.db.SelectContext(ctx, &seats, `
		SELECT cargo, seat
		FROM tickets
		WHERE journey_id = $1
		ORDER BY cargo, seat
	`, journeyID)
	if err != nil {
		r.logger.Error("Failed to get taken seats", zap.Int64("journey_id", journeyID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return seats, nil
}

func (r *journeyRepository) TicketCounts(ctx context.Context, journeyIDs []int64) (map[int64]int, error) {
	counts := make(map[int64]int, len(journeyIDs))
	if len(journeyIDs) == 0 {
		return counts, nil
	}

	query, args, err := sqlx.In(`
		SELECT journey_id, COUNT(*)
		FROM tickets
		WHERE journey_id IN (?)
		GROUP BY journey_id
	`, journeyIDs)
	if err != nil {
		r.logger.Error("Failed to build ticket count query", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	rows, err := r.db.QueryContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		r.logger.Error("Failed to count tickets", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	for rows.Next() {
		var journeyID int64
		var count int
		if err := rows.Scan(&journeyID, &count); err != nil {
			r.logger.Error("Failed to scan ticket count", zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
		counts[journeyID] = count
	}
	if rows.Err() != nil {
		r.logger.Error("Failed to iterate ticket counts", zap.Error(rows.Err()))
		return nil, errors.ErrDatabaseError
	}

	return counts, nil
}

func (r *journeyRepository) loadDetail(ctx context.Context, journey domain.Journey) (*domain.JourneyDetail, error) {
	detail := domain.JourneyDetail{Journey: journey}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+routeDetailColumns+`
		FROM routes r
		JOIN stations src ON src.id = r.source_id
		JOIN stations dst ON dst.id = r.destination_id
		WHERE r.id = $1
	`, journey.RouteID)
	route, err := scanRouteDetail(row)
	if err != nil {
		r.logger.Error("Failed to load journey route", zap.Int64("journey_id", journey.ID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	detail.Route = *route

	err = r.db.GetContext(ctx, &detail.Train, `
		SELECT id, name, cargo_number, places_in_cargo, train_type_id
		FROM trains
		WHERE id = $1
	`, journey.TrainID)
	if err != nil {
		r.logger.Error("Failed to load journey train", zap.Int64("journey_id", journey.ID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	err = r.db.SelectContext(ctx, &detail.Crew, `
		SELECT c.id, c.first_name, c.last_name
		FROM crews c
		JOIN journey_crew jc ON jc.crew_id = c.id
		WHERE jc.journey_id = $1
		ORDER BY c.id
	`, journey.ID)
	if err != nil {
		r.logger.Error("Failed to load journey crew", zap.Int64("journey_id", journey.ID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &detail, nil
}
