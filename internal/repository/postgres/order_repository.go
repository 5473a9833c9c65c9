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

type orderRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewOrderRepository(db *DB) repository.OrderRepository {
	return &orderRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

// Create записывает заказ и все его билеты одной транзакцией.
// Гонку за место разрешает уникальный констрейнт (journey_id, cargo, seat):
// из двух конкурентных заказов на одно место коммитится ровно один,
// второй откатывается целиком с ErrSeatAlreadyTaken.
func (r *orderRepository) Create(ctx context.Context, order *domain.Order, claims []domain.TicketClaim) ([]domain.Ticket, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin transaction", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer func() { _ = tx.Rollback() }()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (user_id)
		VALUES ($1)
		RETURNING id, created_at
	`, order.UserID).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		r.logger.Error("Failed to insert order", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	tickets := make([]domain.Ticket, 0, len(claims))
	for _, claim := range claims {
		ticket := domain.Ticket{
			Cargo:     claim.Cargo,
			Seat:      claim.Seat,
			JourneyID: claim.JourneyID,
			OrderID:   order.ID,
		}

		err = tx.QueryRowContext(ctx, `
			INSERT INTO tickets (cargo, seat, journey_id, order_id)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, claim.Cargo, claim.Seat, claim.JourneyID, order.ID).Scan(&ticket.ID)

		if isUniqueViolation(err, "tickets_journey_id_cargo_seat_key") {
			return nil, errors.ErrSeatAlreadyTaken.WithDetail(
				"seat", fmt.Sprintf(
					"Seat %d in cargo %d is already taken on journey %d",
					claim.Seat, claim.Cargo, claim.JourneyID,
				),
			)
		}
		if err != nil {
			r.logger.Error("Failed to insert ticket",
				zap.Int64("journey_id", claim.JourneyID),
				zap.Int("cargo", claim.Cargo),
				zap.Int("seat", claim.Seat),
				zap.Error(err))
			return nil, errors.ErrDatabaseError
		}

		tickets = append(tickets, ticket)
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit order", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return tickets, nil
}

// List возвращает заказы владельца; фильтр по владельцу жёсткий и стоит
// первым условием всегда. Дата/время применяются транзитивно через
// билет -> рейс -> departure_time.
func (r *orderRepository) List(ctx context.Context, userID string, filter domain.OrderFilter) ([]domain.OrderWithTickets, error) {
	query := `
		SELECT DISTINCT o.id, o.user_id, o.created_at
		FROM orders o
		JOIN tickets t ON t.order_id = o.id
		JOIN journeys j ON j.id = t.journey_id
	`

	conditions := []string{"o.user_id = $1"}
	args := []interface{}{userID}

	if filter.DepartureDate != "" {
		args = append(args, filter.DepartureDate)
		conditions = append(conditions, fmt.Sprintf("j.departure_time::date = $%d::date", len(args)))

		if filter.DepartureTime != "" {
			args = append(args, filter.DepartureTime)
			conditions = append(conditions, fmt.Sprintf("to_char(j.departure_time, 'HH24:MI') = $%d", len(args)))
		}
	}

	query += " WHERE " + strings.Join(conditions, " AND ")
	query += " ORDER BY o.created_at DESC, o.id DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to list orders", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	var orders []domain.OrderWithTickets
	for rows.Next() {
		var o domain.OrderWithTickets
		if err := rows.Scan(&o.ID, &o.UserID, &o.CreatedAt); err != nil {
			r.logger.Error("Failed to scan order", zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
		orders = append(orders, o)
	}
	if rows.Err() != nil {
		r.logger.Error("Failed to iterate orders", zap.Error(rows.Err()))
		return nil, errors.ErrDatabaseError
	}

	for i := range orders {
		tickets, err := r.loadTickets(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Tickets = tickets
	}

	return orders, nil
}

func (r *orderRepository) GetByID(ctx context.Context, userID string, id int64) (*domain.OrderWithTickets, error) {
	var order domain.OrderWithTickets
	err := r.db.GetContext(ctx, &order.Order, `
		SELECT id, user_id, created_at
		FROM orders
		WHERE id = $1 AND user_id = $2
	`, id, userID)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrOrderNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get order by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	order.Tickets, err = r.loadTickets(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	return &order, nil
}

func (r *orderRepository) loadTickets(ctx context.Context, orderID int64) ([]domain.Ticket, error) {
	var tickets []domain.Ticket
	err := r.db.SelectContext(ctx, &tickets, `
		SELECT id, cargo, seat, journey_id, order_id
		FROM tickets
		WHERE order_id = $1
		ORDER BY id
	`, orderID)
	if err != nil {
		r.logger.Error("Failed to load order tickets", zap.Int64("order_id", orderID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return tickets, nil
}
