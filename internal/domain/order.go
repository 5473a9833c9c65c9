package domain

import "time"

type Order struct {
	ID        int64     `json:"id" db:"id"`
	UserID    string    `json:"-" db:"user_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type Ticket struct {
	ID        int64 `json:"id" db:"id"`
	Cargo     int   `json:"cargo" db:"cargo"`
	Seat      int   `json:"seat" db:"seat"`
	JourneyID int64 `json:"journey" db:"journey_id"`
	OrderID   int64 `json:"order" db:"order_id"`
}

// TicketClaim - заявка на одно место в рамках создаваемого заказа
type TicketClaim struct {
	Cargo     int   `json:"cargo"`
	Seat      int   `json:"seat"`
	JourneyID int64 `json:"journey"`
}

// OrderWithTickets - заказ вместе с билетами, для списков и детального просмотра
type OrderWithTickets struct {
	Order
	Tickets []Ticket `json:"tickets"`
}

// OrderFilter - фильтр списка заказов по дате/времени отправления рейсов билетов.
// Владелец не входит в фильтр: он передаётся отдельным обязательным аргументом.
type OrderFilter struct {
	DepartureDate string // YYYY-MM-DD
	DepartureTime string // HH:MM, применяется только поверх даты
}
