package domain

import (
	"time"

	"github.com/rail-booking-service/internal/pkg/errors"
)

type Journey struct {
	ID            int64     `json:"id" db:"id"`
	RouteID       int64     `json:"route" db:"route_id"`
	TrainID       int64     `json:"train" db:"train_id"`
	DepartureTime time.Time `json:"departure_time" db:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time" db:"arrival_time"`
}

// JourneyDetail - рейс с развёрнутыми маршрутом, поездом и экипажем
type JourneyDetail struct {
	Journey
	Route RouteDetail
	Train Train
	Crew  []Crew
}

// JourneyFilter - типизированный фильтр списка рейсов.
// Date/Time - сырые строки из запроса; время применяется только поверх даты
// (единственный путь, где они связаны).
type JourneyFilter struct {
	SourceContains      string
	DestinationContains string
	DepartureDate       string // YYYY-MM-DD
	DepartureTime       string // HH:MM
}

// SeatPosition - занятое место (вагон, место) в рамках рейса
type SeatPosition struct {
	Cargo int `json:"cargo" db:"cargo"`
	Seat  int `json:"seat" db:"seat"`
}

// IntervalsOverlap - инклюзивный тест пересечения временных окон:
// existing.departure <= new.arrival AND existing.arrival >= new.departure.
// Совпадение границ тоже считается конфликтом.
func IntervalsOverlap(aDeparture, aArrival, bDeparture, bArrival time.Time) bool {
	return !aDeparture.After(bArrival) && !aArrival.Before(bDeparture)
}

// ValidateJourneyTime проверяет временное окно рейса:
// отправление строго раньше прибытия и строго в будущем на момент создания
func ValidateJourneyTime(departure, arrival, now time.Time) error {
	if !departure.Before(arrival) {
		return errors.ErrInvalidTimeWindow.WithDetail(
			"departure_time", "Departure time must be before arrival time",
		)
	}
	if !departure.After(now) {
		return errors.ErrInvalidTimeWindow.WithDetail(
			"departure_time", "Departure time must be in the future",
		)
	}
	return nil
}
