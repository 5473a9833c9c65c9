package domain

import (
	"fmt"
	"regexp"

	"github.com/rail-booking-service/internal/pkg/errors"
)

// trainNamePattern - 3 заглавные буквы + 5 цифр, например AAA00001
var trainNamePattern = regexp.MustCompile(`^[A-Z]{3}[0-9]{5}$`)

type TrainType struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

type Train struct {
	ID            int64  `json:"id" db:"id"`
	Name          string `json:"name" db:"name"`
	CargoNumber   int    `json:"cargo_number" db:"cargo_number"`
	PlacesInCargo int    `json:"places_in_cargo" db:"places_in_cargo"`
	TrainTypeID   int64  `json:"train_type" db:"train_type_id"`
}

// Capacity возвращает полную вместимость поезда.
// Всегда вычисляется, нигде не хранится.
func (t Train) Capacity() int {
	return t.CargoNumber * t.PlacesInCargo
}

// ValidateTrainName проверяет имя поезда по шаблону [A-Z]{3}[0-9]{5}
func ValidateTrainName(name string) error {
	if !trainNamePattern.MatchString(name) {
		return errors.ErrInvalidTrainName.WithDetail(
			"name", "Train name should consist of 3 uppercase letters followed by 5 digits",
		)
	}
	return nil
}

// ValidateSeat проверяет, что место попадает в диапазон вагона поезда.
// Занятость места здесь не проверяется - это гарантирует уникальный
// констрейнт (journey, cargo, seat) на стороне хранилища.
func ValidateSeat(seat, placesInCargo int) error {
	if seat < 1 || seat > placesInCargo {
		return errors.ErrSeatOutOfRange.WithDetail(
			"seat", fmt.Sprintf("Seat number should be in range 1 to %d", placesInCargo),
		)
	}
	return nil
}

// ValidateCargo проверяет, что номер вагона попадает в диапазон поезда
func ValidateCargo(cargo, cargoNumber int) error {
	if cargo < 1 || cargo > cargoNumber {
		return errors.ErrCargoOutOfRange.WithDetail(
			"cargo", fmt.Sprintf("Cargo number should be in range 1 to %d", cargoNumber),
		)
	}
	return nil
}
