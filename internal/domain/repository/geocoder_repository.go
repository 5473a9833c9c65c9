package repository

import (
	"context"

	"github.com/rail-booking-service/internal/domain"
)

// GeocoderRepository - внешний коллаборатор обратного геокодирования.
// Поставляет адресные метаданные для новых станций.
type GeocoderRepository interface {
	// ReverseGeocode возвращает адрес по координатам.
	// Возвращает nil без ошибки, если геокодер ничего не нашёл.
	ReverseGeocode(ctx context.Context, lat, lon float64) (*domain.Address, error)
}
