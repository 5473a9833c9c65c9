package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rail-booking-service/internal/domain"
	"github.com/rail-booking-service/internal/pkg/errors"
)

func TestRouteDistance(t *testing.T) {
	kyiv := domain.Station{Latitude: 50.4501, Longitude: 30.5234}
	lviv := domain.Station{Latitude: 49.8397, Longitude: 24.0297}

	distance := domain.RouteDistance(kyiv, lviv)

	// Great-circle distance Kyiv-Lviv is about 468 km
	assert.InDelta(t, 468, distance, 5)

	// Distance is symmetric
	assert.Equal(t, distance, domain.RouteDistance(lviv, kyiv))

	// Zero for identical coordinates
	assert.Equal(t, 0, domain.RouteDistance(kyiv, kyiv))
}

func TestValidateRouteStations(t *testing.T) {
	assert.NoError(t, domain.ValidateRouteStations(1, 2))

	err := domain.ValidateRouteStations(7, 7)
	assert.Error(t, err)

	appErr, ok := err.(*errors.AppError)
	assert.True(t, ok)
	assert.Equal(t, "SAME_SOURCE_DESTINATION", appErr.Code)
}
