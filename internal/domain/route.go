package domain

import (
	"github.com/rail-booking-service/internal/pkg/errors"
	"github.com/rail-booking-service/internal/pkg/utils"
)

type Route struct {
	ID            int64 `json:"id" db:"id"`
	SourceID      int64 `json:"source" db:"source_id"`
	DestinationID int64 `json:"destination" db:"destination_id"`
}

// RouteDetail - маршрут вместе со станциями, для списков и детального просмотра
type RouteDetail struct {
	Route
	Source      Station `json:"-"`
	Destination Station `json:"-"`
}

// RouteDistance возвращает длину маршрута в целых километрах.
// Дистанция производная от координат станций и не хранится в базе.
func RouteDistance(source, destination Station) int {
	return utils.DistanceInKilometers(
		source.Latitude, source.Longitude,
		destination.Latitude, destination.Longitude,
	)
}

// ValidateRouteStations проверяет, что начальная и конечная станции различны
func ValidateRouteStations(sourceID, destinationID int64) error {
	if sourceID == destinationID {
		return errors.ErrSameSourceDestination.WithDetail(
			"destination", "Destination station must differ from source station",
		)
	}
	return nil
}
