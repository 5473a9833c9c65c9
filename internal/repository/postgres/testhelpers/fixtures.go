package testhelpers

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// SeedStation inserts a station and returns its ID
func SeedStation(db *sqlx.DB, name string, lat, lon float64) (int64, error) {
	var id int64
	err := db.QueryRowContext(context.Background(),
		"INSERT INTO stations (name, latitude, longitude) VALUES ($1, $2, $3) RETURNING id",
		name, lat, lon).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("seed station %s: %w", name, err)
	}
	return id, nil
}

// SeedRoute inserts a route and returns its ID
func SeedRoute(db *sqlx.DB, sourceID, destinationID int64) (int64, error) {
	var id int64
	err := db.QueryRowContext(context.Background(),
		"INSERT INTO routes (source_id, destination_id) VALUES ($1, $2) RETURNING id",
		sourceID, destinationID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("seed route %d->%d: %w", sourceID, destinationID, err)
	}
	return id, nil
}

// SeedTrainType inserts a train type and returns its ID
func SeedTrainType(db *sqlx.DB, name string) (int64, error) {
	var id int64
	err := db.QueryRowContext(context.Background(),
		"INSERT INTO train_types (name) VALUES ($1) RETURNING id",
		name).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("seed train type %s: %w", name, err)
	}
	return id, nil
}

// SeedTrain inserts a train and returns its ID
func SeedTrain(db *sqlx.DB, name string, cargoNumber, placesInCargo int, trainTypeID int64) (int64, error) {
	var id int64
	err := db.QueryRowContext(context.Background(),
		"INSERT INTO trains (name, cargo_number, places_in_cargo, train_type_id) VALUES ($1, $2, $3, $4) RETURNING id",
		name, cargoNumber, placesInCargo, trainTypeID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("seed train %s: %w", name, err)
	}
	return id, nil
}

// SeedCrew inserts a crew member and returns their ID
func SeedCrew(db *sqlx.DB, firstName, lastName string) (int64, error) {
	var id int64
	err := db.QueryRowContext(context.Background(),
		"INSERT INTO crews (first_name, last_name) VALUES ($1, $2) RETURNING id",
		firstName, lastName).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("seed crew %s %s: %w", firstName, lastName, err)
	}
	return id, nil
}

// SeedJourney inserts a journey and returns its ID
func SeedJourney(db *sqlx.DB, routeID, trainID int64, departure, arrival time.Time) (int64, error) {
	var id int64
	err := db.QueryRowContext(context.Background(),
		"INSERT INTO journeys (route_id, train_id, departure_time, arrival_time) VALUES ($1, $2, $3, $4) RETURNING id",
		routeID, trainID, departure, arrival).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("seed journey for train %d: %w", trainID, err)
	}
	return id, nil
}

// SeedBookableJourney builds the full station/route/train chain for a single
// journey and returns the journey ID. Capacity is cargoNumber*placesInCargo.
func SeedBookableJourney(db *sqlx.DB, trainName string, cargoNumber, placesInCargo int, departure, arrival time.Time) (int64, error) {
	suffix := trainName
	sourceID, err := SeedStation(db, "Source "+suffix, 50.45, 30.52)
	if err != nil {
		return 0, err
	}
	destID, err := SeedStation(db, "Destination "+suffix, 49.84, 24.03)
	if err != nil {
		return 0, err
	}
	routeID, err := SeedRoute(db, sourceID, destID)
	if err != nil {
		return 0, err
	}
	typeID, err := SeedTrainType(db, "Type "+suffix)
	if err != nil {
		return 0, err
	}
	trainID, err := SeedTrain(db, trainName, cargoNumber, placesInCargo, typeID)
	if err != nil {
		return 0, err
	}
	return SeedJourney(db, routeID, trainID, departure, arrival)
}
