package errors

import "net/http"

var (
	ErrStationNotFound = New(
		"STATION_NOT_FOUND",
		"Station not found",
		http.StatusNotFound,
	)

	ErrRouteNotFound = New(
		"ROUTE_NOT_FOUND",
		"Route not found",
		http.StatusNotFound,
	)

	ErrTrainNotFound = New(
		"TRAIN_NOT_FOUND",
		"Train not found",
		http.StatusNotFound,
	)

	ErrTrainTypeNotFound = New(
		"TRAIN_TYPE_NOT_FOUND",
		"Train type not found",
		http.StatusNotFound,
	)

	ErrCrewNotFound = New(
		"CREW_NOT_FOUND",
		"Crew member not found",
		http.StatusNotFound,
	)

	ErrJourneyNotFound = New(
		"JOURNEY_NOT_FOUND",
		"Journey not found",
		http.StatusNotFound,
	)

	ErrOrderNotFound = New(
		"ORDER_NOT_FOUND",
		"Order not found",
		http.StatusNotFound,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrSameSourceDestination = New(
		"SAME_SOURCE_DESTINATION",
		"Source and destination stations must be different",
		http.StatusBadRequest,
	)

	ErrRouteAlreadyExists = New(
		"ROUTE_ALREADY_EXISTS",
		"Route for this station pair already exists",
		http.StatusBadRequest,
	)

	ErrStationAlreadyExists = New(
		"STATION_ALREADY_EXISTS",
		"Station with this name already exists",
		http.StatusBadRequest,
	)

	ErrInvalidTrainName = New(
		"INVALID_TRAIN_NAME",
		"Train name must be 3 uppercase letters followed by 5 digits",
		http.StatusBadRequest,
	)

	ErrInvalidTimeWindow = New(
		"INVALID_TIME_WINDOW",
		"Departure time must be in the future and before arrival time",
		http.StatusBadRequest,
	)

	ErrTrainScheduleConflict = New(
		"TRAIN_SCHEDULE_CONFLICT",
		"Train is already scheduled for an overlapping journey",
		http.StatusBadRequest,
	)

	ErrSeatOutOfRange = New(
		"SEAT_OUT_OF_RANGE",
		"Seat number is out of range for this train",
		http.StatusBadRequest,
	)

	ErrCargoOutOfRange = New(
		"CARGO_OUT_OF_RANGE",
		"Cargo number is out of range for this train",
		http.StatusBadRequest,
	)

	ErrSeatAlreadyTaken = New(
		"SEAT_ALREADY_TAKEN",
		"Seat is already taken on this journey",
		http.StatusBadRequest,
	)

	ErrEmptyOrder = New(
		"EMPTY_ORDER",
		"Order must contain at least one ticket",
		http.StatusBadRequest,
	)

	ErrInvalidDateFormat = New(
		"INVALID_DATE_FORMAT",
		"Invalid date format. Please use YYYY-MM-DD.",
		http.StatusBadRequest,
	)

	ErrInvalidTimeFormat = New(
		"INVALID_TIME_FORMAT",
		"Invalid time format. Please use HH:MM.",
		http.StatusBadRequest,
	)

	ErrUnauthorized = New(
		"UNAUTHORIZED",
		"Authentication required",
		http.StatusUnauthorized,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
