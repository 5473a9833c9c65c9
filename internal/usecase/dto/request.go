package dto

import "time"

// CreateStationRequest - запрос на создание станции.
// Адрес не принимается: он добывается обратным геокодированием по координатам.
type CreateStationRequest struct {
	Name      string  `json:"name" validate:"required,min=1,max=31"`
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
}

// CreateRouteRequest - запрос на создание маршрута
type CreateRouteRequest struct {
	Source      int64 `json:"source" validate:"required"`
	Destination int64 `json:"destination" validate:"required"`
}

// CreateTrainTypeRequest - запрос на создание типа поезда
type CreateTrainTypeRequest struct {
	Name string `json:"name" validate:"required,min=1,max=31"`
}

// UpdateTrainTypeRequest - запрос на обновление типа поезда
type UpdateTrainTypeRequest struct {
	Name string `json:"name" validate:"required,min=1,max=31"`
}

// CreateTrainRequest - запрос на создание поезда
type CreateTrainRequest struct {
	Name          string `json:"name" validate:"required"`
	CargoNumber   int    `json:"cargo_number" validate:"required,gt=0"`
	PlacesInCargo int    `json:"places_in_cargo" validate:"required,gt=0"`
	TrainType     int64  `json:"train_type" validate:"required"`
}

// CreateCrewRequest - запрос на создание члена экипажа
type CreateCrewRequest struct {
	FirstName string `json:"first_name" validate:"required,min=1,max=31"`
	LastName  string `json:"last_name" validate:"required,min=1,max=31"`
}

// CreateJourneyRequest - запрос на создание рейса
type CreateJourneyRequest struct {
	Route         int64     `json:"route" validate:"required"`
	Train         int64     `json:"train" validate:"required"`
	DepartureTime time.Time `json:"departure_time" validate:"required"`
	ArrivalTime   time.Time `json:"arrival_time" validate:"required"`
	Crew          []int64   `json:"crew"`
}

// JourneyListRequest - параметры фильтрации списка рейсов
type JourneyListRequest struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Date        string `json:"date"` // YYYY-MM-DD
	Time        string `json:"time"` // HH:MM, only together with Date
}

// TicketClaimRequest - заявка на одно место в заказе
type TicketClaimRequest struct {
	Cargo   int   `json:"cargo" validate:"required"`
	Seat    int   `json:"seat" validate:"required"`
	Journey int64 `json:"journey" validate:"required"`
}

// CreateOrderRequest - запрос на создание заказа.
// Пустой список билетов отклоняется в usecase кодом EMPTY_ORDER,
// а не валидатором - это доменное правило, не правило формата.
type CreateOrderRequest struct {
	Tickets []TicketClaimRequest `json:"tickets" validate:"omitempty,dive"`
}

// OrderListRequest - параметры фильтрации списка заказов
type OrderListRequest struct {
	Date string `json:"date"` // YYYY-MM-DD
	Time string `json:"time"` // HH:MM, only together with Date
}
