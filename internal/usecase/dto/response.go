package dto

import (
	"fmt"
	"time"

	"github.com/rail-booking-service/internal/domain"
)

// StationResponse - станция с адресом
type StationResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Country   string  `json:"country,omitempty"`
	City      string  `json:"city,omitempty"`
}

// RouteListItem - маршрут в списке: станции именами, дистанция производная
type RouteListItem struct {
	ID                   int64  `json:"id"`
	Source               string `json:"source"`
	Destination          string `json:"destination"`
	DistanceInKilometers int    `json:"distance_in_kilometers"`
}

// RouteDetailResponse - маршрут с развёрнутыми станциями
type RouteDetailResponse struct {
	ID                   int64           `json:"id"`
	Source               StationResponse `json:"source"`
	Destination          StationResponse `json:"destination"`
	DistanceInKilometers int             `json:"distance_in_kilometers"`
}

// TrainResponse - поезд с производной вместимостью
type TrainResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	CargoNumber   int    `json:"cargo_number"`
	PlacesInCargo int    `json:"places_in_cargo"`
	TrainType     string `json:"train_type"`
	Capacity      int    `json:"capacity"`
}

// JourneyListItem - рейс в списке с количеством свободных мест
type JourneyListItem struct {
	ID               int64     `json:"id"`
	Route            string    `json:"route"`
	Train            string    `json:"train"`
	DepartureTime    time.Time `json:"departure_time"`
	ArrivalTime      time.Time `json:"arrival_time"`
	TicketsAvailable int       `json:"tickets_available"`
	Crew             []string  `json:"crew"`
}

// JourneyDetailResponse - рейс с маршрутом, поездом, экипажем и занятыми местами
type JourneyDetailResponse struct {
	ID            int64                 `json:"id"`
	Route         RouteListItem         `json:"route"`
	Train         TrainResponse         `json:"train"`
	DepartureTime time.Time             `json:"departure_time"`
	ArrivalTime   time.Time             `json:"arrival_time"`
	Crew          []string              `json:"crew"`
	TakenSeats    []domain.SeatPosition `json:"taken_seats"`
}

// TicketResponse - билет в составе заказа
type TicketResponse struct {
	ID      int64 `json:"id"`
	Cargo   int   `json:"cargo"`
	Seat    int   `json:"seat"`
	Journey int64 `json:"journey"`
}

// OrderResponse - заказ с билетами
type OrderResponse struct {
	ID        int64            `json:"id"`
	Tickets   []TicketResponse `json:"tickets"`
	CreatedAt time.Time        `json:"created_at"`
}

// ConvertStation - конвертация доменной станции в ответ API
func ConvertStation(s domain.Station) StationResponse {
	resp := StationResponse{
		ID:        s.ID,
		Name:      s.Name,
		Latitude:  s.Latitude,
		Longitude: s.Longitude,
	}
	if s.Country != nil {
		resp.Country = *s.Country
	}
	if s.City != nil {
		resp.City = *s.City
	}
	return resp
}

// RouteTitle - представление маршрута строкой "Source -> Destination"
func RouteTitle(r domain.RouteDetail) string {
	return fmt.Sprintf("%s -> %s", r.Source.Name, r.Destination.Name)
}

// ConvertRouteListItem - конвертация маршрута для списка
func ConvertRouteListItem(r domain.RouteDetail) RouteListItem {
	return RouteListItem{
		ID:                   r.ID,
		Source:               r.Source.Name,
		Destination:          r.Destination.Name,
		DistanceInKilometers: domain.RouteDistance(r.Source, r.Destination),
	}
}

// ConvertRouteDetail - конвертация маршрута для детального просмотра
func ConvertRouteDetail(r domain.RouteDetail) RouteDetailResponse {
	return RouteDetailResponse{
		ID:                   r.ID,
		Source:               ConvertStation(r.Source),
		Destination:          ConvertStation(r.Destination),
		DistanceInKilometers: domain.RouteDistance(r.Source, r.Destination),
	}
}

// ConvertTrain - конвертация поезда с именем типа и вместимостью
func ConvertTrain(t domain.Train, trainTypeName string) TrainResponse {
	return TrainResponse{
		ID:            t.ID,
		Name:          t.Name,
		CargoNumber:   t.CargoNumber,
		PlacesInCargo: t.PlacesInCargo,
		TrainType:     trainTypeName,
		Capacity:      t.Capacity(),
	}
}

// ConvertJourneyListItem - конвертация рейса для списка
func ConvertJourneyListItem(j domain.JourneyDetail, ticketsAvailable int) JourneyListItem {
	return JourneyListItem{
		ID:               j.ID,
		Route:            RouteTitle(j.Route),
		Train:            j.Train.Name,
		DepartureTime:    j.DepartureTime,
		ArrivalTime:      j.ArrivalTime,
		TicketsAvailable: ticketsAvailable,
		Crew:             crewNames(j.Crew),
	}
}

// ConvertJourneyDetail - конвертация рейса для детального просмотра
func ConvertJourneyDetail(j domain.JourneyDetail, trainTypeName string, takenSeats []domain.SeatPosition) JourneyDetailResponse {
	if takenSeats == nil {
		takenSeats = []domain.SeatPosition{}
	}
	return JourneyDetailResponse{
		ID:            j.ID,
		Route:         ConvertRouteListItem(j.Route),
		Train:         ConvertTrain(j.Train, trainTypeName),
		DepartureTime: j.DepartureTime,
		ArrivalTime:   j.ArrivalTime,
		Crew:          crewNames(j.Crew),
		TakenSeats:    takenSeats,
	}
}

// ConvertOrder - конвертация заказа с билетами
func ConvertOrder(o domain.Order, tickets []domain.Ticket) OrderResponse {
	ticketResponses := make([]TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		ticketResponses = append(ticketResponses, TicketResponse{
			ID:      t.ID,
			Cargo:   t.Cargo,
			Seat:    t.Seat,
			Journey: t.JourneyID,
		})
	}
	return OrderResponse{
		ID:        o.ID,
		Tickets:   ticketResponses,
		CreatedAt: o.CreatedAt,
	}
}

func crewNames(crew []domain.Crew) []string {
	names := make([]string, 0, len(crew))
	for _, c := range crew {
		names = append(names, c.FullName())
	}
	return names
}
