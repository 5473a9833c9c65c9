package domain

import "time"

type Station struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Latitude  float64   `json:"latitude" db:"latitude"`
	Longitude float64   `json:"longitude" db:"longitude"`
	Country   *string   `json:"country,omitempty" db:"country"`
	City      *string   `json:"city,omitempty" db:"city"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Address - адрес станции, полученный обратным геокодированием.
// Страна и город могут отсутствовать, если геокодер ничего не нашёл.
type Address struct {
	Country string `json:"country"`
	City    string `json:"city"`
}
