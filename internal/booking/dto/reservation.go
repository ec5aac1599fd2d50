package dto

import "time"

type ReservationInput struct {
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	CreatedAt       time.Time `json:"createdAt"`
	ReservationDate time.Time `json:"reservationDate"`
	Service         string    `json:"service"`
	People          int       `json:"people"`
	Duration        int       `json:"duration"`
	WhoCreated      string    `json:"whoCreated"`
	Cancelled       bool      `json:"cancelled"`
}

type ReservationOutput struct {
	ID              int       `json:"id"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	CreatedAt       time.Time `json:"createdAt"`
	ReservationDate time.Time `json:"reservationDate"`
	Service         string    `json:"service"`
	People          int       `json:"people"`
	Duration        int       `json:"duration"`
	WhoCreated      string    `json:"whoCreated"`
	Cancelled       bool      `json:"cancelled"`
}
