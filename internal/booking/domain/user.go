package domain

import "time"

// User is an account row from the users table. Accounts are provisioned
// out of band; this service only ever reads them.
type User struct {
	ID           int
	Username     string
	Email        string
	PasswordHash string
}

// Reservation mirrors the rezerwacje table.
type Reservation struct {
	ID              int
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	CreatedAt       time.Time
	ReservationDate time.Time
	Service         string
	People          int
	Duration        int
	WhoCreated      string
	Cancelled       bool
}

// AppConfig is the single-row ustawienia table: how many VR stations and
// seats the venue offers.
type AppConfig struct {
	ID       int
	Stations int
	Seats    int
}
