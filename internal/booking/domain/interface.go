package domain

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/Hypereqqq/backend-good-game-vr/internal/booking/domain UserRepository
//go:generate mockgen -destination=../../mocks/mock_reservation_repository.go -package=mocks github.com/Hypereqqq/backend-good-game-vr/internal/booking/domain ReservationRepository
//go:generate mockgen -destination=../../mocks/mock_config_repository.go -package=mocks github.com/Hypereqqq/backend-good-game-vr/internal/booking/domain ConfigRepository

import "context"

// UserRepository resolves login identifiers. GetByIdentifier matches the
// identifier against both email and username and returns (nil, nil) when no
// user matches. If the uniqueness invariant on users is ever violated and
// both columns match different rows, the email match wins.
type UserRepository interface {
	GetByIdentifier(ctx context.Context, identifier string) (*User, error)
}

type ReservationRepository interface {
	List(ctx context.Context) ([]Reservation, error)
	GetByID(ctx context.Context, id int) (*Reservation, error)
	Create(ctx context.Context, r *Reservation) (*Reservation, error)
	Update(ctx context.Context, r *Reservation) error
	Delete(ctx context.Context, id int) error
}

type ConfigRepository interface {
	List(ctx context.Context) ([]AppConfig, error)
	Update(ctx context.Context, cfg *AppConfig) error
}
