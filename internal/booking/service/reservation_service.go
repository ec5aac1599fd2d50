package service

import (
	"context"

	"github.com/Hypereqqq/backend-good-game-vr/internal/booking/domain"
	"github.com/Hypereqqq/backend-good-game-vr/internal/booking/dto"
)

type ReservationService struct {
	repo domain.ReservationRepository
}

func NewReservationService(repo domain.ReservationRepository) *ReservationService {
	return &ReservationService{repo: repo}
}

func (s *ReservationService) List(ctx context.Context) ([]dto.ReservationOutput, error) {
	reservations, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	outputs := make([]dto.ReservationOutput, 0, len(reservations))
	for _, res := range reservations {
		outputs = append(outputs, toReservationOutput(&res))
	}

	return outputs, nil
}

func (s *ReservationService) Create(ctx context.Context, input dto.ReservationInput) (*dto.ReservationOutput, error) {
	res := fromReservationInput(input)

	created, err := s.repo.Create(ctx, res)
	if err != nil {
		return nil, err
	}

	out := toReservationOutput(created)

	return &out, nil
}

func (s *ReservationService) Update(ctx context.Context, id int, input dto.ReservationInput) (*dto.ReservationOutput, error) {
	res := fromReservationInput(input)
	res.ID = id

	if err := s.repo.Update(ctx, res); err != nil {
		return nil, err
	}

	out := toReservationOutput(res)

	return &out, nil
}

func (s *ReservationService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func fromReservationInput(input dto.ReservationInput) *domain.Reservation {
	return &domain.Reservation{
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		Email:           input.Email,
		Phone:           input.Phone,
		CreatedAt:       input.CreatedAt,
		ReservationDate: input.ReservationDate,
		Service:         input.Service,
		People:          input.People,
		Duration:        input.Duration,
		WhoCreated:      input.WhoCreated,
		Cancelled:       input.Cancelled,
	}
}

func toReservationOutput(res *domain.Reservation) dto.ReservationOutput {
	return dto.ReservationOutput{
		ID:              res.ID,
		FirstName:       res.FirstName,
		LastName:        res.LastName,
		Email:           res.Email,
		Phone:           res.Phone,
		CreatedAt:       res.CreatedAt,
		ReservationDate: res.ReservationDate,
		Service:         res.Service,
		People:          res.People,
		Duration:        res.Duration,
		WhoCreated:      res.WhoCreated,
		Cancelled:       res.Cancelled,
	}
}
