package service

import (
	"context"

	"github.com/Hypereqqq/backend-good-game-vr/internal/booking/domain"
	"github.com/Hypereqqq/backend-good-game-vr/internal/booking/dto"
)

// settingsRowID pins updates to the single settings row.
const settingsRowID = 1

type AppConfigService struct {
	repo domain.ConfigRepository
}

func NewAppConfigService(repo domain.ConfigRepository) *AppConfigService {
	return &AppConfigService{repo: repo}
}

func (s *AppConfigService) List(ctx context.Context) ([]dto.AppConfigOutput, error) {
	configs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	outputs := make([]dto.AppConfigOutput, 0, len(configs))
	for _, cfg := range configs {
		outputs = append(outputs, dto.AppConfigOutput{ID: cfg.ID, Stations: cfg.Stations, Seats: cfg.Seats})
	}

	return outputs, nil
}

func (s *AppConfigService) Update(ctx context.Context, input dto.AppConfigInput) (*dto.AppConfigOutput, error) {
	cfg := &domain.AppConfig{
		ID:       settingsRowID,
		Stations: input.Stations,
		Seats:    input.Seats,
	}

	if err := s.repo.Update(ctx, cfg); err != nil {
		return nil, err
	}

	return &dto.AppConfigOutput{ID: cfg.ID, Stations: cfg.Stations, Seats: cfg.Seats}, nil
}
