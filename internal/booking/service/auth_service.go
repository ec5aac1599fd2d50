package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Hypereqqq/backend-good-game-vr/internal/booking/audit"
	"github.com/Hypereqqq/backend-good-game-vr/internal/booking/domain"
	"github.com/Hypereqqq/backend-good-game-vr/internal/booking/dto"
	apperrors "github.com/Hypereqqq/backend-good-game-vr/internal/errors"
	"github.com/google/uuid"
)

// AuthService is the login gate: rate limit, then credential lookup, then
// password check. Every terminal outcome emits exactly one audit entry.
//
// A user not found and a wrong password both surface as
// ErrInvalidCredentials so the public response cannot be used to enumerate
// accounts; the audit entry keeps the distinct reason.
type AuthService struct {
	users    domain.UserRepository
	limiter  *LoginLimiter
	verifier PasswordVerifier
	audit    audit.Recorder
}

func NewAuthService(users domain.UserRepository, limiter *LoginLimiter, verifier PasswordVerifier, recorder audit.Recorder) *AuthService {
	return &AuthService{
		users:    users,
		limiter:  limiter,
		verifier: verifier,
		audit:    recorder,
	}
}

func (s *AuthService) Login(ctx context.Context, input dto.LoginInput) (*dto.UserOutput, error) {
	if !s.limiter.Allow(input.IPAddress) {
		s.record(input, audit.OutcomeRateLimited)
		return nil, apperrors.ErrTooManyLoginAttempts
	}

	// The limiter lock is released before this read; a slow store must not
	// stall unrelated clients.
	user, err := s.users.GetByIdentifier(ctx, input.Identifier)
	if err != nil {
		s.record(input, audit.OutcomeStoreError)
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}

	if user == nil {
		s.record(input, audit.OutcomeUserNotFound)
		return nil, apperrors.ErrInvalidCredentials
	}

	if !s.verifier.Verify(input.Password, user.PasswordHash) {
		s.record(input, audit.OutcomeBadPassword)
		return nil, apperrors.ErrInvalidCredentials
	}

	s.record(input, audit.OutcomeSuccess)

	return &dto.UserOutput{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}, nil
}

func (s *AuthService) record(input dto.LoginInput, outcome audit.Outcome) {
	s.audit.Record(audit.Entry{
		ID:         uuid.NewString(),
		Time:       time.Now(),
		ClientIP:   input.IPAddress,
		Identifier: input.Identifier,
		Outcome:    outcome,
	})
}
