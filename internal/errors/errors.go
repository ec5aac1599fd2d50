package errors

import (
	"errors"
)

var (
	ErrTooManyLoginAttempts = errors.New("too many login attempts")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrStoreUnavailable     = errors.New("credential store unavailable")
	ErrReservationNotFound  = errors.New("reservation not found")
	ErrReservationConflict  = errors.New("reservation could not be created")
	ErrConfigNotFound       = errors.New("app config not found")
)
