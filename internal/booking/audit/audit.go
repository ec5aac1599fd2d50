package audit

//go:generate mockgen -destination=../../mocks/mock_audit_recorder.go -package=mocks github.com/Hypereqqq/backend-good-game-vr/internal/booking/audit Recorder

import (
	"time"

	"go.uber.org/zap"
)

type Outcome string

const (
	OutcomeSuccess      Outcome = "success"
	OutcomeRateLimited  Outcome = "rate_limited"
	OutcomeUserNotFound Outcome = "user_not_found"
	OutcomeBadPassword  Outcome = "bad_password"
	OutcomeStoreError   Outcome = "store_error"
)

// Entry is a single login attempt. It never carries the password or the
// stored hash.
type Entry struct {
	ID         string
	Time       time.Time
	ClientIP   string
	Identifier string
	Outcome    Outcome
}

// Recorder is an append-only audit sink. Record is fire-and-forget: a sink
// that cannot write must swallow the failure, never block the login.
type Recorder interface {
	Record(entry Entry)
}

// ZapRecorder writes audit entries through a zap logger.
type ZapRecorder struct {
	logger *zap.Logger
}

func NewZapRecorder(logger *zap.Logger) *ZapRecorder {
	return &ZapRecorder{logger: logger}
}

func (r *ZapRecorder) Record(entry Entry) {
	fields := []zap.Field{
		zap.String("attempt_id", entry.ID),
		zap.Time("time", entry.Time),
		zap.String("client_ip", entry.ClientIP),
		zap.String("identifier", entry.Identifier),
		zap.String("outcome", string(entry.Outcome)),
	}

	if entry.Outcome == OutcomeSuccess {
		r.logger.Info("login attempt", fields...)
		return
	}
	r.logger.Warn("login attempt", fields...)
}
