package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Hypereqqq/backend-good-game-vr/internal/booking/domain"
	repo "github.com/Hypereqqq/backend-good-game-vr/internal/booking/repository/postgres"
	apperrors "github.com/Hypereqqq/backend-good-game-vr/internal/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetByIdentifier(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	columns := []string{"id", "username", "email", "password_hash"}
	ctx := context.Background()

	t.Run("matches by email", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, username, email, password_hash").
			WithArgs("alice@x.com").
			WillReturnRows(pgxmock.NewRows(columns).AddRow(7, "alice", "alice@x.com", "hash"))

		user, err := r.GetByIdentifier(ctx, "alice@x.com")
		require.NoError(t, err)
		assert.Equal(t, 7, user.ID)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("matches by username", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, username, email, password_hash").
			WithArgs("alice").
			WillReturnRows(pgxmock.NewRows(columns).AddRow(7, "alice", "alice@x.com", "hash"))

		user, err := r.GetByIdentifier(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, "alice@x.com", user.Email)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, username, email, password_hash").
			WithArgs("nobody").
			WillReturnError(pgx.ErrNoRows)

		user, err := r.GetByIdentifier(ctx, "nobody")
		require.NoError(t, err) // Should return nil user, nil error
		assert.Nil(t, user)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, username, email, password_hash").
			WithArgs("alice").
			WillReturnError(fmt.Errorf("db error"))

		_, err := r.GetByIdentifier(ctx, "alice")
		assert.Error(t, err)
	})
}

func sampleReservation() *domain.Reservation {
	now := time.Now()
	return &domain.Reservation{
		FirstName:       "Jan",
		LastName:        "Kowalski",
		Email:           "jan@example.com",
		Phone:           "123456789",
		CreatedAt:       now,
		ReservationDate: now.Add(24 * time.Hour),
		Service:         "vr",
		People:          2,
		Duration:        60,
		WhoCreated:      "admin",
		Cancelled:       false,
	}
}

func TestReservationCreate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		res := sampleReservation()
		mock.ExpectQuery("INSERT INTO rezerwacje").
			WithArgs(res.FirstName, res.LastName, res.Email, res.Phone, res.CreatedAt,
				res.ReservationDate, res.Service, res.People, res.Duration,
				res.WhoCreated, res.Cancelled).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(42))

		created, err := r.Create(ctx, res)
		require.NoError(t, err)
		assert.Equal(t, 42, created.ID)
	})

	t.Run("unique violation maps to conflict", func(t *testing.T) {
		res := sampleReservation()
		mock.ExpectQuery("INSERT INTO rezerwacje").
			WithArgs(res.FirstName, res.LastName, res.Email, res.Phone, res.CreatedAt,
				res.ReservationDate, res.Service, res.People, res.Duration,
				res.WhoCreated, res.Cancelled).
			WillReturnError(&pgconn.PgError{Code: "23505"})

		_, err := r.Create(ctx, res)
		assert.ErrorIs(t, err, apperrors.ErrReservationConflict)
	})
}

func TestReservationUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		res := sampleReservation()
		res.ID = 42
		mock.ExpectExec("UPDATE rezerwacje").
			WithArgs(res.FirstName, res.LastName, res.Email, res.Phone, res.CreatedAt,
				res.ReservationDate, res.Service, res.People, res.Duration,
				res.WhoCreated, res.Cancelled, res.ID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		assert.NoError(t, r.Update(ctx, res))
	})

	t.Run("not found", func(t *testing.T) {
		res := sampleReservation()
		res.ID = 999
		mock.ExpectExec("UPDATE rezerwacje").
			WithArgs(res.FirstName, res.LastName, res.Email, res.Phone, res.CreatedAt,
				res.ReservationDate, res.Service, res.People, res.Duration,
				res.WhoCreated, res.Cancelled, res.ID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		assert.ErrorIs(t, r.Update(ctx, res), apperrors.ErrReservationNotFound)
	})
}

func TestReservationDelete(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM rezerwacje").
			WithArgs(42).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		assert.NoError(t, r.Delete(ctx, 42))
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM rezerwacje").
			WithArgs(999).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		assert.ErrorIs(t, r.Delete(ctx, 999), apperrors.ErrReservationNotFound)
	})
}

func TestReservationList(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()

	now := time.Now()
	columns := []string{
		"id", "first_name", "last_name", "email", "phone", "created_at",
		"reservation_date", "service", "people", "duration", "who_created", "cancelled",
	}

	mock.ExpectQuery("SELECT (.+) FROM rezerwacje").
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(1, "Jan", "Kowalski", "jan@example.com", "123456789", now, now, "vr", 2, 60, "admin", false).
			AddRow(2, "Anna", "Nowak", "anna@example.com", "987654321", now, now, "ps5", 4, 90, "client", true))

	reservations, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, reservations, 2)
	assert.Equal(t, "Jan", reservations[0].FirstName)
	assert.True(t, reservations[1].Cancelled)
}

func TestConfigRepository(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresConfigRepository(mock)
	ctx := context.Background()

	t.Run("list", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, stations, seats FROM ustawienia").
			WillReturnRows(pgxmock.NewRows([]string{"id", "stations", "seats"}).AddRow(1, 6, 12))

		configs, err := r.List(ctx)
		require.NoError(t, err)
		require.Len(t, configs, 1)
		assert.Equal(t, 6, configs[0].Stations)
	})

	t.Run("update", func(t *testing.T) {
		mock.ExpectExec("UPDATE ustawienia").
			WithArgs(8, 16, 1).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		assert.NoError(t, r.Update(ctx, &domain.AppConfig{ID: 1, Stations: 8, Seats: 16}))
	})

	t.Run("update missing row", func(t *testing.T) {
		mock.ExpectExec("UPDATE ustawienia").
			WithArgs(8, 16, 1).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		assert.ErrorIs(t, r.Update(ctx, &domain.AppConfig{ID: 1, Stations: 8, Seats: 16}), apperrors.ErrConfigNotFound)
	})
}
