package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Hypereqqq/backend-good-game-vr/internal/booking/domain"
	apperrors "github.com/Hypereqqq/backend-good-game-vr/internal/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PgxIface is the subset of pgxpool.Pool the repository needs. pgxmock
// pools satisfy it too.
type PgxIface interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresRepository struct {
	db PgxIface
}

func NewPostgresRepository(db PgxIface) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// GetByIdentifier resolves a login identifier against both email and
// username. The email match is preferred when both columns match, so the
// result stays deterministic even if uniqueness is violated upstream.
func (r *PostgresRepository) GetByIdentifier(ctx context.Context, identifier string) (*domain.User, error) {
	query := `
		SELECT id, username, email, password_hash
		FROM users
		WHERE email = $1 OR username = $1
		ORDER BY (email = $1) DESC
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, identifier)

	var user domain.User
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by identifier: %w", err)
	}

	return &user, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]domain.Reservation, error) {
	query := `
		SELECT id, first_name, last_name, email, phone, created_at,
		       reservation_date, service, people, duration, who_created, cancelled
		FROM rezerwacje
		ORDER BY id;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	defer rows.Close()

	var reservations []domain.Reservation
	for rows.Next() {
		var res domain.Reservation
		if err := rows.Scan(
			&res.ID, &res.FirstName, &res.LastName, &res.Email, &res.Phone,
			&res.CreatedAt, &res.ReservationDate, &res.Service, &res.People,
			&res.Duration, &res.WhoCreated, &res.Cancelled,
		); err != nil {
			return nil, fmt.Errorf("failed to scan reservation: %w", err)
		}
		reservations = append(reservations, res)
	}

	return reservations, rows.Err()
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int) (*domain.Reservation, error) {
	query := `
		SELECT id, first_name, last_name, email, phone, created_at,
		       reservation_date, service, people, duration, who_created, cancelled
		FROM rezerwacje
		WHERE id = $1
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, id)

	var res domain.Reservation
	err := row.Scan(
		&res.ID, &res.FirstName, &res.LastName, &res.Email, &res.Phone,
		&res.CreatedAt, &res.ReservationDate, &res.Service, &res.People,
		&res.Duration, &res.WhoCreated, &res.Cancelled,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get reservation %d: %w", id, err)
	}

	return &res, nil
}

func (r *PostgresRepository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	query := `
		INSERT INTO rezerwacje (first_name, last_name, email, phone, created_at,
		                        reservation_date, service, people, duration, who_created, cancelled)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id;
	`
	row := r.db.QueryRow(ctx, query,
		res.FirstName, res.LastName, res.Email, res.Phone, res.CreatedAt,
		res.ReservationDate, res.Service, res.People, res.Duration,
		res.WhoCreated, res.Cancelled)

	if err := row.Scan(&res.ID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperrors.ErrReservationConflict
		}
		return nil, fmt.Errorf("failed to create reservation: %w", err)
	}

	return res, nil
}

func (r *PostgresRepository) Update(ctx context.Context, res *domain.Reservation) error {
	query := `
		UPDATE rezerwacje
		SET first_name = $1, last_name = $2, email = $3, phone = $4,
		    created_at = $5, reservation_date = $6, service = $7, people = $8,
		    duration = $9, who_created = $10, cancelled = $11
		WHERE id = $12;
	`
	tag, err := r.db.Exec(ctx, query,
		res.FirstName, res.LastName, res.Email, res.Phone, res.CreatedAt,
		res.ReservationDate, res.Service, res.People, res.Duration,
		res.WhoCreated, res.Cancelled, res.ID)
	if err != nil {
		return fmt.Errorf("failed to update reservation %d: %w", res.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrReservationNotFound
	}

	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM rezerwacje WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete reservation %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrReservationNotFound
	}

	return nil
}

// PostgresConfigRepository owns the ustawienia settings table.
type PostgresConfigRepository struct {
	db PgxIface
}

func NewPostgresConfigRepository(db PgxIface) *PostgresConfigRepository {
	return &PostgresConfigRepository{db: db}
}

func (r *PostgresConfigRepository) List(ctx context.Context) ([]domain.AppConfig, error) {
	rows, err := r.db.Query(ctx, `SELECT id, stations, seats FROM ustawienia ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list app config: %w", err)
	}
	defer rows.Close()

	var configs []domain.AppConfig
	for rows.Next() {
		var cfg domain.AppConfig
		if err := rows.Scan(&cfg.ID, &cfg.Stations, &cfg.Seats); err != nil {
			return nil, fmt.Errorf("failed to scan app config: %w", err)
		}
		configs = append(configs, cfg)
	}

	return configs, rows.Err()
}

func (r *PostgresConfigRepository) Update(ctx context.Context, cfg *domain.AppConfig) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE ustawienia SET stations = $1, seats = $2 WHERE id = $3`,
		cfg.Stations, cfg.Seats, cfg.ID)
	if err != nil {
		return fmt.Errorf("failed to update app config: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrConfigNotFound
	}

	return nil
}
