package device

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository is a PostgreSQL implementation of Repository.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL device repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// GetByToken retrieves a device by its push token.
func (r *PostgresRepository) GetByToken(ctx context.Context, token string) (*Device, error) {
	query := `
		SELECT user_id, token, platform, created_at, updated_at
		FROM devices
		WHERE token = $1
	`

	var d Device
	err := r.pool.QueryRow(ctx, query, token).Scan(
		&d.UserID,
		&d.Token,
		&d.Platform,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDeviceNotFound
		}
		return nil, err
	}

	return &d, nil
}

// ListByUser retrieves all devices registered to a user.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*Device, error) {
	query := `
		SELECT user_id, token, platform, created_at, updated_at
		FROM devices
		WHERE user_id = $1
		ORDER BY created_at, token
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDevices(rows)
}

// ListAll retrieves every registered device in registration order.
func (r *PostgresRepository) ListAll(ctx context.Context) ([]*Device, error) {
	query := `
		SELECT user_id, token, platform, created_at, updated_at
		FROM devices
		ORDER BY created_at, token
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDevices(rows)
}

func scanDevices(rows pgx.Rows) ([]*Device, error) {
	var devices []*Device
	for rows.Next() {
		var d Device
		err := rows.Scan(
			&d.UserID,
			&d.Token,
			&d.Platform,
			&d.CreatedAt,
			&d.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		devices = append(devices, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return devices, nil
}

// Upsert creates or refreshes a device keyed on the token.
// A token re-registered under a different user overwrites the owner.
func (r *PostgresRepository) Upsert(ctx context.Context, device *Device) (bool, error) {
	query := `
		INSERT INTO devices (user_id, token, platform, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (token) DO UPDATE SET
			user_id = EXCLUDED.user_id,
			platform = EXCLUDED.platform,
			updated_at = EXCLUDED.updated_at
		RETURNING (xmax = 0) AS inserted, created_at
	`

	var inserted bool
	err := r.pool.QueryRow(ctx, query,
		device.UserID,
		device.Token,
		device.Platform,
		device.CreatedAt,
		device.UpdatedAt,
	).Scan(&inserted, &device.CreatedAt)

	if err != nil {
		return false, err
	}

	return inserted, nil
}

// Ensure PostgresRepository implements Repository interface.
var _ Repository = (*PostgresRepository)(nil)
