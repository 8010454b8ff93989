package device

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresLegacyTokenRepository reads the deprecated notification_tokens
// table left behind by earlier app versions and adapts its rows into
// Devices. The table is read-only from this service; new registrations go
// to the devices table.
type PostgresLegacyTokenRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresLegacyTokenRepository creates a reader over notification_tokens.
func NewPostgresLegacyTokenRepository(pool *pgxpool.Pool) *PostgresLegacyTokenRepository {
	return &PostgresLegacyTokenRepository{pool: pool}
}

// ListByUser retrieves a user's legacy tokens as Devices. Legacy rows carry
// no platform or timestamps, so those fields stay zero.
func (r *PostgresLegacyTokenRepository) ListByUser(ctx context.Context, userID string) ([]*Device, error) {
	query := `
		SELECT user_id, token
		FROM notification_tokens
		WHERE user_id = $1
		ORDER BY token
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var devices []*Device
	for rows.Next() {
		var d Device
		if err := rows.Scan(&d.UserID, &d.Token); err != nil {
			return nil, err
		}
		devices = append(devices, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return devices, nil
}

// Ensure PostgresLegacyTokenRepository implements LegacyTokenReader.
var _ LegacyTokenReader = (*PostgresLegacyTokenRepository)(nil)
