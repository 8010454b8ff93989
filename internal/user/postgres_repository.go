package user

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository is a PostgreSQL implementation of Repository.
//
// Favorite lists are stored as JSONB columns so a user stays a single row
// and every write replaces the whole document, matching the atomicity model
// the service relies on.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL user repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Get retrieves a user by Google ID.
func (r *PostgresRepository) Get(ctx context.Context, googleID string) (*User, error) {
	query := `
		SELECT google_id, name, email, COALESCE(picture, ''), favorite_players, favorite_teams, last_login, created_at
		FROM users
		WHERE google_id = $1
	`

	var u User
	err := r.pool.QueryRow(ctx, query, googleID).Scan(
		&u.GoogleID,
		&u.Name,
		&u.Email,
		&u.Picture,
		&u.FavoritePlayers,
		&u.FavoriteTeams,
		&u.LastLogin,
		&u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if u.FavoritePlayers == nil {
		u.FavoritePlayers = []FavoritePlayer{}
	}
	if u.FavoriteTeams == nil {
		u.FavoriteTeams = []FavoriteTeam{}
	}

	return &u, nil
}

// Create creates a new user.
func (r *PostgresRepository) Create(ctx context.Context, user *User) error {
	query := `
		INSERT INTO users (google_id, name, email, picture, favorite_players, favorite_teams, last_login, created_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(ctx, query,
		user.GoogleID,
		user.Name,
		user.Email,
		user.Picture,
		user.FavoritePlayers,
		user.FavoriteTeams,
		user.LastLogin,
		user.CreatedAt,
	)
	return err
}

// Update overwrites an existing user document, favorites included.
func (r *PostgresRepository) Update(ctx context.Context, user *User) error {
	query := `
		UPDATE users SET
			name = $2,
			email = $3,
			picture = NULLIF($4, ''),
			favorite_players = $5,
			favorite_teams = $6,
			last_login = $7
		WHERE google_id = $1
	`

	result, err := r.pool.Exec(ctx, query,
		user.GoogleID,
		user.Name,
		user.Email,
		user.Picture,
		user.FavoritePlayers,
		user.FavoriteTeams,
		user.LastLogin,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}

// Ensure PostgresRepository implements Repository interface.
var _ Repository = (*PostgresRepository)(nil)
