package user

import (
	"context"
	"sync"
)

// Repository defines the interface for user persistence.
type Repository interface {
	// Get retrieves a user by Google ID.
	Get(ctx context.Context, googleID string) (*User, error)

	// Create creates a new user.
	Create(ctx context.Context, user *User) error

	// Update overwrites an existing user document, favorites included.
	Update(ctx context.Context, user *User) error
}

// InMemoryRepository is an in-memory implementation of Repository,
// intended for tests.
type InMemoryRepository struct {
	mu    sync.RWMutex
	users map[string]*User
}

// NewInMemoryRepository creates a new in-memory user repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		users: make(map[string]*User),
	}
}

// Get retrieves a user by Google ID.
func (r *InMemoryRepository) Get(_ context.Context, googleID string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[googleID]
	if !ok {
		return nil, ErrUserNotFound
	}

	// Return a copy to prevent mutation through the returned pointer
	return copyUser(u), nil
}

// Create creates a new user.
func (r *InMemoryRepository) Create(_ context.Context, user *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users[user.GoogleID] = copyUser(user)
	return nil
}

// Update overwrites an existing user document.
func (r *InMemoryRepository) Update(_ context.Context, user *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.GoogleID]; !ok {
		return ErrUserNotFound
	}

	r.users[user.GoogleID] = copyUser(user)
	return nil
}

// copyUser creates a deep copy of a user.
func copyUser(u *User) *User {
	if u == nil {
		return nil
	}

	userCopy := *u
	userCopy.FavoritePlayers = make([]FavoritePlayer, len(u.FavoritePlayers))
	copy(userCopy.FavoritePlayers, u.FavoritePlayers)
	userCopy.FavoriteTeams = make([]FavoriteTeam, len(u.FavoriteTeams))
	copy(userCopy.FavoriteTeams, u.FavoriteTeams)
	return &userCopy
}

// Ensure InMemoryRepository implements Repository.
var _ Repository = (*InMemoryRepository)(nil)
