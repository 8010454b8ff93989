package device

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Service provides device registration operations.
type Service struct {
	repo Repository
}

// NewService creates a new device service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register creates or refreshes a device keyed on the push token.
// Repeated calls with identical arguments converge to the same stored
// state; registering an existing token under a different user transfers
// ownership. Returns the resulting record and whether it was newly created.
func (s *Service) Register(ctx context.Context, token, userID string, platform Platform) (*Device, bool, error) {
	if strings.TrimSpace(token) == "" || strings.TrimSpace(userID) == "" || strings.TrimSpace(string(platform)) == "" {
		return nil, false, fmt.Errorf("%w: token, userId and platform are required", ErrInvalidInput)
	}
	if !platform.Valid() {
		return nil, false, fmt.Errorf("%w: unknown platform %q", ErrInvalidInput, platform)
	}

	now := time.Now()
	d := &Device{
		UserID:    userID,
		Token:     token,
		Platform:  platform,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Upsert(ctx, d)
	if err != nil {
		return nil, false, err
	}

	return d, created, nil
}
