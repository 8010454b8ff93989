package device

import (
	"context"
	"sync"
)

// InMemoryRepository is an in-memory implementation of Repository,
// intended for tests. Registration order is preserved so batch
// partitioning behaves like the database-backed implementation.
type InMemoryRepository struct {
	mu      sync.RWMutex
	byToken map[string]*Device
	order   []string
}

// NewInMemoryRepository creates a new in-memory device repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		byToken: make(map[string]*Device),
	}
}

// GetByToken retrieves a device by its push token.
func (r *InMemoryRepository) GetByToken(_ context.Context, token string) (*Device, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.byToken[token]
	if !ok {
		return nil, ErrDeviceNotFound
	}

	deviceCopy := *d
	return &deviceCopy, nil
}

// ListByUser retrieves all devices registered to a user.
func (r *InMemoryRepository) ListByUser(_ context.Context, userID string) ([]*Device, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var devices []*Device
	for _, token := range r.order {
		if d := r.byToken[token]; d.UserID == userID {
			deviceCopy := *d
			devices = append(devices, &deviceCopy)
		}
	}
	return devices, nil
}

// ListAll retrieves every registered device in registration order.
func (r *InMemoryRepository) ListAll(_ context.Context) ([]*Device, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	devices := make([]*Device, 0, len(r.order))
	for _, token := range r.order {
		deviceCopy := *r.byToken[token]
		devices = append(devices, &deviceCopy)
	}
	return devices, nil
}

// Upsert creates or refreshes a device keyed on the token.
func (r *InMemoryRepository) Upsert(_ context.Context, device *Device) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	deviceCopy := *device
	existing, ok := r.byToken[device.Token]
	if ok {
		// Keep the original registration slot and creation time.
		deviceCopy.CreatedAt = existing.CreatedAt
		r.byToken[device.Token] = &deviceCopy
		device.CreatedAt = existing.CreatedAt
		return false, nil
	}

	r.byToken[device.Token] = &deviceCopy
	r.order = append(r.order, device.Token)
	return true, nil
}

// Ensure InMemoryRepository implements Repository.
var _ Repository = (*InMemoryRepository)(nil)
