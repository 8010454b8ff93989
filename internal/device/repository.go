package device

import "context"

// Repository defines the interface for device persistence.
type Repository interface {
	// GetByToken retrieves a device by its push token.
	GetByToken(ctx context.Context, token string) (*Device, error)

	// ListByUser retrieves all devices registered to a user, in
	// registration order.
	ListByUser(ctx context.Context, userID string) ([]*Device, error)

	// ListAll retrieves every registered device in registration order.
	ListAll(ctx context.Context) ([]*Device, error)

	// Upsert creates or refreshes a device keyed on the token.
	// Returns true if a new device was created, false if updated.
	Upsert(ctx context.Context, device *Device) (created bool, err error)
}

// LegacyTokenReader reads the deprecated notification_tokens collection.
// Legacy rows carry only a user id and a token; they are mapped into
// Devices for read compatibility and are never written.
type LegacyTokenReader interface {
	ListByUser(ctx context.Context, userID string) ([]*Device, error)
}
