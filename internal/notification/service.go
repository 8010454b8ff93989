package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/sportsfollow/sportsfollow/internal/device"
)

// Service resolves users to device tokens and forwards push messages to the
// gateway. Dispatch is synchronous and sequential; the caller sees either a
// complete result or a DispatchError describing how far it got.
type Service struct {
	devices device.Repository
	legacy  device.LegacyTokenReader
	gateway Gateway
	log     zerolog.Logger
}

// ServiceConfig holds dependencies for the dispatcher.
type ServiceConfig struct {
	Devices device.Repository
	Gateway Gateway

	// Legacy is an optional reader over the deprecated notification_tokens
	// collection, consulted for targeted sends only when a user has no
	// canonical device records.
	Legacy device.LegacyTokenReader

	Logger zerolog.Logger
}

// NewService creates a new notification dispatcher.
func NewService(cfg ServiceConfig) *Service {
	return &Service{
		devices: cfg.Devices,
		legacy:  cfg.Legacy,
		gateway: cfg.Gateway,
		log:     cfg.Logger,
	}
}

// SendToUser sends one push message per device registered to userID, in a
// single gateway call, and returns the gateway's raw result. It fails with
// ErrNoDevices before any gateway call when the user has no devices.
func (s *Service) SendToUser(ctx context.Context, userID, title, body string, data map[string]any) (json.RawMessage, error) {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(title) == "" || strings.TrimSpace(body) == "" {
		return nil, fmt.Errorf("%w: userId, title and body are required", ErrInvalidInput)
	}

	devices, err := s.devices.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(devices) == 0 && s.legacy != nil {
		devices, err = s.legacy.ListByUser(ctx, userID)
		if err != nil {
			return nil, err
		}
	}

	if len(devices) == 0 {
		return nil, fmt.Errorf("%w for user %s", ErrNoDevices, userID)
	}

	messages := make([]Message, 0, len(devices))
	for _, d := range devices {
		messages = append(messages, Message{
			To:    d.Token,
			Title: title,
			Body:  body,
			Data:  orEmpty(data),
			Sound: defaultSound,
			Badge: 1,
		})
	}

	result, err := s.gateway.Send(ctx, messages)
	if err != nil {
		return nil, &DispatchError{BatchesSent: 0, Err: err}
	}

	s.log.Info().
		Str("user_id", userID).
		Int("devices", len(devices)).
		Msg("push notification sent")

	return result, nil
}

// Broadcast sends a push message to every registered device, in ordered
// batches of BatchSize, and returns one raw gateway result per batch. A
// failure on batch k aborts the remaining batches; the returned
// DispatchError carries the number of batches that completed.
func (s *Service) Broadcast(ctx context.Context, title, body string, data map[string]any) ([]json.RawMessage, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(body) == "" {
		return nil, fmt.Errorf("%w: title and body are required", ErrInvalidInput)
	}

	devices, err := s.devices.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	if len(devices) == 0 {
		return nil, ErrNoDevices
	}

	var results []json.RawMessage
	for start := 0; start < len(devices); start += BatchSize {
		end := start + BatchSize
		if end > len(devices) {
			end = len(devices)
		}

		batch := devices[start:end]
		messages := make([]Message, 0, len(batch))
		for _, d := range batch {
			messages = append(messages, Message{
				To:    d.Token,
				Title: title,
				Body:  body,
				Data:  orEmpty(data),
				Sound: defaultSound,
			})
		}

		result, err := s.gateway.Send(ctx, messages)
		if err != nil {
			return nil, &DispatchError{BatchesSent: len(results), Err: err}
		}
		results = append(results, result)
	}

	s.log.Info().
		Int("devices", len(devices)).
		Int("batches", len(results)).
		Msg("broadcast sent")

	return results, nil
}

func orEmpty(data map[string]any) map[string]any {
	if data == nil {
		return map[string]any{}
	}
	return data
}
