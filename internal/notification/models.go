// Package notification dispatches push notifications to registered devices
// through the Expo push gateway.
package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// BatchSize is the number of messages sent to the push gateway per call.
// Expo caps a single push request at 100 messages; the constant is not
// negotiated with the gateway.
const BatchSize = 100

// defaultSound is attached to every push message.
const defaultSound = "default"

// Errors returned by the dispatcher.
var (
	// ErrInvalidInput indicates a missing required field.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoDevices indicates there were no registered devices to notify.
	ErrNoDevices = errors.New("no registered devices")
)

// Message is a single push message in the Expo push API shape.
type Message struct {
	// To is the recipient's Expo push token.
	To    string         `json:"to"`
	Title string         `json:"title"`
	Body  string         `json:"body"`
	Data  map[string]any `json:"data"`
	Sound string         `json:"sound"`

	// Badge is set on targeted sends only; broadcasts omit it.
	Badge int `json:"badge,omitempty"`
}

// Gateway forwards a batch of messages to the push service and returns the
// service's raw response body.
type Gateway interface {
	Send(ctx context.Context, messages []Message) (json.RawMessage, error)
}

// DispatchError reports a failed gateway call. For broadcasts it carries
// the number of batches that completed before the failure; remaining
// batches are never attempted.
type DispatchError struct {
	BatchesSent int
	Err         error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("push dispatch failed after %d completed batches: %v", e.BatchesSent, e.Err)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}
