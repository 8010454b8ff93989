// Package device provides push-notification device registration.
package device

import (
	"errors"
	"time"
)

// Errors returned by the device service and repositories.
var (
	ErrDeviceNotFound = errors.New("device not found")

	// ErrInvalidInput indicates a missing field or an unknown platform.
	ErrInvalidInput = errors.New("invalid input")
)

// Platform identifies the push platform a token belongs to.
type Platform string

const (
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
	PlatformWeb     Platform = "web"
)

// Valid reports whether p is one of the known platforms.
func (p Platform) Valid() bool {
	switch p {
	case PlatformIOS, PlatformAndroid, PlatformWeb:
		return true
	}
	return false
}

// Device represents a registered push device. The Expo push token is the
// identity: re-registering a token under a different user overwrites the
// owner instead of creating a duplicate.
type Device struct {
	// UserID is the owning user's Google ID.
	UserID string

	// Token is the Expo push token, globally unique.
	Token string

	Platform Platform

	CreatedAt time.Time
	UpdatedAt time.Time
}
