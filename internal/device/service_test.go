package device_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportsfollow/sportsfollow/internal/device"
)

func TestService_Register_CreatesDevice(t *testing.T) {
	repo := device.NewInMemoryRepository()
	svc := device.NewService(repo)
	ctx := context.Background()

	d, created, err := svc.Register(ctx, "ExponentPushToken[abc]", "u1", device.PlatformIOS)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "u1", d.UserID)
	assert.Equal(t, device.PlatformIOS, d.Platform)
	assert.False(t, d.CreatedAt.IsZero())
}

func TestService_Register_Idempotent(t *testing.T) {
	repo := device.NewInMemoryRepository()
	svc := device.NewService(repo)
	ctx := context.Background()

	first, created, err := svc.Register(ctx, "tok-1", "u1", device.PlatformAndroid)
	require.NoError(t, err)
	require.True(t, created)

	second, created, err := svc.Register(ctx, "tok-1", "u1", device.PlatformAndroid)
	require.NoError(t, err)
	assert.False(t, created)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	// Identical in all fields except possibly updatedAt.
	assert.Equal(t, first.UserID, second.UserID)
	assert.Equal(t, first.Token, second.Token)
	assert.Equal(t, first.Platform, second.Platform)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
}

func TestService_Register_TokenUniqueAcrossUsers(t *testing.T) {
	repo := device.NewInMemoryRepository()
	svc := device.NewService(repo)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "tok-1", "u1", device.PlatformIOS)
	require.NoError(t, err)

	_, created, err := svc.Register(ctx, "tok-1", "u2", device.PlatformIOS)
	require.NoError(t, err)
	assert.False(t, created)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "u2", all[0].UserID)
}

func TestService_Register_Validation(t *testing.T) {
	svc := device.NewService(device.NewInMemoryRepository())
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "", "u1", device.PlatformIOS)
	assert.ErrorIs(t, err, device.ErrInvalidInput)

	_, _, err = svc.Register(ctx, "tok-1", "", device.PlatformIOS)
	assert.ErrorIs(t, err, device.ErrInvalidInput)

	_, _, err = svc.Register(ctx, "tok-1", "u1", "")
	assert.ErrorIs(t, err, device.ErrInvalidInput)

	_, _, err = svc.Register(ctx, "tok-1", "u1", device.Platform("windows"))
	assert.ErrorIs(t, err, device.ErrInvalidInput)
}

func TestInMemoryRepository_PreservesRegistrationOrder(t *testing.T) {
	repo := device.NewInMemoryRepository()
	svc := device.NewService(repo)
	ctx := context.Background()

	tokens := []string{"t1", "t2", "t3", "t4"}
	for _, tok := range tokens {
		_, _, err := svc.Register(ctx, tok, "u1", device.PlatformWeb)
		require.NoError(t, err)
	}

	// Re-registering an existing token must not move it to the back.
	_, _, err := svc.Register(ctx, "t2", "u1", device.PlatformWeb)
	require.NoError(t, err)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, len(tokens))
	for i, tok := range tokens {
		assert.Equal(t, tok, all[i].Token)
	}
}
