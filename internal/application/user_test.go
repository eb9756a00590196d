package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"gradation-bot/internal/domain/entity"
	"gradation-bot/internal/infrastructure/storage"
)

func TestUserService_BeginAndCancel(t *testing.T) {
	repo := storage.NewMemoryUserRepository()
	svc := NewUserService(repo)
	ctx := context.Background()

	user, err := svc.BeginImage(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, entity.StateAwaitingPhoto, user.State)

	user, err = svc.BeginSieve(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, entity.StateAwaitingSieveTable, user.State)

	user, err = svc.Cancel(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, entity.StateMainMenu, user.State)
}

func TestUserService_CancelDropsPendingCalibration(t *testing.T) {
	repo := storage.NewMemoryUserRepository()
	svc := NewUserService(repo)
	ctx := context.Background()

	err := svc.UpdateSession(ctx, 1, 10, func(s *entity.Session) error {
		s.LoadImage([]byte("photo"))
		s.SetScale(12.5)
		s.PendingReference = 20
		return nil
	})
	require.NoError(t, err)

	user, err := svc.Cancel(ctx, 1, 10)
	require.NoError(t, err)
	require.Zero(t, user.Session.PendingReference)
	require.True(t, user.Session.HasImage())
	require.Equal(t, entity.ScaleFactor(12.5), user.Session.Scale)
}

func TestUserService_SetState(t *testing.T) {
	repo := storage.NewMemoryUserRepository()
	svc := NewUserService(repo)
	ctx := context.Background()

	user, err := svc.SetState(ctx, 2, 20, entity.StateAwaitingCalibrationLine)
	require.NoError(t, err)
	require.Equal(t, entity.StateAwaitingCalibrationLine, user.State)
}
