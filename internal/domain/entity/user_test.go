package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewUser_DefaultState(t *testing.T) {
	u := NewUser(1, 10)
	require.Equal(t, StateMainMenu, u.State)
	require.Equal(t, int64(1), u.ID)
	require.Equal(t, int64(10), u.ChatID)
	require.NotNil(t, u.Session)
	require.False(t, u.Session.HasImage())
	require.False(t, u.Session.Calibrated())
}

func TestSession_LoadImageInvalidatesScale(t *testing.T) {
	s := &Session{}
	s.LoadImage([]byte("first"))
	s.SetScale(10)
	require.True(t, s.Calibrated())

	s.PendingReference = 25
	s.LoadImage([]byte("second"))
	require.True(t, s.HasImage())
	require.False(t, s.Calibrated())
	require.Zero(t, s.PendingReference)
}

func TestSession_InvalidateScale(t *testing.T) {
	s := &Session{Scale: 4, PendingReference: 12}
	s.InvalidateScale()
	require.False(t, s.Calibrated())
	require.Zero(t, s.PendingReference)
}

func TestScaleFactorValid(t *testing.T) {
	require.True(t, ScaleFactor(0.5).Valid())
	require.False(t, ScaleFactor(0).Valid())
	require.False(t, ScaleFactor(-3).Valid())
}

func TestGradationCurveAccessors(t *testing.T) {
	c := GradationCurve{{Size: 1, Passing: 0}, {Size: 10, Passing: 100}}
	require.False(t, c.Empty())
	require.Equal(t, []float64{1, 10}, c.Sizes())
	require.Equal(t, []float64{0, 100}, c.Passing())
	require.True(t, GradationCurve(nil).Empty())
}
