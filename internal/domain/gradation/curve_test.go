package gradation

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"gradation-bot/internal/domain/entity"
)

func requireMonotonic(t *testing.T, curve entity.GradationCurve) {
	t.Helper()
	require.NotEmpty(t, curve)
	require.Zero(t, curve[0].Passing)
	require.Equal(t, 100.0, curve[len(curve)-1].Passing)
	for i := 1; i < len(curve); i++ {
		require.GreaterOrEqual(t, curve[i].Size, curve[i-1].Size, "size order at %d", i)
		require.GreaterOrEqual(t, curve[i].Passing, curve[i-1].Passing, "passing order at %d", i)
	}
}

func TestFromDiameters(t *testing.T) {
	got := FromDiameters([]entity.ParticleDiameter{4, 1, 3, 2})
	want := entity.GradationCurve{
		{Size: MinSize, Passing: 0},
		{Size: 1, Passing: 0},
		{Size: 2, Passing: 25},
		{Size: 3, Passing: 50},
		{Size: 4, Passing: 75},
		{Size: 4, Passing: 100},
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Fatalf("curve mismatch (-want +got):\n%s", diff)
	}
}

func TestFromDiameters_Empty(t *testing.T) {
	curve := FromDiameters(nil)
	require.True(t, curve.Empty())
	require.Zero(t, Characterize(curve))
}

func TestFromDiameters_Monotonic(t *testing.T) {
	inputs := [][]entity.ParticleDiameter{
		{5},
		{2, 2, 2},
		{0.0004, 0.0002, 3, 0.0009, 12},
		{10, 0.5, 7.25, 3.3, 3.3, 1, 19, 0.8},
	}
	for _, in := range inputs {
		requireMonotonic(t, FromDiameters(in))
	}
}

func TestFromDiameters_DoesNotMutateInput(t *testing.T) {
	in := []entity.ParticleDiameter{3, 1, 2}
	FromDiameters(in)
	require.Equal(t, []entity.ParticleDiameter{3, 1, 2}, in)
}

func TestFromSieveEntries(t *testing.T) {
	entries := []entity.SieveEntry{
		{Label: "#20", Opening: 0.85, Retained: 20},
		{Label: "#4", Opening: 4.75, Retained: 50},
		{Label: "#10", Opening: 2.0, Retained: 30},
	}
	got, err := FromSieveEntries(entries)
	require.NoError(t, err)

	want := entity.GradationCurve{
		{Size: MinSize, Passing: 0},
		{Size: 0.85, Passing: 0},
		{Size: 2.0, Passing: 20},
		{Size: 4.75, Passing: 50},
		{Size: 4.75 * 1.2, Passing: 100},
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Fatalf("curve mismatch (-want +got):\n%s", diff)
	}
	requireMonotonic(t, got)
}

func TestFromSieveEntries_FinestSieveIsExactlyZero(t *testing.T) {
	entries := []entity.SieveEntry{
		{Opening: 9.5, Retained: 0.1},
		{Opening: 4.75, Retained: 0.2},
		{Opening: 2.36, Retained: 0.3},
		{Opening: 1.18, Retained: 0.7},
		{Opening: 0.075, Retained: 1.3},
	}
	curve, err := FromSieveEntries(entries)
	require.NoError(t, err)
	requireMonotonic(t, curve)

	for _, p := range curve {
		if p.Size == 0.075 {
			require.Equal(t, 0.0, p.Passing)
		}
	}
}

func TestFromSieveEntries_ZeroRetainedTiers(t *testing.T) {
	entries := []entity.SieveEntry{
		{Opening: 4.75, Retained: 0},
		{Opening: 2.0, Retained: 10},
		{Opening: 1.0, Retained: 0},
		{Opening: 0.5, Retained: 10},
		{Opening: 0.5, Retained: 5},
	}
	curve, err := FromSieveEntries(entries)
	require.NoError(t, err)
	requireMonotonic(t, curve)
}

func TestFromSieveEntries_Errors(t *testing.T) {
	_, err := FromSieveEntries(nil)
	require.ErrorIs(t, err, ErrEmptyOrZeroWeightInput)

	_, err = FromSieveEntries([]entity.SieveEntry{{Opening: 1, Retained: 0}, {Opening: 2, Retained: 0}})
	require.ErrorIs(t, err, ErrEmptyOrZeroWeightInput)

	_, err = FromSieveEntries([]entity.SieveEntry{{Opening: 0, Retained: 5}})
	require.ErrorIs(t, err, ErrInvalidSieveEntry)

	_, err = FromSieveEntries([]entity.SieveEntry{{Opening: 1, Retained: -5}})
	require.ErrorIs(t, err, ErrInvalidSieveEntry)
}
