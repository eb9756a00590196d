package gradation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"gradation-bot/internal/domain/entity"
)

func TestDiameterAtPercentile_ExactNode(t *testing.T) {
	curve := entity.GradationCurve{{Size: 1, Passing: 0}, {Size: 10, Passing: 50}, {Size: 100, Passing: 100}}
	require.Equal(t, 10.0, DiameterAtPercentile(curve, 50))
}

func TestDiameterAtPercentile_LogMidpoint(t *testing.T) {
	curve := entity.GradationCurve{{Size: 1, Passing: 0}, {Size: 100, Passing: 100}}
	require.InDelta(t, 10.0, DiameterAtPercentile(curve, 50), 1e-9)
	require.InDelta(t, math.Pow(10, 0.2), DiameterAtPercentile(curve, 10), 1e-9)
}

func TestDiameterAtPercentile_Clamp(t *testing.T) {
	curve := entity.GradationCurve{{Size: 2, Passing: 20}, {Size: 8, Passing: 80}}
	require.Equal(t, 2.0, DiameterAtPercentile(curve, 10))
	require.Equal(t, 8.0, DiameterAtPercentile(curve, 90))
}

func TestDiameterAtPercentile_ZeroSlopeBracket(t *testing.T) {
	curve := entity.GradationCurve{
		{Size: 1, Passing: 0},
		{Size: 2, Passing: 40},
		{Size: 3, Passing: 40},
		{Size: 4, Passing: 100},
	}
	// Горизонтальный отрезок, на котором лежит цель, выбирается только
	// если он первый подходящий; здесь первым подходит (1,0)-(2,40).
	require.Equal(t, 2.0, DiameterAtPercentile(curve, 40))

	flat := entity.GradationCurve{
		{Size: 1, Passing: 10},
		{Size: 2, Passing: 10},
		{Size: 3, Passing: 100},
	}
	require.Zero(t, DiameterAtPercentile(flat, 10))
}

func TestDiameterAtPercentile_FlatRunAfterRise(t *testing.T) {
	gap := entity.GradationCurve{
		{Size: 1, Passing: 0},
		{Size: 2, Passing: 50},
		{Size: 3, Passing: 50},
		{Size: 4, Passing: 100},
	}
	require.Equal(t, 2.0, DiameterAtPercentile(gap, 50))
}

func TestDiameterAtPercentile_ZeroSizeIsFloored(t *testing.T) {
	curve := entity.GradationCurve{{Size: 0, Passing: 0}, {Size: 10, Passing: 100}}
	got := DiameterAtPercentile(curve, 50)
	require.InDelta(t, math.Sqrt(MinSize*10), got, 1e-12)
}

func TestDiameterAtPercentile_Empty(t *testing.T) {
	require.Zero(t, DiameterAtPercentile(nil, 50))
}

func TestDiameterAtPercentile_NonDecreasing(t *testing.T) {
	curve := FromDiameters([]entity.ParticleDiameter{0.3, 0.7, 1.1, 1.1, 2.5, 4, 4.2, 6, 9.5, 13})
	prev := 0.0
	for p := 1.0; p < 100; p += 0.5 {
		d := DiameterAtPercentile(curve, p)
		require.GreaterOrEqual(t, d, prev, "p=%v", p)
		prev = d
	}

	sieve, err := FromSieveEntries([]entity.SieveEntry{
		{Opening: 19, Retained: 5},
		{Opening: 9.5, Retained: 15},
		{Opening: 4.75, Retained: 30},
		{Opening: 2.36, Retained: 25},
		{Opening: 0.6, Retained: 20},
		{Opening: 0.075, Retained: 5},
	})
	require.NoError(t, err)
	prev = 0
	for p := 1.0; p < 100; p += 0.5 {
		d := DiameterAtPercentile(sieve, p)
		require.GreaterOrEqual(t, d, prev, "p=%v", p)
		prev = d
	}
}

func TestCharacterize_SieveScenario(t *testing.T) {
	curve, err := FromSieveEntries([]entity.SieveEntry{
		{Opening: 4.75, Retained: 50},
		{Opening: 2.0, Retained: 30},
		{Opening: 0.85, Retained: 20},
	})
	require.NoError(t, err)

	d := Characterize(curve)
	// Проход после самого крупного сита — 50%, значит D50 попадает ровно
	// в узел 4.75 мм, а D60 лежит между 4.75 и 5.7.
	require.Equal(t, 4.75, d.D50)
	require.Greater(t, d.D60, 4.75)
	require.Less(t, d.D60, 4.75*1.2)

	// D30 между 2.0 (20%) и 4.75 (50%).
	want30 := math.Pow(10, math.Log10(2.0)+(math.Log10(4.75)-math.Log10(2.0))*(30.0-20.0)/(50.0-20.0))
	require.InDelta(t, want30, d.D30, 1e-9)

	// D10 между 0.85 (0%) и 2.0 (20%).
	want10 := math.Sqrt(0.85 * 2.0)
	require.InDelta(t, want10, d.D10, 1e-9)

	require.InDelta(t, d.D60/d.D10, d.Cu, 1e-12)
	require.InDelta(t, d.D30*d.D30/(d.D10*d.D60), d.Cc, 1e-12)
}

func TestCharacterize_ImageScenario(t *testing.T) {
	scale, err := Calibrate(100, 10)
	require.NoError(t, err)

	regions := []entity.Region{{PixelArea: 785}, {PixelArea: 1963.5}, {PixelArea: 3141.6}}
	ds, err := ToDiameters(regions, scale)
	require.NoError(t, err)
	require.InDelta(t, 3.16, float64(ds[0]), 0.01)

	d := Characterize(FromDiameters(ds))
	require.Greater(t, d.D10, 0.0)
	require.LessOrEqual(t, d.D10, d.D30)
	require.LessOrEqual(t, d.D30, d.D50)
	require.LessOrEqual(t, d.D50, d.D60)
	require.Greater(t, d.Cu, 0.0)
}
