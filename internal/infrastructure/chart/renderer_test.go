package chart

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"

	"gradation-bot/internal/domain/entity"
	"gradation-bot/internal/domain/gradation"
)

func TestRenderer_RenderCurve(t *testing.T) {
	curve, err := gradation.FromSieveEntries([]entity.SieveEntry{
		{Opening: 4.75, Retained: 50},
		{Opening: 2.0, Retained: 30},
		{Opening: 0.85, Retained: 20},
	})
	require.NoError(t, err)

	before := append(entity.GradationCurve(nil), curve...)

	r := NewRenderer(640, 400)
	out, err := r.RenderCurve(curve, gradation.Characterize(curve))
	require.NoError(t, err)
	require.Equal(t, before, curve)

	img, err := png.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	require.Equal(t, 640, img.Bounds().Dx())
	require.Equal(t, 400, img.Bounds().Dy())
}

func TestRenderer_RenderCurve_TooShort(t *testing.T) {
	_, err := NewRenderer(0, 0).RenderCurve(entity.GradationCurve{{Size: 1, Passing: 100}}, entity.CharacteristicDiameters{})
	require.Error(t, err)
}

func TestRenderer_RenderHistogram(t *testing.T) {
	h := gradation.Histogram([]float64{0.4, 0.9, 1.3, 1.4, 2.8, 3.3, 5.1}, 5)
	out, err := NewRenderer(0, 0).RenderHistogram(h)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	require.Equal(t, DefaultWidth, img.Bounds().Dx())

	_, err = NewRenderer(0, 0).RenderHistogram(entity.Histogram{})
	require.Error(t, err)
}

func TestDecadeTicks(t *testing.T) {
	ticks := decadeTicks(-3, 1)
	require.Len(t, ticks, 5)
	require.Equal(t, "0.001", ticks[0].Label)
	require.Equal(t, "1", ticks[3].Label)
	require.Equal(t, "10", ticks[4].Label)
}
