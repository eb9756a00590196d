package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"gradation-bot/internal/domain/entity"
	"gradation-bot/internal/domain/gradation"
)

func sieveResult(t *testing.T) *entity.AnalysisResult {
	t.Helper()
	entries := []entity.SieveEntry{
		{Label: "#4", Opening: 4.75, Retained: 50},
		{Label: "#10", Opening: 2.0, Retained: 30},
		{Label: "#20", Opening: 0.85, Retained: 20},
	}
	curve, err := gradation.FromSieveEntries(entries)
	require.NoError(t, err)

	r := entity.NewAnalysisResult(entity.SourceSieve)
	r.Sieve = entries
	r.Curve = curve
	r.Diameters = gradation.Characterize(curve)
	return r
}

func TestXLSXExporter_Sieve(t *testing.T) {
	result := sieveResult(t)

	data, name, err := NewXLSXExporter().Export(result)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(name, "gradation-"))
	require.True(t, strings.HasSuffix(name, ".xlsx"))

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, []string{SheetResult, SheetCurve, SheetSieve}, f.GetSheetList())

	curve, err := f.GetRows(SheetCurve)
	require.NoError(t, err)
	require.Len(t, curve, len(result.Curve)+1)

	sieve, err := f.GetRows(SheetSieve)
	require.NoError(t, err)
	require.Equal(t, "#4", sieve[1][0])

	summary, err := f.GetRows(SheetResult)
	require.NoError(t, err)
	require.Equal(t, result.ID.String(), summary[0][1])
	require.Equal(t, "D50, мм", summary[5][0])
}

func TestXLSXExporter_Image(t *testing.T) {
	ds := []entity.ParticleDiameter{1.2, 2.5, 3.1, 4.8}
	r := entity.NewAnalysisResult(entity.SourceImage)
	r.Particles = ds
	r.Curve = gradation.FromDiameters(ds)
	r.Diameters = gradation.Characterize(r.Curve)
	r.Histogram = gradation.Histogram(gradation.DiameterValues(ds), 3)
	r.Summary = gradation.Summarize(ds)
	r.Scale = 10
	r.Segmentation = &entity.Segmentation{
		ImageWidth:  200,
		ImageHeight: 100,
		Regions:     []entity.Region{{X: 10, Y: 20, Width: 30, Height: 40, PixelArea: 900}},
	}

	data, _, err := NewXLSXExporter().Export(r)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, []string{SheetResult, SheetCurve, SheetParticles, SheetHistogram, SheetRegions}, f.GetSheetList())

	particles, err := f.GetRows(SheetParticles)
	require.NoError(t, err)
	require.Len(t, particles, len(ds)+1)

	regions, err := f.GetRows(SheetRegions)
	require.NoError(t, err)
	require.Len(t, regions, 2)
	require.Equal(t, []string{"1", "25", "40", "30", "40", "900"}, regions[1])
}

func TestXLSXExporter_Nil(t *testing.T) {
	_, _, err := NewXLSXExporter().Export(nil)
	require.Error(t, err)
}
