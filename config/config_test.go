package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "token")
	t.Setenv("MIN_PIXEL_AREA", "")
	t.Setenv("HISTOGRAM_BINS", "")
	t.Setenv("CHART_WIDTH", "")
	t.Setenv("CHART_HEIGHT", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "token", cfg.TelegramToken)
	require.Equal(t, float64(DefaultMinPixelArea), cfg.MinPixelArea)
	require.Equal(t, DefaultHistogramBins, cfg.HistogramBins)
	require.Equal(t, DefaultChartWidth, cfg.ChartWidth)
	require.Equal(t, DefaultChartHeight, cfg.ChartHeight)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("MIN_PIXEL_AREA", "12.5")
	t.Setenv("HISTOGRAM_BINS", "20")
	t.Setenv("CHART_WIDTH", "1024")
	t.Setenv("CHART_HEIGHT", "768")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 12.5, cfg.MinPixelArea)
	require.Equal(t, 20, cfg.HistogramBins)
	require.Equal(t, 1024, cfg.ChartWidth)
	require.Equal(t, 768, cfg.ChartHeight)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"MIN_PIXEL_AREA": "-1",
		"HISTOGRAM_BINS": "ten",
		"CHART_WIDTH":    "0",
		"CHART_HEIGHT":   "1.5",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := Load()
			require.Error(t, err)
		})
	}
}
