package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Значения по умолчанию
const (
	DefaultMinPixelArea  = 50
	DefaultHistogramBins = 10
	DefaultChartWidth    = 800
	DefaultChartHeight   = 500
)

type Config struct {
	TelegramToken string
	MinPixelArea  float64 // частицы меньше этой площади (пикс²) считаются шумом
	HistogramBins int
	ChartWidth    int
	ChartHeight   int
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
		MinPixelArea:  DefaultMinPixelArea,
		HistogramBins: DefaultHistogramBins,
		ChartWidth:    DefaultChartWidth,
		ChartHeight:   DefaultChartHeight,
	}

	var err error
	if cfg.MinPixelArea, err = floatEnv("MIN_PIXEL_AREA", cfg.MinPixelArea); err != nil {
		return nil, err
	}
	if cfg.HistogramBins, err = intEnv("HISTOGRAM_BINS", cfg.HistogramBins); err != nil {
		return nil, err
	}
	if cfg.ChartWidth, err = intEnv("CHART_WIDTH", cfg.ChartWidth); err != nil {
		return nil, err
	}
	if cfg.ChartHeight, err = intEnv("CHART_HEIGHT", cfg.ChartHeight); err != nil {
		return nil, err
	}

	return cfg, nil
}

func floatEnv(key string, def float64) (float64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("invalid %s=%q: want a non-negative number", key, raw)
	}
	return v, nil
}

func intEnv(key string, def int) (int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("invalid %s=%q: want a positive integer", key, raw)
	}
	return v, nil
}
