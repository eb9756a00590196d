package app

import (
	"context"
	"errors"
	"fmt"

	"gradation-bot/internal/domain/entity"
	"gradation-bot/internal/domain/gradation"
	"gradation-bot/internal/domain/port"
)

// DefaultHistogramBins — число интервалов гистограммы по умолчанию.
const DefaultHistogramBins = 10

var (
	ErrDetectorNotConfigured = errors.New("detector is not configured")
	ErrNoImage               = errors.New("image is not loaded")
	ErrNotCalibrated         = errors.New("scale is not calibrated")
	ErrNoResult              = errors.New("no analysis result yet")
)

// Analyzer — расчёт без состояния: от снимка или таблицы сит до результата.
// Используется и ботом, и CLI.
type Analyzer struct {
	detector port.RegionDetector
	bins     int
}

// NewAnalyzer создаёт анализатор. detector может быть nil, если нужен
// только ситовый анализ.
func NewAnalyzer(detector port.RegionDetector, bins int) *Analyzer {
	if bins <= 0 {
		bins = DefaultHistogramBins
	}
	return &Analyzer{detector: detector, bins: bins}
}

// AnalyzeImage находит частицы на снимке и строит кривую по их числу.
// Снимок без частиц даёт результат с пустой кривой и нулевыми диаметрами.
func (a *Analyzer) AnalyzeImage(ctx context.Context, image []byte, scale entity.ScaleFactor) (*entity.AnalysisResult, error) {
	if a.detector == nil {
		return nil, ErrDetectorNotConfigured
	}
	// Без калибровки сегментацию не запускаем.
	if !scale.Valid() {
		return nil, fmt.Errorf("analyze image: %w", gradation.ErrInvalidCalibrationInput)
	}

	seg, err := a.detector.Detect(ctx, image)
	if err != nil {
		return nil, fmt.Errorf("detect particles: %w", err)
	}

	particles, err := gradation.ToDiameters(seg.Regions, scale)
	if err != nil {
		return nil, err
	}

	result := entity.NewAnalysisResult(entity.SourceImage)
	result.Segmentation = seg
	result.Scale = scale
	result.Particles = particles
	result.Curve = gradation.FromDiameters(particles)
	result.Diameters = gradation.Characterize(result.Curve)
	result.Histogram = gradation.Histogram(gradation.DiameterValues(particles), a.bins)
	result.Summary = gradation.Summarize(particles)
	return result, nil
}

// AnalyzeSieve строит кривую по таблице сит.
func (a *Analyzer) AnalyzeSieve(entries []entity.SieveEntry) (*entity.AnalysisResult, error) {
	curve, err := gradation.FromSieveEntries(entries)
	if err != nil {
		return nil, err
	}

	result := entity.NewAnalysisResult(entity.SourceSieve)
	result.Sieve = entries
	result.Curve = curve
	result.Diameters = gradation.Characterize(curve)
	return result, nil
}

// Highlight возвращает снимок с рамками вокруг найденных частиц.
func (a *Analyzer) Highlight(image []byte, result *entity.AnalysisResult) ([]byte, error) {
	if a.detector == nil {
		return nil, ErrDetectorNotConfigured
	}
	if result == nil || result.Segmentation == nil {
		return nil, errors.New("no segmentation to highlight")
	}
	return a.detector.HighlightRegions(image, result.Segmentation)
}
