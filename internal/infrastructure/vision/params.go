package vision

import (
	"gradation-bot/internal/domain/port"
)

// DefaultMinPixelArea — области меньше этой площади считаются шумом.
const DefaultMinPixelArea = 50

// ParticleDetector сегментирует снимок пробы: серый канал, размытие 5×5,
// порог Оцу (частицы темнее фона), внешние контуры. Реализация выбирается
// тегом сборки gocv.
type ParticleDetector struct {
	MinPixelArea float64 // площадь в пикселях, не больше которой — шум
	BlurKernel   int     // размер ядра гауссова размытия
	MinImageSide int     // минимальная сторона снимка в пикселях
}

// NewParticleDetector создаёт детектор с порогом шума minPixelArea.
func NewParticleDetector(minPixelArea float64) *ParticleDetector {
	if minPixelArea < 0 {
		minPixelArea = DefaultMinPixelArea
	}
	return &ParticleDetector{
		MinPixelArea: minPixelArea,
		BlurKernel:   5,
		MinImageSide: 64,
	}
}

// Проверка реализации интерфейса
var _ port.RegionDetector = (*ParticleDetector)(nil)
