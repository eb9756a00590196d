package gradation

import (
	"fmt"
	"math"

	"gradation-bot/internal/domain/entity"
)

// ToDiameter считает эквивалентный диаметр круга той же площади.
// Площадь в пикселях делится на квадрат масштаба. Диаметр всегда
// положителен: пустая площадь даёт ErrInvalidPixelArea.
func ToDiameter(pixelArea float64, scale entity.ScaleFactor) (entity.ParticleDiameter, error) {
	if !scale.Valid() {
		return 0, fmt.Errorf("scale factor %v: %w", float64(scale), ErrInvalidCalibrationInput)
	}
	if !positive(pixelArea) {
		return 0, fmt.Errorf("pixel area %v: %w", pixelArea, ErrInvalidPixelArea)
	}
	s := float64(scale)
	realArea := pixelArea / (s * s)
	return entity.ParticleDiameter(math.Sqrt(4 * realArea / math.Pi)), nil
}

// ToDiameters пересчитывает все найденные области. Пустой список — это
// проба без частиц, а не ошибка. Области без площади пропускаются.
func ToDiameters(regions []entity.Region, scale entity.ScaleFactor) ([]entity.ParticleDiameter, error) {
	if !scale.Valid() {
		return nil, fmt.Errorf("scale factor %v: %w", float64(scale), ErrInvalidCalibrationInput)
	}

	out := make([]entity.ParticleDiameter, 0, len(regions))
	for _, r := range regions {
		if !positive(r.PixelArea) {
			continue
		}
		d, err := ToDiameter(r.PixelArea, scale)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}
