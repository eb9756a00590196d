package gradation

import (
	"fmt"
	"math"

	"gradation-bot/internal/domain/entity"
)

// Calibrate переводит длину линии в пикселях и известную длину эталона в
// масштаб (пикселей на единицу длины). При ошибке масштаб равен нулю.
func Calibrate(pixelDistance, referenceLength float64) (entity.ScaleFactor, error) {
	if !positive(pixelDistance) {
		return 0, fmt.Errorf("pixel distance %v: %w", pixelDistance, ErrInvalidCalibrationInput)
	}
	if !positive(referenceLength) {
		return 0, fmt.Errorf("reference length %v: %w", referenceLength, ErrInvalidCalibrationInput)
	}
	return entity.ScaleFactor(pixelDistance / referenceLength), nil
}

// CalibrateLine калибрует по двум концам линии, проведённой по эталону.
func CalibrateLine(a, b entity.Point, referenceLength float64) (entity.ScaleFactor, error) {
	return Calibrate(a.DistanceTo(b), referenceLength)
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
