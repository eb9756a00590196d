package gradation

import (
	"math"

	"gradation-bot/internal/domain/entity"
)

// Целевые проценты прохода для характерных диаметров.
const (
	P10 = 10.0
	P30 = 30.0
	P50 = 50.0
	P60 = 60.0
)

// DiameterAtPercentile возвращает размер, которому на кривой соответствует
// заданный процент прохода. Интерполяция линейная по log10(размера).
//
// Вне диапазона кривой возвращается крайний размер. Если подходящий
// отрезок горизонтальный, размер не определён однозначно и возвращается 0.
func DiameterAtPercentile(curve entity.GradationCurve, target float64) float64 {
	if len(curve) == 0 {
		return 0
	}

	var p1, p2 *entity.GradationPoint
	for i := 0; i < len(curve)-1; i++ {
		if curve[i].Passing <= target && target <= curve[i+1].Passing {
			p1, p2 = &curve[i], &curve[i+1]
			break
		}
	}

	if p1 == nil {
		first, last := curve[0], curve[len(curve)-1]
		if target <= first.Passing {
			return first.Size
		}
		if target >= last.Passing {
			return last.Size
		}
		return 0
	}
	if p1.Passing == p2.Passing {
		return 0
	}

	// Точное совпадение с узлом кривой не интерполируем.
	if target == p1.Passing {
		return p1.Size
	}
	if target == p2.Passing {
		return p2.Size
	}

	logD1 := math.Log10(logFloor(p1.Size))
	logD2 := math.Log10(logFloor(p2.Size))
	frac := (target - p1.Passing) / (p2.Passing - p1.Passing)

	return math.Pow(10, logD1+(logD2-logD1)*frac)
}

// logFloor подменяет неположительный размер на MinSize перед логарифмом.
func logFloor(size float64) float64 {
	if size > 0 {
		return size
	}
	return MinSize
}

// Characterize считает D10, D30, D50, D60 и коэффициенты Cu, Cc.
// Для пустой кривой все значения нулевые.
func Characterize(curve entity.GradationCurve) entity.CharacteristicDiameters {
	d := entity.CharacteristicDiameters{
		D10: DiameterAtPercentile(curve, P10),
		D30: DiameterAtPercentile(curve, P30),
		D50: DiameterAtPercentile(curve, P50),
		D60: DiameterAtPercentile(curve, P60),
	}
	d.Cu, d.Cc = Coefficients(d.D10, d.D30, d.D60)
	return d
}
