package gradation

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"gradation-bot/internal/domain/entity"
)

// Histogram раскладывает размеры по binCount интервалам одинаковой ширины.
// Нужна только для отображения; на расчёт диаметров не влияет.
func Histogram(sizes []float64, binCount int) entity.Histogram {
	if len(sizes) == 0 || binCount <= 0 {
		return entity.Histogram{}
	}

	lo, hi := floats.Min(sizes), floats.Max(sizes)
	width := (hi - lo) / float64(binCount)

	// Все размеры одинаковые: один интервал с запасом по краям.
	if width <= 0 {
		return entity.Histogram{
			Labels: []string{fmt.Sprintf("%.2f-%.2f", lo-1, hi+1)},
			Counts: []int{len(sizes)},
		}
	}

	h := entity.Histogram{
		Labels: make([]string, binCount),
		Counts: make([]int, binCount),
	}
	for i := range h.Labels {
		from := lo + float64(i)*width
		h.Labels[i] = fmt.Sprintf("%.2f-%.2f", from, from+width)
	}

	for _, s := range sizes {
		idx := int((s - lo) / width)
		if idx >= binCount {
			idx = binCount - 1
		}
		if idx < 0 {
			idx = 0
		}
		h.Counts[idx]++
	}
	return h
}

// DiameterValues переводит диаметры в []float64 для гистограммы и статистики.
func DiameterValues(ds []entity.ParticleDiameter) []float64 {
	out := make([]float64, len(ds))
	for i, d := range ds {
		out[i] = float64(d)
	}
	return out
}
