package gradation

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"gradation-bot/internal/domain/entity"
)

// Summarize считает описательную статистику по диаметрам частиц.
func Summarize(ds []entity.ParticleDiameter) entity.ParticleSummary {
	if len(ds) == 0 {
		return entity.ParticleSummary{}
	}

	values := DiameterValues(ds)
	sort.Float64s(values)

	s := entity.ParticleSummary{
		Count:  len(values),
		Min:    floats.Min(values),
		Max:    floats.Max(values),
		Mean:   stat.Mean(values, nil),
		Median: stat.Quantile(0.5, stat.Empirical, values, nil),
	}
	if len(values) > 1 {
		s.StdDev = stat.StdDev(values, nil)
	}
	return s
}
