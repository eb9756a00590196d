package gradation

import (
	"fmt"
	"math"
	"sort"

	"gradation-bot/internal/domain/entity"
)

// MinSize — условный минимальный размер, мм. Используется как опорная
// точка с нулевым проходом и как нижняя граница под логарифм.
const MinSize = 0.001

// coarseAnchorFactor ставит точку 100% прохода выше самого крупного сита.
const coarseAnchorFactor = 1.2

// FromDiameters строит кривую по числу частиц: i-я по возрастанию частица
// получает проход i/n·100. Пустой вход даёт пустую кривую.
//
// Опорная точка с нулевым проходом ставится в MinSize, либо ниже, если
// в пробе есть частицы мельче.
func FromDiameters(sizes []entity.ParticleDiameter) entity.GradationCurve {
	n := len(sizes)
	if n == 0 {
		return entity.GradationCurve{}
	}

	sorted := make([]float64, n)
	for i, s := range sizes {
		sorted[i] = float64(s)
	}
	sort.Float64s(sorted)

	curve := make(entity.GradationCurve, 0, n+2)
	curve = append(curve, entity.GradationPoint{Size: math.Min(MinSize, sorted[0]), Passing: 0})
	for i, s := range sorted {
		curve = append(curve, entity.GradationPoint{
			Size:    s,
			Passing: float64(i) / float64(n) * 100,
		})
	}
	curve = append(curve, entity.GradationPoint{Size: sorted[n-1], Passing: 100})

	sortCurve(curve)
	return curve
}

// FromSieveEntries строит кривую по ситовому анализу. Сита считаются сверху
// вниз (от крупного к мелкому), проход = 100 − накопленный остаток.
func FromSieveEntries(entries []entity.SieveEntry) (entity.GradationCurve, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("no sieve rows: %w", ErrEmptyOrZeroWeightInput)
	}

	for i, e := range entries {
		if !positive(e.Opening) {
			return nil, fmt.Errorf("row %d opening %v: %w", i+1, e.Opening, ErrInvalidSieveEntry)
		}
		if e.Retained < 0 || math.IsNaN(e.Retained) || math.IsInf(e.Retained, 0) {
			return nil, fmt.Errorf("row %d retained %v: %w", i+1, e.Retained, ErrInvalidSieveEntry)
		}
	}

	stack := make([]entity.SieveEntry, len(entries))
	copy(stack, entries)
	sort.SliceStable(stack, func(i, j int) bool {
		return stack[i].Opening > stack[j].Opening
	})

	// Суммируем в том же порядке, что и накопленный остаток: на самом
	// мелком сите проход получается ровно 0.
	var total float64
	for _, e := range stack {
		total += e.Retained
	}
	if total == 0 {
		return nil, fmt.Errorf("total retained weight is zero: %w", ErrEmptyOrZeroWeightInput)
	}

	curve := make(entity.GradationCurve, 0, len(stack)+2)
	curve = append(curve, entity.GradationPoint{Size: stack[0].Opening * coarseAnchorFactor, Passing: 100})

	var cumulative float64
	for _, e := range stack {
		cumulative += e.Retained
		curve = append(curve, entity.GradationPoint{
			Size:    e.Opening,
			Passing: 100 - cumulative/total*100,
		})
	}
	finest := stack[len(stack)-1].Opening
	curve = append(curve, entity.GradationPoint{Size: math.Min(MinSize, finest), Passing: 0})

	sortCurve(curve)
	return curve, nil
}

// sortCurve упорядочивает точки по размеру, при равных размерах — по
// проходу, чтобы кривая оставалась неубывающей.
func sortCurve(curve entity.GradationCurve) {
	sort.SliceStable(curve, func(i, j int) bool {
		if curve[i].Size != curve[j].Size {
			return curve[i].Size < curve[j].Size
		}
		return curve[i].Passing < curve[j].Passing
	})
}
