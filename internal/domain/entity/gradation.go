package entity

import "math"

// ScaleFactor — масштаб снимка в пикселях на миллиметр. Ноль означает
// «калибровка не выполнена».
type ScaleFactor float64

// Valid сообщает, можно ли использовать масштаб для пересчёта размеров.
func (s ScaleFactor) Valid() bool {
	f := float64(s)
	return f > 0 && !math.IsInf(f, 0) && !math.IsNaN(f)
}

// ParticleDiameter — эквивалентный диаметр одной частицы в мм.
type ParticleDiameter float64

// SieveEntry — одна строка ситового анализа.
type SieveEntry struct {
	Label    string  // подпись сита, только для отображения
	Opening  float64 // размер ячейки, мм
	Retained float64 // остаток на сите в любых согласованных единицах
}

// GradationPoint — точка кривой гранулометрического состава.
type GradationPoint struct {
	Size    float64 // размер, мм
	Passing float64 // процент прохода, 0..100
}

// GradationCurve упорядочена по возрастанию размера, процент прохода
// не убывает, начинается с 0 и заканчивается 100.
type GradationCurve []GradationPoint

// Empty сообщает, что кривая не построена.
func (c GradationCurve) Empty() bool {
	return len(c) == 0
}

// Sizes возвращает размеры точек кривой.
func (c GradationCurve) Sizes() []float64 {
	out := make([]float64, len(c))
	for i, p := range c {
		out[i] = p.Size
	}
	return out
}

// Passing возвращает проценты прохода точек кривой.
func (c GradationCurve) Passing() []float64 {
	out := make([]float64, len(c))
	for i, p := range c {
		out[i] = p.Passing
	}
	return out
}

// CharacteristicDiameters — характерные диаметры и коэффициенты.
// Нулевые значения означают «не вычисляется».
type CharacteristicDiameters struct {
	D10 float64
	D30 float64
	D50 float64
	D60 float64
	Cu  float64 // коэффициент неоднородности D60/D10
	Cc  float64 // коэффициент кривизны D30²/(D10·D60)
}

// Histogram — распределение размеров по равным интервалам.
type Histogram struct {
	Labels []string
	Counts []int
}

// ParticleSummary — описательная статистика по диаметрам частиц.
type ParticleSummary struct {
	Count  int
	Min    float64
	Max    float64
	Mean   float64
	Median float64
	StdDev float64
}
