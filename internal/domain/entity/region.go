package entity

import "math"

// Region представляет область, найденную сегментацией (одна частица)
type Region struct {
	X         int     // координата X левого верхнего угла
	Y         int     // координата Y левого верхнего угла
	Width     int     // ширина рамки в пикселях
	Height    int     // высота рамки в пикселях
	PixelArea float64 // площадь контура в пикселях
}

// Center возвращает координаты центра рамки
func (r Region) Center() (x, y int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Segmentation хранит итог сегментации изображения.
type Segmentation struct {
	ImageWidth  int      // ширина изображения
	ImageHeight int      // высота изображения
	Regions     []Region // найденные частицы
}

// Point — точка в пиксельных координатах изображения.
type Point struct {
	X float64
	Y float64
}

// DistanceTo возвращает евклидово расстояние до другой точки.
func (p Point) DistanceTo(o Point) float64 {
	return math.Hypot(o.X-p.X, o.Y-p.Y)
}
