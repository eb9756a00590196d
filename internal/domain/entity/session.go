package entity

// Session — рабочее состояние одного пользователя между сообщениями:
// текущий снимок, масштаб и последний результат.
type Session struct {
	Image            []byte          // текущий снимок
	Scale            ScaleFactor     // пикселей на мм, 0 — не откалибровано
	PendingReference float64         // длина эталона, ожидающая линию измерения
	LastResult       *AnalysisResult // последний расчёт для экспорта
}

// LoadImage заменяет снимок и сбрасывает калибровку: масштаб относится
// только к тому снимку, на котором его измерили.
func (s *Session) LoadImage(data []byte) {
	s.Image = data
	s.Scale = 0
	s.PendingReference = 0
}

// HasImage сообщает, загружен ли снимок.
func (s *Session) HasImage() bool {
	return len(s.Image) > 0
}

// Calibrated сообщает, можно ли пересчитывать пиксели в миллиметры.
func (s *Session) Calibrated() bool {
	return s.Scale.Valid()
}

// SetScale сохраняет результат успешной калибровки.
func (s *Session) SetScale(scale ScaleFactor) {
	s.Scale = scale
	s.PendingReference = 0
}

// InvalidateScale сбрасывает масштаб после неудачной калибровки.
func (s *Session) InvalidateScale() {
	s.Scale = 0
	s.PendingReference = 0
}
