package port

import "gradation-bot/internal/domain/entity"

// ChartRenderer интерфейс построения графиков для отправки пользователю
type ChartRenderer interface {
	// RenderCurve рисует кривую гранулометрического состава (лог. ось размеров)
	RenderCurve(curve entity.GradationCurve, d entity.CharacteristicDiameters) ([]byte, error)

	// RenderHistogram рисует гистограмму размеров частиц
	RenderHistogram(h entity.Histogram) ([]byte, error)
}
