package app

import (
	"log"

	"gradation-bot/internal/domain/entity"
	"gradation-bot/internal/domain/port"
)

// AnalysisOutput содержит результат расчёта и картинки для отправки.
// Картинки необязательны: ошибка отрисовки не отменяет расчёт.
type AnalysisOutput struct {
	Result         *entity.AnalysisResult
	CurveChart     []byte
	HistogramChart []byte
	Highlighted    []byte
}

func render(renderer port.ChartRenderer, result *entity.AnalysisResult) *AnalysisOutput {
	out := &AnalysisOutput{Result: result}
	if renderer == nil || !result.HasCurve() {
		return out
	}

	var err error
	if out.CurveChart, err = renderer.RenderCurve(result.Curve, result.Diameters); err != nil {
		log.Printf("Error rendering curve %s: %v", result.ID, err)
	}
	if len(result.Histogram.Counts) > 0 {
		if out.HistogramChart, err = renderer.RenderHistogram(result.Histogram); err != nil {
			log.Printf("Error rendering histogram %s: %v", result.ID, err)
		}
	}
	return out
}
