package entity

import (
	"time"

	"github.com/google/uuid"
)

// AnalysisSource — откуда получены исходные данные.
type AnalysisSource string

const (
	SourceImage AnalysisSource = "image" // снимок с калибровкой
	SourceSieve AnalysisSource = "sieve" // ситовый анализ
)

// AnalysisResult хранит итог одного расчёта гранулометрии.
type AnalysisResult struct {
	ID           uuid.UUID
	Source       AnalysisSource
	CreatedAt    time.Time
	Curve        GradationCurve          // кривая для графика
	Diameters    CharacteristicDiameters // D10..D60, Cu, Cc
	Histogram    Histogram               // только для отображения
	Summary      ParticleSummary         // статистика по частицам (только для снимка)
	Particles    []ParticleDiameter      // диаметры частиц, мм
	Sieve        []SieveEntry            // исходная таблица сит
	Segmentation *Segmentation           // найденные области (только для снимка)
	Scale        ScaleFactor             // масштаб, с которым считались размеры
}

// NewAnalysisResult создаёт пустой результат с новым идентификатором.
func NewAnalysisResult(source AnalysisSource) *AnalysisResult {
	return &AnalysisResult{
		ID:        uuid.New(),
		Source:    source,
		CreatedAt: time.Now(),
	}
}

// HasCurve сообщает, есть ли по чему строить график и считать диаметры.
func (r *AnalysisResult) HasCurve() bool {
	return r != nil && !r.Curve.Empty()
}
