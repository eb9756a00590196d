package port

import (
	"context"

	"gradation-bot/internal/domain/entity"
)

// RegionDetector интерфейс сегментации снимка на отдельные частицы.
// Фильтрация шума (минимальная площадь) — забота реализации.
type RegionDetector interface {
	// Detect находит частицы и возвращает их площади и рамки в пикселях
	Detect(ctx context.Context, imageData []byte) (*entity.Segmentation, error)

	// HighlightRegions создаёт изображение с рамками вокруг частиц
	HighlightRegions(imageData []byte, seg *entity.Segmentation) ([]byte, error)
}
