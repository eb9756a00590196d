package port

import (
	"context"

	"gradation-bot/internal/domain/entity"
)

// SieveTableParser разбирает таблицу ситового анализа (текст, CSV, XLSX).
// Размеры ячеек на выходе уже в миллиметрах.
type SieveTableParser interface {
	Parse(ctx context.Context, name string, data []byte) ([]entity.SieveEntry, error)
}

// ReportExporter выгружает результат расчёта в файл.
type ReportExporter interface {
	// Export возвращает содержимое файла и его имя
	Export(result *entity.AnalysisResult) (data []byte, name string, err error)
}
