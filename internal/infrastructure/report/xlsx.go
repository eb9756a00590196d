package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"gradation-bot/internal/domain/entity"
	"gradation-bot/internal/domain/port"
)

// Названия листов книги отчёта.
const (
	SheetResult    = "Результат"
	SheetCurve     = "Кривая"
	SheetSieve     = "Сита"
	SheetParticles = "Частицы"
	SheetHistogram = "Гистограмма"
	SheetRegions   = "Области"
)

// XLSXExporter выгружает результат расчёта в книгу Excel.
type XLSXExporter struct{}

// NewXLSXExporter создаёт экспортёр
func NewXLSXExporter() *XLSXExporter {
	return &XLSXExporter{}
}

// Export собирает книгу: сводка, кривая и исходные данные.
func (e *XLSXExporter) Export(result *entity.AnalysisResult) ([]byte, string, error) {
	if result == nil {
		return nil, "", fmt.Errorf("export: empty result")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetResult); err != nil {
		return nil, "", err
	}

	d := result.Diameters
	summary := [][]interface{}{
		{"ID", result.ID.String()},
		{"Источник", string(result.Source)},
		{"Дата", result.CreatedAt.Format("2006-01-02 15:04:05")},
		{"D10, мм", d.D10},
		{"D30, мм", d.D30},
		{"D50, мм", d.D50},
		{"D60, мм", d.D60},
		{"Cu", d.Cu},
		{"Cc", d.Cc},
	}
	if result.Source == entity.SourceImage {
		s := result.Summary
		summary = append(summary,
			[]interface{}{"Масштаб, пикс/мм", float64(result.Scale)},
			[]interface{}{"Частиц", s.Count},
			[]interface{}{"Мин. диаметр, мм", s.Min},
			[]interface{}{"Макс. диаметр, мм", s.Max},
			[]interface{}{"Средний диаметр, мм", s.Mean},
			[]interface{}{"Медиана, мм", s.Median},
			[]interface{}{"Ст. отклонение, мм", s.StdDev},
		)
	}
	if err := writeRows(f, SheetResult, summary); err != nil {
		return nil, "", err
	}

	curve := [][]interface{}{{"Размер, мм", "Проход, %"}}
	for _, p := range result.Curve {
		curve = append(curve, []interface{}{p.Size, p.Passing})
	}
	if err := writeSheet(f, SheetCurve, curve); err != nil {
		return nil, "", err
	}

	if len(result.Sieve) > 0 {
		rows := [][]interface{}{{"Сито", "Размер ячейки, мм", "Остаток"}}
		for _, s := range result.Sieve {
			rows = append(rows, []interface{}{s.Label, s.Opening, s.Retained})
		}
		if err := writeSheet(f, SheetSieve, rows); err != nil {
			return nil, "", err
		}
	}

	if len(result.Particles) > 0 {
		rows := [][]interface{}{{"№", "Диаметр, мм"}}
		for i, p := range result.Particles {
			rows = append(rows, []interface{}{i + 1, float64(p)})
		}
		if err := writeSheet(f, SheetParticles, rows); err != nil {
			return nil, "", err
		}
	}

	if len(result.Histogram.Counts) > 0 {
		rows := [][]interface{}{{"Интервал, мм", "Количество"}}
		for i, c := range result.Histogram.Counts {
			rows = append(rows, []interface{}{result.Histogram.Labels[i], c})
		}
		if err := writeSheet(f, SheetHistogram, rows); err != nil {
			return nil, "", err
		}
	}

	if seg := result.Segmentation; seg != nil && len(seg.Regions) > 0 {
		rows := [][]interface{}{{"№", "Центр X, пикс", "Центр Y, пикс", "Ширина, пикс", "Высота, пикс", "Площадь, пикс²"}}
		for i, r := range seg.Regions {
			cx, cy := r.Center()
			rows = append(rows, []interface{}{i + 1, cx, cy, r.Width, r.Height, r.PixelArea})
		}
		if err := writeSheet(f, SheetRegions, rows); err != nil {
			return nil, "", err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("write xlsx: %w", err)
	}

	name := fmt.Sprintf("gradation-%s.xlsx", result.ID.String()[:8])
	return buf.Bytes(), name, nil
}

func writeSheet(f *excelize.File, sheet string, rows [][]interface{}) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	return writeRows(f, sheet, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

// Проверка реализации интерфейса
var _ port.ReportExporter = (*XLSXExporter)(nil)
