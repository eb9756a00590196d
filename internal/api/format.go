package telegram

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	app "gradation-bot/internal/application"
	"gradation-bot/internal/domain/entity"
	"gradation-bot/internal/domain/gradation"
	"gradation-bot/internal/infrastructure/sieve"
)

// maxCurveRows — длиннее кривую в сообщение не выводим, она есть на графике.
const maxCurveRows = 15

var errBadCoordinates = errors.New("expected four numbers: x1 y1 x2 y2")

// formatValue печатает число с двумя знаками, ноль — как «н/д».
func formatValue(v float64) string {
	if v == 0 {
		return "н/д"
	}
	return fmt.Sprintf("%.2f", v)
}

// formatResult собирает текст ответа по результату расчёта.
func formatResult(r *entity.AnalysisResult) string {
	var sb strings.Builder

	switch r.Source {
	case entity.SourceImage:
		sb.WriteString("📊 Гранулометрия по снимку\n")
		fmt.Fprintf(&sb, "Масштаб: %s пикс/мм\n", formatValue(float64(r.Scale)))
		fmt.Fprintf(&sb, "Частиц: %d\n", r.Summary.Count)
		if r.Summary.Count == 0 {
			sb.WriteString("\nЧастицы не найдены. Попробуйте снимок на контрастном фоне.")
			return sb.String()
		}
		fmt.Fprintf(&sb, "Диаметр: мин %s, макс %s, средний %s, медиана %s мм\n",
			formatValue(r.Summary.Min), formatValue(r.Summary.Max),
			formatValue(r.Summary.Mean), formatValue(r.Summary.Median))
	case entity.SourceSieve:
		sb.WriteString("📊 Гранулометрия по ситовому анализу\n")
		fmt.Fprintf(&sb, "Сит: %d\n", len(r.Sieve))
	}

	d := r.Diameters
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "D10 = %s мм\n", formatValue(d.D10))
	fmt.Fprintf(&sb, "D30 = %s мм\n", formatValue(d.D30))
	fmt.Fprintf(&sb, "D50 = %s мм\n", formatValue(d.D50))
	fmt.Fprintf(&sb, "D60 = %s мм\n", formatValue(d.D60))
	fmt.Fprintf(&sb, "Cu = %s\n", formatValue(d.Cu))
	fmt.Fprintf(&sb, "Cc = %s\n", formatValue(d.Cc))

	if n := len(r.Curve); n > 0 && n <= maxCurveRows {
		sb.WriteString("\nРазмер, мм — проход, %\n")
		for _, p := range r.Curve {
			fmt.Fprintf(&sb, "%.3f — %.2f\n", p.Size, p.Passing)
		}
	}

	return strings.TrimRight(sb.String(), "\n")
}

// parsePoints разбирает «x1 y1 x2 y2»; допускаются запятые и точки с запятой.
func parsePoints(text string) (a, b entity.Point, err error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ' ' || r == ',' || r == ';' || r == '\t' || r == '\n'
	})
	if len(fields) != 4 {
		return a, b, errBadCoordinates
	}

	var v [4]float64
	for i, f := range fields {
		if v[i], err = strconv.ParseFloat(f, 64); err != nil {
			return a, b, errBadCoordinates
		}
	}
	return entity.Point{X: v[0], Y: v[1]}, entity.Point{X: v[2], Y: v[3]}, nil
}

// parseCalibrateArgs разбирает аргументы /calibrate: длина эталона в мм и,
// по желанию, координаты линии. withLine сообщает, переданы ли координаты.
func parseCalibrateArgs(args string) (reference float64, a, b entity.Point, withLine bool, err error) {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		return 0, a, b, false, fmt.Errorf("reference length is missing: %w", gradation.ErrInvalidCalibrationInput)
	}

	reference, err = strconv.ParseFloat(strings.ReplaceAll(fields[0], ",", "."), 64)
	if err != nil {
		return 0, a, b, false, fmt.Errorf("reference length %q: %w", fields[0], gradation.ErrInvalidCalibrationInput)
	}
	if len(fields) == 1 {
		return reference, a, b, false, nil
	}

	a, b, err = parsePoints(strings.Join(fields[1:], " "))
	if err != nil {
		return 0, a, b, false, err
	}
	return reference, a, b, true, nil
}

// errorMessage переводит ошибку сервиса в сообщение пользователю.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, app.ErrNoImage):
		return msgNoImage
	case errors.Is(err, app.ErrNotCalibrated):
		return msgNotCalibrated
	case errors.Is(err, app.ErrNoResult):
		return msgNoResult
	case errors.Is(err, gradation.ErrInvalidCalibrationInput):
		return msgBadCalibration
	case errors.Is(err, errBadCoordinates):
		return msgBadCoordinates
	case errors.Is(err, gradation.ErrEmptyOrZeroWeightInput):
		return msgEmptySieve
	case errors.Is(err, gradation.ErrInvalidSieveEntry):
		return msgBadSieveRow
	case errors.Is(err, sieve.ErrUnsupportedFormat):
		return msgUnsupportedFile
	default:
		return msgProcessingError
	}
}
