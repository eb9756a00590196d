package sieve

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"gradation-bot/internal/domain/entity"
	"gradation-bot/internal/domain/port"
)

// MicronsPerMillimeter — размеры сит вводятся в микрометрах.
const MicronsPerMillimeter = 1000.0

// ErrUnsupportedFormat — файл таблицы неизвестного формата.
var ErrUnsupportedFormat = errors.New("unsupported sieve table format")

// Parser разбирает таблицу сит. Строка: подпись, размер ячейки, остаток.
// Подпись может отсутствовать. Строки, где размер или остаток не число
// (заголовки, пустые ячейки), пропускаются.
type Parser struct {
	SizeDivisor float64 // во сколько раз единица ввода меньше миллиметра
}

// NewParser создаёт парсер для размеров в микрометрах.
func NewParser() *Parser {
	return &Parser{SizeDivisor: MicronsPerMillimeter}
}

// Parse выбирает формат по расширению имени: .xlsx, .csv, .txt или без
// расширения (текст сообщения). Прочие расширения — ErrUnsupportedFormat.
func (p *Parser) Parse(ctx context.Context, name string, data []byte) ([]entity.SieveEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		rows  [][]string
		fixed bool
		err   error
	)
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".xlsx", ".xlsm":
		rows, err = readXLSX(data)
		fixed = true
	case ".csv":
		rows, err = readCSV(data)
		fixed = true
	case "", ".txt":
		rows = readText(string(data))
	default:
		return nil, fmt.Errorf("%s: %w", ext, ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, err
	}

	return p.toEntries(rows, fixed), nil
}

// toEntries читает строки таблицы. Если хоть в одной строке три ячейки и
// больше, таблица с подписями, и строка из двух ячеек считается неполной.
// В CSV и XLSX колонки фиксированы: подпись, размер, остаток. В тексте
// подпись может содержать пробелы, поэтому размер и остаток берутся с конца.
func (p *Parser) toEntries(rows [][]string, fixed bool) []entity.SieveEntry {
	divisor := p.SizeDivisor
	if divisor <= 0 {
		divisor = 1
	}

	table := make([][]string, len(rows))
	labelled := false
	for i, row := range rows {
		if fixed {
			table[i] = trimCells(row)
		} else {
			table[i] = nonEmpty(row)
		}
		if len(table[i]) >= 3 {
			labelled = true
		}
	}

	entries := make([]entity.SieveEntry, 0, len(rows))
	for _, cells := range table {
		var label, sizeText, weightText string
		switch n := len(cells); {
		case labelled && n < 3, n < 2:
			continue
		case labelled && fixed:
			label, sizeText, weightText = cells[0], cells[1], cells[2]
		case labelled:
			label = strings.Join(cells[:n-2], " ")
			sizeText, weightText = cells[n-2], cells[n-1]
		default:
			sizeText, weightText = cells[0], cells[1]
		}

		size, err := parseNumber(sizeText)
		if err != nil {
			continue
		}
		weight, err := parseNumber(weightText)
		if err != nil {
			continue
		}
		if label == "" {
			label = sizeText
		}

		entries = append(entries, entity.SieveEntry{
			Label:    label,
			Opening:  size / divisor,
			Retained: weight,
		})
	}
	return entries
}

// readText режет строки по пробелам, табуляциям и точкам с запятой.
func readText(text string) [][]string {
	var rows [][]string
	for _, line := range strings.Split(text, "\n") {
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ' ' || r == '\t' || r == ';' || r == '\r' || r == '|'
		})
		if len(fields) > 0 {
			rows = append(rows, fields)
		}
	}
	return rows
}

// readCSV читает CSV с запятой или точкой с запятой в качестве разделителя.
func readCSV(data []byte) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	firstLine, _, _ := bytes.Cut(data, []byte("\n"))
	if bytes.Count(firstLine, []byte(";")) > bytes.Count(firstLine, []byte(",")) {
		reader.Comma = ';'
	}

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv: %w", err)
		}
		rows = append(rows, record)
	}
	return rows, nil
}

// readXLSX читает первый лист книги.
func readXLSX(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}

// parseNumber принимает и десятичную запятую. NaN и бесконечность — не числа.
func parseNumber(s string) (float64, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("not a finite number: %q", s)
	}
	return v, nil
}

// trimCells сохраняет позиции колонок и отбрасывает пустой хвост строки.
func trimCells(row []string) []string {
	out := make([]string, len(row))
	last := -1
	for i, c := range row {
		out[i] = strings.TrimSpace(c)
		if out[i] != "" {
			last = i
		}
	}
	return out[:last+1]
}

func nonEmpty(row []string) []string {
	out := make([]string, 0, len(row))
	for _, c := range row {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return out
}

// Проверка реализации интерфейса
var _ port.SieveTableParser = (*Parser)(nil)
