package chart

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strconv"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"gradation-bot/internal/domain/entity"
	"gradation-bot/internal/domain/port"
)

const (
	DefaultWidth  = 800
	DefaultHeight = 500
)

var curveColor = drawing.ColorFromHex("4bc0c0")

// Renderer рисует графики в PNG через go-chart.
type Renderer struct {
	Width  int
	Height int
}

// NewRenderer создаёт рендерер заданного размера; нули заменяются значениями по умолчанию.
func NewRenderer(width, height int) *Renderer {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return &Renderer{Width: width, Height: height}
}

// RenderCurve рисует кривую прохода. Ось размеров логарифмическая: точки
// переводятся в log10, подписи делений — в миллиметрах.
func (r *Renderer) RenderCurve(curve entity.GradationCurve, d entity.CharacteristicDiameters) ([]byte, error) {
	if len(curve) < 2 {
		return nil, errors.New("curve needs at least two points")
	}

	xs := curve.Sizes()
	for i, size := range xs {
		xs[i] = math.Log10(math.Max(size, 1e-6))
	}
	ys := curve.Passing()

	lo, hi := math.Floor(xs[0]), math.Ceil(xs[len(xs)-1])
	if hi <= lo {
		hi = lo + 1
	}

	series := []gochart.Series{
		gochart.ContinuousSeries{
			Name:    "Кривая гранулометрического состава",
			XValues: xs,
			YValues: ys,
			Style: gochart.Style{
				StrokeColor: curveColor,
				StrokeWidth: 2,
				DotColor:    curveColor,
				DotWidth:    3,
			},
		},
	}

	var marks []gochart.Value2
	for _, m := range []struct {
		name    string
		size    float64
		passing float64
	}{
		{"D10", d.D10, 10},
		{"D30", d.D30, 30},
		{"D50", d.D50, 50},
		{"D60", d.D60, 60},
	} {
		if m.size <= 0 {
			continue
		}
		marks = append(marks, gochart.Value2{
			XValue: math.Log10(m.size),
			YValue: m.passing,
			Label:  fmt.Sprintf("%s=%.2f", m.name, m.size),
		})
	}
	if len(marks) > 0 {
		series = append(series, gochart.AnnotationSeries{Annotations: marks})
	}

	graph := gochart.Chart{
		Width:      r.Width,
		Height:     r.Height,
		Background: gochart.Style{Padding: gochart.Box{Top: 20, Left: 20, Right: 30, Bottom: 20}},
		XAxis: gochart.XAxis{
			Name:  "Размер частиц, мм (лог. шкала)",
			Range: &gochart.ContinuousRange{Min: lo, Max: hi},
			Ticks: decadeTicks(lo, hi),
		},
		YAxis: gochart.YAxis{
			Name:  "Проход, %",
			Range: &gochart.ContinuousRange{Min: 0, Max: 100},
			Ticks: percentTicks(),
		},
		Series: series,
	}

	var buf bytes.Buffer
	if err := graph.Render(gochart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render curve: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderHistogram рисует столбчатую диаграмму количества частиц.
func (r *Renderer) RenderHistogram(h entity.Histogram) ([]byte, error) {
	if len(h.Counts) == 0 {
		return nil, errors.New("histogram is empty")
	}

	bars := make([]gochart.Value, len(h.Counts))
	top := 1
	for i, c := range h.Counts {
		bars[i] = gochart.Value{Value: float64(c), Label: h.Labels[i]}
		if c > top {
			top = c
		}
	}

	barWidth := (r.Width - 80) / (2 * len(bars))
	if barWidth < 4 {
		barWidth = 4
	}

	graph := gochart.BarChart{
		Width:      r.Width,
		Height:     r.Height,
		BarWidth:   barWidth,
		Background: gochart.Style{Padding: gochart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20}},
		YAxis: gochart.YAxis{
			Name:  "Количество частиц",
			Range: &gochart.ContinuousRange{Min: 0, Max: float64(top)},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(gochart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render histogram: %w", err)
	}
	return buf.Bytes(), nil
}

func decadeTicks(lo, hi float64) []gochart.Tick {
	ticks := make([]gochart.Tick, 0, int(hi-lo)+1)
	for e := lo; e <= hi; e++ {
		ticks = append(ticks, gochart.Tick{
			Value: e,
			Label: strconv.FormatFloat(math.Pow(10, e), 'g', -1, 64),
		})
	}
	return ticks
}

func percentTicks() []gochart.Tick {
	ticks := make([]gochart.Tick, 0, 11)
	for v := 0; v <= 100; v += 10 {
		ticks = append(ticks, gochart.Tick{Value: float64(v), Label: strconv.Itoa(v)})
	}
	return ticks
}

// Проверка реализации интерфейса
var _ port.ChartRenderer = (*Renderer)(nil)
