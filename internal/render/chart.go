package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/cloud-ru/firefly-go/internal/calculations"
	"github.com/dustin/go-humanize"
)

// Размеры графика по умолчанию
const (
	DefaultChartWidth  = 60
	DefaultChartHeight = 15
)

// Названия линий графика
const (
	BalanceSeries  = "Total Balance"
	InvestedSeries = "Principal + Contributions"
)

// Series одна линия графика
type Series struct {
	Name   string
	Mark   rune
	Values []float64
}

// ChartData точки по оси X и линии графика
type ChartData struct {
	Title  string
	XLabel string
	X      []float64
	Series []Series
}

// GrowthFromProjection строит данные графика по помесячной проекции.
// Для сроков больше трех лет ось X размечается в годах.
func GrowthFromProjection(points []calculations.ProjectionPoint, totalYears float64) ChartData {
	data := ChartData{Title: "Portfolio Growth Over Time", XLabel: "Month"}
	if totalYears > 3 {
		data.XLabel = "Year"
	}

	balance := make([]float64, 0, len(points))
	invested := make([]float64, 0, len(points))
	for _, p := range points {
		if totalYears > 3 {
			data.X = append(data.X, p.Years)
		} else {
			data.X = append(data.X, float64(p.Month))
		}
		balance = append(balance, p.Balance)
		invested = append(invested, p.Contributions)
	}

	data.Series = []Series{
		{Name: BalanceSeries, Mark: '*', Values: balance},
		{Name: InvestedSeries, Mark: '.', Values: invested},
	}
	return data
}

// GrowthFromYearly строит данные графика по годовой разбивке, начиная с нулевого года
func GrowthFromYearly(res *calculations.Result) ChartData {
	data := ChartData{Title: "Portfolio Growth Over Time", XLabel: "Year"}

	principal := res.InputParams.Principal
	data.X = []float64{0}
	balance := []float64{principal}
	invested := []float64{principal}

	cumulative := principal
	for _, row := range res.YearlyBreakdown {
		cumulative += row.Contributions
		data.X = append(data.X, float64(row.Year))
		balance = append(balance, row.EndingBalance)
		invested = append(invested, cumulative)
	}

	data.Series = []Series{
		{Name: BalanceSeries, Mark: '*', Values: balance},
		{Name: InvestedSeries, Mark: '.', Values: invested},
	}
	return data
}

// Chart рисует ASCII график. Первая линия рисуется поверх остальных.
func Chart(data ChartData, width, height int) string {
	if width < 2 {
		width = DefaultChartWidth
	}
	if height < 2 {
		height = DefaultChartHeight
	}

	var b strings.Builder
	if data.Title != "" {
		b.WriteString(data.Title)
		b.WriteByte('\n')
	}

	n := len(data.X)
	if n == 0 {
		b.WriteString("(no data)\n")
		return b.String()
	}

	lo, hi := valueRange(data.Series)

	grid := make([][]rune, height)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(" ", width))
	}

	for s := len(data.Series) - 1; s >= 0; s-- {
		series := data.Series[s]
		for c := 0; c < width; c++ {
			i := 0
			if n > 1 {
				i = int(math.Round(float64(c) * float64(n-1) / float64(width-1)))
			}
			if i >= len(series.Values) {
				continue
			}
			grid[rowFor(series.Values[i], lo, hi, height)][c] = series.Mark
		}
	}

	labels := make([]string, height)
	labels[0] = axisLabel(hi)
	labels[height/2] = axisLabel(hi - (hi-lo)*float64(height/2)/float64(height-1))
	labels[height-1] = axisLabel(lo)

	labelWidth := 0
	for _, l := range labels {
		labelWidth = max(labelWidth, len(l))
	}

	for r, row := range grid {
		fmt.Fprintf(&b, "%*s |%s\n", labelWidth, labels[r], strings.TrimRight(string(row), " "))
	}
	fmt.Fprintf(&b, "%*s +%s\n", labelWidth, "", strings.Repeat("-", width))

	first, last := axisLabel(data.X[0]), axisLabel(data.X[n-1])
	gap := max(width-len(first)-len(last), 1)
	fmt.Fprintf(&b, "%*s  %s%s%s %s\n", labelWidth, "", first, strings.Repeat(" ", gap), last, data.XLabel)

	legend := make([]string, 0, len(data.Series))
	for _, s := range data.Series {
		legend = append(legend, fmt.Sprintf("%c %s", s.Mark, s.Name))
	}
	fmt.Fprintf(&b, "%*s  %s\n", labelWidth, "", strings.Join(legend, "   "))

	return b.String()
}

func valueRange(series []Series) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, s := range series {
		for _, v := range s.Values {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	if math.IsInf(lo, 1) {
		return 0, 1
	}
	if hi == lo {
		hi = lo + 1
	}
	return lo, hi
}

func rowFor(v, lo, hi float64, height int) int {
	row := int(math.Round((hi - v) / (hi - lo) * float64(height-1)))
	return min(max(row, 0), height-1)
}

// axisLabel сокращает подпись оси: 1234567 -> "1.2 M"
func axisLabel(v float64) string {
	if math.Abs(v) < 1000 {
		return humanize.FtoaWithDigits(v, 1)
	}
	return strings.TrimSpace(humanize.SIWithDigits(v, 1, ""))
}
