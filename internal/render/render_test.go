package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cloud-ru/firefly-go/internal/calculations"
)

func sampleResult(t *testing.T) *calculations.Result {
	t.Helper()
	res, err := calculations.Calculate(calculations.Input{
		Principal:            10000,
		AnnualRatePercent:    7,
		Years:                3,
		MonthlyContribution:  500,
		CompoundingFrequency: calculations.Monthly,
	})
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	return res
}

func TestSummary(t *testing.T) {
	var buf bytes.Buffer
	if err := Summary(&buf, sampleResult(t)); err != nil {
		t.Fatalf("Summary() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Initial Investment", "$10,000.00", "7%", "3 years, 0 months", "Monthly",
		"Monthly Contribution", "$500.00", "Final Amount", "Total Interest Earned",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Annual Contribution") {
		t.Errorf("summary should not list an unset annual contribution:\n%s", out)
	}
}

func TestInputSummaryContributions(t *testing.T) {
	tests := []struct {
		name string
		in   calculations.Input
		want string
	}{
		{name: "none", in: calculations.Input{CompoundingFrequency: calculations.Daily}, want: "None"},
		{name: "monthly", in: calculations.Input{MonthlyContribution: 250, CompoundingFrequency: calculations.Daily}, want: "Monthly Contribution"},
		{name: "annual", in: calculations.Input{AnnualContribution: 1200, CompoundingFrequency: calculations.Daily}, want: "Annual Contribution"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := InputSummary(&buf, tt.in); err != nil {
				t.Fatalf("InputSummary() error = %v", err)
			}
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("expected %q in:\n%s", tt.want, buf.String())
			}
		})
	}
}

func TestYearlyTable(t *testing.T) {
	var buf bytes.Buffer
	if err := YearlyTable(&buf, sampleResult(t)); err != nil {
		t.Fatalf("YearlyTable() error = %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header + 3 rows, got %d lines:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "Ending Balance") {
		t.Errorf("unexpected header: %s", lines[0])
	}
	if !strings.Contains(lines[1], "$10,000.00") || !strings.Contains(lines[1], "$6,000.00") {
		t.Errorf("unexpected first row: %s", lines[1])
	}
}

func TestStatsLine(t *testing.T) {
	res, err := calculations.Calculate(calculations.Input{
		Principal:            1000,
		AnnualRatePercent:    10,
		Years:                1,
		CompoundingFrequency: calculations.Annually,
	})
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}

	want := "Final: $1,100.00 | Contributions: $0.00 | Interest: $100.00 | ROI: 10.0%"
	if got := StatsLine(res); got != want {
		t.Errorf("StatsLine() = %q, want %q", got, want)
	}
}

func TestComparison(t *testing.T) {
	cmp, err := calculations.CompareFrequencies(calculations.Input{Principal: 1000, AnnualRatePercent: 5, Years: 5})
	if err != nil {
		t.Fatalf("CompareFrequencies() error = %v", err)
	}

	var buf bytes.Buffer
	if err := Comparison(&buf, cmp); err != nil {
		t.Fatalf("Comparison() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{"daily", "monthly", "annually", cmp.Recommendation} {
		if !strings.Contains(out, want) {
			t.Errorf("comparison missing %q:\n%s", want, out)
		}
	}
}

func TestChart(t *testing.T) {
	points, err := calculations.MonthlyProjection(calculations.Input{
		Principal:            10000,
		AnnualRatePercent:    7,
		Years:                10,
		MonthlyContribution:  500,
		CompoundingFrequency: calculations.Monthly,
	})
	if err != nil {
		t.Fatalf("MonthlyProjection() error = %v", err)
	}

	data := GrowthFromProjection(points, 10)
	if data.XLabel != "Year" {
		t.Errorf("expected years on the x axis, got %q", data.XLabel)
	}

	out := Chart(data, 40, 10)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// заголовок, 10 строк графика, ось, подписи, легенда
	if len(lines) != 14 {
		t.Fatalf("expected 14 lines, got %d:\n%s", len(lines), out)
	}
	if lines[0] != "Portfolio Growth Over Time" {
		t.Errorf("unexpected title %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], "*") {
		t.Errorf("expected the final balance in the top row: %q", lines[1])
	}
	if !strings.Contains(lines[1], "k") {
		t.Errorf("expected a compact axis label in the top row: %q", lines[1])
	}
	if !strings.Contains(out, "* Total Balance") || !strings.Contains(out, ". Principal + Contributions") {
		t.Errorf("legend missing:\n%s", out)
	}
}

func TestChartShortPeriodUsesMonths(t *testing.T) {
	points, _ := calculations.MonthlyProjection(calculations.Input{Principal: 100, Years: 1, CompoundingFrequency: calculations.Monthly})
	if got := GrowthFromProjection(points, 1).XLabel; got != "Month" {
		t.Errorf("expected Month, got %q", got)
	}
}

func TestGrowthFromYearly(t *testing.T) {
	res := sampleResult(t)
	data := GrowthFromYearly(res)

	if len(data.X) != 4 || data.X[0] != 0 || data.X[3] != 3 {
		t.Fatalf("unexpected x values: %v", data.X)
	}
	invested := data.Series[1].Values
	if invested[0] != 10000 || invested[3] != 10000+res.TotalContributions {
		t.Errorf("unexpected invested series: %v", invested)
	}
	if data.Series[0].Values[3] != res.FinalAmount {
		t.Errorf("balance series does not end at the final amount")
	}
}

func TestChartEmpty(t *testing.T) {
	if out := Chart(ChartData{Title: "t"}, 10, 5); !strings.Contains(out, "(no data)") {
		t.Errorf("unexpected output for empty chart: %q", out)
	}
}
