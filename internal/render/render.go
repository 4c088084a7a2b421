// Package render выводит результаты расчета в текстовом виде: таблицы, график и строку статистики.
package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/cloud-ru/firefly-go/internal/calculations"
	"github.com/cloud-ru/firefly-go/pkg/utils"
)

// InputSummary печатает параметры сценария перед подтверждением
func InputSummary(w io.Writer, in calculations.Input) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Input Summary")
	fmt.Fprintf(tw, "  Principal\t%s\n", utils.FormatMoney(in.Principal))
	fmt.Fprintf(tw, "  Annual Return Rate\t%g%%\n", in.AnnualRatePercent)
	fmt.Fprintf(tw, "  Time Period\t%s\n", Period(in))
	fmt.Fprintf(tw, "  Compounding\t%s\n", in.CompoundingFrequency.Title())
	switch {
	case in.MonthlyContribution > 0:
		fmt.Fprintf(tw, "  Monthly Contribution\t%s\n", utils.FormatMoney(in.MonthlyContribution))
	case in.AnnualContribution > 0:
		fmt.Fprintf(tw, "  Annual Contribution\t%s\n", utils.FormatMoney(in.AnnualContribution))
	default:
		fmt.Fprintln(tw, "  Contributions\tNone")
	}
	return tw.Flush()
}

// Summary печатает итоговую таблицу расчета
func Summary(w io.Writer, res *calculations.Result) error {
	in := res.InputParams

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Compound Interest Summary")
	fmt.Fprintf(tw, "  Initial Investment\t%s\n", utils.FormatMoney(in.Principal))
	fmt.Fprintf(tw, "  Annual Return Rate\t%g%%\n", in.AnnualRatePercent)
	fmt.Fprintf(tw, "  Time Period\t%s\n", Period(in))
	fmt.Fprintf(tw, "  Compounding\t%s\n", in.CompoundingFrequency.Title())
	if in.MonthlyContribution > 0 {
		fmt.Fprintf(tw, "  Monthly Contribution\t%s\n", utils.FormatMoney(in.MonthlyContribution))
	}
	if in.AnnualContribution > 0 {
		fmt.Fprintf(tw, "  Annual Contribution\t%s\n", utils.FormatMoney(in.AnnualContribution))
	}
	fmt.Fprintln(tw, "  \t")
	fmt.Fprintf(tw, "  Final Amount\t%s\n", utils.FormatMoney(res.FinalAmount))
	fmt.Fprintf(tw, "  Total Contributions\t%s\n", utils.FormatMoney(res.TotalContributions))
	fmt.Fprintf(tw, "  Total Interest Earned\t%s\n", utils.FormatMoney(res.TotalInterest))
	return tw.Flush()
}

// YearlyTable печатает годовую разбивку
func YearlyTable(w io.Writer, res *calculations.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Year\tStarting Balance\tContributions\tInterest Earned\tEnding Balance\t")
	for _, row := range res.YearlyBreakdown {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t\n",
			row.Year,
			utils.FormatMoney(row.StartingBalance),
			utils.FormatMoney(row.Contributions),
			utils.FormatMoney(row.InterestEarned),
			utils.FormatMoney(row.EndingBalance),
		)
	}
	return tw.Flush()
}

// Comparison печатает сравнение частот капитализации
func Comparison(w io.Writer, cmp *calculations.FrequencyComparison) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Compounding\tFinal Amount\tInterest\tShortfall\t")
	for _, o := range cmp.Outcomes {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t\n",
			o.Frequency,
			utils.FormatMoney(o.FinalAmount),
			utils.FormatMoney(o.TotalInterest),
			utils.FormatMoney(o.ShortfallFromBest),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, cmp.Recommendation)
	return err
}

// StatsLine возвращает строку статистики: итог, взносы, проценты и ROI
func StatsLine(res *calculations.Result) string {
	g := calculations.Growth(res)
	return strings.Join([]string{
		"Final: " + utils.FormatMoney(res.FinalAmount),
		"Contributions: " + utils.FormatMoney(res.TotalContributions),
		"Interest: " + utils.FormatMoney(res.TotalInterest),
		"ROI: " + utils.FormatPercent(g.ROIPercent),
	}, " | ")
}

// Period форматирует срок как "N years, M months"
func Period(in calculations.Input) string {
	return fmt.Sprintf("%d years, %d months", in.Years, in.Months)
}
