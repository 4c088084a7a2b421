package calculations

import "math"

// FutureValue рассчитывает будущую стоимость по замкнутой формуле аннуитета:
//
//	FV = P(1 + r/n)^(nt) + PMT × [((1 + r/n)^(nt) - 1) / (r/n)]
//
// Взнос PMT вносится в конце каждого периода. При нулевой ставке FV = P + PMT×n×t.
func FutureValue(principal, annualRatePercent float64, periodsPerYear int, years, paymentPerPeriod float64) float64 {
	n := float64(periodsPerYear)
	periods := n * years
	r := annualRatePercent / 100.0 / n

	if r == 0.0 {
		return principal + paymentPerPeriod*periods
	}

	growth := math.Pow(1.0+r, periods)
	return principal*growth + paymentPerPeriod*(growth-1.0)/r
}
