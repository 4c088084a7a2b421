package calculations

import "math"

// Growth рассчитывает инвестиционные метрики по результату расчета
func Growth(res *Result) GrowthMetrics {
	if res == nil {
		return GrowthMetrics{}
	}

	finalBalance := res.FinalAmount
	initialInvestment := res.InputParams.Principal
	totalInterest := res.TotalInterest
	years := res.InputParams.TotalYears()

	// Доходность относительно всех вложений
	totalInvested := initialInvestment + res.TotalContributions
	var roiPercent float64
	if totalInvested > 0 {
		roiPercent = totalInterest / totalInvested * 100
	}

	// Средняя годовая доходность
	var annualizedReturn float64
	if years > 0 && initialInvestment > 0 {
		annualizedReturn = (math.Pow(finalBalance/totalInvested, 1.0/years) - 1.0) * 100
	}

	// Процент от итоговой суммы, который составляет прибыль
	var profitPercent float64
	if finalBalance > 0 {
		profitPercent = totalInterest / finalBalance * 100
	}

	return GrowthMetrics{
		ROIPercent:              roiPercent,
		AnnualizedReturnPercent: annualizedReturn,
		CapitalGain:             finalBalance - totalInvested,
		ProfitPercent:           profitPercent,
		TotalInvested:           totalInvested,
		FinalValue:              finalBalance,
		Years:                   years,
	}
}
