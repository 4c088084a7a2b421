package calculations

import (
	"errors"
	"fmt"
	"math"
)

// averageDaysPerMonth используется для приведения ежемесячного взноса к ежедневной капитализации
const averageDaysPerMonth = 30.417

// ErrBalanceCapExceeded возвращается, если баланс превысил допустимую верхнюю границу
var ErrBalanceCapExceeded = errors.New("balance exceeded the upper bound")

// ConfigInterface определяет интерфейс для получения конфигурации
type ConfigInterface interface {
	BalanceCap() float64
}

// Calculate рассчитывает рост вклада со сложным процентом и регулярными взносами.
//
// Проценты за период начисляются на баланс до взноса этого периода, поэтому
// взнос начинает приносить доход только со следующего периода.
func Calculate(in Input) (*Result, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	breakdown := yearlyBreakdown(in)

	finalAmount := in.Principal
	if len(breakdown) > 0 {
		finalAmount = breakdown[len(breakdown)-1].EndingBalance
	}

	totalContributions := 0.0
	for _, row := range breakdown {
		totalContributions += row.Contributions
	}

	return &Result{
		FinalAmount:        finalAmount,
		TotalContributions: totalContributions,
		TotalInterest:      finalAmount - in.Principal - totalContributions,
		YearlyBreakdown:    breakdown,
		InputParams:        in,
	}, nil
}

func yearlyBreakdown(in Input) []YearlyBreakdown {
	totalYears := in.TotalYears()
	n := in.CompoundingFrequency.PeriodsPerYear()
	r := in.RateDecimal()
	contrib := in.ContributionPerPeriod()

	breakdown := make([]YearlyBreakdown, 0, int(math.Ceil(totalYears)))
	balance := in.Principal

	for year := 1; float64(year-1) < totalYears; year++ {
		starting := balance
		yearContributions := 0.0
		yearInterest := 0.0

		periods := n
		if float64(year) >= totalYears {
			// последний, возможно неполный, год
			periods = int(math.Round((totalYears - float64(year-1)) * float64(n)))
		}

		for p := 0; p < periods; p++ {
			interest := balance * (r / float64(n))
			balance += interest
			yearInterest += interest

			balance += contrib
			yearContributions += contrib
		}

		breakdown = append(breakdown, YearlyBreakdown{
			Year:            year,
			StartingBalance: starting,
			Contributions:   yearContributions,
			InterestEarned:  yearInterest,
			EndingBalance:   balance,
		})
	}

	return breakdown
}

// CheckBalanceCap проверяет, что балансы результата конечны и не превышают верхнюю границу из конфигурации
func CheckBalanceCap(cfg ConfigInterface, res *Result) error {
	if cfg == nil || res == nil {
		return nil
	}
	limit := cfg.BalanceCap()
	for _, row := range res.YearlyBreakdown {
		if exceedsCap(row.EndingBalance, limit) {
			return fmt.Errorf("%w: year %d (check rate, period and contributions)", ErrBalanceCapExceeded, row.Year)
		}
	}
	return nil
}

// CheckProjectionCap применяет ту же границу к точкам помесячной проекции
func CheckProjectionCap(cfg ConfigInterface, points []ProjectionPoint) error {
	if cfg == nil {
		return nil
	}
	limit := cfg.BalanceCap()
	for _, p := range points {
		if exceedsCap(p.Balance, limit) {
			return fmt.Errorf("%w: month %d (check rate, period and contributions)", ErrBalanceCapExceeded, p.Month)
		}
	}
	return nil
}

// CheckComparisonCap проверяет итоговые суммы всех частот сравнения
func CheckComparisonCap(cfg ConfigInterface, cmp *FrequencyComparison) error {
	if cfg == nil || cmp == nil {
		return nil
	}
	limit := cfg.BalanceCap()
	for _, o := range cmp.Outcomes {
		if exceedsCap(o.FinalAmount, limit) {
			return fmt.Errorf("%w: %s compounding (check rate, period and contributions)", ErrBalanceCapExceeded, o.Frequency)
		}
	}
	return nil
}

func exceedsCap(v, limit float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0) || v > limit
}
