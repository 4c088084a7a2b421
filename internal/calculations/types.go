package calculations

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidInput возвращается движком для параметров, нарушающих инварианты Input
var ErrInvalidInput = errors.New("invalid input")

// CompoundingFrequency задает частоту капитализации; значение равно числу периодов в году
type CompoundingFrequency int

const (
	Annually CompoundingFrequency = 1
	Monthly  CompoundingFrequency = 12
	Daily    CompoundingFrequency = 365
)

// Frequencies перечисляет все поддерживаемые частоты капитализации
var Frequencies = []CompoundingFrequency{Daily, Monthly, Annually}

// PeriodsPerYear возвращает количество периодов капитализации в году
func (f CompoundingFrequency) PeriodsPerYear() int {
	return int(f)
}

// Valid сообщает, является ли значение одной из поддерживаемых частот
func (f CompoundingFrequency) Valid() bool {
	switch f {
	case Daily, Monthly, Annually:
		return true
	}
	return false
}

func (f CompoundingFrequency) String() string {
	switch f {
	case Daily:
		return "daily"
	case Monthly:
		return "monthly"
	case Annually:
		return "annually"
	}
	return fmt.Sprintf("CompoundingFrequency(%d)", int(f))
}

// Title возвращает название частоты для отображения
func (f CompoundingFrequency) Title() string {
	s := f.String()
	if !f.Valid() {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Input описывает сценарий инвестирования
type Input struct {
	Principal            float64              `json:"principal"`
	AnnualRatePercent    float64              `json:"annual_rate_percent"`
	Years                int                  `json:"years"`
	Months               int                  `json:"months"`
	MonthlyContribution  float64              `json:"monthly_contribution"`
	AnnualContribution   float64              `json:"annual_contribution"`
	CompoundingFrequency CompoundingFrequency `json:"compounding_frequency"`
}

// TotalYears возвращает срок в годах с учетом дополнительных месяцев
func (in Input) TotalYears() float64 {
	return float64(in.Years) + float64(in.Months)/12.0
}

// TotalMonths возвращает полный срок в месяцах
func (in Input) TotalMonths() int {
	return in.Years*12 + in.Months
}

// RateDecimal возвращает годовую ставку в виде десятичной дроби
func (in Input) RateDecimal() float64 {
	return in.AnnualRatePercent / 100.0
}

// ContributionPerPeriod приводит ежемесячный или ежегодный взнос к сумме за один период капитализации.
// Ежемесячный взнос имеет приоритет, если заданы оба.
func (in Input) ContributionPerPeriod() float64 {
	if in.MonthlyContribution > 0 {
		switch in.CompoundingFrequency {
		case Monthly:
			return in.MonthlyContribution
		case Daily:
			return in.MonthlyContribution / averageDaysPerMonth
		default:
			return in.MonthlyContribution * 12
		}
	}
	if in.AnnualContribution > 0 {
		switch in.CompoundingFrequency {
		case Monthly:
			return in.AnnualContribution / 12
		case Daily:
			return in.AnnualContribution / 365
		default:
			return in.AnnualContribution
		}
	}
	return 0
}

// Validate проверяет инварианты Input
func (in Input) Validate() error {
	checks := []struct {
		name  string
		value float64
	}{
		{"principal", in.Principal},
		{"annual_rate_percent", in.AnnualRatePercent},
		{"monthly_contribution", in.MonthlyContribution},
		{"annual_contribution", in.AnnualContribution},
	}
	for _, c := range checks {
		if math.IsNaN(c.value) || math.IsInf(c.value, 0) {
			return fmt.Errorf("%w: %s is not a finite number", ErrInvalidInput, c.name)
		}
		if c.value < 0 {
			return fmt.Errorf("%w: %s must be non-negative, got %v", ErrInvalidInput, c.name, c.value)
		}
	}
	if in.Years < 0 {
		return fmt.Errorf("%w: years must be non-negative, got %d", ErrInvalidInput, in.Years)
	}
	if in.Months < 0 || in.Months >= 12 {
		return fmt.Errorf("%w: months must be in [0, 12), got %d", ErrInvalidInput, in.Months)
	}
	if !in.CompoundingFrequency.Valid() {
		return fmt.Errorf("%w: unsupported compounding frequency %d", ErrInvalidInput, int(in.CompoundingFrequency))
	}
	return nil
}

// YearlyBreakdown представляет итоги одного года
type YearlyBreakdown struct {
	Year            int     `json:"year"`
	StartingBalance float64 `json:"starting_balance"`
	Contributions   float64 `json:"contributions"`
	InterestEarned  float64 `json:"interest_earned"`
	EndingBalance   float64 `json:"ending_balance"`
}

// Result представляет результат расчета сложного процента
type Result struct {
	FinalAmount        float64           `json:"final_amount"`
	TotalContributions float64           `json:"total_contributions"`
	TotalInterest      float64           `json:"total_interest"`
	YearlyBreakdown    []YearlyBreakdown `json:"yearly_breakdown"`
	InputParams        Input             `json:"input_params"`
}

// ProjectionPoint представляет одну точку помесячной проекции
type ProjectionPoint struct {
	Month         int     `json:"month"`
	Years         float64 `json:"years"`
	Balance       float64 `json:"balance"`
	Contributions float64 `json:"contributions"`
}

// GrowthMetrics представляет метрики роста инвестиций
type GrowthMetrics struct {
	ROIPercent              float64 `json:"roi_percent"`
	AnnualizedReturnPercent float64 `json:"annualized_return_percent"`
	CapitalGain             float64 `json:"capital_gain"`
	ProfitPercent           float64 `json:"profit_percent"`
	TotalInvested           float64 `json:"total_invested"`
	FinalValue              float64 `json:"final_value"`
	Years                   float64 `json:"years"`
}

// FrequencyOutcome представляет результат расчета для одной частоты капитализации
type FrequencyOutcome struct {
	Frequency          string  `json:"frequency"`
	PeriodsPerYear     int     `json:"periods_per_year"`
	FinalAmount        float64 `json:"final_amount"`
	TotalContributions float64 `json:"total_contributions"`
	TotalInterest      float64 `json:"total_interest"`
	ShortfallFromBest  float64 `json:"shortfall_from_best"`
}

// FrequencyComparison представляет результат сравнения частот капитализации
type FrequencyComparison struct {
	Outcomes       []FrequencyOutcome `json:"outcomes"`
	Best           string             `json:"best"`
	Spread         float64            `json:"spread"`
	Recommendation string             `json:"recommendation"`
}
