package validators

import (
	"fmt"
	"strings"

	"github.com/cloud-ru/firefly-go/internal/calculations"
	"github.com/cloud-ru/firefly-go/internal/config"
	"github.com/cloud-ru/firefly-go/internal/models"
	"github.com/cloud-ru/firefly-go/pkg/utils"
)

// FieldError описывает ошибку валидации конкретного поля
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

func fieldError(field, format string, args ...any) *FieldError {
	return &FieldError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// ValidatePositiveNumber проверяет, что число конечное и в допустимом диапазоне
func ValidatePositiveNumber(name string, value float64, minInclusive, maxInclusive float64) error {
	if !utils.IsFinite(value) {
		return fieldError(name, "value is not a finite number")
	}
	if value < minInclusive {
		return fieldError(name, "value must be >= %g", minInclusive)
	}
	if value > maxInclusive {
		return fieldError(name, "value is too large (> %g)", maxInclusive)
	}
	return nil
}

// ValidateIntRange проверяет, что целое число в допустимом диапазоне
func ValidateIntRange(name string, value int, minInclusive, maxInclusive int) error {
	if value < minInclusive || value > maxInclusive {
		return fieldError(name, "value must be in range [%d; %d]", minInclusive, maxInclusive)
	}
	return nil
}

// CheckPrincipal проверяет начальную сумму
func CheckPrincipal(cfg *config.Config, principal float64) error {
	return ValidatePositiveNumber("principal", principal, 0.0, cfg.MaxPrincipal)
}

// CheckRate проверяет годовую ставку в процентах
func CheckRate(cfg *config.Config, rate float64) error {
	return ValidatePositiveNumber("annual_rate", rate, 0.0, cfg.MaxRate)
}

// CheckYears проверяет срок в годах
func CheckYears(cfg *config.Config, years int) error {
	return ValidateIntRange("years", years, 0, cfg.MaxYears)
}

// CheckMonths проверяет дополнительные месяцы
func CheckMonths(months int) error {
	return ValidateIntRange("months", months, 0, 11)
}

// CheckContribution проверяет ежемесячный или ежегодный взнос
func CheckContribution(cfg *config.Config, name string, contribution float64) error {
	return ValidatePositiveNumber(name, contribution, 0.0, cfg.MaxContribution)
}

// ParseFrequency переводит строку в частоту капитализации без учета регистра.
// Пустая строка означает ежегодную капитализацию.
func ParseFrequency(s string) (calculations.CompoundingFrequency, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "daily":
		return calculations.Daily, nil
	case "monthly":
		return calculations.Monthly, nil
	case "annually", "":
		return calculations.Annually, nil
	}
	return 0, fieldError("compounding_frequency", "must be one of daily, monthly, annually; got %q", s)
}

// ValidateInput проверяет инварианты Input и ограничения из конфигурации
func ValidateInput(cfg *config.Config, in calculations.Input) error {
	if err := CheckPrincipal(cfg, in.Principal); err != nil {
		return err
	}
	if err := CheckRate(cfg, in.AnnualRatePercent); err != nil {
		return err
	}
	if err := CheckYears(cfg, in.Years); err != nil {
		return err
	}
	if err := CheckMonths(in.Months); err != nil {
		return err
	}
	if in.Years == cfg.MaxYears && in.Months > 0 {
		return fieldError("months", "period exceeds %d years", cfg.MaxYears)
	}
	if err := CheckContribution(cfg, "monthly_contribution", in.MonthlyContribution); err != nil {
		return err
	}
	if err := CheckContribution(cfg, "annual_contribution", in.AnnualContribution); err != nil {
		return err
	}
	if !in.CompoundingFrequency.Valid() {
		return fieldError("compounding_frequency", "unsupported value %d", int(in.CompoundingFrequency))
	}
	return nil
}

// InputFromRequest строит Input из запроса API. Начальная сумма и срок в годах
// должны быть строго положительными.
func InputFromRequest(cfg *config.Config, req models.CalculateRequest) (calculations.Input, error) {
	freq, err := ParseFrequency(req.CompoundingFrequency)
	if err != nil {
		return calculations.Input{}, err
	}
	if utils.IsFinite(req.Principal) && req.Principal <= 0 {
		return calculations.Input{}, fieldError("principal", "must be greater than 0")
	}
	if req.Years <= 0 {
		return calculations.Input{}, fieldError("years", "must be greater than 0")
	}

	in := calculations.Input{
		Principal:            req.Principal,
		AnnualRatePercent:    req.AnnualRate,
		Years:                req.Years,
		Months:               req.Months,
		MonthlyContribution:  req.MonthlyContribution,
		AnnualContribution:   req.AnnualContribution,
		CompoundingFrequency: freq,
	}
	if err := ValidateInput(cfg, in); err != nil {
		return calculations.Input{}, err
	}
	return in, nil
}
