// Package service оборачивает движок расчета валидацией, трейсингом, метриками и логированием.
// Им пользуются все адаптеры: HTTP API, MCP, CLI и TUI.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cloud-ru/firefly-go/internal/calculations"
	"github.com/cloud-ru/firefly-go/internal/config"
	"github.com/cloud-ru/firefly-go/internal/logging"
	"github.com/cloud-ru/firefly-go/internal/metrics"
	"github.com/cloud-ru/firefly-go/internal/models"
	"github.com/cloud-ru/firefly-go/internal/validators"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Названия операций для спанов и метрик
const (
	OpCalculate  = "calculate"
	OpProjection = "monthly_projection"
	OpCompare    = "compare_frequencies"
)

// Типы ошибок для calculation_errors_total
const (
	errTypeValidation = "validation"
	errTypeBalanceCap = "balance_cap"
	errTypeEngine     = "calculation"
)

// Service выполняет расчеты от имени одного адаптера
type Service struct {
	cfg     *config.Config
	tracer  trace.Tracer
	logger  *logging.Logger
	adapter string
}

// New создает сервис. adapter попадает в метки метрик (api, mcp, cli, tui).
func New(cfg *config.Config, tracer trace.Tracer, logger *logging.Logger, adapter string) *Service {
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("firefly")
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Service{
		cfg:     cfg,
		tracer:  tracer,
		logger:  logger.WithComponent(logging.ComponentService).With(logging.FieldAdapter, adapter),
		adapter: adapter,
	}
}

// Config возвращает конфигурацию сервиса
func (s *Service) Config() *config.Config {
	return s.cfg
}

// Calculate проверяет Input и рассчитывает годовую разбивку
func (s *Service) Calculate(ctx context.Context, in calculations.Input) (*calculations.Result, error) {
	var res *calculations.Result
	err := s.run(ctx, OpCalculate, in, func(in calculations.Input) error {
		var err error
		if res, err = calculations.Calculate(in); err != nil {
			return err
		}
		return calculations.CheckBalanceCap(s.cfg, res)
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Project проверяет Input и строит помесячную проекцию
func (s *Service) Project(ctx context.Context, in calculations.Input) ([]calculations.ProjectionPoint, error) {
	var points []calculations.ProjectionPoint
	err := s.run(ctx, OpProjection, in, func(in calculations.Input) error {
		var err error
		if points, err = calculations.MonthlyProjection(in); err != nil {
			return err
		}
		return calculations.CheckProjectionCap(s.cfg, points)
	})
	if err != nil {
		return nil, err
	}
	return points, nil
}

// Compare проверяет Input и сравнивает частоты капитализации
func (s *Service) Compare(ctx context.Context, in calculations.Input) (*calculations.FrequencyComparison, error) {
	var cmp *calculations.FrequencyComparison
	err := s.run(ctx, OpCompare, in, func(in calculations.Input) error {
		var err error
		if cmp, err = calculations.CompareFrequencies(in); err != nil {
			return err
		}
		return calculations.CheckComparisonCap(s.cfg, cmp)
	})
	if err != nil {
		return nil, err
	}
	return cmp, nil
}

// CalculateRequest выполняет расчет по запросу API
func (s *Service) CalculateRequest(ctx context.Context, req models.CalculateRequest) (*calculations.Result, error) {
	in, err := s.inputFromRequest(ctx, OpCalculate, req)
	if err != nil {
		return nil, err
	}
	return s.Calculate(ctx, in)
}

// ProjectRequest строит проекцию по запросу API
func (s *Service) ProjectRequest(ctx context.Context, req models.CalculateRequest) ([]calculations.ProjectionPoint, error) {
	in, err := s.inputFromRequest(ctx, OpProjection, req)
	if err != nil {
		return nil, err
	}
	return s.Project(ctx, in)
}

// CompareRequest сравнивает частоты по запросу API
func (s *Service) CompareRequest(ctx context.Context, req models.CalculateRequest) (*calculations.FrequencyComparison, error) {
	in, err := s.inputFromRequest(ctx, OpCompare, req)
	if err != nil {
		return nil, err
	}
	return s.Compare(ctx, in)
}

func (s *Service) inputFromRequest(ctx context.Context, operation string, req models.CalculateRequest) (calculations.Input, error) {
	in, err := validators.InputFromRequest(s.cfg, req)
	if err != nil {
		s.recordFailure(ctx, nil, operation, errTypeValidation, err)
		return calculations.Input{}, err
	}
	return in, nil
}

// run выполняет операцию внутри спана и учитывает ее в метриках
func (s *Service) run(ctx context.Context, operation string, in calculations.Input, calc func(calculations.Input) error) error {
	ctx, span := s.tracer.Start(ctx, operation)
	defer span.End()

	span.SetAttributes(
		attribute.String("adapter", s.adapter),
		attribute.Float64("principal", in.Principal),
		attribute.Float64("annual_rate_percent", in.AnnualRatePercent),
		attribute.Int("years", in.Years),
		attribute.Int("months", in.Months),
		attribute.Float64("monthly_contribution", in.MonthlyContribution),
		attribute.Float64("annual_contribution", in.AnnualContribution),
		attribute.String("compounding_frequency", in.CompoundingFrequency.String()),
	)

	if err := validators.ValidateInput(s.cfg, in); err != nil {
		s.recordFailure(ctx, span, operation, errTypeValidation, err)
		return err
	}

	start := time.Now()
	err := calc(in)
	elapsed := time.Since(start)
	metrics.CalculationDuration.WithLabelValues(operation).Observe(elapsed.Seconds())

	if err != nil {
		errType := errTypeEngine
		if errors.Is(err, calculations.ErrBalanceCapExceeded) {
			errType = errTypeBalanceCap
		}
		s.recordFailure(ctx, span, operation, errType, err)
		return fmt.Errorf("calculation failed: %w", err)
	}

	span.SetAttributes(attribute.Bool("success", true))
	metrics.Calculations.WithLabelValues(s.adapter, operation, "success").Inc()
	logging.FromContextOr(ctx, s.logger).Debug("calculation completed",
		logging.FieldOperation, operation,
		logging.FieldDuration, float64(elapsed.Microseconds())/1000.0,
	)
	return nil
}

func (s *Service) recordFailure(ctx context.Context, span trace.Span, operation, errType string, err error) {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, errType)
		span.SetAttributes(attribute.String("error", errType))
	}
	metrics.Calculations.WithLabelValues(s.adapter, operation, errType+"_error").Inc()
	metrics.CalculationErrors.WithLabelValues(s.adapter, errType).Inc()
	logging.FromContextOr(ctx, s.logger).Warn("calculation rejected",
		logging.FieldOperation, operation,
		logging.FieldError, err.Error(),
	)
}

// IsValidationError сообщает, вызвана ли ошибка некорректными параметрами
func IsValidationError(err error) bool {
	var fe *validators.FieldError
	return errors.As(err, &fe)
}
