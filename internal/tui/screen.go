// Package tui реализует экран калькулятора для терминала: панель параметров,
// график роста по годам и строку статистики. Любое изменение поля сразу
// пересчитывает результат.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cloud-ru/firefly-go/internal/calculations"
	"github.com/cloud-ru/firefly-go/internal/render"
	"github.com/cloud-ru/firefly-go/internal/scenario"
	"github.com/cloud-ru/firefly-go/internal/service"
	"github.com/cloud-ru/firefly-go/pkg/utils"
)

// Размеры графика на экране
const (
	graphWidth  = 60
	graphHeight = 20
)

// DefaultInput начальные значения полей экрана
func DefaultInput() calculations.Input {
	return calculations.Input{
		Principal:            10000,
		AnnualRatePercent:    7,
		Years:                10,
		CompoundingFrequency: calculations.Annually,
	}
}

// Screen состояние экрана калькулятора
type Screen struct {
	svc    *service.Service
	ctx    context.Context
	in     calculations.Input
	result *calculations.Result
}

// NewScreen создает экран со значениями по умолчанию и сразу выполняет расчет
func NewScreen(ctx context.Context, svc *service.Service) (*Screen, error) {
	s := &Screen{svc: svc, ctx: ctx}
	if err := s.apply(DefaultInput()); err != nil {
		return nil, err
	}
	return s, nil
}

// Input текущие параметры
func (s *Screen) Input() calculations.Input {
	return s.in
}

// Result результат последнего успешного расчета
func (s *Screen) Result() *calculations.Result {
	return s.result
}

// apply пересчитывает результат; при ошибке состояние экрана не меняется
func (s *Screen) apply(in calculations.Input) error {
	res, err := s.svc.Calculate(s.ctx, in)
	if err != nil {
		return err
	}
	s.in = in
	s.result = res
	return nil
}

// SetPrincipal меняет начальную сумму
func (s *Screen) SetPrincipal(v float64) error {
	in := s.in
	in.Principal = v
	return s.apply(in)
}

// SetRate меняет годовую ставку в процентах
func (s *Screen) SetRate(v float64) error {
	in := s.in
	in.AnnualRatePercent = v
	return s.apply(in)
}

// SetYears меняет срок в годах
func (s *Screen) SetYears(v int) error {
	in := s.in
	in.Years = v
	return s.apply(in)
}

// SetMonths меняет дополнительные месяцы
func (s *Screen) SetMonths(v int) error {
	in := s.in
	in.Months = v
	return s.apply(in)
}

// SetMonthlyContribution меняет ежемесячный взнос
func (s *Screen) SetMonthlyContribution(v float64) error {
	in := s.in
	in.MonthlyContribution = v
	return s.apply(in)
}

// SetAnnualContribution меняет ежегодный взнос
func (s *Screen) SetAnnualContribution(v float64) error {
	in := s.in
	in.AnnualContribution = v
	return s.apply(in)
}

// SetFrequency меняет частоту капитализации
func (s *Screen) SetFrequency(f calculations.CompoundingFrequency) error {
	in := s.in
	in.CompoundingFrequency = f
	return s.apply(in)
}

// Reset возвращает значения по умолчанию
func (s *Screen) Reset() error {
	return s.apply(DefaultInput())
}

// Load загружает первый сценарий из YAML файла
func (s *Screen) Load(path string) (string, error) {
	scenarios, err := scenario.Load(path)
	if err != nil {
		return "", err
	}
	inputs, err := scenario.Inputs(s.svc.Config(), scenarios[:1])
	if err != nil {
		return "", err
	}
	if err := s.apply(inputs[0]); err != nil {
		return "", err
	}
	return scenarios[0].Name, nil
}

// Compare печатает сравнение частот капитализации для текущих параметров
func (s *Screen) Compare(w io.Writer) error {
	cmp, err := s.svc.Compare(s.ctx, s.in)
	if err != nil {
		return err
	}
	return render.Comparison(w, cmp)
}

// Render рисует экран
func (s *Screen) Render(w io.Writer) error {
	if s.result == nil {
		return errors.New("nothing calculated yet")
	}

	fmt.Fprintln(w, "Firefly | Calculator")
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Calculator Inputs")
	fmt.Fprintf(tw, "  Principal Amount ($)\t%s\n", utils.FormatMoney(s.in.Principal))
	fmt.Fprintf(tw, "  Annual Return Rate (%%)\t%g\n", s.in.AnnualRatePercent)
	fmt.Fprintf(tw, "  Years\t%d\n", s.in.Years)
	fmt.Fprintf(tw, "  Months\t%d\n", s.in.Months)
	fmt.Fprintf(tw, "  Monthly Contribution ($)\t%s\n", utils.FormatMoney(s.in.MonthlyContribution))
	fmt.Fprintf(tw, "  Annual Contribution ($)\t%s\n", utils.FormatMoney(s.in.AnnualContribution))
	fmt.Fprintf(tw, "  Compounding Frequency\t%s\n", s.in.CompoundingFrequency.Title())
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(w)

	fmt.Fprint(w, render.Chart(render.GrowthFromYearly(s.result), graphWidth, graphHeight))
	fmt.Fprintln(w)
	_, err := fmt.Fprintln(w, render.StatsLine(s.result))
	return err
}
