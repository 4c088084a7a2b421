// Package cli реализует интерактивный калькулятор сложного процента для терминала.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/cloud-ru/firefly-go/internal/calculations"
	"github.com/cloud-ru/firefly-go/internal/logging"
	"github.com/cloud-ru/firefly-go/internal/render"
	"github.com/cloud-ru/firefly-go/internal/scenario"
	"github.com/cloud-ru/firefly-go/internal/service"
	"github.com/cloud-ru/firefly-go/internal/validators"
	"github.com/mattn/go-isatty"
)

// Варианты меню подтверждения
const (
	confirmCalculate = iota
	confirmEditPrincipal
	confirmEditRate
	confirmEditPeriod
	confirmEditFrequency
	confirmEditContributions
	confirmCancel
)

var confirmOptions = []string{
	"Yes, calculate!",
	"Edit Principal",
	"Edit Return Rate",
	"Edit Time Period",
	"Edit Compounding Frequency",
	"Edit Contributions",
	"Cancel",
}

// Варианты после расчета
const (
	nextAdjust = iota
	nextNew
	nextExit
)

var nextOptions = []string{"Adjust parameters", "New calculation", "Exit"}

var frequencyOptions = []calculations.CompoundingFrequency{calculations.Monthly, calculations.Annually, calculations.Daily}

// CLI интерактивная сессия калькулятора
type CLI struct {
	svc    *service.Service
	p      *prompter
	out    io.Writer
	color  bool
	logger *logging.Logger

	// последние подтвержденные параметры, используются как значения по умолчанию
	last *calculations.Input
}

// New создает сессию поверх заданных потоков ввода и вывода
func New(svc *service.Service, in io.Reader, out io.Writer, logger *logging.Logger) *CLI {
	if logger == nil {
		logger = logging.Discard()
	}
	color := false
	if f, ok := out.(*os.File); ok {
		color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &CLI{
		svc:    svc,
		p:      newPrompter(in, out),
		out:    out,
		color:  color,
		logger: logger.WithComponent(logging.ComponentCLI),
	}
}

// Run запускает цикл ввода, расчета и вывода до выхода пользователя или конца ввода
func (c *CLI) Run(ctx context.Context) error {
	c.welcome()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		in, err := c.gatherInputs()
		if err != nil {
			return c.finish(err)
		}

		ok, err := c.confirmInputs(&in)
		if err != nil {
			return c.finish(err)
		}
		if !ok {
			continue
		}
		c.last = &in

		res, err := c.svc.Calculate(ctx, in)
		if err != nil {
			c.logger.Debug("calculation rejected", logging.FieldError, err.Error())
			fmt.Fprintf(c.out, "\n  ! %v\n\n", err)
			continue
		}

		showYearly, err := c.p.confirm("Show year-by-year breakdown?", false)
		if err != nil {
			return c.finish(err)
		}
		if err := c.Display(ctx, res, showYearly); err != nil {
			return err
		}

		next, err := c.p.choose("What would you like to do?", nextOptions, nextAdjust)
		if err != nil {
			return c.finish(err)
		}
		switch next {
		case nextExit:
			fmt.Fprintln(c.out, c.heading("\nThanks for using Firefly!"))
			return nil
		case nextNew:
			c.last = nil
		}
	}
}

// Display печатает итоги, при необходимости годовую разбивку, и график роста
func (c *CLI) Display(ctx context.Context, res *calculations.Result, showYearly bool) error {
	fmt.Fprintln(c.out)
	if err := render.Summary(c.out, res); err != nil {
		return err
	}
	fmt.Fprintln(c.out)

	if showYearly {
		fmt.Fprintln(c.out, c.heading("Year-by-Year Breakdown"))
		if err := render.YearlyTable(c.out, res); err != nil {
			return err
		}
		fmt.Fprintln(c.out)
	}

	// график необязателен: помесячный ряд может упереться в лимит баланса раньше годового расчета
	points, err := c.svc.Project(ctx, res.InputParams)
	if err != nil {
		c.logger.Warn("growth chart skipped", logging.FieldError, err.Error())
		_, werr := fmt.Fprintf(c.out, "Growth chart unavailable: %v\n", err)
		return werr
	}
	in := res.InputParams
	_, err = fmt.Fprintln(c.out, render.Chart(render.GrowthFromProjection(points, in.TotalYears()), render.DefaultChartWidth, render.DefaultChartHeight))
	return err
}

func (c *CLI) welcome() {
	fmt.Fprintln(c.out, c.heading("Firefly - Compound Interest Calculator"))
	fmt.Fprintln(c.out, "Press Enter to accept the value in brackets, Ctrl+D to exit.")
	fmt.Fprintln(c.out)
}

// finish превращает конец ввода в штатное завершение
func (c *CLI) finish(err error) error {
	if errors.Is(err, errAborted) {
		fmt.Fprintln(c.out)
		return nil
	}
	return err
}

func (c *CLI) heading(s string) string {
	if !c.color {
		return s
	}
	return "\x1b[1;36m" + s + "\x1b[0m"
}

func (c *CLI) gatherInputs() (calculations.Input, error) {
	in := calculations.Input{AnnualRatePercent: 7, Years: 10, CompoundingFrequency: calculations.Monthly}
	principalDefault := ""
	if c.last != nil {
		in = *c.last
		principalDefault = strconv.FormatFloat(in.Principal, 'f', -1, 64)
	}

	var err error
	if in.Principal, err = c.askPrincipal(principalDefault); err != nil {
		return in, err
	}
	if in.AnnualRatePercent, err = c.askRate(strconv.FormatFloat(in.AnnualRatePercent, 'f', -1, 64)); err != nil {
		return in, err
	}
	if in.Years, in.Months, err = c.askPeriod(in.Years, in.Months); err != nil {
		return in, err
	}
	if in.CompoundingFrequency, err = c.askFrequency(in.CompoundingFrequency); err != nil {
		return in, err
	}
	if in.MonthlyContribution, in.AnnualContribution, err = c.askContributions(in.MonthlyContribution, in.AnnualContribution); err != nil {
		return in, err
	}
	return in, nil
}

// confirmInputs показывает параметры и позволяет отредактировать их перед расчетом
func (c *CLI) confirmInputs(in *calculations.Input) (bool, error) {
	for {
		fmt.Fprintln(c.out)
		if err := render.InputSummary(c.out, *in); err != nil {
			return false, err
		}
		fmt.Fprintln(c.out)

		action, err := c.p.choose("Does this look correct?", confirmOptions, confirmCalculate)
		if err != nil {
			return false, err
		}

		switch action {
		case confirmCalculate:
			if err := validators.ValidateInput(c.svc.Config(), *in); err != nil {
				fmt.Fprintf(c.out, "  ! %v\n", err)
				continue
			}
			return true, nil
		case confirmCancel:
			return false, nil
		case confirmEditPrincipal:
			in.Principal, err = c.askPrincipal(strconv.FormatFloat(in.Principal, 'f', -1, 64))
		case confirmEditRate:
			in.AnnualRatePercent, err = c.askRate(strconv.FormatFloat(in.AnnualRatePercent, 'f', -1, 64))
		case confirmEditPeriod:
			in.Years, in.Months, err = c.askPeriod(in.Years, in.Months)
		case confirmEditFrequency:
			in.CompoundingFrequency, err = c.askFrequency(in.CompoundingFrequency)
		case confirmEditContributions:
			in.MonthlyContribution, in.AnnualContribution, err = c.askContributions(in.MonthlyContribution, in.AnnualContribution)
		}
		if err != nil {
			return false, err
		}
	}
}

func (c *CLI) askPrincipal(def string) (float64, error) {
	cfg := c.svc.Config()
	return c.p.askFloat("Principal amount ($)", def, func(v float64) error {
		if v <= 0 {
			return errors.New("principal must be greater than 0")
		}
		return validators.CheckPrincipal(cfg, v)
	})
}

func (c *CLI) askRate(def string) (float64, error) {
	cfg := c.svc.Config()
	return c.p.askFloat("Annual return rate (%)", def, func(v float64) error {
		return validators.CheckRate(cfg, v)
	})
}

func (c *CLI) askPeriod(defYears, defMonths int) (int, int, error) {
	cfg := c.svc.Config()

	def := 0
	if defMonths > 0 {
		def = 1
	}
	choice, err := c.p.choose("Time period", []string{"Years only", "Years + Months"}, def)
	if err != nil {
		return 0, 0, err
	}

	years, err := c.p.askInt("Years", strconv.Itoa(defYears), func(v int) error {
		return validators.CheckYears(cfg, v)
	})
	if err != nil {
		return 0, 0, err
	}

	months := 0
	if choice == 1 {
		months, err = c.p.askInt("Months", strconv.Itoa(defMonths), validators.CheckMonths)
		if err != nil {
			return 0, 0, err
		}
	}
	return years, months, nil
}

func (c *CLI) askFrequency(current calculations.CompoundingFrequency) (calculations.CompoundingFrequency, error) {
	names := make([]string, len(frequencyOptions))
	def := 0
	for i, f := range frequencyOptions {
		names[i] = f.Title()
		if f == current {
			def = i
		}
	}
	choice, err := c.p.choose("Compounding frequency", names, def)
	if err != nil {
		return 0, err
	}
	return frequencyOptions[choice], nil
}

// askContributions возвращает ежемесячный и ежегодный взносы; задан не более чем один
func (c *CLI) askContributions(defMonthly, defAnnual float64) (float64, float64, error) {
	cfg := c.svc.Config()

	def := 0
	switch {
	case defMonthly > 0:
		def = 1
	case defAnnual > 0:
		def = 2
	}
	choice, err := c.p.choose("Do you want to add regular contributions?",
		[]string{"No contributions", "Monthly contributions", "Annual contributions"}, def)
	if err != nil {
		return 0, 0, err
	}

	switch choice {
	case 1:
		v, err := c.p.askFloat("Monthly contribution amount ($)", strconv.FormatFloat(defMonthly, 'f', -1, 64), func(v float64) error {
			return validators.CheckContribution(cfg, "monthly_contribution", v)
		})
		return v, 0, err
	case 2:
		v, err := c.p.askFloat("Annual contribution amount ($)", strconv.FormatFloat(defAnnual, 'f', -1, 64), func(v float64) error {
			return validators.CheckContribution(cfg, "annual_contribution", v)
		})
		return 0, v, err
	}
	return 0, 0, nil
}

// RunScenarios рассчитывает сценарии из файла без вопросов пользователю
func (c *CLI) RunScenarios(ctx context.Context, scenarios []scenario.Scenario, showYearly bool) error {
	inputs, err := scenario.Inputs(c.svc.Config(), scenarios)
	if err != nil {
		return err
	}

	for i, in := range inputs {
		fmt.Fprintln(c.out, c.heading("== "+scenarios[i].Name))
		res, err := c.svc.Calculate(ctx, in)
		if err != nil {
			return fmt.Errorf("%s: %w", scenarios[i].Name, err)
		}
		if err := c.Display(ctx, res, showYearly); err != nil {
			return err
		}
	}
	return nil
}
