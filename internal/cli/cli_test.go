package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/cloud-ru/firefly-go/internal/config"
	"github.com/cloud-ru/firefly-go/internal/scenario"
	"github.com/cloud-ru/firefly-go/internal/service"
)

func runScript(t *testing.T, lines ...string) string {
	t.Helper()
	cfg, err := config.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	return runScriptWithConfig(t, cfg, lines...)
}

func runScriptWithConfig(t *testing.T, cfg *config.Config, lines ...string) string {
	t.Helper()

	var out bytes.Buffer
	c := New(service.New(cfg, nil, nil, "cli"), strings.NewReader(strings.Join(lines, "\n")+"\n"), &out, nil)
	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v\n%s", err, out.String())
	}
	return out.String()
}

func TestRunFullFlow(t *testing.T) {
	out := runScript(t,
		"",       // principal without default
		"2e9",    // above the configured maximum
		"10,000", // principal
		"",       // rate 7
		"1",      // years only
		"",       // 10 years
		"",       // monthly compounding
		"2",      // monthly contributions
		"500",
		"1", // confirm
		"y", // yearly breakdown
		"3", // exit
	)

	for _, want := range []string{
		"Firefly - Compound Interest Calculator",
		"is not a number",
		"too large",
		"Input Summary",
		"$10,000.00",
		"Monthly Contribution",
		"Year-by-Year Breakdown",
		"$106,63",
		"Portfolio Growth Over Time",
		"Thanks for using Firefly!",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("unexpected ANSI codes when writing to a buffer")
	}
}

func TestAdjustReusesLastInput(t *testing.T) {
	out := runScript(t,
		"5000", "", "1", "2", "annually", "1", // first scenario
		"1", // confirm
		"n", // no yearly breakdown
		"1", // adjust parameters
		"",  // principal stays 5000
		"10",
		"", "", "", "", // period, years, frequency, contributions from the last run
		"1",
		"",
	)

	if !strings.Contains(out, "$5,724.50") {
		t.Errorf("first calculation missing:\n%s", out)
	}
	if !strings.Contains(out, "Principal amount ($) [5000]") {
		t.Errorf("principal default was not reused:\n%s", out)
	}
	if !strings.Contains(out, "$6,050.00") {
		t.Errorf("adjusted calculation missing:\n%s", out)
	}
	if strings.Contains(out, "Year-by-Year Breakdown") {
		t.Error("yearly breakdown shown although declined")
	}
}

func TestChartFailureKeepsSession(t *testing.T) {
	cfg, err := config.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	// годовой расчет дает 2300, помесячный ряд к 12-му месяцу 2410
	cfg.MaxBalanceCap = 2350

	out := runScriptWithConfig(t, cfg,
		"1000", "10", "1", "1", "annually", // one year, annual compounding
		"2", "100", // monthly contributions
		"1", // confirm
		"n", // no yearly breakdown
		"3", // exit
	)

	for _, want := range []string{"$2,300.00", "Growth chart unavailable", "upper bound", "Thanks for using Firefly!"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Portfolio Growth Over Time") {
		t.Error("chart rendered although the projection was rejected")
	}
}

func TestEditAndCancel(t *testing.T) {
	out := runScript(t,
		"1000", "", "1", "1", "3", "1", // daily, no contributions
		"4",      // edit time period
		"2", "", "6", // years + months
		"7", // cancel
	)

	if !strings.Contains(out, "1 years, 0 months") || !strings.Contains(out, "1 years, 6 months") {
		t.Errorf("edited period not shown:\n%s", out)
	}
	if !strings.Contains(out, "Daily") {
		t.Errorf("daily compounding not shown:\n%s", out)
	}
	if strings.Contains(out, "Final Amount") {
		t.Error("cancelled scenario should not be calculated")
	}
}

func TestRunScenarios(t *testing.T) {
	cfg, _ := config.LoadConfig()
	scenarios, err := scenario.Parse([]byte(`
scenarios:
  - name: doubling
    principal: 1000
    annual_rate: 10
    years: 2
  - name: daily saver
    principal: 500
    annual_rate: 3
    years: 1
    months: 6
    monthly_contribution: 50
    compounding_frequency: daily
`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	var out bytes.Buffer
	c := New(service.New(cfg, nil, nil, "cli"), strings.NewReader(""), &out, nil)
	if err := c.RunScenarios(context.Background(), scenarios, true); err != nil {
		t.Fatalf("RunScenarios() error = %v", err)
	}

	s := out.String()
	for _, want := range []string{"== doubling", "$1,210.00", "== daily saver", "Year-by-Year Breakdown", "1 years, 6 months"} {
		if !strings.Contains(s, want) {
			t.Errorf("output missing %q", want)
		}
	}

	scenarios[0].Years = 0
	if err := c.RunScenarios(context.Background(), scenarios, false); err == nil {
		t.Error("expected validation error for a scenario without years")
	}
}
