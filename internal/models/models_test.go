package models

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/cloud-ru/firefly-go/internal/calculations"
)

func TestNewCalculateResponse(t *testing.T) {
	res, err := calculations.Calculate(calculations.Input{
		Principal:            1000,
		AnnualRatePercent:    10,
		Years:                2,
		CompoundingFrequency: calculations.Annually,
	})
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}

	resp := NewCalculateResponse(res)
	if resp.FinalAmount != res.FinalAmount || resp.TotalInterest != res.TotalInterest {
		t.Errorf("totals not copied: %+v", resp)
	}
	if len(resp.YearlyBreakdown) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(resp.YearlyBreakdown))
	}
	if resp.YearlyBreakdown[1].Year != 2 || resp.YearlyBreakdown[1].EndingBalance != res.FinalAmount {
		t.Errorf("unexpected last row: %+v", resp.YearlyBreakdown[1])
	}
}

func TestEmptyResponsesEncodeArrays(t *testing.T) {
	calc, _ := json.Marshal(NewCalculateResponse(nil))
	if !strings.Contains(string(calc), `"yearly_breakdown":[]`) {
		t.Errorf("expected empty yearly_breakdown array, got %s", calc)
	}

	proj, _ := json.Marshal(NewProjectionResponse(nil))
	if string(proj) != `{"points":[]}` {
		t.Errorf("expected empty points array, got %s", proj)
	}
}

func TestCalculateRequestDecoding(t *testing.T) {
	var req CalculateRequest
	body := `{"principal":10000,"annual_rate":7,"years":10,"monthly_contribution":500,"compounding_frequency":"MONTHLY"}`
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if req.Principal != 10000 || req.AnnualRate != 7 || req.Years != 10 || req.Months != 0 {
		t.Errorf("unexpected request: %+v", req)
	}
	if req.CompoundingFrequency != "MONTHLY" {
		t.Errorf("expected frequency token to be kept verbatim, got %q", req.CompoundingFrequency)
	}
}
