package calculations

import (
	"math"
	"testing"
)

func TestFutureValue(t *testing.T) {
	tests := []struct {
		name              string
		principal         float64
		annualRatePercent float64
		periodsPerYear    int
		years             float64
		payment           float64
		check             func(*testing.T, float64)
	}{
		{
			name:              "principal only, annual",
			principal:         1000,
			annualRatePercent: 10,
			periodsPerYear:    1,
			years:             2,
			check: func(t *testing.T, fv float64) {
				if math.Abs(fv-1210) > 1e-9 {
					t.Errorf("expected 1210, got %f", fv)
				}
			},
		},
		{
			name:              "zero rate",
			principal:         1000,
			annualRatePercent: 0,
			periodsPerYear:    12,
			years:             1,
			payment:           100,
			check: func(t *testing.T, fv float64) {
				if fv != 2200 {
					t.Errorf("expected 2200, got %f", fv)
				}
			},
		},
		{
			name:              "payments only",
			principal:         0,
			annualRatePercent: 12,
			periodsPerYear:    12,
			years:             1,
			payment:           100,
			check: func(t *testing.T, fv float64) {
				// 100 × ((1.01^12 - 1) / 0.01)
				want := 100 * (math.Pow(1.01, 12) - 1) / 0.01
				if math.Abs(fv-want) > 1e-9 {
					t.Errorf("expected %f, got %f", want, fv)
				}
				if fv <= 1200 {
					t.Error("future value should exceed the sum of payments")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fv := FutureValue(tt.principal, tt.annualRatePercent, tt.periodsPerYear, tt.years, tt.payment)
			tt.check(t, fv)
		})
	}
}
