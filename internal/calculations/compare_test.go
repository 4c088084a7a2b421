package calculations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareFrequencies(t *testing.T) {
	in := Input{Principal: 10000, AnnualRatePercent: 7, Years: 10, CompoundingFrequency: Monthly}

	cmp, err := CompareFrequencies(in)
	require.NoError(t, err)
	require.Len(t, cmp.Outcomes, 3)

	byName := map[string]FrequencyOutcome{}
	for _, o := range cmp.Outcomes {
		byName[o.Frequency] = o
	}

	// без взносов более частая капитализация дает больший результат
	assert.Greater(t, byName["daily"].FinalAmount, byName["monthly"].FinalAmount)
	assert.Greater(t, byName["monthly"].FinalAmount, byName["annually"].FinalAmount)
	assert.Equal(t, "daily", cmp.Best)
	assert.Zero(t, byName["daily"].ShortfallFromBest)
	assert.InDelta(t, byName["daily"].FinalAmount-byName["annually"].FinalAmount, cmp.Spread, 1e-9)
	assert.Contains(t, cmp.Recommendation, "Daily compounding yields the highest final amount")
	assert.Equal(t, 365, byName["daily"].PeriodsPerYear)

	monthly := mustCalculate(t, in)
	assert.Equal(t, monthly.FinalAmount, byName["monthly"].FinalAmount)
}

func TestCompareFrequencies_ZeroRate(t *testing.T) {
	cmp, err := CompareFrequencies(Input{Principal: 500, Years: 3, AnnualContribution: 1200, CompoundingFrequency: Annually})
	require.NoError(t, err)
	assert.Contains(t, cmp.Recommendation, "same final amount")
}

func TestCompareFrequencies_InvalidInput(t *testing.T) {
	_, err := CompareFrequencies(Input{Principal: -5, Years: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
