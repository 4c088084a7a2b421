package calculations

import (
	"fmt"

	"github.com/cloud-ru/firefly-go/pkg/utils"
)

// CompareFrequencies сравнивает итоги одного сценария при ежедневной, ежемесячной и ежегодной капитализации
func CompareFrequencies(in Input) (*FrequencyComparison, error) {
	outcomes := make([]FrequencyOutcome, 0, len(Frequencies))

	for _, freq := range Frequencies {
		scenario := in
		scenario.CompoundingFrequency = freq

		res, err := Calculate(scenario)
		if err != nil {
			return nil, fmt.Errorf("%s compounding: %w", freq, err)
		}

		outcomes = append(outcomes, FrequencyOutcome{
			Frequency:          freq.String(),
			PeriodsPerYear:     freq.PeriodsPerYear(),
			FinalAmount:        res.FinalAmount,
			TotalContributions: res.TotalContributions,
			TotalInterest:      res.TotalInterest,
		})
	}

	// Определяем лучшую и худшую частоту
	best, worst := 0, 0
	for i, o := range outcomes {
		if o.FinalAmount > outcomes[best].FinalAmount {
			best = i
		}
		if o.FinalAmount < outcomes[worst].FinalAmount {
			worst = i
		}
	}
	for i := range outcomes {
		outcomes[i].ShortfallFromBest = outcomes[best].FinalAmount - outcomes[i].FinalAmount
	}

	spread := outcomes[best].FinalAmount - outcomes[worst].FinalAmount

	var recommendation string
	if utils.Round2(spread) == 0 {
		recommendation = "All compounding frequencies produce the same final amount for this scenario."
	} else {
		recommendation = fmt.Sprintf("%s compounding yields the highest final amount, %s more than %s compounding.",
			Frequencies[best].Title(), utils.FormatMoney(spread), Frequencies[worst].String())
	}

	return &FrequencyComparison{
		Outcomes:       outcomes,
		Best:           outcomes[best].Frequency,
		Spread:         spread,
		Recommendation: recommendation,
	}, nil
}
