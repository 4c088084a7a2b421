// Package models описывает формы запросов и ответов, общие для HTTP API, MCP и YAML сценариев.
package models

import "github.com/cloud-ru/firefly-go/internal/calculations"

// CalculateRequest представляет запрос на расчет сложного процента
type CalculateRequest struct {
	Principal            float64 `json:"principal" yaml:"principal" jsonschema:"starting balance, must be greater than zero"`
	AnnualRate           float64 `json:"annual_rate" yaml:"annual_rate" jsonschema:"annual interest rate in percent, e.g. 7 for 7%"`
	Years                int     `json:"years" yaml:"years" jsonschema:"whole years of the investment period, greater than zero"`
	Months               int     `json:"months,omitempty" yaml:"months" jsonschema:"additional months in [0, 12)"`
	MonthlyContribution  float64 `json:"monthly_contribution,omitempty" yaml:"monthly_contribution" jsonschema:"amount added every month; takes precedence over annual_contribution"`
	AnnualContribution   float64 `json:"annual_contribution,omitempty" yaml:"annual_contribution" jsonschema:"amount added every year, used when monthly_contribution is zero"`
	CompoundingFrequency string  `json:"compounding_frequency,omitempty" yaml:"compounding_frequency" jsonschema:"daily, monthly or annually (default annually)"`
}

// YearlyBreakdownItem представляет строку годовой разбивки в ответе
type YearlyBreakdownItem struct {
	Year            int     `json:"year"`
	StartingBalance float64 `json:"starting_balance"`
	Contributions   float64 `json:"contributions"`
	InterestEarned  float64 `json:"interest_earned"`
	EndingBalance   float64 `json:"ending_balance"`
}

// CalculateResponse представляет ответ на расчет
type CalculateResponse struct {
	FinalAmount        float64               `json:"final_amount"`
	TotalContributions float64               `json:"total_contributions"`
	TotalInterest      float64               `json:"total_interest"`
	YearlyBreakdown    []YearlyBreakdownItem `json:"yearly_breakdown"`
}

// NewCalculateResponse переносит результат движка в ответ без потерь
func NewCalculateResponse(res *calculations.Result) CalculateResponse {
	resp := CalculateResponse{YearlyBreakdown: []YearlyBreakdownItem{}}
	if res == nil {
		return resp
	}

	resp.FinalAmount = res.FinalAmount
	resp.TotalContributions = res.TotalContributions
	resp.TotalInterest = res.TotalInterest
	for _, row := range res.YearlyBreakdown {
		resp.YearlyBreakdown = append(resp.YearlyBreakdown, YearlyBreakdownItem{
			Year:            row.Year,
			StartingBalance: row.StartingBalance,
			Contributions:   row.Contributions,
			InterestEarned:  row.InterestEarned,
			EndingBalance:   row.EndingBalance,
		})
	}
	return resp
}

// ProjectionResponse представляет помесячную проекцию
type ProjectionResponse struct {
	Points []calculations.ProjectionPoint `json:"points"`
}

// NewProjectionResponse оборачивает точки проекции
func NewProjectionResponse(points []calculations.ProjectionPoint) ProjectionResponse {
	if points == nil {
		points = []calculations.ProjectionPoint{}
	}
	return ProjectionResponse{Points: points}
}

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Detail string `json:"detail"`
}
