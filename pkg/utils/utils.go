package utils

import (
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Round2 округляет число до 2 знаков после запятой
func Round2(value float64) float64 {
	return roundPlaces(value, 2)
}

// Round1 округляет число до 1 знака после запятой (для процентов)
func Round1(value float64) float64 {
	return roundPlaces(value, 1)
}

func roundPlaces(value float64, places int32) float64 {
	if !IsFinite(value) {
		return value
	}
	return decimal.NewFromFloat(value).Round(places).InexactFloat64()
}

// IsFinite проверяет, является ли число конечным
func IsFinite(value float64) bool {
	return !math.IsInf(value, 0) && !math.IsNaN(value)
}

// FormatMoney форматирует сумму в долларах с разделителями разрядов, например $12,345.67
func FormatMoney(value float64) string {
	rounded := Round2(value)
	if rounded < 0 {
		return "-$" + printer.Sprintf("%.2f", -rounded)
	}
	return "$" + printer.Sprintf("%.2f", rounded)
}

// FormatPercent форматирует процент с одним знаком после запятой, например 12.5%
func FormatPercent(value float64) string {
	return printer.Sprintf("%.1f%%", Round1(value))
}
