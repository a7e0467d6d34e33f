package utils

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var usPrinter = message.NewPrinter(language.AmericanEnglish)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

func RoundWithOneDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*10) / 10
}

// FormatUSD formata um valor monetário no padrão en_US com símbolo de dólar,
// por exemplo 1234567.891 -> "$1,234,567.89".
func FormatUSD(amount float64) string {
	return usPrinter.Sprintf("$%v", number.Decimal(amount, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// FormatCount formata um inteiro com separadores de milhar no padrão en_US,
// por exemplo 98765 -> "98,765".
func FormatCount(count int) string {
	return usPrinter.Sprintf("%v", number.Decimal(count))
}
