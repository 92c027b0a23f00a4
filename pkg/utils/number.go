package utils

import "github.com/shopspring/decimal"

// RoundCents rounds a money amount to two decimal places
func RoundCents(d decimal.Decimal) decimal.Decimal {
	if d.IsZero() {
		return decimal.Zero
	}

	return d.Round(2)
}
