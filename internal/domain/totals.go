package domain

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// AggregationKey identifies one department row inside a quarter
type AggregationKey struct {
	Quarter    Quarter
	Department string
}

// Totals accumulates revenue and profit
type Totals struct {
	Sales  decimal.Decimal `json:"sales"`
	Profit decimal.Decimal `json:"profit"`
}

// Add returns the key-wise sum of both totals
func (t Totals) Add(other Totals) Totals {
	return Totals{
		Sales:  t.Sales.Add(other.Sales),
		Profit: t.Profit.Add(other.Profit),
	}
}

// ProfitPercentage is profit / sales * 100. Zero sales yields zero.
func (t Totals) ProfitPercentage() decimal.Decimal {
	if t.Sales.IsZero() {
		return decimal.Zero
	}
	return t.Profit.Mul(hundred).DivRound(t.Sales, 8)
}

// Equal compares numerically, ignoring decimal exponent differences
func (t Totals) Equal(other Totals) bool {
	return t.Sales.Equal(other.Sales) && t.Profit.Equal(other.Profit)
}
