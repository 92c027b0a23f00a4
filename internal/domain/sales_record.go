package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesRecord is a single sale line. Only the month of DateSold is used by the report.
type SalesRecord struct {
	DateSold       time.Time       `json:"date_sold" validate:"required"`
	DepartmentName string          `json:"department_name" validate:"required"`
	ProductID      string          `json:"product_id" validate:"required"`
	QuantitySold   int             `json:"quantity_sold" validate:"gte=1"`
	UnitPrice      decimal.Decimal `json:"unit_price" validate:"gte=0"`
	BaseCost       decimal.Decimal `json:"base_cost" validate:"gte=0"`
	VolumeDiscount int             `json:"volume_discount" validate:"gte=0"` // not aggregated
}

// LineSales is quantity x unit price
func (r SalesRecord) LineSales() decimal.Decimal {
	return r.UnitPrice.Mul(decimal.NewFromInt(int64(r.QuantitySold)))
}

// LineProfit is line sales minus quantity x base cost
func (r SalesRecord) LineProfit() decimal.Decimal {
	cost := r.BaseCost.Mul(decimal.NewFromInt(int64(r.QuantitySold)))
	return r.LineSales().Sub(cost)
}
