package engine

import (
	"github.com/shopspring/decimal"

	"ordersdash/internal/models"
)

const (
	UnknownItem = "Unknown"
	Unassigned  = "Unassigned"
)

// Quantity falls back to 1 when the field is missing, non-numeric or zero.
func Quantity(it models.Item) float64 {
	if q, ok := it.Quantity.Float(); ok && q != 0 {
		return q
	}
	return 1
}

// LineRevenue prefers the line total, then unit price x quantity, then zero.
// A zero total counts as missing.
func LineRevenue(it models.Item) decimal.Decimal {
	if t, ok := it.TotalPrice.Float(); ok && t != 0 {
		return decimal.NewFromFloat(t)
	}
	if p, ok := it.ItemPrice.Float(); ok && p != 0 {
		return decimal.NewFromFloat(p).Mul(decimal.NewFromFloat(Quantity(it)))
	}
	return decimal.Zero
}

func OrderRevenue(o models.Order) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range o.Items {
		sum = sum.Add(LineRevenue(it))
	}
	return sum
}

func ItemName(it models.Item) string {
	if it.Name == "" {
		return UnknownItem
	}
	return string(it.Name)
}

func Courier(o models.Order) string {
	if o.DeliveryPerson == "" {
		return Unassigned
	}
	return string(o.DeliveryPerson)
}

// FormatMoney renders a revenue figure the way the metric cards show it.
func FormatMoney(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
