// Package pricing holds the money math behind cart totals and checkout.
// All intermediate arithmetic runs on decimals so repeated float additions
// cannot drift; results are rounded to two places before they are stored.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/Hyperht/piano-backend/models"
)

// Line is one cart or order position priced at a unit price.
type Line struct {
	UnitPrice float64
	Quantity  int
}

// Subtotal sums quantity x unit price across all lines.
func Subtotal(lines []Line) float64 {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(decimal.NewFromFloat(l.UnitPrice).Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return round(sum)
}

// CouponDiscount evaluates a coupon's rule against a subtotal. The discount
// never exceeds the subtotal and is never negative.
func CouponDiscount(c *models.Coupon, subtotal float64) float64 {
	if c == nil {
		return 0
	}
	sub := decimal.NewFromFloat(subtotal)
	var disc decimal.Decimal
	switch c.DiscountType {
	case models.DiscountPercent:
		disc = sub.Mul(decimal.NewFromFloat(c.DiscountValue)).Div(decimal.NewFromInt(100))
	default:
		disc = decimal.NewFromFloat(c.DiscountValue)
	}
	if disc.IsNegative() {
		return 0
	}
	if disc.GreaterThan(sub) {
		disc = sub
	}
	return round(disc)
}

// FinalTotal is subtotal + shipping - discount, clamped at zero.
func FinalTotal(subtotal, shipping, discount float64) float64 {
	total := decimal.NewFromFloat(subtotal).
		Add(decimal.NewFromFloat(shipping)).
		Sub(decimal.NewFromFloat(discount))
	if total.IsNegative() {
		return 0
	}
	return round(total)
}

func round(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}
