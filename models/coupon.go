package models

import "time"

type DiscountType string

const (
	DiscountFixed   DiscountType = "fixed"   // flat amount off the subtotal
	DiscountPercent DiscountType = "percent" // percentage of the subtotal
)

type Coupon struct {
	ID            uint         `gorm:"primaryKey;autoIncrement" json:"id"`
	Code          string       `gorm:"uniqueIndex;not null" json:"code"`
	DiscountType  DiscountType `gorm:"type:VARCHAR(10);default:'fixed'" json:"discount_type"`
	DiscountValue float64      `json:"discount_value"`
	ValidFrom     time.Time    `json:"valid_from"`
	ValidTo       time.Time    `json:"valid_to"`
	IsActive      bool         `gorm:"default:true" json:"is_active"`
	CreatedAt     time.Time    `json:"created_at"`
}

// ValidAt reports whether the coupon can be applied at the given instant.
func (c Coupon) ValidAt(t time.Time) bool {
	return c.IsActive && !t.Before(c.ValidFrom) && !t.After(c.ValidTo)
}
