package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Hyperht/piano-backend/models"
)

func TestSubtotal(t *testing.T) {
	lines := []Line{
		{UnitPrice: 100, Quantity: 2},
		{UnitPrice: 50, Quantity: 1},
	}
	assert.Equal(t, 250.0, Subtotal(lines))
	assert.Equal(t, 0.0, Subtotal(nil))
}

func TestSubtotalNoFloatDrift(t *testing.T) {
	// 0.1 * 3 is the classic float trap; decimals keep it exact.
	lines := []Line{{UnitPrice: 0.1, Quantity: 3}}
	assert.Equal(t, 0.3, Subtotal(lines))
}

func TestCouponDiscountFixed(t *testing.T) {
	c := &models.Coupon{DiscountType: models.DiscountFixed, DiscountValue: 20}
	assert.Equal(t, 20.0, CouponDiscount(c, 250))
}

func TestCouponDiscountPercent(t *testing.T) {
	c := &models.Coupon{DiscountType: models.DiscountPercent, DiscountValue: 10}
	assert.Equal(t, 25.0, CouponDiscount(c, 250))
}

func TestCouponDiscountClampedToSubtotal(t *testing.T) {
	c := &models.Coupon{DiscountType: models.DiscountFixed, DiscountValue: 500}
	assert.Equal(t, 250.0, CouponDiscount(c, 250))
}

func TestCouponDiscountNeverNegative(t *testing.T) {
	c := &models.Coupon{DiscountType: models.DiscountFixed, DiscountValue: -5}
	assert.Equal(t, 0.0, CouponDiscount(c, 250))
	assert.Equal(t, 0.0, CouponDiscount(nil, 250))
}

func TestFinalTotal(t *testing.T) {
	assert.Equal(t, 240.0, FinalTotal(250, 10, 20))
	assert.Equal(t, 260.0, FinalTotal(250, 10, 0))
}

func TestFinalTotalClampedAtZero(t *testing.T) {
	assert.Equal(t, 0.0, FinalTotal(10, 0, 50))
}

func TestCouponValidityWindow(t *testing.T) {
	now := time.Now()
	c := models.Coupon{
		IsActive:  true,
		ValidFrom: now.Add(-time.Hour),
		ValidTo:   now.Add(time.Hour),
	}
	assert.True(t, c.ValidAt(now))

	expired := c
	expired.ValidTo = now.Add(-time.Minute)
	assert.False(t, expired.ValidAt(now))

	inactive := c
	inactive.IsActive = false
	assert.False(t, inactive.ValidAt(now))
}
