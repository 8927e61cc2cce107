// Package couponControllers is the admin CRUD surface for discount coupons.
// Applying a coupon to a cart lives with the cart controllers.
package couponControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Hyperht/piano-backend/models"
)

type CouponInput struct {
	Code          string    `json:"code" binding:"required"`
	DiscountType  string    `json:"discount_type" binding:"required,oneof=fixed percent"`
	DiscountValue float64   `json:"discount_value" binding:"required,gt=0"`
	ValidFrom     time.Time `json:"valid_from" binding:"required"`
	ValidTo       time.Time `json:"valid_to" binding:"required"`
	IsActive      *bool     `json:"is_active"`
}

// GET /admin/coupons
func GetAllCoupons(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var coupons []models.Coupon
		if err := db.Order("created_at DESC").Find(&coupons).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch coupons"})
			return
		}
		c.JSON(http.StatusOK, coupons)
	}
}

// POST /admin/coupons
func CreateCoupon(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CouponInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if !input.ValidTo.After(input.ValidFrom) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "valid_to must be after valid_from"})
			return
		}

		coupon := models.Coupon{
			Code:          input.Code,
			DiscountType:  models.DiscountType(input.DiscountType),
			DiscountValue: input.DiscountValue,
			ValidFrom:     input.ValidFrom,
			ValidTo:       input.ValidTo,
			IsActive:      true,
		}
		if input.IsActive != nil {
			coupon.IsActive = *input.IsActive
		}
		if err := db.Create(&coupon).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Coupon code already exists"})
			return
		}
		c.JSON(http.StatusCreated, coupon)
	}
}

// PUT /admin/coupons/:id
func UpdateCoupon(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var coupon models.Coupon
		if err := db.First(&coupon, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Coupon not found"})
			return
		}

		var input CouponInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if !input.ValidTo.After(input.ValidFrom) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "valid_to must be after valid_from"})
			return
		}

		coupon.Code = input.Code
		coupon.DiscountType = models.DiscountType(input.DiscountType)
		coupon.DiscountValue = input.DiscountValue
		coupon.ValidFrom = input.ValidFrom
		coupon.ValidTo = input.ValidTo
		if input.IsActive != nil {
			coupon.IsActive = *input.IsActive
		}
		if err := db.Save(&coupon).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update coupon"})
			return
		}
		c.JSON(http.StatusOK, coupon)
	}
}

// DELETE /admin/coupons/:id
// Orders keep the bare coupon code string, so deleting a coupon never
// rewrites order history. Carts still pointing here are detached first.
func DeleteCoupon(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var coupon models.Coupon
		if err := db.First(&coupon, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Coupon not found"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&models.Cart{}).
				Where("coupon_id = ?", coupon.ID).
				Update("coupon_id", nil).Error; err != nil {
				return err
			}
			return tx.Delete(&coupon).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete coupon"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Coupon deleted"})
	}
}
