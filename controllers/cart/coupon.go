package cartControllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Hyperht/piano-backend/models"
)

type ApplyCouponInput struct {
	CouponCode string `json:"coupon_code"`
}

// PUT /api/cart/coupon
// A blank code detaches the current coupon; otherwise the code is matched
// case-insensitively against active coupons whose validity window contains
// now. No match leaves the cart untouched.
func ApplyCoupon(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		var input ApplyCouponInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		code := strings.TrimSpace(input.CouponCode)

		var cart models.Cart
		if err := db.Where(models.Cart{UserID: userID}).FirstOrCreate(&cart).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		if code == "" {
			if err := db.Model(&cart).Update("coupon_id", nil).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
				return
			}
		} else {
			now := time.Now()
			var coupon models.Coupon
			err := db.Where("LOWER(code) = LOWER(?) AND is_active = ? AND valid_from <= ? AND valid_to >= ?",
				code, true, now, now).First(&coupon).Error
			if err != nil {
				if err == gorm.ErrRecordNotFound {
					c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired coupon code"})
					return
				}
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up coupon"})
				return
			}
			if err := db.Model(&cart).Update("coupon_id", coupon.ID).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
				return
			}
		}

		updated, err := loadCart(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, BuildCartResponse(updated))
	}
}
