package cartControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Hyperht/piano-backend/models"
	"github.com/Hyperht/piano-backend/pricing"
)

type AddItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type UpdateItemInput struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// CartResponse is the cart with its lazily computed totals. Discounts are
// derived from the attached coupon on every read, never stored.
type CartResponse struct {
	CartID               uint              `json:"cart_id"`
	Items                []models.CartItem `json:"items"`
	Coupon               *models.Coupon    `json:"coupon"`
	CartSubtotal         float64           `json:"cart_subtotal"`
	CouponDiscountAmount float64           `json:"coupon_discount_amount"`
	TotalPrice           float64           `json:"total_price"`
}

func currentUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return v.(string), true
}

func loadCart(db *gorm.DB, userID string) (*models.Cart, error) {
	var cart models.Cart
	err := db.Preload("Items.Product").Preload("Coupon").
		Where("user_id = ?", userID).First(&cart).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// BuildCartResponse computes the cart's totals from current product prices and
// the attached coupon's rule.
func BuildCartResponse(cart *models.Cart) CartResponse {
	lines := make([]pricing.Line, 0, len(cart.Items))
	for _, item := range cart.Items {
		if item.Product == nil {
			continue
		}
		lines = append(lines, pricing.Line{UnitPrice: item.Product.UnitPrice(), Quantity: item.Quantity})
	}
	subtotal := pricing.Subtotal(lines)

	var discount float64
	if cart.Coupon != nil && cart.Coupon.ValidAt(time.Now()) {
		discount = pricing.CouponDiscount(cart.Coupon, subtotal)
	}

	return CartResponse{
		CartID:               cart.CartID,
		Items:                cart.Items,
		Coupon:               cart.Coupon,
		CartSubtotal:         subtotal,
		CouponDiscountAmount: discount,
		TotalPrice:           pricing.FinalTotal(subtotal, 0, discount),
	}
}

func emptyCartResponse() CartResponse {
	return CartResponse{Items: []models.CartItem{}}
}

// GET /api/cart
func GetUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		cart, err := loadCart(db, userID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusOK, emptyCartResponse())
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, BuildCartResponse(cart))
	}
}

// POST /api/cart/add_item
func AddCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.Where("is_active = ?", true).First(&product, input.ProductID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found or inactive"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			return
		}

		var cart models.Cart
		if err := db.Where(models.Cart{UserID: userID}).FirstOrCreate(&cart).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		// Re-adding an existing product bumps the quantity instead of
		// creating a second line.
		var item models.CartItem
		err := db.Where("cart_id = ? AND product_id = ?", cart.CartID, product.ID).First(&item).Error
		switch {
		case err == gorm.ErrRecordNotFound:
			item = models.CartItem{
				CartID:    cart.CartID,
				ProductID: product.ID,
				Quantity:  input.Quantity,
				AddedAt:   time.Now(),
			}
			if err := db.Create(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
				return
			}
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart item"})
			return
		default:
			item.Quantity += input.Quantity
			item.AddedAt = time.Now()
			if err := db.Save(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
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

// PUT /api/cart/items/:id
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		var input UpdateItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var item models.CartItem
		if err := db.Joins("JOIN carts ON carts.cart_id = cart_items.cart_id").
			Where("cart_items.id = ? AND carts.user_id = ?", c.Param("id"), userID).
			First(&item).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}

		item.Quantity = input.Quantity
		if err := db.Save(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// DELETE /api/cart/items/:id
func DeleteCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		var cart models.Cart
		if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User cart not found"})
			return
		}

		result := db.Where("cart_id = ? AND id = ?", cart.CartID, c.Param("id")).Delete(&models.CartItem{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// DELETE /api/cart
func ClearUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		var cart models.Cart
		if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user cart"})
			return
		}

		if err := db.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		if err := db.Model(&cart).Update("coupon_id", nil).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
