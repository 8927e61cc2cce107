package orderControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Hyperht/piano-backend/events"
	"github.com/Hyperht/piano-backend/models"
	"github.com/Hyperht/piano-backend/pricing"
)

type CheckoutInput struct {
	AddressID     uint   `json:"address_id" binding:"required"`
	PaymentMethod string `json:"payment_method" binding:"required"` // e.g. "card", "cod"
}

var errProductUnavailable = errors.New("a product in your cart is no longer available")

// POST /api/checkout
//
// Converts the user's cart into an immutable order. Everything between the
// first product re-read and the cart reset runs in one transaction: prices
// are re-read from the products table (client-supplied values are never
// trusted), the coupon discount is recomputed against the fresh subtotal, and
// a failure at any step rolls the whole thing back leaving the cart intact.
func Checkout(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		var input CheckoutInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var cart models.Cart
		if err := db.Preload("Items").Preload("Coupon").
			Where("user_id = ?", userID).First(&cart).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			return
		}
		if len(cart.Items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			return
		}

		// The shipping address must belong to the requesting user.
		var address models.Address
		if err := db.Preload("Area").
			Where("id = ? AND user_id = ?", input.AddressID, userID).
			First(&address).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Shipping address not found"})
			return
		}
		if address.Area == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve shipping cost"})
			return
		}

		var order models.Order
		err := db.Transaction(func(tx *gorm.DB) error {
			lines := make([]pricing.Line, 0, len(cart.Items))
			orderItems := make([]models.OrderItem, 0, len(cart.Items))

			for _, item := range cart.Items {
				var product models.Product
				if err := tx.First(&product, item.ProductID).Error; err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						return errProductUnavailable
					}
					return err
				}

				unit := product.UnitPrice()
				lines = append(lines, pricing.Line{UnitPrice: unit, Quantity: item.Quantity})
				orderItems = append(orderItems, models.OrderItem{
					ProductID:       product.ID,
					ProductName:     product.Name,
					Quantity:        item.Quantity,
					PriceAtPurchase: unit,
				})
			}

			subtotal := pricing.Subtotal(lines)
			shipping := address.Area.ShippingCost

			var discount float64
			var couponCode string
			if cart.Coupon != nil {
				discount = pricing.CouponDiscount(cart.Coupon, subtotal)
				couponCode = cart.Coupon.Code
			}

			addressID := address.ID
			order = models.Order{
				OrderRef:          time.Now().Format("20060102150405") + "-" + uuid.NewString(),
				UserID:            userID,
				ShippingAddressID: &addressID,
				Items:             orderItems,
				CartSubtotal:      subtotal,
				ShippingCost:      shipping,
				CouponDiscount:    discount,
				FinalTotal:        pricing.FinalTotal(subtotal, shipping, discount),
				CouponCodeUsed:    couponCode,
				PaymentMethod:     input.PaymentMethod,
				PaymentStatus:     models.PaymentStatusPending,
				Status:            models.OrderStatusPending,
				CreatedAt:         time.Now(),
			}
			if err := tx.Create(&order).Error; err != nil {
				return err
			}

			// Reset the cart for the next session: drop the items and
			// detach the coupon. The cart row itself is reused.
			if err := tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error; err != nil {
				return err
			}
			return tx.Model(&models.Cart{}).Where("cart_id = ?", cart.CartID).
				Update("coupon_id", nil).Error
		})
		if err != nil {
			if errors.Is(err, errProductUnavailable) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			return
		}

		var created models.Order
		if err := db.Preload("Items").Preload("ShippingAddress.Area.Governorate").
			First(&created, order.ID).Error; err != nil {
			// The order exists; fall back to the in-memory copy.
			created = order
		}

		broadcastNewOrder(created)
		events.PublishOrderCreated(created)

		c.JSON(http.StatusCreated, created)
	}
}
