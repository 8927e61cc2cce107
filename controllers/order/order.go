package orderControllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Hyperht/piano-backend/models"
)

type UpdateOrderStatusInput struct {
	Status string `json:"status" binding:"required"`
}

type UpdatePaymentStatusInput struct {
	PaymentStatus string `json:"payment_status" binding:"required"`
	TransactionID string `json:"transaction_id"`
}

// OrderListEntry is the trimmed shape used by the order history listing.
type OrderListEntry struct {
	ID         uint                 `json:"id"`
	OrderRef   string               `json:"order_ref"`
	Status     models.OrderStatus   `json:"status"`
	FinalTotal float64              `json:"final_total"`
	ItemCount  int                  `json:"item_count"`
	CreatedAt  string               `json:"created_at"`
	PayStatus  models.PaymentStatus `json:"payment_status"`
}

func currentUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return v.(string), true
}

func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch models.OrderStatus(strings.ToLower(status)) {
	case models.OrderStatusPending, models.OrderStatusConfirmed, models.OrderStatusReadyToShip,
		models.OrderStatusShipped, models.OrderStatusDelivered, models.OrderStatusReturned,
		models.OrderStatusCancelled:
		return models.OrderStatus(strings.ToLower(status)), nil
	default:
		return "", errors.New("invalid order status")
	}
}

func mapPaymentStatus(status string) (models.PaymentStatus, error) {
	switch models.PaymentStatus(strings.ToLower(status)) {
	case models.PaymentStatusPending, models.PaymentStatusPaid,
		models.PaymentStatusFailed, models.PaymentStatusRefunded:
		return models.PaymentStatus(strings.ToLower(status)), nil
	default:
		return "", errors.New("invalid payment status")
	}
}

// GET /api/orders — the caller's own order history, newest first.
func GetUserOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		var orders []models.Order
		if err := db.Preload("Items").
			Where("user_id = ?", userID).
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		out := make([]OrderListEntry, 0, len(orders))
		for _, o := range orders {
			out = append(out, OrderListEntry{
				ID:         o.ID,
				OrderRef:   o.OrderRef,
				Status:     o.Status,
				FinalTotal: o.FinalTotal,
				ItemCount:  len(o.Items),
				CreatedAt:  o.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
				PayStatus:  o.PaymentStatus,
			})
		}
		c.JSON(http.StatusOK, out)
	}
}

// GET /api/orders/:id — full detail, own orders only. Orders belonging to a
// different user come back as 404.
func GetUserOrderByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		var order models.Order
		if err := db.Preload("Items.Product").
			Preload("ShippingAddress.Area.Governorate").
			Where("id = ? AND user_id = ?", c.Param("id"), userID).
			First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// GET /admin/orders
func GetAllOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("User").Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// PUT /admin/orders/:id/status
func UpdateOrderStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateOrderStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		status, err := mapOrderStatus(input.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		result := db.Model(&models.Order{}).Where("id = ?", c.Param("id")).
			Update("status", status)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated"})
	}
}

// PUT /admin/orders/:id/payment-status
func UpdatePaymentStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdatePaymentStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		status, err := mapPaymentStatus(input.PaymentStatus)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		updates := map[string]interface{}{"payment_status": status}
		if input.TransactionID != "" {
			updates["transaction_id"] = input.TransactionID
		}
		result := db.Model(&models.Order{}).Where("id = ?", c.Param("id")).Updates(updates)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update payment status"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Payment status updated"})
	}
}
