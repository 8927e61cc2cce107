package models

import "time"

type OrderStatus string
type PaymentStatus string

const (
	OrderStatusPending     OrderStatus = "pending"
	OrderStatusConfirmed   OrderStatus = "confirmed"
	OrderStatusReadyToShip OrderStatus = "ready_to_ship"
	OrderStatusShipped     OrderStatus = "shipped"
	OrderStatusDelivered   OrderStatus = "delivered"
	OrderStatusReturned    OrderStatus = "returned"
	OrderStatusCancelled   OrderStatus = "cancelled"

	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// Order is an immutable snapshot of a completed checkout. Financial totals are
// written once at creation and never recomputed; only Status and PaymentStatus
// change afterwards.
type Order struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	OrderRef string `gorm:"uniqueIndex" json:"order_ref"`
	UserID   string `gorm:"index;not null" json:"user_id"`
	User     *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`

	ShippingAddressID *uint    `json:"shipping_address_id"`
	ShippingAddress   *Address `gorm:"foreignKey:ShippingAddressID" json:"shipping_address,omitempty"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`

	CartSubtotal   float64 `json:"cart_subtotal"`
	ShippingCost   float64 `json:"shipping_cost"`
	CouponDiscount float64 `json:"coupon_discount"`
	FinalTotal     float64 `json:"final_total"`
	// Bare code string so order history survives coupon deletion.
	CouponCodeUsed string `json:"coupon_code_used"`

	PaymentMethod string        `json:"payment_method"`
	PaymentStatus PaymentStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"payment_status"`
	TransactionID string        `json:"transaction_id"`
	Status        OrderStatus   `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type OrderItem struct {
	ID              uint     `gorm:"primaryKey" json:"id"`
	OrderID         uint     `gorm:"index" json:"order_id"`
	ProductID       uint     `json:"product_id"`
	Product         *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	ProductName     string   `json:"product_name"`
	Quantity        int      `json:"quantity"`
	PriceAtPurchase float64  `json:"price_at_purchase"`
}
