package models

import "time"

// Favorite links a user to a product. The unique pair index makes the toggle
// race-safe: a concurrent duplicate insert fails instead of doubling up.
type Favorite struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"index:idx_favorite_user_product,unique;not null" json:"user_id"`
	ProductID uint      `gorm:"index:idx_favorite_user_product,unique;not null" json:"product_id"`
	Product   *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
