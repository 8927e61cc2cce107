package models

import "time"

// Address is a saved shipping destination. At most one address per user has
// IsDefault set; the address controller maintains that inside a transaction.
type Address struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID        string    `gorm:"index;not null" json:"user_id"`
	AreaID        uint      `gorm:"not null" json:"area_id"`
	Area          *Area     `gorm:"foreignKey:AreaID" json:"area,omitempty"`
	StreetAddress string    `gorm:"not null" json:"street_address"`
	PhoneNumber   string    `json:"phone_number"`
	IsDefault     bool      `gorm:"default:false" json:"is_default"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
