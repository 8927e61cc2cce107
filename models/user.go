package models

import "time"

type User struct {
	ID           string     `gorm:"primaryKey" json:"id"`
	Email        string     `gorm:"unique;not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	Name         string     `json:"name"`
	Phone        string     `json:"phone"`
	Addresses    []Address  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"addresses,omitempty"`
	Favorites    []Favorite `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"favorites,omitempty"`
	Cart         *Cart      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"cart,omitempty"`
	Orders       []Order    `gorm:"foreignKey:UserID" json:"orders,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}
