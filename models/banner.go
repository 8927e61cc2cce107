package models

import "time"

// Storefront content blocks managed from the admin surface.

type HeroSlide struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string `json:"name"`
	Image    string `gorm:"not null" json:"image"`
	Link     string `json:"link"`
	IsActive bool   `gorm:"default:true" json:"is_active"`
	Order    int    `json:"order"`
}

type PromoBanner struct {
	ID       uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string    `json:"name"`
	Image    string    `gorm:"not null" json:"image"`
	Link     string    `json:"link"`
	EndDate  time.Time `json:"end_date"`
	IsActive bool      `gorm:"default:true" json:"is_active"`
}

type PromoGridCategory struct {
	ID              uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Title           string `json:"title"`
	Subtitle        string `json:"subtitle"`
	Image           string `json:"image"`
	BackgroundColor string `json:"background_color"`
	IsActive        bool   `gorm:"default:true" json:"is_active"`
	Order           int    `json:"order"`
}
