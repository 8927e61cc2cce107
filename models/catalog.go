package models

// Read-mostly reference data used to tag and filter products.

type Color struct {
	ID      uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name    string `gorm:"unique;not null" json:"name"`
	HexCode string `json:"hex_code"`
}

type Room struct {
	ID    uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name  string `gorm:"unique;not null" json:"name"`
	Image string `json:"image"`
}

type Style struct {
	ID    uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name  string `gorm:"unique;not null" json:"name"`
	Image string `json:"image"`
}
