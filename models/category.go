package models

type Category struct {
	ID            uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string        `gorm:"unique;not null" json:"name"`
	Image         string        `json:"image"`
	Subcategories []Subcategory `gorm:"foreignKey:ParentCategoryID;constraint:OnDelete:CASCADE" json:"subcategories,omitempty"`
}

type Subcategory struct {
	ID               uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name             string    `gorm:"not null" json:"name"`
	Image            string    `json:"image"`
	ParentCategoryID uint      `gorm:"index" json:"parent_category_id"`
	ParentCategory   *Category `gorm:"foreignKey:ParentCategoryID" json:"-"`
}
