package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID               uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name             string  `gorm:"not null" json:"name"`
	ShortDescription string  `json:"short_description"`
	Description      string  `json:"description"`
	Dimensions       string  `json:"dimensions"`
	Image            string  `json:"image"`
	OriginalPrice    float64 `gorm:"not null" json:"original_price"`
	SalePrice        float64 `json:"sale_price"`
	IsOnSale         bool    `json:"is_on_sale"`
	Rating           float64 `json:"rating"`
	IsActive         bool    `gorm:"default:true" json:"is_active"`

	CategoryID    *uint        `json:"category_id"`
	Category      *Category    `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	SubcategoryID *uint        `json:"subcategory_id"`
	Subcategory   *Subcategory `gorm:"foreignKey:SubcategoryID" json:"subcategory,omitempty"`

	Colors        []Color        `gorm:"many2many:product_colors" json:"colors,omitempty"`
	Rooms         []Room         `gorm:"many2many:product_rooms" json:"rooms,omitempty"`
	Styles        []Style        `gorm:"many2many:product_styles" json:"styles,omitempty"`
	GalleryImages []ProductImage `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"gallery_images,omitempty"`
	Reviews       []Review       `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"reviews,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// UnitPrice is the price a buyer pays right now. Order items freeze this
// value at checkout time.
func (p Product) UnitPrice() float64 {
	if p.IsOnSale && p.SalePrice > 0 {
		return p.SalePrice
	}
	return p.OriginalPrice
}

type ProductImage struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ProductID uint   `gorm:"index" json:"product_id"`
	Image     string `gorm:"not null" json:"image"`
	AltText   string `json:"alt_text"`
	ColorID   *uint  `json:"color_id"`
	Color     *Color `gorm:"foreignKey:ColorID" json:"color,omitempty"`
}
