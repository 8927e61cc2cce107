package models

type Governorate struct {
	ID    uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name  string `gorm:"unique;not null" json:"name"`
	Areas []Area `gorm:"foreignKey:GovernorateID;constraint:OnDelete:CASCADE" json:"areas,omitempty"`
}

// Area carries the shipping cost charged for deliveries to it.
type Area struct {
	ID            uint         `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string       `gorm:"not null" json:"name"`
	GovernorateID uint         `gorm:"index" json:"governorate_id"`
	Governorate   *Governorate `gorm:"foreignKey:GovernorateID" json:"governorate,omitempty"`
	ShippingCost  float64      `json:"shipping_cost"`
}
