package models

import "gorm.io/gorm"

// Product categories.
const (
	CategoryMens   = "MENS"
	CategoryWomens = "WOMENS"
	CategoryKids   = "KIDS"
)

// ValidCategory reports whether c is one of the known categories.
func ValidCategory(c string) bool {
	switch c {
	case CategoryMens, CategoryWomens, CategoryKids:
		return true
	}
	return false
}

// Product represents a product in the catalogue. Price fields are stored
// in the smallest currency unit.
type Product struct {
	gorm.Model
	Title         string `gorm:"size:255;not null;index" json:"title"`
	Description   string `gorm:"type:text;not null" json:"description"`
	Price         int    `gorm:"not null;default:0" json:"price"`
	OriginalPrice *int   `json:"original_price,omitempty"`
	BuyLink       string `gorm:"size:500" json:"buy_link,omitempty"`
	Category      string `gorm:"size:50;not null;index" json:"category"`
	Published     bool   `gorm:"not null;default:false;index" json:"published"`

	Brand      string   `gorm:"size:255" json:"brand,omitempty"`
	Stock      int      `gorm:"not null;default:0" json:"stock"`
	SKU        string   `gorm:"size:100" json:"sku,omitempty"`
	Weight     *float64 `json:"weight,omitempty"`
	Dimensions string   `gorm:"size:255" json:"dimensions,omitempty"`
	Color      string   `gorm:"size:100" json:"color,omitempty"`
	Size       string   `gorm:"size:100" json:"size,omitempty"`
	Material   string   `gorm:"size:255" json:"material,omitempty"`
	Featured   bool     `gorm:"not null;default:false" json:"featured"`

	UserID uint           `gorm:"not null;index" json:"user_id"`
	User   *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Images []ProductImage `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images"`
}
