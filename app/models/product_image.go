package models

import "gorm.io/gorm"

// ProductImage is a stored image attached to a product. Images live and
// die with their parent product; replacing a product's image set removes
// every previous row.
type ProductImage struct {
	gorm.Model
	ProductID uint   `gorm:"not null;index" json:"product_id"`
	URL       string `gorm:"size:500;not null" json:"url"`
	Alt       string `gorm:"size:255" json:"alt"`
	PublicID  string `gorm:"size:255;not null;index" json:"public_id"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Format    string `gorm:"size:20" json:"format"`
	Bytes     int    `json:"bytes"`
}
