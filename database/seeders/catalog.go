package seeders

import (
	"errors"

	"gorm.io/gorm"

	"github.com/rajsingh19/wearhouse/app/models"
	"github.com/rajsingh19/wearhouse/pkg/auth"
)

func init() {
	Register("users", SeedUsers)
	Register("products", SeedProducts)
}

// SeedUsers creates the demo admin and regular accounts. Existing rows
// are left alone so the seeder is safe to re-run.
func SeedUsers(db *gorm.DB) error {
	users := []struct {
		name     string
		email    string
		password string
		role     string
	}{
		{"Admin User", "admin@example.com", "admin123", models.RoleAdmin},
		{"Regular User", "user@example.com", "user123", models.RoleUser},
	}

	for _, u := range users {
		var existing models.User
		err := db.Where("email = ?", u.email).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		hash, err := auth.HashPassword(u.password)
		if err != nil {
			return err
		}
		if err := db.Create(&models.User{
			Name:     u.name,
			Email:    u.email,
			Password: hash,
			Role:     u.role,
		}).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedProducts inserts the demo catalogue. Skips entirely when products
// already exist.
func SeedProducts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var admin, user models.User
	if err := db.Where("email = ?", "admin@example.com").First(&admin).Error; err != nil {
		return err
	}
	if err := db.Where("email = ?", "user@example.com").First(&user).Error; err != nil {
		return err
	}

	products := []models.Product{
		{
			Title:       "Classic White T-Shirt",
			Description: "A comfortable and stylish white t-shirt made from 100% cotton. Perfect for everyday wear and casual occasions.",
			Price:       1299,
			Category:    models.CategoryMens,
			Published:   true,
			BuyLink:     "https://example.com/buy/white-tshirt",
			UserID:      admin.ID,
			Images: []models.ProductImage{{
				URL:      "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=500",
				Alt:      "Classic White T-Shirt",
				PublicID: "sample-white-tshirt",
				Width:    500, Height: 500, Format: "jpg", Bytes: 25000,
			}},
		},
		{
			Title:       "Elegant Black Dress",
			Description: "A sophisticated black dress perfect for formal events and special occasions. Features a flattering silhouette and premium fabric.",
			Price:       4599,
			Category:    models.CategoryWomens,
			Published:   true,
			BuyLink:     "https://example.com/buy/black-dress",
			UserID:      admin.ID,
			Images: []models.ProductImage{{
				URL:      "https://images.unsplash.com/photo-1595777457583-95e059d581b8?w=500",
				Alt:      "Elegant Black Dress",
				PublicID: "sample-black-dress",
				Width:    500, Height: 500, Format: "jpg", Bytes: 30000,
			}},
		},
		{
			Title:       "Kids Colorful Hoodie",
			Description: "A fun and colorful hoodie designed for kids. Made with soft, comfortable material and vibrant colors that kids love.",
			Price:       2199,
			Category:    models.CategoryKids,
			Published:   true,
			BuyLink:     "https://example.com/buy/kids-hoodie",
			UserID:      user.ID,
			Images: []models.ProductImage{{
				URL:      "https://images.unsplash.com/photo-1551698618-1dfe5d97d256?w=500",
				Alt:      "Kids Colorful Hoodie",
				PublicID: "sample-kids-hoodie",
				Width:    500, Height: 500, Format: "jpg", Bytes: 28000,
			}},
		},
		{
			Title:       "Denim Jeans",
			Description: "Classic blue denim jeans with a modern fit. Durable and comfortable for all-day wear.",
			Price:       2899,
			Category:    models.CategoryMens,
			Published:   true,
			BuyLink:     "https://example.com/buy/denim-jeans",
			UserID:      admin.ID,
			Images: []models.ProductImage{{
				URL:      "https://images.unsplash.com/photo-1542272604-787c3835535d?w=500",
				Alt:      "Denim Jeans",
				PublicID: "sample-denim-jeans",
				Width:    500, Height: 500, Format: "jpg", Bytes: 32000,
			}},
		},
		{
			Title:       "Summer Floral Top",
			Description: "A beautiful floral top perfect for summer days. Lightweight and breathable fabric with a feminine design.",
			Price:       1899,
			Category:    models.CategoryWomens,
			Published:   false, // draft
			UserID:      user.ID,
			Images: []models.ProductImage{{
				URL:      "https://images.unsplash.com/photo-1594633312681-425c7b97ccd1?w=500",
				Alt:      "Summer Floral Top",
				PublicID: "sample-floral-top",
				Width:    500, Height: 500, Format: "jpg", Bytes: 26000,
			}},
		},
		{
			Title:       "Kids Sports Shoes",
			Description: "Comfortable sports shoes designed for active kids. Features excellent grip and support for running and playing.",
			Price:       3299,
			Category:    models.CategoryKids,
			Published:   true,
			BuyLink:     "https://example.com/buy/kids-shoes",
			UserID:      admin.ID,
			Images: []models.ProductImage{{
				URL:      "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=500",
				Alt:      "Kids Sports Shoes",
				PublicID: "sample-kids-shoes",
				Width:    500, Height: 500, Format: "jpg", Bytes: 29000,
			}},
		},
	}

	for i := range products {
		if err := db.Create(&products[i]).Error; err != nil {
			return err
		}
	}
	return nil
}
