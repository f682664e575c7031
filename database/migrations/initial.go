package migrations

import (
	"gorm.io/gorm"

	"github.com/rajsingh19/wearhouse/app/models"
	"github.com/rajsingh19/wearhouse/pkg/migration"
)

func init() {
	migration.Register("20260101000000_create_users_table", &CreateUsersTable{})
	migration.Register("20260101000001_create_products_table", &CreateProductsTable{})
	migration.Register("20260101000002_create_product_images_table", &CreateProductImagesTable{})
}

// -------- 0001: users --------

type CreateUsersTable struct{}

func (m *CreateUsersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{})
}

func (m *CreateUsersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("users")
}

// -------- 0002: products --------

type CreateProductsTable struct{}

func (m *CreateProductsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Product{})
}

func (m *CreateProductsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("products")
}

// -------- 0003: product_images --------

type CreateProductImagesTable struct{}

func (m *CreateProductImagesTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.ProductImage{})
}

func (m *CreateProductImagesTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("product_images")
}
