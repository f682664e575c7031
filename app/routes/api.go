// Package routes wires controllers onto the router.
package routes

import (
	"gorm.io/gorm"

	"github.com/rajsingh19/wearhouse/app/controllers"
	"github.com/rajsingh19/wearhouse/app/repositories"
	"github.com/rajsingh19/wearhouse/app/services"
	"github.com/rajsingh19/wearhouse/pkg/ctx"
	"github.com/rajsingh19/wearhouse/pkg/middleware"
	"github.com/rajsingh19/wearhouse/pkg/router"
	"github.com/rajsingh19/wearhouse/pkg/storage"
)

// RegisterAPI mounts the catalogue API under /api.
func RegisterAPI(r *router.Router, db *gorm.DB, disk storage.Disk) {
	productRepo := repositories.NewProductRepository(db)
	userRepo := repositories.NewUserRepository(db)

	productController := controllers.NewProductController(services.NewProductService(productRepo))
	uploadController := controllers.NewUploadController(services.NewUploadService(disk))
	authController := controllers.NewAuthController(services.NewAuthService(userRepo))

	api := r.Group("/api")

	api.Post("/register", "auth.register", ctx.Wrap(authController.Register))
	api.Post("/login", "auth.login", ctx.Wrap(authController.Login))

	// Public catalogue reads
	api.Get("/products", "products.index", ctx.Wrap(productController.List))
	api.Get("/products/{id}", "products.show", ctx.Wrap(productController.Show))

	// Mutations require a valid token
	protected := api.Group("", middleware.Auth)
	protected.Post("/products", "products.store", ctx.Wrap(productController.Create))
	protected.Put("/products/{id}", "products.update", ctx.Wrap(productController.Update))
	protected.Delete("/products/{id}", "products.destroy", ctx.Wrap(productController.Delete))

	// Uploads are rate limited per client IP on top of auth
	uploads := api.Group("", middleware.Auth, middleware.RateLimit(2, 5))
	uploads.Post("/upload", "upload.store", ctx.Wrap(uploadController.Upload))
	uploads.Delete("/upload", "upload.destroy", ctx.Wrap(uploadController.Delete))
}
