// Package controllers maps HTTP requests onto service calls and service
// errors onto status codes.
package controllers

import (
	"errors"

	"github.com/rajsingh19/wearhouse/app/repositories"
	"github.com/rajsingh19/wearhouse/app/requests"
	"github.com/rajsingh19/wearhouse/app/services"
	"github.com/rajsingh19/wearhouse/pkg/ctx"
	"github.com/rajsingh19/wearhouse/pkg/logger"
)

type ProductController struct {
	service *services.ProductService
}

func NewProductController(service *services.ProductService) *ProductController {
	return &ProductController{service: service}
}

// List handles GET /api/products. Unknown categories are ignored; the
// published filter only applies for the exact strings "true" and "false".
func (pc *ProductController) List(c *ctx.Context) {
	filter := repositories.ProductFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Page:     c.QueryInt("page", services.DefaultPage),
		Limit:    c.QueryInt("limit", services.DefaultLimit),
	}
	switch c.Query("published") {
	case "true":
		t := true
		filter.Published = &t
	case "false":
		f := false
		filter.Published = &f
	}

	products, pagination, err := pc.service.List(filter)
	if err != nil {
		logger.WithCtx(c.Context()).Error("list products", "error", err)
		c.Internal()
		return
	}

	c.Success(map[string]any{
		"products":   products,
		"pagination": pagination,
	})
}

// Show handles GET /api/products/{id}. Unpublished products are visible
// here; published-only listings go through List.
func (pc *ProductController) Show(c *ctx.Context) {
	id := c.ParamUint("id")
	if id == 0 {
		c.NotFound("Product not found")
		return
	}

	product, err := pc.service.Get(id)
	if errors.Is(err, services.ErrNotFound) {
		c.NotFound("Product not found")
		return
	}
	if err != nil {
		logger.WithCtx(c.Context()).Error("fetch product", "id", id, "error", err)
		c.Internal()
		return
	}

	c.Success(product)
}

// Create handles POST /api/products. Any authenticated user may create;
// the new product is owned by the caller.
func (pc *ProductController) Create(c *ctx.Context) {
	identity, ok := c.Identity()
	if !ok {
		c.Unauthorized()
		return
	}

	var req requests.CreateProductRequest
	if !c.BindJSON(&req) {
		return
	}

	product, err := pc.service.Create(identity, req)
	if err != nil {
		logger.WithCtx(c.Context()).Error("create product", "user_id", identity.UserID, "error", err)
		c.Internal()
		return
	}

	c.Created(product)
}

// Update handles PUT /api/products/{id}.
func (pc *ProductController) Update(c *ctx.Context) {
	identity, ok := c.Identity()
	if !ok {
		c.Unauthorized()
		return
	}

	id := c.ParamUint("id")
	if id == 0 {
		c.NotFound("Product not found")
		return
	}

	var req requests.UpdateProductRequest
	if !c.BindJSON(&req) {
		return
	}

	product, err := pc.service.Update(id, identity, req)
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.NotFound("Product not found")
	case errors.Is(err, services.ErrForbidden):
		c.Forbidden()
	case err != nil:
		logger.WithCtx(c.Context()).Error("update product", "id", id, "error", err)
		c.Internal()
	default:
		c.Success(product)
	}
}

// Delete handles DELETE /api/products/{id}. Images go with the product.
func (pc *ProductController) Delete(c *ctx.Context) {
	identity, ok := c.Identity()
	if !ok {
		c.Unauthorized()
		return
	}

	id := c.ParamUint("id")
	if id == 0 {
		c.NotFound("Product not found")
		return
	}

	err := pc.service.Delete(id, identity)
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.NotFound("Product not found")
	case errors.Is(err, services.ErrForbidden):
		c.Forbidden()
	case err != nil:
		logger.WithCtx(c.Context()).Error("delete product", "id", id, "error", err)
		c.Internal()
	default:
		c.Success(map[string]string{"message": "Product deleted successfully"})
	}
}
