package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/rajsingh19/wearhouse/app/models"
	"github.com/rajsingh19/wearhouse/app/repositories"
	"github.com/rajsingh19/wearhouse/app/requests"
	"github.com/rajsingh19/wearhouse/pkg/middleware"
)

// Sentinel errors surfaced to controllers, which map them onto HTTP
// status codes.
var (
	ErrNotFound  = errors.New("product not found")
	ErrForbidden = errors.New("not allowed to modify this product")
)

// Listing clamps. Limit is capped regardless of what the caller asks for.
const (
	DefaultPage  = 1
	DefaultLimit = 25
	MaxLimit     = 100
)

// ProductService implements the catalogue operations and the
// ownership-or-admin authorization rule.
type ProductService struct {
	products *repositories.ProductRepository
}

func NewProductService(products *repositories.ProductRepository) *ProductService {
	return &ProductService{products: products}
}

// List returns the filtered product page. Page and limit are normalised
// before hitting the repository: page floors at 1, limit defaults to 25
// and never exceeds 100.
func (s *ProductService) List(f repositories.ProductFilter) ([]models.Product, repositories.Pagination, error) {
	if f.Page < 1 {
		f.Page = DefaultPage
	}
	if f.Limit < 1 {
		f.Limit = DefaultLimit
	}
	if f.Limit > MaxLimit {
		f.Limit = MaxLimit
	}
	if !models.ValidCategory(f.Category) {
		f.Category = "" // unknown categories are ignored, not an error
	}
	return s.products.List(f)
}

// Get returns one product regardless of its published state.
func (s *ProductService) Get(id uint) (models.Product, error) {
	product, err := s.products.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Product{}, ErrNotFound
	}
	return product, err
}

// Create persists a new product owned by the caller. Provided image
// descriptors are created in the same transaction; a failure there rolls
// the product back too.
func (s *ProductService) Create(identity middleware.Identity, req requests.CreateProductRequest) (models.Product, error) {
	product := models.Product{
		Title:         req.Title,
		Description:   req.Description,
		Price:         *req.Price,
		OriginalPrice: req.OriginalPrice,
		BuyLink:       req.BuyLink,
		Category:      req.Category,
		Brand:         req.Brand,
		SKU:           req.SKU,
		Weight:        req.Weight,
		Dimensions:    req.Dimensions,
		Color:         req.Color,
		Size:          req.Size,
		Material:      req.Material,
		Published:     req.Published,
		Featured:      req.Featured,
		UserID:        identity.UserID,
		Images:        imageRows(req.Images, req.Title),
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}

	if err := s.products.Create(&product); err != nil {
		return models.Product{}, err
	}
	return s.products.FindByID(product.ID)
}

// Update applies a partial patch to an existing product. The existence
// check runs before the authorization check, so a missing product reports
// not-found even to callers who would not have been allowed to touch it.
// A supplied images array replaces the whole set atomically.
func (s *ProductService) Update(id uint, identity middleware.Identity, req requests.UpdateProductRequest) (models.Product, error) {
	product, err := s.Get(id)
	if err != nil {
		return models.Product{}, err
	}
	if err := s.authorize(product, identity); err != nil {
		return models.Product{}, err
	}

	applyPatch(&product, req)
	if err := s.products.Update(&product); err != nil {
		return models.Product{}, err
	}

	if req.Images != nil {
		if err := s.products.ReplaceImages(product.ID, imageRows(*req.Images, product.Title)); err != nil {
			return models.Product{}, err
		}
	}

	return s.products.FindByID(product.ID)
}

// Delete removes a product and all its images, subject to the same
// ownership-or-admin rule as Update.
func (s *ProductService) Delete(id uint, identity middleware.Identity) error {
	product, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := s.authorize(product, identity); err != nil {
		return err
	}
	return s.products.Delete(&product)
}

// authorize enforces the ownership-or-admin rule.
func (s *ProductService) authorize(product models.Product, identity middleware.Identity) error {
	if product.UserID != identity.UserID && !identity.IsAdmin() {
		return ErrForbidden
	}
	return nil
}

// applyPatch copies the supplied fields of req onto product. Nil pointers
// mean the field was omitted and stays untouched.
func applyPatch(product *models.Product, req requests.UpdateProductRequest) {
	if req.Title != nil {
		product.Title = *req.Title
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.OriginalPrice != nil {
		product.OriginalPrice = req.OriginalPrice
	}
	if req.BuyLink != nil {
		product.BuyLink = *req.BuyLink
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Brand != nil {
		product.Brand = *req.Brand
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.SKU != nil {
		product.SKU = *req.SKU
	}
	if req.Weight != nil {
		product.Weight = req.Weight
	}
	if req.Dimensions != nil {
		product.Dimensions = *req.Dimensions
	}
	if req.Color != nil {
		product.Color = *req.Color
	}
	if req.Size != nil {
		product.Size = *req.Size
	}
	if req.Material != nil {
		product.Material = *req.Material
	}
	if req.Published != nil {
		product.Published = *req.Published
	}
	if req.Featured != nil {
		product.Featured = *req.Featured
	}
}

// imageRows builds image rows from request descriptors. Blank alt text
// falls back to the product title.
func imageRows(inputs []requests.ImageInput, title string) []models.ProductImage {
	if len(inputs) == 0 {
		return nil
	}
	rows := make([]models.ProductImage, 0, len(inputs))
	for _, in := range inputs {
		alt := in.Alt
		if alt == "" {
			alt = title
		}
		rows = append(rows, models.ProductImage{
			URL:      in.URL,
			Alt:      alt,
			PublicID: in.PublicID,
			Width:    in.Width,
			Height:   in.Height,
			Format:   in.Format,
			Bytes:    in.Bytes,
		})
	}
	return rows
}
