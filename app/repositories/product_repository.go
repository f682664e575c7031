package repositories

import (
	"strings"
	"sync"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rajsingh19/wearhouse/app/models"
)

// ProductFilter narrows a product listing. Zero values mean "no filter".
type ProductFilter struct {
	Category  string
	Search    string
	Published *bool
	Page      int
	Limit     int
}

// Pagination summarises a paged listing.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

// ProductRepository handles database operations for Product.
type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// ownerView preloads the owning user with only its public columns.
func ownerView(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "email")
}

// List returns the filtered page of products, newest first, together with
// a pagination summary. The row fetch and the count run as two concurrent
// independent reads, not inside one transaction.
func (r *ProductRepository) List(f ProductFilter) ([]models.Product, Pagination, error) {
	scope := func() *gorm.DB {
		q := r.db.Model(&models.Product{})
		if f.Category != "" {
			q = q.Where("category = ?", f.Category)
		}
		if f.Search != "" {
			like := "%" + strings.ToLower(f.Search) + "%"
			q = q.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", like, like)
		}
		if f.Published != nil {
			q = q.Where("published = ?", *f.Published)
		}
		return q
	}

	skip := (f.Page - 1) * f.Limit

	var (
		products []models.Product
		total    int64
		findErr  error
		countErr error
		wg       sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		findErr = scope().
			Preload("Images").
			Preload("User", ownerView).
			Order("created_at DESC, id DESC").
			Offset(skip).
			Limit(f.Limit).
			Find(&products).Error
	}()
	go func() {
		defer wg.Done()
		countErr = scope().Count(&total).Error
	}()
	wg.Wait()

	if findErr != nil {
		return nil, Pagination{}, findErr
	}
	if countErr != nil {
		return nil, Pagination{}, countErr
	}

	totalPages := int((total + int64(f.Limit) - 1) / int64(f.Limit))
	pagination := Pagination{
		Page:       f.Page,
		Limit:      f.Limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    f.Page < totalPages,
		HasPrev:    f.Page > 1,
	}
	return products, pagination, nil
}

// FindByID loads one product with its images and reduced owner view.
// Returns gorm.ErrRecordNotFound when absent.
func (r *ProductRepository) FindByID(id uint) (models.Product, error) {
	var product models.Product
	err := r.db.
		Preload("Images").
		Preload("User", ownerView).
		First(&product, id).Error
	return product, err
}

// Create persists a product together with any attached images in a single
// transaction. Either everything is written or nothing is.
func (r *ProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

// Update persists changed columns of an existing product without touching
// its image associations.
func (r *ProductRepository) Update(product *models.Product) error {
	return r.db.Omit(clause.Associations).Save(product).Error
}

// ReplaceImages swaps a product's whole image set atomically: all prior
// rows are deleted and the new set inserted inside one transaction, so a
// mid-operation failure never leaves a partial set behind.
func (r *ProductRepository) ReplaceImages(productID uint, images []models.ProductImage) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("product_id = ?", productID).Delete(&models.ProductImage{}).Error; err != nil {
			return err
		}
		if len(images) == 0 {
			return nil
		}
		for i := range images {
			images[i].ProductID = productID
		}
		return tx.Create(&images).Error
	})
}

// Delete removes a product and cascades to its images.
func (r *ProductRepository) Delete(product *models.Product) error {
	return r.db.Select(clause.Associations).Delete(product).Error
}
