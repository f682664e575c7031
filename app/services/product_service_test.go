package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/rajsingh19/wearhouse/app/models"
	"github.com/rajsingh19/wearhouse/app/repositories"
	"github.com/rajsingh19/wearhouse/app/requests"
	"github.com/rajsingh19/wearhouse/pkg/middleware"
)

var dbSeq atomic.Int64

// newTestDB opens a fresh shared in-memory sqlite database per test. The
// shared cache keeps the schema visible across pooled connections.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:svc%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Product{}, &models.ProductImage{}))
	return db
}

func newTestService(t *testing.T) (*ProductService, *gorm.DB) {
	db := newTestDB(t)
	return NewProductService(repositories.NewProductRepository(db)), db
}

func seedUser(t *testing.T, db *gorm.DB, email, role string) models.User {
	t.Helper()
	user := models.User{Name: "Test " + email, Email: email, Password: "x", Role: role}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedProduct(t *testing.T, db *gorm.DB, owner models.User, title string, published bool) models.Product {
	t.Helper()
	product := models.Product{
		Title:       title,
		Description: "Description for " + title,
		Price:       1000,
		Category:    models.CategoryMens,
		Published:   published,
		UserID:      owner.ID,
		Images: []models.ProductImage{{
			URL: "https://cdn.example.com/" + title, Alt: title, PublicID: "pid-" + title,
			Width: 500, Height: 500, Format: "jpg", Bytes: 1000,
		}},
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func identity(user models.User) middleware.Identity {
	return middleware.Identity{UserID: user.ID, Role: user.Role}
}

func intp(v int) *int       { return &v }
func strp(v string) *string { return &v }
func boolp(v bool) *bool    { return &v }

func TestListClampsLimit(t *testing.T) {
	svc, db := newTestService(t)
	owner := seedUser(t, db, "owner@example.com", models.RoleUser)
	for i := 0; i < 3; i++ {
		seedProduct(t, db, owner, fmt.Sprintf("Shirt %d", i), true)
	}

	_, pagination, err := svc.List(repositories.ProductFilter{Page: 1, Limit: 9999})
	require.NoError(t, err)
	assert.Equal(t, MaxLimit, pagination.Limit)

	_, pagination, err = svc.List(repositories.ProductFilter{Page: -5, Limit: 0})
	require.NoError(t, err)
	assert.Equal(t, DefaultPage, pagination.Page)
	assert.Equal(t, DefaultLimit, pagination.Limit)
}

func TestListPaginationMath(t *testing.T) {
	svc, db := newTestService(t)
	owner := seedUser(t, db, "owner@example.com", models.RoleUser)
	for i := 0; i < 7; i++ {
		seedProduct(t, db, owner, fmt.Sprintf("Product %d", i), true)
	}

	products, pagination, err := svc.List(repositories.ProductFilter{Page: 2, Limit: 3})
	require.NoError(t, err)

	assert.Len(t, products, 3)
	assert.Equal(t, int64(7), pagination.Total)
	assert.Equal(t, 3, pagination.TotalPages) // ceil(7/3)
	assert.True(t, pagination.HasNext)
	assert.True(t, pagination.HasPrev)

	products, pagination, err = svc.List(repositories.ProductFilter{Page: 3, Limit: 3})
	require.NoError(t, err)
	assert.Len(t, products, 1)
	assert.False(t, pagination.HasNext)
	assert.True(t, pagination.HasPrev)
}

func TestListSearchMatchesTitleOrDescription(t *testing.T) {
	svc, db := newTestService(t)
	owner := seedUser(t, db, "owner@example.com", models.RoleUser)

	shirt := models.Product{Title: "Classic White Shirt", Description: "cotton", Price: 1, Category: models.CategoryMens, UserID: owner.ID}
	dress := models.Product{Title: "Black Dress", Description: "pairs well with a SHIRT", Price: 1, Category: models.CategoryWomens, UserID: owner.ID}
	shoes := models.Product{Title: "Sports Shoes", Description: "for running", Price: 1, Category: models.CategoryKids, UserID: owner.ID}
	require.NoError(t, db.Create(&shirt).Error)
	require.NoError(t, db.Create(&dress).Error)
	require.NoError(t, db.Create(&shoes).Error)

	products, pagination, err := svc.List(repositories.ProductFilter{Search: "shirt"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), pagination.Total)
	assert.Len(t, products, 2)
}

func TestListFiltersCategoryAndPublished(t *testing.T) {
	svc, db := newTestService(t)
	owner := seedUser(t, db, "owner@example.com", models.RoleUser)
	seedProduct(t, db, owner, "Mens Published", true)
	draft := seedProduct(t, db, owner, "Mens Draft", false)
	_ = draft

	published := true
	products, _, err := svc.List(repositories.ProductFilter{Category: models.CategoryMens, Published: &published})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Mens Published", products[0].Title)

	// Unknown category is ignored, not an error
	products, _, err = svc.List(repositories.ProductFilter{Category: "HATS"})
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestListOmitsOwnerPassword(t *testing.T) {
	svc, db := newTestService(t)
	owner := seedUser(t, db, "owner@example.com", models.RoleUser)
	seedProduct(t, db, owner, "Shirt", true)

	products, _, err := svc.List(repositories.ProductFilter{})
	require.NoError(t, err)
	require.Len(t, products, 1)
	require.NotNil(t, products[0].User)
	assert.Equal(t, "owner@example.com", products[0].User.Email)
	assert.Empty(t, products[0].User.Password)
}

func TestCreateDefaultsAndAssociations(t *testing.T) {
	svc, db := newTestService(t)
	owner := seedUser(t, db, "owner@example.com", models.RoleUser)

	product, err := svc.Create(identity(owner), requests.CreateProductRequest{
		Title:       "New Shirt",
		Description: "A very nice shirt",
		Price:       intp(0), // explicit zero price is valid
		Category:    models.CategoryMens,
	})
	require.NoError(t, err)

	assert.Equal(t, owner.ID, product.UserID)
	assert.Equal(t, 0, product.Price)
	assert.False(t, product.Published)
	assert.Empty(t, product.Images)
}

func TestCreateWithImagesUsesTitleAsAltFallback(t *testing.T) {
	svc, db := newTestService(t)
	owner := seedUser(t, db, "owner@example.com", models.RoleUser)

	product, err := svc.Create(identity(owner), requests.CreateProductRequest{
		Title:       "Hoodie",
		Description: "Warm hoodie",
		Price:       intp(2500),
		Category:    models.CategoryKids,
		Images: []requests.ImageInput{
			{URL: "https://cdn.example.com/a.jpg", PublicID: "pid-a"},
			{URL: "https://cdn.example.com/b.jpg", Alt: "Back view", PublicID: "pid-b"},
		},
	})
	require.NoError(t, err)

	require.Len(t, product.Images, 2)
	assert.Equal(t, "Hoodie", product.Images[0].Alt)
	assert.Equal(t, "Back view", product.Images[1].Alt)
}

func TestUpdateForbiddenForNonOwner(t *testing.T) {
	svc, db := newTestService(t)
	owner := seedUser(t, db, "owner@example.com", models.RoleUser)
	other := seedUser(t, db, "other@example.com", models.RoleUser)
	product := seedProduct(t, db, owner, "Shirt", true)

	_, err := svc.Update(product.ID, identity(other), requests.UpdateProductRequest{Title: strp("Stolen")})
	assert.ErrorIs(t, err, ErrForbidden)

	err = svc.Delete(product.ID, identity(other))
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpdateAllowedForAdmin(t *testing.T) {
	svc, db := newTestService(t)
	owner := seedUser(t, db, "owner@example.com", models.RoleUser)
	admin := seedUser(t, db, "admin@example.com", models.RoleAdmin)
	product := seedProduct(t, db, owner, "Shirt", true)

	updated, err := svc.Update(product.ID, identity(admin), requests.UpdateProductRequest{Price: intp(999)})
	require.NoError(t, err)
	assert.Equal(t, 999, updated.Price)
	assert.Equal(t, "Shirt", updated.Title) // untouched fields survive
	assert.Equal(t, owner.ID, updated.UserID)
}

func TestNotFoundBeforeForbidden(t *testing.T) {
	svc, db := newTestService(t)
	other := seedUser(t, db, "other@example.com", models.RoleUser)

	// A missing product is not-found even for a caller who would have
	// been rejected as forbidden had it existed.
	_, err := svc.Update(99999, identity(other), requests.UpdateProductRequest{Title: strp("x")})
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.Delete(99999, identity(other))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateReplacesImageSet(t *testing.T) {
	svc, db := newTestService(t)
	owner := seedUser(t, db, "owner@example.com", models.RoleUser)
	product := seedProduct(t, db, owner, "Shirt", true)

	images := []requests.ImageInput{
		{URL: "https://cdn.example.com/new1.jpg", PublicID: "pid-new1"},
		{URL: "https://cdn.example.com/new2.jpg", PublicID: "pid-new2"},
	}
	updated, err := svc.Update(product.ID, identity(owner), requests.UpdateProductRequest{Images: &images})
	require.NoError(t, err)

	require.Len(t, updated.Images, 2)
	assert.Equal(t, "pid-new1", updated.Images[0].PublicID)

	var count int64
	require.NoError(t, db.Model(&models.ProductImage{}).Where("product_id = ?", product.ID).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestUpdateOmittedImagesLeftUntouched(t *testing.T) {
	svc, db := newTestService(t)
	owner := seedUser(t, db, "owner@example.com", models.RoleUser)
	product := seedProduct(t, db, owner, "Shirt", true)

	updated, err := svc.Update(product.ID, identity(owner), requests.UpdateProductRequest{Published: boolp(false)})
	require.NoError(t, err)
	assert.Len(t, updated.Images, 1)
	assert.False(t, updated.Published)
}

func TestDeleteCascadesToImages(t *testing.T) {
	svc, db := newTestService(t)
	owner := seedUser(t, db, "owner@example.com", models.RoleUser)
	product := seedProduct(t, db, owner, "Shirt", true)

	require.NoError(t, svc.Delete(product.ID, identity(owner)))

	_, err := svc.Get(product.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	var count int64
	require.NoError(t, db.Unscoped().Model(&models.ProductImage{}).
		Where("product_id = ? AND deleted_at IS NULL", product.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestGetReturnsUnpublished(t *testing.T) {
	svc, db := newTestService(t)
	owner := seedUser(t, db, "owner@example.com", models.RoleUser)
	draft := seedProduct(t, db, owner, "Draft", false)

	product, err := svc.Get(draft.ID)
	require.NoError(t, err)
	assert.False(t, product.Published)
}
