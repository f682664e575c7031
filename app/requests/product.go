// Package requests holds the validated request payloads accepted by the
// API. Validation rules live in struct tags and run through pkg/bind.
package requests

// ImageInput is one image descriptor embedded in a product payload. The
// descriptor normally comes back from the upload endpoint verbatim.
type ImageInput struct {
	URL      string `json:"url" validate:"required,url"`
	Alt      string `json:"alt" validate:"nullable"`
	PublicID string `json:"public_id" validate:"required"`
	Width    int    `json:"width" validate:"nullable,gte=0"`
	Height   int    `json:"height" validate:"nullable,gte=0"`
	Format   string `json:"format" validate:"nullable"`
	Bytes    int    `json:"bytes" validate:"nullable,gte=0"`
}

// CreateProductRequest is the payload for POST /api/products.
//
// Price is a pointer so that an explicit zero survives validation while a
// missing field still fails the required rule.
type CreateProductRequest struct {
	Title         string       `json:"title" validate:"required"`
	Description   string       `json:"description" validate:"required"`
	Price         *int         `json:"price" validate:"required,gte=0"`
	OriginalPrice *int         `json:"original_price" validate:"nullable,gte=0"`
	BuyLink       string       `json:"buy_link" validate:"nullable,url"`
	Category      string       `json:"category" validate:"required,in=MENS,WOMENS,KIDS"`
	Brand         string       `json:"brand" validate:"nullable"`
	Stock         *int         `json:"stock" validate:"nullable,gte=0"`
	SKU           string       `json:"sku" validate:"nullable"`
	Weight        *float64     `json:"weight" validate:"nullable,gte=0"`
	Dimensions    string       `json:"dimensions" validate:"nullable"`
	Color         string       `json:"color" validate:"nullable"`
	Size          string       `json:"size" validate:"nullable"`
	Material      string       `json:"material" validate:"nullable"`
	Published     bool         `json:"published"`
	Featured      bool         `json:"featured"`
	Images        []ImageInput `json:"images" validate:"nullable,dive"`
}

// UpdateProductRequest is the payload for PUT /api/products/{id}. Every
// field is optional; only supplied fields are applied. A supplied Images
// slice replaces the whole image set, an omitted one leaves it alone.
type UpdateProductRequest struct {
	Title         *string       `json:"title" validate:"nullable"`
	Description   *string       `json:"description" validate:"nullable"`
	Price         *int          `json:"price" validate:"nullable,gte=0"`
	OriginalPrice *int          `json:"original_price" validate:"nullable,gte=0"`
	BuyLink       *string       `json:"buy_link" validate:"nullable,url"`
	Category      *string       `json:"category" validate:"nullable,in=MENS,WOMENS,KIDS"`
	Brand         *string       `json:"brand" validate:"nullable"`
	Stock         *int          `json:"stock" validate:"nullable,gte=0"`
	SKU           *string       `json:"sku" validate:"nullable"`
	Weight        *float64      `json:"weight" validate:"nullable,gte=0"`
	Dimensions    *string       `json:"dimensions" validate:"nullable"`
	Color         *string       `json:"color" validate:"nullable"`
	Size          *string       `json:"size" validate:"nullable"`
	Material      *string       `json:"material" validate:"nullable"`
	Published     *bool         `json:"published"`
	Featured      *bool         `json:"featured"`
	Images        *[]ImageInput `json:"images" validate:"nullable,dive"`
}
