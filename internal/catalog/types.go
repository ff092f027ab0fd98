package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/trinitymugbe/localmart-backend/pkg/db/models"
)

// CategoryDTO is the storefront view of a category.
type CategoryDTO struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Slug     string    `json:"slug"`
	ImageURL string    `json:"imageUrl"`
}

// ProductDTO is the storefront view of a product listing.
type ProductDTO struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	Description   string    `json:"description"`
	ImageURL      string    `json:"imageUrl"`
	Price         float64   `json:"price"`
	DiscountPrice *float64  `json:"discountPrice"`
	CategoryID    uuid.UUID `json:"categoryId"`
	InStock       bool      `json:"inStock"`
	StockLevel    string    `json:"stockLevel"`
	IsNew         bool      `json:"isNew"`
	SetPieces     int       `json:"setPieces"`
	UnitType      string    `json:"unitType"`
	CreatedAt     time.Time `json:"createdAt"`
}

func categoryToDTO(category models.Category) CategoryDTO {
	return CategoryDTO{
		ID:       category.ID,
		Name:     category.Name,
		Slug:     category.Slug,
		ImageURL: category.ImageURL,
	}
}

func productToDTO(product models.Product) ProductDTO {
	return ProductDTO{
		ID:            product.ID,
		Name:          product.Name,
		Slug:          product.Slug,
		Description:   product.Description,
		ImageURL:      product.ImageURL,
		Price:         product.Price,
		DiscountPrice: product.DiscountPrice,
		CategoryID:    product.CategoryID,
		InStock:       product.InStock,
		StockLevel:    product.StockLevel.String(),
		IsNew:         product.IsNew,
		SetPieces:     product.SetPieces,
		UnitType:      product.UnitType,
		CreatedAt:     product.CreatedAt,
	}
}

func productsToDTO(products []models.Product) []ProductDTO {
	out := make([]ProductDTO, 0, len(products))
	for _, product := range products {
		out = append(out, productToDTO(product))
	}
	return out
}
