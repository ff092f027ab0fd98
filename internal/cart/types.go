package cart

import (
	"github.com/google/uuid"

	"github.com/trinitymugbe/localmart-backend/pkg/db/models"
)

// ItemDTO is one cart line as returned to the storefront.
type ItemDTO struct {
	ID        uuid.UUID   `json:"id"`
	CartID    string      `json:"cartId"`
	ProductID uuid.UUID   `json:"productId"`
	Quantity  int         `json:"quantity"`
	Product   *ProductDTO `json:"product,omitempty"`
}

// ProductDTO is the product snapshot embedded in a cart line.
type ProductDTO struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	ImageURL      string    `json:"imageUrl"`
	Price         float64   `json:"price"`
	DiscountPrice *float64  `json:"discountPrice"`
	SetPieces     int       `json:"setPieces"`
	UnitType      string    `json:"unitType"`
	InStock       bool      `json:"inStock"`
}

// CartDTO is the full cart view including computed totals.
type CartDTO struct {
	CartID string    `json:"cartId"`
	Items  []ItemDTO `json:"items"`
	Totals TotalsDTO `json:"totals"`
}

// TotalsDTO carries the server-computed money summary for a cart.
type TotalsDTO struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

func itemToDTO(item models.CartItem) ItemDTO {
	dto := ItemDTO{
		ID:        item.ID,
		CartID:    item.CartID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
	}
	if item.Product != nil {
		dto.Product = &ProductDTO{
			ID:            item.Product.ID,
			Name:          item.Product.Name,
			Slug:          item.Product.Slug,
			ImageURL:      item.Product.ImageURL,
			Price:         item.Product.Price,
			DiscountPrice: item.Product.DiscountPrice,
			SetPieces:     item.Product.SetPieces,
			UnitType:      item.Product.UnitType,
			InStock:       item.Product.InStock,
		}
	}
	return dto
}
