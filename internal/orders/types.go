package orders

import (
	"time"

	"github.com/google/uuid"

	"github.com/trinitymugbe/localmart-backend/pkg/db/models"
)

// CreateOrderInput carries the customer fields and lines for a new pickup order.
type CreateOrderInput struct {
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Items         []CreateOrderItemInput
}

// CreateOrderItemInput references a catalog product and a quantity. Prices are
// never taken from the client; they are recomputed from the live catalog.
type CreateOrderItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// OrderDTO is the API view of an order with its lines.
type OrderDTO struct {
	ID            uuid.UUID      `json:"id"`
	CustomerName  string         `json:"customerName"`
	CustomerEmail string         `json:"customerEmail"`
	CustomerPhone string         `json:"customerPhone"`
	TotalAmount   float64        `json:"totalAmount"`
	Status        string         `json:"status"`
	Items         []OrderItemDTO `json:"items"`
	CreatedAt     time.Time      `json:"createdAt"`
}

// OrderItemDTO is one priced line of an order.
type OrderItemDTO struct {
	ID        uuid.UUID   `json:"id"`
	ProductID uuid.UUID   `json:"productId"`
	Quantity  int         `json:"quantity"`
	Price     float64     `json:"price"`
	Product   *ProductRef `json:"product,omitempty"`
}

// ProductRef is the light product snapshot attached to an order line.
type ProductRef struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Slug     string    `json:"slug"`
	ImageURL string    `json:"imageUrl"`
}

func orderToDTO(order models.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(order.Items))
	for _, item := range order.Items {
		dto := OrderItemDTO{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
		if item.Product != nil {
			dto.Product = &ProductRef{
				ID:       item.Product.ID,
				Name:     item.Product.Name,
				Slug:     item.Product.Slug,
				ImageURL: item.Product.ImageURL,
			}
		}
		items = append(items, dto)
	}
	return OrderDTO{
		ID:            order.ID,
		CustomerName:  order.CustomerName,
		CustomerEmail: order.CustomerEmail,
		CustomerPhone: order.CustomerPhone,
		TotalAmount:   order.TotalAmount,
		Status:        order.Status.String(),
		Items:         items,
		CreatedAt:     order.CreatedAt,
	}
}
