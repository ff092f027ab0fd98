package models

import (
	"github.com/google/uuid"
)

// OrderItem snapshots one product line at the moment an order was placed.
// Price is the per-line amount locked in at creation, independent of later
// product price edits.
type OrderItem struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OrderID   uuid.UUID `gorm:"column:order_id;type:uuid;not null"`
	ProductID uuid.UUID `gorm:"column:product_id;type:uuid;not null"`
	Quantity  int       `gorm:"column:quantity;not null"`
	Price     float64   `gorm:"column:price;type:numeric(10,2);not null"`
	Product   *Product  `gorm:"foreignKey:ProductID"`
}
