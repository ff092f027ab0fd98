package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/trinitymugbe/localmart-backend/pkg/enums"
)

// Product represents a storefront listing.
type Product struct {
	ID            uuid.UUID        `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name          string           `gorm:"column:name;not null"`
	Slug          string           `gorm:"column:slug;not null;uniqueIndex"`
	Description   string           `gorm:"column:description;not null"`
	ImageURL      string           `gorm:"column:image_url;not null"`
	Price         float64          `gorm:"column:price;type:numeric(10,2);not null"`
	DiscountPrice *float64         `gorm:"column:discount_price;type:numeric(10,2)"`
	CategoryID    uuid.UUID        `gorm:"column:category_id;type:uuid;not null"`
	InStock       bool             `gorm:"column:in_stock;not null;default:true"`
	StockLevel    enums.StockLevel `gorm:"column:stock_level;type:text;not null;default:'In Stock'"`
	IsNew         bool             `gorm:"column:is_new;not null;default:false"`
	SetPieces     int              `gorm:"column:set_pieces;not null;default:1"`
	UnitType      string           `gorm:"column:unit_type;not null;default:'piece'"`
	CreatedAt     time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}

// EffectivePrice returns the discount price when present, the list price otherwise.
func (p *Product) EffectivePrice() float64 {
	if p.DiscountPrice != nil {
		return *p.DiscountPrice
	}
	return p.Price
}
