package cart

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/trinitymugbe/localmart-backend/pkg/db/models"
)

// Repository exposes persistence helpers for anonymous carts.
type Repository interface {
	ListItems(ctx context.Context, cartID string) ([]models.CartItem, error)
	FindItem(ctx context.Context, id uuid.UUID) (*models.CartItem, error)
	AddItem(ctx context.Context, cartID string, productID uuid.UUID, quantity int) (*models.CartItem, error)
	UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) (*models.CartItem, error)
	RemoveItem(ctx context.Context, id uuid.UUID) error
	Clear(ctx context.Context, cartID string) error
}

type repositoryImpl struct {
	db *gorm.DB
}

// NewRepository returns a cart repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) ListItems(ctx context.Context, cartID string) ([]models.CartItem, error) {
	var items []models.CartItem
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("cart_id = ?", cartID).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}

func (r *repositoryImpl) FindItem(ctx context.Context, id uuid.UUID) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.db.WithContext(ctx).Preload("Product").Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// AddItem inserts a (cart, product) row or atomically increments the quantity
// of the existing one. The upsert rides on the unique index over
// (cart_id, product_id), so two concurrent first adds cannot both take the
// insert path and fail.
func (r *repositoryImpl) AddItem(ctx context.Context, cartID string, productID uuid.UUID, quantity int) (*models.CartItem, error) {
	cartID = strings.TrimSpace(cartID)
	if cartID == "" || productID == uuid.Nil {
		return nil, gorm.ErrInvalidValue
	}
	if quantity <= 0 {
		quantity = 1
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "cart_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"quantity": gorm.Expr("cart_items.quantity + ?", quantity),
			}),
		}).
		Create(&models.CartItem{
			ID:        uuid.New(),
			CartID:    cartID,
			ProductID: productID,
			Quantity:  quantity,
		}).Error
	if err != nil {
		return nil, err
	}

	var item models.CartItem
	if err := r.db.WithContext(ctx).
		Preload("Product").
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *repositoryImpl) UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) (*models.CartItem, error) {
	result := r.db.WithContext(ctx).Model(&models.CartItem{}).
		Where("id = ?", id).
		Update("quantity", quantity)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindItem(ctx, id)
}

func (r *repositoryImpl) RemoveItem(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.CartItem{}).Error
}

func (r *repositoryImpl) Clear(ctx context.Context, cartID string) error {
	return r.db.WithContext(ctx).Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error
}
