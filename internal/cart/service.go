package cart

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/trinitymugbe/localmart-backend/internal/catalog"
	pkgerrors "github.com/trinitymugbe/localmart-backend/pkg/errors"
)

// ServiceParams groups dependencies for the cart service.
type ServiceParams struct {
	CartRepo    Repository
	CatalogRepo catalog.Repository
}

// Service exposes business rules for anonymous cart management.
type Service interface {
	GetCart(ctx context.Context, cartID string) (CartDTO, error)
	AddItem(ctx context.Context, cartID string, productID uuid.UUID, quantity int) (ItemDTO, error)
	UpdateQuantity(ctx context.Context, itemID uuid.UUID, quantity int) (*ItemDTO, error)
	RemoveItem(ctx context.Context, itemID uuid.UUID) error
	Clear(ctx context.Context, cartID string) error
}

type service struct {
	cartRepo    Repository
	catalogRepo catalog.Repository
}

// NewService builds a cart service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.CartRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "cart repository required")
	}
	if params.CatalogRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "catalog repository required")
	}
	return &service{cartRepo: params.CartRepo, catalogRepo: params.CatalogRepo}, nil
}

// GetCart returns the cart lines plus server-computed totals.
func (s *service) GetCart(ctx context.Context, cartID string) (CartDTO, error) {
	cartID = strings.TrimSpace(cartID)
	if cartID == "" {
		return CartDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "cart id is required")
	}

	items, err := s.cartRepo.ListItems(ctx, cartID)
	if err != nil {
		return CartDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list cart items")
	}

	dtos := make([]ItemDTO, 0, len(items))
	lines := make([]PricedLine, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, itemToDTO(item))
		if item.Product != nil {
			lines = append(lines, PricedLine{
				UnitPrice: item.Product.EffectivePrice(),
				SetPieces: item.Product.SetPieces,
				Quantity:  item.Quantity,
			})
		}
	}

	return CartDTO{
		CartID: cartID,
		Items:  dtos,
		Totals: ComputeTotals(lines),
	}, nil
}

// AddItem verifies the product and merges the line onto the cart.
func (s *service) AddItem(ctx context.Context, cartID string, productID uuid.UUID, quantity int) (ItemDTO, error) {
	cartID = strings.TrimSpace(cartID)
	if cartID == "" {
		return ItemDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "cart id is required")
	}
	if productID == uuid.Nil {
		return ItemDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	if _, err := s.catalogRepo.FindProductByID(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ItemDTO{}, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "product not found")
		}
		return ItemDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}

	item, err := s.cartRepo.AddItem(ctx, cartID, productID, quantity)
	if err != nil {
		return ItemDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "add cart item")
	}
	return itemToDTO(*item), nil
}

// UpdateQuantity overwrites the line quantity. Zero or negative removes the
// line and returns nil.
func (s *service) UpdateQuantity(ctx context.Context, itemID uuid.UUID, quantity int) (*ItemDTO, error) {
	if itemID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart item id is required")
	}

	if quantity <= 0 {
		if err := s.RemoveItem(ctx, itemID); err != nil {
			return nil, err
		}
		return nil, nil
	}

	item, err := s.cartRepo.UpdateQuantity(ctx, itemID, quantity)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "cart item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update cart item")
	}
	dto := itemToDTO(*item)
	return &dto, nil
}

// RemoveItem drops the line regardless of prior state.
func (s *service) RemoveItem(ctx context.Context, itemID uuid.UUID) error {
	if itemID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "cart item id is required")
	}
	if err := s.cartRepo.RemoveItem(ctx, itemID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "remove cart item")
	}
	return nil
}

// Clear empties the cart; clearing an unknown cart id is a no-op.
func (s *service) Clear(ctx context.Context, cartID string) error {
	cartID = strings.TrimSpace(cartID)
	if cartID == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "cart id is required")
	}
	if err := s.cartRepo.Clear(ctx, cartID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear cart")
	}
	return nil
}
