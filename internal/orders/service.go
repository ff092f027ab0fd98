package orders

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/trinitymugbe/localmart-backend/internal/cart"
	"github.com/trinitymugbe/localmart-backend/internal/catalog"
	"github.com/trinitymugbe/localmart-backend/pkg/db/models"
	"github.com/trinitymugbe/localmart-backend/pkg/enums"
	pkgerrors "github.com/trinitymugbe/localmart-backend/pkg/errors"
)

// ServiceParams groups dependencies for the orders service.
type ServiceParams struct {
	OrderRepo   Repository
	CatalogRepo catalog.Repository
}

// Service exposes business rules for pickup orders.
type Service interface {
	Create(ctx context.Context, input CreateOrderInput) (OrderDTO, error)
	Get(ctx context.Context, id uuid.UUID) (OrderDTO, error)
	List(ctx context.Context) ([]OrderDTO, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enums.OrderStatus) (OrderDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	orderRepo   Repository
	catalogRepo catalog.Repository
}

// NewService builds an orders service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.OrderRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "orders repository required")
	}
	if params.CatalogRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "catalog repository required")
	}
	return &service{orderRepo: params.OrderRepo, catalogRepo: params.CatalogRepo}, nil
}

// Create prices every line from the live catalog and persists the order with
// its items in one transaction. Client-submitted amounts are never trusted.
func (s *service) Create(ctx context.Context, input CreateOrderInput) (OrderDTO, error) {
	if err := validateCustomer(input); err != nil {
		return OrderDTO{}, err
	}
	if len(input.Items) == 0 {
		return OrderDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "order must contain at least one item")
	}

	orderID := uuid.New()
	items := make([]models.OrderItem, 0, len(input.Items))
	lines := make([]cart.PricedLine, 0, len(input.Items))
	for _, line := range input.Items {
		if line.ProductID == uuid.Nil {
			return OrderDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "order item product id is required")
		}
		if line.Quantity <= 0 {
			return OrderDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "order item quantity must be positive")
		}

		product, err := s.catalogRepo.FindProductByID(ctx, line.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return OrderDTO{}, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "order item product not found")
			}
			return OrderDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
		}

		priced := cart.PricedLine{
			UnitPrice: product.EffectivePrice(),
			SetPieces: product.SetPieces,
			Quantity:  line.Quantity,
		}
		lines = append(lines, priced)
		items = append(items, models.OrderItem{
			ID:        uuid.New(),
			OrderID:   orderID,
			ProductID: product.ID,
			Quantity:  line.Quantity,
			Price:     cart.LineAmount(priced).Round(2).InexactFloat64(),
		})
	}

	totals := cart.ComputeTotals(lines)
	order := &models.Order{
		ID:            orderID,
		CustomerName:  strings.TrimSpace(input.CustomerName),
		CustomerEmail: strings.TrimSpace(input.CustomerEmail),
		CustomerPhone: strings.TrimSpace(input.CustomerPhone),
		TotalAmount:   totals.Total,
		Status:        enums.OrderStatusPending,
		Items:         items,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return OrderDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create order")
	}
	return orderToDTO(*order), nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (OrderDTO, error) {
	if id == uuid.Nil {
		return OrderDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "order id is required")
	}
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return OrderDTO{}, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "order not found")
		}
		return OrderDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}
	return orderToDTO(*order), nil
}

func (s *service) List(ctx context.Context) ([]OrderDTO, error) {
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
	}
	out := make([]OrderDTO, 0, len(orders))
	for _, order := range orders {
		out = append(out, orderToDTO(order))
	}
	return out, nil
}

// UpdateStatus enforces the fulfillment state machine. Orders advance
// pending -> processing -> shipped -> delivered, and any non-terminal order
// can be cancelled.
func (s *service) UpdateStatus(ctx context.Context, id uuid.UUID, status enums.OrderStatus) (OrderDTO, error) {
	if id == uuid.Nil {
		return OrderDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "order id is required")
	}
	if !status.IsValid() {
		return OrderDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "unknown order status")
	}

	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return OrderDTO{}, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "order not found")
		}
		return OrderDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}

	if !order.Status.CanTransitionTo(status) {
		return OrderDTO{}, pkgerrors.New(pkgerrors.CodeStateConflict, "order status cannot change from "+order.Status.String()+" to "+status.String())
	}

	applied, err := s.orderRepo.UpdateStatus(ctx, id, order.Status, status)
	if err != nil {
		return OrderDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update order status")
	}
	if !applied {
		return OrderDTO{}, pkgerrors.New(pkgerrors.CodeStateConflict, "order status changed concurrently")
	}

	order.Status = status
	return orderToDTO(*order), nil
}

// Delete removes the order and its lines; a missing id maps to NotFound.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "order id is required")
	}
	found, err := s.orderRepo.Delete(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete order")
	}
	if !found {
		return pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
	}
	return nil
}

func validateCustomer(input CreateOrderInput) error {
	if strings.TrimSpace(input.CustomerName) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "customer name is required")
	}
	if strings.TrimSpace(input.CustomerEmail) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "customer email is required")
	}
	if strings.TrimSpace(input.CustomerPhone) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "customer phone is required")
	}
	return nil
}
