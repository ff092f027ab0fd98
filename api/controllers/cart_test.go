package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/trinitymugbe/localmart-backend/internal/cart"
	pkgerrors "github.com/trinitymugbe/localmart-backend/pkg/errors"
)

type stubCartService struct {
	cart    cart.CartDTO
	item    cart.ItemDTO
	updated *cart.ItemDTO
	err     error

	clearedCartID string
	removedItemID uuid.UUID
}

func (s *stubCartService) GetCart(ctx context.Context, cartID string) (cart.CartDTO, error) {
	return s.cart, s.err
}

func (s *stubCartService) AddItem(ctx context.Context, cartID string, productID uuid.UUID, quantity int) (cart.ItemDTO, error) {
	return s.item, s.err
}

func (s *stubCartService) UpdateQuantity(ctx context.Context, itemID uuid.UUID, quantity int) (*cart.ItemDTO, error) {
	return s.updated, s.err
}

func (s *stubCartService) RemoveItem(ctx context.Context, itemID uuid.UUID) error {
	s.removedItemID = itemID
	return s.err
}

func (s *stubCartService) Clear(ctx context.Context, cartID string) error {
	s.clearedCartID = cartID
	return s.err
}

func TestGetCartReturnsTotals(t *testing.T) {
	view := cart.CartDTO{
		CartID: "cart-abc",
		Items:  []cart.ItemDTO{{ID: uuid.New(), CartID: "cart-abc", Quantity: 2}},
		Totals: cart.TotalsDTO{Subtotal: 160, Tax: 28.8, Total: 188.8},
	}
	handler := GetCart(&stubCartService{cart: view}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/cart/cart-abc", nil)
	req = withURLParam(req, "cartId", "cart-abc")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}

	var envelope struct {
		Data cart.CartDTO `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Totals.Total != 188.8 {
		t.Fatalf("expected total 188.8, got %v", envelope.Data.Totals.Total)
	}
}

func TestAddCartItemSuccess(t *testing.T) {
	item := cart.ItemDTO{ID: uuid.New(), CartID: "cart-abc", ProductID: uuid.New(), Quantity: 3}
	handler := AddCartItem(&stubCartService{item: item}, nil)

	body, _ := json.Marshal(map[string]any{
		"cartId":    "cart-abc",
		"productId": item.ProductID,
		"quantity":  3,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/cart", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", rec.Code)
	}
}

func TestAddCartItemRequiresCartID(t *testing.T) {
	handler := AddCartItem(&stubCartService{}, nil)

	body, _ := json.Marshal(map[string]any{
		"productId": uuid.New(),
		"quantity":  1,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/cart", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestUpdateCartItemQuantityZeroRemoves(t *testing.T) {
	handler := UpdateCartItem(&stubCartService{updated: nil}, nil)

	body, _ := json.Marshal(map[string]int{"quantity": 0})
	req := httptest.NewRequest(http.MethodPut, "/api/cart/"+uuid.NewString(), bytes.NewReader(body))
	req = withURLParam(req, "id", uuid.NewString())
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 got %d", rec.Code)
	}
}

func TestUpdateCartItemNotFound(t *testing.T) {
	handler := UpdateCartItem(&stubCartService{err: pkgerrors.New(pkgerrors.CodeNotFound, "cart item not found")}, nil)

	body, _ := json.Marshal(map[string]int{"quantity": 2})
	req := httptest.NewRequest(http.MethodPut, "/api/cart/"+uuid.NewString(), bytes.NewReader(body))
	req = withURLParam(req, "id", uuid.NewString())
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rec.Code)
	}
}

func TestRemoveCartItemRejectsBadID(t *testing.T) {
	handler := RemoveCartItem(&stubCartService{}, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/cart/not-a-uuid", nil)
	req = withURLParam(req, "id", "not-a-uuid")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestClearCartSuccess(t *testing.T) {
	svc := &stubCartService{}
	handler := ClearCart(svc, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/cart/clear/cart-abc", nil)
	req = withURLParam(req, "cartId", "cart-abc")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 got %d", rec.Code)
	}
	if svc.clearedCartID != "cart-abc" {
		t.Fatalf("service received cart %q", svc.clearedCartID)
	}
}
