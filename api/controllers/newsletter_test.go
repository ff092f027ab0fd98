package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/trinitymugbe/localmart-backend/internal/newsletter"
	pkgerrors "github.com/trinitymugbe/localmart-backend/pkg/errors"
)

type stubNewsletterService struct {
	sub  newsletter.SubscriptionDTO
	subs []newsletter.SubscriptionDTO
	err  error
}

func (s stubNewsletterService) Subscribe(ctx context.Context, email string) (newsletter.SubscriptionDTO, error) {
	return s.sub, s.err
}

func (s stubNewsletterService) List(ctx context.Context) ([]newsletter.SubscriptionDTO, error) {
	return s.subs, s.err
}

func TestSubscribeNewsletterSuccess(t *testing.T) {
	dto := newsletter.SubscriptionDTO{ID: uuid.New(), Email: "shopper@example.com"}
	handler := SubscribeNewsletter(stubNewsletterService{sub: dto}, nil)

	body, _ := json.Marshal(map[string]string{"email": "shopper@example.com"})
	req := httptest.NewRequest(http.MethodPost, "/api/newsletter", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", rec.Code)
	}
}

func TestSubscribeNewsletterRejectsBadEmail(t *testing.T) {
	handler := SubscribeNewsletter(stubNewsletterService{}, nil)

	body, _ := json.Marshal(map[string]string{"email": "not-an-address"})
	req := httptest.NewRequest(http.MethodPost, "/api/newsletter", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestSubscribeNewsletterDuplicateConflict(t *testing.T) {
	handler := SubscribeNewsletter(stubNewsletterService{err: pkgerrors.New(pkgerrors.CodeConflict, "email is already subscribed")}, nil)

	body, _ := json.Marshal(map[string]string{"email": "shopper@example.com"})
	req := httptest.NewRequest(http.MethodPost, "/api/newsletter", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 got %d", rec.Code)
	}
}

func TestAdminListNewslettersSuccess(t *testing.T) {
	subs := []newsletter.SubscriptionDTO{{ID: uuid.New(), Email: "shopper@example.com"}}
	handler := AdminListNewsletters(stubNewsletterService{subs: subs}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/newsletters", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}

	var envelope struct {
		Data []newsletter.SubscriptionDTO `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data) != 1 {
		t.Fatalf("unexpected payload: %+v", envelope.Data)
	}
}

func TestSubscribeNewsletterStoreFailureIsGeneric500(t *testing.T) {
	svcErr := pkgerrors.Wrap(pkgerrors.CodeDependency, context.DeadlineExceeded, "storing subscription")
	handler := SubscribeNewsletter(stubNewsletterService{err: svcErr}, nil)

	body, _ := json.Marshal(map[string]string{"email": "shopper@example.com"})
	req := httptest.NewRequest(http.MethodPost, "/api/newsletter", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", rec.Code)
	}
	var envelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Error.Message != "internal server error" {
		t.Fatalf("expected generic message, got %q", envelope.Error.Message)
	}
}
