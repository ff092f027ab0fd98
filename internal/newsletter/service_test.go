package newsletter

import (
	"context"
	"errors"
	"testing"

	"github.com/trinitymugbe/localmart-backend/pkg/db/models"
	pkgerrors "github.com/trinitymugbe/localmart-backend/pkg/errors"
)

type fakeNewsletterRepo struct {
	createFn func(ctx context.Context, sub *models.NewsletterSubscription) error
	listFn   func(ctx context.Context) ([]models.NewsletterSubscription, error)
	created  []*models.NewsletterSubscription
}

func (f *fakeNewsletterRepo) Create(ctx context.Context, sub *models.NewsletterSubscription) error {
	f.created = append(f.created, sub)
	if f.createFn != nil {
		return f.createFn(ctx, sub)
	}
	return nil
}

func (f *fakeNewsletterRepo) List(ctx context.Context) ([]models.NewsletterSubscription, error) {
	if f.listFn != nil {
		return f.listFn(ctx)
	}
	return nil, nil
}

func TestServiceSubscribeNormalizesEmail(t *testing.T) {
	repo := &fakeNewsletterRepo{}
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dto, err := svc.Subscribe(context.Background(), "  Shopper@Example.COM ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dto.Email != "shopper@example.com" {
		t.Fatalf("expected normalized email, got %s", dto.Email)
	}
	if len(repo.created) != 1 || repo.created[0].Email != "shopper@example.com" {
		t.Fatalf("repository received %+v", repo.created)
	}
}

func TestServiceSubscribeRejectsBlankEmail(t *testing.T) {
	repo := &fakeNewsletterRepo{}
	svc, _ := NewService(repo)

	_, err := svc.Subscribe(context.Background(), "   ")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(repo.created) != 0 {
		t.Fatalf("nothing should be persisted")
	}
}

func TestServiceSubscribeMapsDuplicateToConflict(t *testing.T) {
	repo := &fakeNewsletterRepo{
		createFn: func(ctx context.Context, sub *models.NewsletterSubscription) error {
			return errors.New(`duplicate key value violates unique constraint "idx_newsletter_subscriptions_email"`)
		},
	}
	svc, _ := NewService(repo)

	_, err := svc.Subscribe(context.Background(), "shopper@example.com")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestServiceSubscribeWrapsStoreFailure(t *testing.T) {
	repo := &fakeNewsletterRepo{
		createFn: func(ctx context.Context, sub *models.NewsletterSubscription) error {
			return errors.New("connection reset")
		},
	}
	svc, _ := NewService(repo)

	_, err := svc.Subscribe(context.Background(), "shopper@example.com")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
}
