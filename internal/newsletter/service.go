package newsletter

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/trinitymugbe/localmart-backend/pkg/db"
	"github.com/trinitymugbe/localmart-backend/pkg/db/models"
	pkgerrors "github.com/trinitymugbe/localmart-backend/pkg/errors"
)

// Service exposes newsletter subscription operations.
type Service interface {
	Subscribe(ctx context.Context, email string) (SubscriptionDTO, error)
	List(ctx context.Context) ([]SubscriptionDTO, error)
}

type service struct {
	repo Repository
}

// NewService wires newsletter dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "newsletter repository required")
	}
	return &service{repo: repo}, nil
}

// Subscribe stores a new subscriber. Emails are normalized to lowercase and a
// duplicate subscription maps to a conflict.
func (s *service) Subscribe(ctx context.Context, email string) (SubscriptionDTO, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return SubscriptionDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}

	sub := &models.NewsletterSubscription{ID: uuid.New(), Email: email}
	if err := s.repo.Create(ctx, sub); err != nil {
		if db.IsUniqueViolation(err, "") {
			return SubscriptionDTO{}, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "email is already subscribed")
		}
		return SubscriptionDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create subscription")
	}
	return subscriptionToDTO(*sub), nil
}

// List returns every subscriber, newest first.
func (s *service) List(ctx context.Context) ([]SubscriptionDTO, error) {
	subs, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list subscriptions")
	}
	return subscriptionsToDTO(subs), nil
}
