package newsletter

import (
	"context"

	"gorm.io/gorm"

	"github.com/trinitymugbe/localmart-backend/pkg/db/models"
)

// Repository exposes persistence helpers for newsletter subscriptions.
type Repository interface {
	Create(ctx context.Context, sub *models.NewsletterSubscription) error
	List(ctx context.Context) ([]models.NewsletterSubscription, error)
}

type repositoryImpl struct {
	db *gorm.DB
}

// NewRepository returns a newsletter repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) Create(ctx context.Context, sub *models.NewsletterSubscription) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

func (r *repositoryImpl) List(ctx context.Context) ([]models.NewsletterSubscription, error) {
	var subs []models.NewsletterSubscription
	err := r.db.WithContext(ctx).Order("subscribed_at DESC").Find(&subs).Error
	return subs, err
}
