package newsletter

import (
	"time"

	"github.com/google/uuid"

	"github.com/trinitymugbe/localmart-backend/pkg/db/models"
)

// SubscriptionDTO is the API view of a newsletter subscriber.
type SubscriptionDTO struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	SubscribedAt time.Time `json:"subscribedAt"`
}

func subscriptionToDTO(sub models.NewsletterSubscription) SubscriptionDTO {
	return SubscriptionDTO{
		ID:           sub.ID,
		Email:        sub.Email,
		SubscribedAt: sub.SubscribedAt,
	}
}

func subscriptionsToDTO(subs []models.NewsletterSubscription) []SubscriptionDTO {
	out := make([]SubscriptionDTO, 0, len(subs))
	for _, sub := range subs {
		out = append(out, subscriptionToDTO(sub))
	}
	return out
}
