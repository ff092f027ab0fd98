package contact

import (
	"time"

	"github.com/google/uuid"

	"github.com/trinitymugbe/localmart-backend/pkg/db/models"
)

// SubmitInput carries a contact-form submission.
type SubmitInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// MessageDTO is the API view of a stored contact message.
type MessageDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

func messageToDTO(msg models.ContactMessage) MessageDTO {
	return MessageDTO{
		ID:        msg.ID,
		Name:      msg.Name,
		Email:     msg.Email,
		Subject:   msg.Subject,
		Message:   msg.Message,
		CreatedAt: msg.CreatedAt,
	}
}

func messagesToDTO(msgs []models.ContactMessage) []MessageDTO {
	out := make([]MessageDTO, 0, len(msgs))
	for _, msg := range msgs {
		out = append(out, messageToDTO(msg))
	}
	return out
}
