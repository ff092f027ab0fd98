package contact

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/trinitymugbe/localmart-backend/pkg/db/models"
	pkgerrors "github.com/trinitymugbe/localmart-backend/pkg/errors"
)

// Field length ceilings for contact submissions.
const (
	maxNameLength    = 100
	maxEmailLength   = 254
	maxSubjectLength = 200
	maxMessageLength = 2000
)

// Service exposes contact-form operations for the portfolio site.
type Service interface {
	Submit(ctx context.Context, input SubmitInput) (MessageDTO, error)
	List(ctx context.Context) ([]MessageDTO, error)
}

type service struct {
	repo Repository
}

// NewService wires contact dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "contact repository required")
	}
	return &service{repo: repo}, nil
}

// Submit validates and stores one contact-form submission.
func (s *service) Submit(ctx context.Context, input SubmitInput) (MessageDTO, error) {
	msg, err := buildMessage(input)
	if err != nil {
		return MessageDTO{}, err
	}
	if err := s.repo.Create(ctx, msg); err != nil {
		return MessageDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create contact message")
	}
	return messageToDTO(*msg), nil
}

// List returns every stored message, newest first.
func (s *service) List(ctx context.Context) ([]MessageDTO, error) {
	msgs, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list contact messages")
	}
	return messagesToDTO(msgs), nil
}

func buildMessage(input SubmitInput) (*models.ContactMessage, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	subject := strings.TrimSpace(input.Subject)
	message := strings.TrimSpace(input.Message)

	if err := requireBounded("name", name, maxNameLength); err != nil {
		return nil, err
	}
	if err := requireBounded("email", email, maxEmailLength); err != nil {
		return nil, err
	}
	if !strings.Contains(email, "@") {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email is not a valid address")
	}
	if err := requireBounded("subject", subject, maxSubjectLength); err != nil {
		return nil, err
	}
	if err := requireBounded("message", message, maxMessageLength); err != nil {
		return nil, err
	}

	return &models.ContactMessage{
		ID:      uuid.New(),
		Name:    name,
		Email:   email,
		Subject: subject,
		Message: message,
	}, nil
}

func requireBounded(field, value string, max int) error {
	if value == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, field+" is required")
	}
	if len(value) > max {
		return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("%s must be at most %d characters", field, max))
	}
	return nil
}
