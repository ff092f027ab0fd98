package controllers

import (
	"net/http"

	"github.com/trinitymugbe/localmart-backend/api/responses"
	"github.com/trinitymugbe/localmart-backend/api/validators"
	"github.com/trinitymugbe/localmart-backend/internal/newsletter"
	pkgerrors "github.com/trinitymugbe/localmart-backend/pkg/errors"
	"github.com/trinitymugbe/localmart-backend/pkg/logger"
)

type subscribeRequest struct {
	Email string `json:"email" validate:"required,email,max=254"`
}

// SubscribeNewsletter stores a subscriber email. A repeat subscription maps
// to a conflict.
func SubscribeNewsletter(svc newsletter.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "newsletter service unavailable"))
			return
		}

		var payload subscribeRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		sub, err := svc.Subscribe(r.Context(), payload.Email)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, sub)
	}
}

// AdminListNewsletters returns every subscriber, newest first.
func AdminListNewsletters(svc newsletter.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "newsletter service unavailable"))
			return
		}

		subs, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, subs)
	}
}
