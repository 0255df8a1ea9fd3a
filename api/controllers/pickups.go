package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/recellhq/recell-backend/api/middleware"
	"github.com/recellhq/recell-backend/api/responses"
	"github.com/recellhq/recell-backend/api/validators"
	"github.com/recellhq/recell-backend/internal/pickups"
	"github.com/recellhq/recell-backend/internal/valuation"
	"github.com/recellhq/recell-backend/pkg/enums"
	pkgerrors "github.com/recellhq/recell-backend/pkg/errors"
	"github.com/recellhq/recell-backend/pkg/logger"
	"github.com/recellhq/recell-backend/pkg/pagination"
)

type quoteRequest struct {
	VariantID        string                      `json:"variant_id" validate:"required,uuid"`
	AgeBracket       string                      `json:"age_bracket" validate:"required"`
	ConditionTier    *string                     `json:"condition_tier,omitempty" validate:"omitempty,oneof=good average below_average"`
	ConditionSignals *valuation.ConditionSignals `json:"condition_signals,omitempty"`
	Accessories      valuation.Accessories       `json:"accessories"`
}

func (req quoteRequest) toInput() (pickups.QuoteInput, error) {
	variantID, err := uuid.Parse(req.VariantID)
	if err != nil {
		return pickups.QuoteInput{}, pkgerrors.New(pkgerrors.CodeValidation, "variant_id must be a uuid")
	}

	input := pickups.QuoteInput{
		VariantID:   variantID,
		AgeBracket:  enums.AgeBracket(req.AgeBracket),
		Signals:     req.ConditionSignals,
		Accessories: req.Accessories,
	}
	if req.ConditionTier != nil {
		tier := enums.ConditionTier(*req.ConditionTier)
		input.Tier = &tier
	}
	return input, nil
}

type submitRequest struct {
	quoteRequest

	CustomerName  string     `json:"customer_name" validate:"required,min=2,max=120"`
	Phone         string     `json:"phone" validate:"required,min=8,max=20"`
	Address       string     `json:"address" validate:"required,min=5,max=500"`
	City          string     `json:"city" validate:"required,min=2,max=80"`
	PreferredDate *time.Time `json:"preferred_date,omitempty"`
}

type statusUpdateRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed picked_up cancelled"`
}

// QuotePickup computes a valuation without persisting anything.
func QuotePickup(svc pickups.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req quoteRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		input, err := req.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		quote, err := svc.Quote(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, quote)
	}
}

// SubmitPickup accepts a customer submission and freezes the quoted price.
func SubmitPickup(svc pickups.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req submitRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		quoteInput, err := req.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		created, err := svc.Submit(r.Context(), pickups.SubmitInput{
			QuoteInput:    quoteInput,
			CustomerName:  req.CustomerName,
			Phone:         req.Phone,
			Address:       req.Address,
			City:          req.City,
			PreferredDate: req.PreferredDate,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, created)
	}
}

// ListPickups returns one admin page of pickup requests.
func ListPickups(svc pickups.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := pickups.ListInput{
			Pagination: pagination.Params{
				Limit:  limit,
				Cursor: strings.TrimSpace(r.URL.Query().Get("cursor")),
			},
			Filter: pickups.ListFilter{
				Phone: strings.TrimSpace(r.URL.Query().Get("phone")),
				City:  strings.TrimSpace(r.URL.Query().Get("city")),
			},
		}
		if raw := strings.TrimSpace(r.URL.Query().Get("status")); raw != "" {
			status, parseErr := enums.ParsePickupStatus(raw)
			if parseErr != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "invalid status filter"))
				return
			}
			input.Filter.Status = &status
		}

		page, err := svc.List(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, page)
	}
}

// GetPickup returns one pickup request by id.
func GetPickup(svc pickups.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseUUIDParam(r, "pickupID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		request, err := svc.GetByID(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, request)
	}
}

// UpdatePickupStatus applies a lifecycle transition on behalf of the
// authenticated admin.
func UpdatePickupStatus(svc pickups.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseUUIDParam(r, "pickupID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var req statusUpdateRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		actorID, err := adminActorID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		updated, err := svc.UpdateStatus(r.Context(), actorID, id, enums.PickupStatus(req.Status))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, updated)
	}
}

func adminActorID(r *http.Request) (uuid.UUID, error) {
	raw := middleware.AdminIDFromContext(r.Context())
	if raw == "" {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "not authenticated")
	}
	actorID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "not authenticated")
	}
	return actorID, nil
}
