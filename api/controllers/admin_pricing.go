package controllers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/recellhq/recell-backend/api/responses"
	"github.com/recellhq/recell-backend/api/validators"
	"github.com/recellhq/recell-backend/internal/pricing"
	"github.com/recellhq/recell-backend/pkg/logger"
	"github.com/recellhq/recell-backend/pkg/metrics"
)

type pricingUpdateRequest struct {
	Price0To3   *decimal.Decimal `json:"price_0_3,omitempty"`
	Price3To6   *decimal.Decimal `json:"price_3_6,omitempty"`
	Price6To11  *decimal.Decimal `json:"price_6_11,omitempty"`
	Price12Plus *decimal.Decimal `json:"price_12_plus,omitempty"`

	ChargerDeduction *decimal.Decimal `json:"charger_deduction,omitempty"`
	BoxDeduction     *decimal.Decimal `json:"box_deduction,omitempty"`
	BillDeduction    *decimal.Decimal `json:"bill_deduction,omitempty"`

	GoodPct         *decimal.Decimal `json:"good_pct,omitempty"`
	AveragePct      *decimal.Decimal `json:"average_pct,omitempty"`
	BelowAveragePct *decimal.Decimal `json:"below_average_pct,omitempty"`
}

// GetVariantPricing returns the stored pricing record for one variant.
func GetVariantPricing(svc pricing.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		variantID, err := validators.ParseUUIDParam(r, "variantID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		record, err := svc.GetByVariant(r.Context(), variantID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, record)
	}
}

// UpdateVariantPricing applies an audited pricing parameter change.
func UpdateVariantPricing(svc pricing.Service, valuationMetrics *metrics.ValuationMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		variantID, err := validators.ParseUUIDParam(r, "variantID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var req pricingUpdateRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		actorID, err := adminActorID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.UpdateDeductionParams(r.Context(), actorID, variantID, pricing.UpdateDeductionParamsInput{
			Price0To3:        req.Price0To3,
			Price3To6:        req.Price3To6,
			Price6To11:       req.Price6To11,
			Price12Plus:      req.Price12Plus,
			ChargerDeduction: req.ChargerDeduction,
			BoxDeduction:     req.BoxDeduction,
			BillDeduction:    req.BillDeduction,
			GoodPct:          req.GoodPct,
			AveragePct:       req.AveragePct,
			BelowAveragePct:  req.BelowAveragePct,
		})
		if err != nil {
			valuationMetrics.IncPricingUpdate("rejected")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		valuationMetrics.IncPricingUpdate("applied")
		responses.WriteSuccess(w, result)
	}
}
