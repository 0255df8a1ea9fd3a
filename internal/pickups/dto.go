package pickups

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/recellhq/recell-backend/pkg/db/models"
	"github.com/recellhq/recell-backend/pkg/enums"
)

// RequestDTO is the pickup request representation returned to callers. The
// price fields reflect the breakdown frozen at submission.
type RequestDTO struct {
	ID        uuid.UUID `json:"id"`
	VariantID uuid.UUID `json:"variant_id"`

	CustomerName  string     `json:"customer_name"`
	Phone         string     `json:"phone"`
	Address       string     `json:"address"`
	City          string     `json:"city"`
	PreferredDate *time.Time `json:"preferred_date,omitempty"`

	AgeBracket       enums.AgeBracket    `json:"age_bracket"`
	ConditionTier    enums.ConditionTier `json:"condition_tier"`
	ConditionSignals json.RawMessage     `json:"condition_signals,omitempty"`

	HasCharger bool `json:"has_charger"`
	HasBox     bool `json:"has_box"`
	HasBill    bool `json:"has_bill"`

	AgeAdjustedPrice   decimal.Decimal `json:"age_adjusted_price"`
	ConditionDeduction decimal.Decimal `json:"condition_deduction"`
	AccessoryDeduction decimal.Decimal `json:"accessory_deduction"`
	FinalPrice         decimal.Decimal `json:"final_price"`

	Status    enums.PickupStatus `json:"status"`
	CreatedAt time.Time          `json:"created_at"`
}

// NewRequestDTO maps a pickup request model to its DTO.
func NewRequestDTO(request *models.PickupRequest) *RequestDTO {
	return &RequestDTO{
		ID:                 request.ID,
		VariantID:          request.VariantID,
		CustomerName:       request.CustomerName,
		Phone:              request.Phone,
		Address:            request.Address,
		City:               request.City,
		PreferredDate:      request.PreferredDate,
		AgeBracket:         request.AgeBracket,
		ConditionTier:      request.ConditionTier,
		ConditionSignals:   request.ConditionSignals,
		HasCharger:         request.HasCharger,
		HasBox:             request.HasBox,
		HasBill:            request.HasBill,
		AgeAdjustedPrice:   request.AgeAdjustedPrice,
		ConditionDeduction: request.ConditionDeduction,
		AccessoryDeduction: request.AccessoryDeduction,
		FinalPrice:         request.FinalPrice,
		Status:             request.Status,
		CreatedAt:          request.CreatedAt,
	}
}
