package pricing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/recellhq/recell-backend/pkg/db/models"
)

// RecordDTO is the admin-facing pricing record representation. Nil override
// fields mean the global default applies.
type RecordDTO struct {
	ID        uuid.UUID       `json:"id"`
	VariantID uuid.UUID       `json:"variant_id"`
	BasePrice decimal.Decimal `json:"base_price"`

	Price0To3   decimal.Decimal `json:"price_0_3"`
	Price3To6   decimal.Decimal `json:"price_3_6"`
	Price6To11  decimal.Decimal `json:"price_6_11"`
	Price12Plus decimal.Decimal `json:"price_12_plus"`

	ChargerDeduction *decimal.Decimal `json:"charger_deduction"`
	BoxDeduction     *decimal.Decimal `json:"box_deduction"`
	BillDeduction    *decimal.Decimal `json:"bill_deduction"`

	GoodPct         *decimal.Decimal `json:"good_pct"`
	AveragePct      *decimal.Decimal `json:"average_pct"`
	BelowAveragePct *decimal.Decimal `json:"below_average_pct"`

	UpdatedAt time.Time `json:"updated_at"`
}

// NewRecordDTO maps a pricing record model to its DTO.
func NewRecordDTO(record *models.PricingRecord) *RecordDTO {
	return &RecordDTO{
		ID:               record.ID,
		VariantID:        record.VariantID,
		BasePrice:        record.BasePrice,
		Price0To3:        record.Price0To3,
		Price3To6:        record.Price3To6,
		Price6To11:       record.Price6To11,
		Price12Plus:      record.Price12Plus,
		ChargerDeduction: record.ChargerDeduction,
		BoxDeduction:     record.BoxDeduction,
		BillDeduction:    record.BillDeduction,
		GoodPct:          record.GoodPct,
		AveragePct:       record.AveragePct,
		BelowAveragePct:  record.BelowAveragePct,
		UpdatedAt:        record.UpdatedAt,
	}
}
