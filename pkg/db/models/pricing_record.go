package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PricingRecord holds the payout parameters for one catalog variant. The four
// age-tier prices are always present; deduction overrides are nullable and fall
// back to global defaults during catalog resolution. Deduction fields are
// mutated only through the pricing admin service.
type PricingRecord struct {
	ID        uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	VariantID uuid.UUID       `gorm:"column:variant_id;type:uuid;not null;uniqueIndex"`
	BasePrice decimal.Decimal `gorm:"column:base_price;type:numeric(12,2);not null"`

	Price0To3   decimal.Decimal `gorm:"column:price_0_3;type:numeric(12,2);not null"`
	Price3To6   decimal.Decimal `gorm:"column:price_3_6;type:numeric(12,2);not null"`
	Price6To11  decimal.Decimal `gorm:"column:price_6_11;type:numeric(12,2);not null"`
	Price12Plus decimal.Decimal `gorm:"column:price_12_plus;type:numeric(12,2);not null"`

	ChargerDeduction *decimal.Decimal `gorm:"column:charger_deduction;type:numeric(12,2)"`
	BoxDeduction     *decimal.Decimal `gorm:"column:box_deduction;type:numeric(12,2)"`
	BillDeduction    *decimal.Decimal `gorm:"column:bill_deduction;type:numeric(12,2)"`

	GoodPct         *decimal.Decimal `gorm:"column:good_pct;type:numeric(5,2)"`
	AveragePct      *decimal.Decimal `gorm:"column:average_pct;type:numeric(5,2)"`
	BelowAveragePct *decimal.Decimal `gorm:"column:below_average_pct;type:numeric(5,2)"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
