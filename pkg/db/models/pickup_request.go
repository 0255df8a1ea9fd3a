package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/recellhq/recell-backend/pkg/enums"
)

// PickupRequest is a customer's submitted sellback. The valuation breakdown is
// frozen at submission time; later pricing edits never touch these columns.
type PickupRequest struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	VariantID uuid.UUID `gorm:"column:variant_id;type:uuid;not null;index"`

	CustomerName  string     `gorm:"column:customer_name;not null"`
	Phone         string     `gorm:"column:phone;not null;index"`
	Address       string     `gorm:"column:address;not null"`
	City          string     `gorm:"column:city;not null"`
	PreferredDate *time.Time `gorm:"column:preferred_date"`

	AgeBracket       enums.AgeBracket    `gorm:"column:age_bracket;not null"`
	ConditionTier    enums.ConditionTier `gorm:"column:condition_tier;not null"`
	ConditionSignals json.RawMessage     `gorm:"column:condition_signals;type:jsonb"`

	HasCharger bool `gorm:"column:has_charger;not null;default:false"`
	HasBox     bool `gorm:"column:has_box;not null;default:false"`
	HasBill    bool `gorm:"column:has_bill;not null;default:false"`

	AgeAdjustedPrice   decimal.Decimal `gorm:"column:age_adjusted_price;type:numeric(12,2);not null"`
	ConditionDeduction decimal.Decimal `gorm:"column:condition_deduction;type:numeric(12,2);not null"`
	AccessoryDeduction decimal.Decimal `gorm:"column:accessory_deduction;type:numeric(12,2);not null"`
	FinalPrice         decimal.Decimal `gorm:"column:final_price;type:numeric(12,2);not null"`

	Status    enums.PickupStatus `gorm:"column:status;not null;default:pending"`
	CreatedAt time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}
