package pricing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/recellhq/recell-backend/internal/audit"
	"github.com/recellhq/recell-backend/pkg/db"
	"github.com/recellhq/recell-backend/pkg/db/models"
	"github.com/recellhq/recell-backend/pkg/enums"
	pkgerrors "github.com/recellhq/recell-backend/pkg/errors"
	"github.com/recellhq/recell-backend/pkg/logger"
)

const entityTable = "pricing_records"

var maxPct = decimal.NewFromInt(100)

// Service exposes audited pricing parameter management.
type Service interface {
	GetByVariant(ctx context.Context, variantID uuid.UUID) (*RecordDTO, error)
	UpdateDeductionParams(ctx context.Context, actorID, variantID uuid.UUID, input UpdateDeductionParamsInput) (*UpdateResult, error)
}

// UpdateDeductionParamsInput holds optional new parameter values. Nil fields
// are left untouched; a non-nil field replaces the stored value even when it
// clears an override back to a previous number. The base price is set at
// record creation and cannot be changed here.
type UpdateDeductionParamsInput struct {
	Price0To3   *decimal.Decimal
	Price3To6   *decimal.Decimal
	Price6To11  *decimal.Decimal
	Price12Plus *decimal.Decimal

	ChargerDeduction *decimal.Decimal
	BoxDeduction     *decimal.Decimal
	BillDeduction    *decimal.Decimal

	GoodPct         *decimal.Decimal
	AveragePct      *decimal.Decimal
	BelowAveragePct *decimal.Decimal
}

// UpdateResult carries the stored record plus non-fatal warnings raised during
// the write.
type UpdateResult struct {
	Record   *RecordDTO `json:"record"`
	Warnings []string   `json:"warnings,omitempty"`
}

// service implements the pricing admin service.
type service struct {
	repo     Repository
	auditSvc audit.Service
	dbClient *db.Client
	logg     *logger.Logger
}

// NewService constructs a pricing admin service instance.
func NewService(repo Repository, auditSvc audit.Service, dbClient *db.Client, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("pricing repository required")
	}
	if auditSvc == nil {
		return nil, fmt.Errorf("audit service required")
	}
	if dbClient == nil {
		return nil, fmt.Errorf("db client required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{repo: repo, auditSvc: auditSvc, dbClient: dbClient, logg: logg}, nil
}

func (s *service) GetByVariant(ctx context.Context, variantID uuid.UUID) (*RecordDTO, error) {
	if _, err := s.repo.FindVariantByID(ctx, variantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "variant not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load variant")
	}
	record, err := s.repo.FindByVariantID(ctx, variantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "pricing not configured for variant")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load pricing record")
	}
	return NewRecordDTO(record), nil
}

// UpdateDeductionParams validates and applies a parameter change atomically.
// Validation failures leave the record untouched and produce no audit entry;
// the audit write joins the same transaction as the update, so a successful
// call yields exactly one audit record.
func (s *service) UpdateDeductionParams(ctx context.Context, actorID, variantID uuid.UUID, input UpdateDeductionParamsInput) (*UpdateResult, error) {
	if variantID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "variant id is required")
	}
	if details := validateInput(input); len(details) > 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid pricing parameters").WithDetails(details)
	}

	if _, err := s.repo.FindVariantByID(ctx, variantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "variant not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load variant")
	}

	var result *UpdateResult
	if err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)

		record, err := txRepo.FindByVariantIDForUpdate(ctx, variantID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "pricing not configured for variant")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: lock pricing record")
		}

		before, after := applyChanges(record, input)
		if len(after) == 0 {
			return pkgerrors.New(pkgerrors.CodeValidation, "no pricing fields changed")
		}

		if err := txRepo.Save(ctx, record); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: save pricing record")
		}

		beforeJSON, err := json.Marshal(before)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "marshal audit before snapshot")
		}
		afterJSON, err := json.Marshal(after)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "marshal audit after snapshot")
		}

		actor := actorID
		if _, err := s.auditSvc.WithTx(tx).Record(ctx, audit.RecordInput{
			ActorID:     &actor,
			Action:      enums.AuditActionUpdate,
			EntityTable: entityTable,
			EntityID:    record.ID.String(),
			Before:      beforeJSON,
			After:       afterJSON,
		}); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: write audit record")
		}

		warnings := collectWarnings(record)
		for _, warning := range warnings {
			s.logg.Warn(s.logg.WithVariantID(ctx, variantID.String()), warning)
		}

		result = &UpdateResult{Record: NewRecordDTO(record), Warnings: warnings}
		return nil
	}); err != nil {
		if pkgerrors.As(err) != nil {
			return nil, err
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update pricing record")
	}

	return result, nil
}

// validateInput checks every supplied field before anything is written.
func validateInput(input UpdateDeductionParamsInput) map[string]string {
	details := map[string]string{}

	pcts := map[string]*decimal.Decimal{
		"good_pct":          input.GoodPct,
		"average_pct":       input.AveragePct,
		"below_average_pct": input.BelowAveragePct,
	}
	for field, value := range pcts {
		if value == nil {
			continue
		}
		if value.IsNegative() || value.GreaterThan(maxPct) {
			details[field] = "must be between 0 and 100"
		}
	}

	amounts := map[string]*decimal.Decimal{
		"price_0_3":         input.Price0To3,
		"price_3_6":         input.Price3To6,
		"price_6_11":        input.Price6To11,
		"price_12_plus":     input.Price12Plus,
		"charger_deduction": input.ChargerDeduction,
		"box_deduction":     input.BoxDeduction,
		"bill_deduction":    input.BillDeduction,
	}
	for field, value := range amounts {
		if value == nil {
			continue
		}
		if value.IsNegative() {
			details[field] = "must not be negative"
		}
	}

	return details
}

// applyChanges mutates the record in place and returns before/after snapshots
// containing only the fields whose stored value actually changed.
func applyChanges(record *models.PricingRecord, input UpdateDeductionParamsInput) (map[string]any, map[string]any) {
	before := map[string]any{}
	after := map[string]any{}

	setRequired := func(field string, target *decimal.Decimal, value *decimal.Decimal) {
		if value == nil || target.Equal(*value) {
			return
		}
		before[field] = target.String()
		after[field] = value.String()
		*target = *value
	}
	setOptional := func(field string, target **decimal.Decimal, value *decimal.Decimal) {
		if value == nil {
			return
		}
		if *target != nil && (*target).Equal(*value) {
			return
		}
		if *target == nil {
			before[field] = nil
		} else {
			before[field] = (*target).String()
		}
		after[field] = value.String()
		v := *value
		*target = &v
	}

	setRequired("price_0_3", &record.Price0To3, input.Price0To3)
	setRequired("price_3_6", &record.Price3To6, input.Price3To6)
	setRequired("price_6_11", &record.Price6To11, input.Price6To11)
	setRequired("price_12_plus", &record.Price12Plus, input.Price12Plus)

	setOptional("charger_deduction", &record.ChargerDeduction, input.ChargerDeduction)
	setOptional("box_deduction", &record.BoxDeduction, input.BoxDeduction)
	setOptional("bill_deduction", &record.BillDeduction, input.BillDeduction)
	setOptional("good_pct", &record.GoodPct, input.GoodPct)
	setOptional("average_pct", &record.AveragePct, input.AveragePct)
	setOptional("below_average_pct", &record.BelowAveragePct, input.BelowAveragePct)

	return before, after
}

// collectWarnings flags stored price invariant violations without correcting
// them.
func collectWarnings(record *models.PricingRecord) []string {
	var warnings []string

	agePrices := []struct {
		field string
		value decimal.Decimal
	}{
		{"price_0_3", record.Price0To3},
		{"price_3_6", record.Price3To6},
		{"price_6_11", record.Price6To11},
		{"price_12_plus", record.Price12Plus},
	}

	for _, entry := range agePrices {
		if entry.value.GreaterThan(record.BasePrice) {
			warnings = append(warnings, fmt.Sprintf("%s exceeds base_price", entry.field))
		}
	}
	for i := 1; i < len(agePrices); i++ {
		if agePrices[i].value.GreaterThan(agePrices[i-1].value) {
			warnings = append(warnings, fmt.Sprintf("%s exceeds %s", agePrices[i].field, agePrices[i-1].field))
		}
	}

	return warnings
}
