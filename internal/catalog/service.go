package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/recellhq/recell-backend/internal/valuation"
	"github.com/recellhq/recell-backend/pkg/config"
	"github.com/recellhq/recell-backend/pkg/db/models"
	"github.com/recellhq/recell-backend/pkg/enums"
	pkgerrors "github.com/recellhq/recell-backend/pkg/errors"
)

// Service exposes catalog browsing and pricing resolution.
type Service interface {
	ListBrands(ctx context.Context) ([]BrandDTO, error)
	ListDevices(ctx context.Context, brandID uuid.UUID) ([]DeviceDTO, error)
	ListVariants(ctx context.Context, deviceID uuid.UUID) ([]VariantDTO, error)
	ListCities(ctx context.Context) ([]CityDTO, error)
	ResolvePricing(ctx context.Context, variantID uuid.UUID) (*valuation.PricingParams, error)
}

// service implements the catalog service.
type service struct {
	repo     *Repository
	defaults config.ValuationConfig
}

// NewService constructs a catalog service instance.
func NewService(repo *Repository, defaults config.ValuationConfig) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	return &service{repo: repo, defaults: defaults}, nil
}

func (s *service) ListBrands(ctx context.Context) ([]BrandDTO, error) {
	brands, err := s.repo.ListBrands(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list brands")
	}
	out := make([]BrandDTO, 0, len(brands))
	for i := range brands {
		out = append(out, NewBrandDTO(&brands[i]))
	}
	return out, nil
}

func (s *service) ListDevices(ctx context.Context, brandID uuid.UUID) ([]DeviceDTO, error) {
	devices, err := s.repo.ListDevicesByBrand(ctx, brandID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list devices")
	}
	out := make([]DeviceDTO, 0, len(devices))
	for i := range devices {
		out = append(out, NewDeviceDTO(&devices[i]))
	}
	return out, nil
}

func (s *service) ListVariants(ctx context.Context, deviceID uuid.UUID) ([]VariantDTO, error) {
	variants, err := s.repo.ListVariantsByDevice(ctx, deviceID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list variants")
	}
	out := make([]VariantDTO, 0, len(variants))
	for i := range variants {
		out = append(out, NewVariantDTO(&variants[i]))
	}
	return out, nil
}

func (s *service) ListCities(ctx context.Context) ([]CityDTO, error) {
	cities, err := s.repo.ListCities(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list cities")
	}
	out := make([]CityDTO, 0, len(cities))
	for i := range cities {
		out = append(out, NewCityDTO(&cities[i]))
	}
	return out, nil
}

// ResolvePricing loads a variant's pricing record and fills every unset
// deduction override with the global default, so callers always receive a
// complete parameter set. Reads take no locks; writes go through the pricing
// admin service only.
func (s *service) ResolvePricing(ctx context.Context, variantID uuid.UUID) (*valuation.PricingParams, error) {
	variant, err := s.repo.FindVariantByID(ctx, variantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "variant not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load variant")
	}
	if !variant.IsActive {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "variant not found")
	}

	record, err := s.repo.FindPricingByVariantID(ctx, variantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "pricing not configured for variant")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load pricing record")
	}

	return s.resolveParams(record), nil
}

func (s *service) resolveParams(record *models.PricingRecord) *valuation.PricingParams {
	return &valuation.PricingParams{
		AgePrices: map[enums.AgeBracket]decimal.Decimal{
			enums.AgeBracket0To3:   record.Price0To3,
			enums.AgeBracket3To6:   record.Price3To6,
			enums.AgeBracket6To11:  record.Price6To11,
			enums.AgeBracket12Plus: record.Price12Plus,
		},
		TierPcts: map[enums.ConditionTier]decimal.Decimal{
			enums.ConditionTierGood:         orDefault(record.GoodPct, s.defaults.DefaultGoodPct),
			enums.ConditionTierAverage:      orDefault(record.AveragePct, s.defaults.DefaultAveragePct),
			enums.ConditionTierBelowAverage: orDefault(record.BelowAveragePct, s.defaults.DefaultBelowAveragePct),
		},
		ChargerDeduction: orDefault(record.ChargerDeduction, s.defaults.DefaultChargerDeduction),
		BoxDeduction:     orDefault(record.BoxDeduction, s.defaults.DefaultBoxDeduction),
		BillDeduction:    orDefault(record.BillDeduction, s.defaults.DefaultBillDeduction),
	}
}

func orDefault(override *decimal.Decimal, fallback int64) decimal.Decimal {
	if override != nil {
		return *override
	}
	return decimal.NewFromInt(fallback)
}
