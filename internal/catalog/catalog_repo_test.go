package catalog

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/recellhq/recell-backend/pkg/db/models"
)

func mustCreateTestBrand(t *testing.T, tx *gorm.DB) *models.Brand {
	t.Helper()
	brand := &models.Brand{
		ID:       uuid.New(),
		Name:     fmt.Sprintf("Brand %s", uuid.NewString()),
		Slug:     fmt.Sprintf("brand-%s", uuid.NewString()),
		IsActive: true,
	}
	if err := tx.Create(brand).Error; err != nil {
		t.Fatalf("create brand: %v", err)
	}
	return brand
}

func mustCreateTestDevice(t *testing.T, tx *gorm.DB, brandID uuid.UUID) *models.Device {
	t.Helper()
	device := &models.Device{
		ID:       uuid.New(),
		BrandID:  brandID,
		Name:     "Test Device",
		Slug:     fmt.Sprintf("device-%s", uuid.NewString()),
		IsActive: true,
	}
	if err := tx.Create(device).Error; err != nil {
		t.Fatalf("create device: %v", err)
	}
	return device
}

func mustCreateTestVariant(t *testing.T, tx *gorm.DB, deviceID uuid.UUID, storageGB int) *models.DeviceVariant {
	t.Helper()
	variant := &models.DeviceVariant{
		ID:        uuid.New(),
		DeviceID:  deviceID,
		Label:     fmt.Sprintf("%dGB", storageGB),
		StorageGB: storageGB,
		IsActive:  true,
	}
	if err := tx.Create(variant).Error; err != nil {
		t.Fatalf("create variant: %v", err)
	}
	return variant
}

func mustCreateTestPricing(t *testing.T, tx *gorm.DB, variantID uuid.UUID) *models.PricingRecord {
	t.Helper()
	record := &models.PricingRecord{
		ID:          uuid.New(),
		VariantID:   variantID,
		BasePrice:   decimal.NewFromInt(12000),
		Price0To3:   decimal.NewFromInt(10000),
		Price3To6:   decimal.NewFromInt(8000),
		Price6To11:  decimal.NewFromInt(6000),
		Price12Plus: decimal.NewFromInt(4000),
	}
	if err := tx.Create(record).Error; err != nil {
		t.Fatalf("create pricing record: %v", err)
	}
	return record
}

func TestRepositoryCatalogFlow(t *testing.T) {
	conn := openTestDB(t)
	tx := conn.Begin()
	if tx.Error != nil {
		t.Fatalf("begin tx: %v", tx.Error)
	}
	t.Cleanup(func() {
		_ = tx.Rollback()
	})

	repo := NewRepository(tx)
	ctx := context.Background()

	brand := mustCreateTestBrand(t, tx)
	device := mustCreateTestDevice(t, tx, brand.ID)
	big := mustCreateTestVariant(t, tx, device.ID, 256)
	small := mustCreateTestVariant(t, tx, device.ID, 64)
	pricing := mustCreateTestPricing(t, tx, small.ID)

	devices, err := repo.ListDevicesByBrand(ctx, brand.ID)
	if err != nil {
		t.Fatalf("list devices: %v", err)
	}
	if len(devices) != 1 || devices[0].ID != device.ID {
		t.Fatalf("expected one device %s, got %v", device.ID, devices)
	}

	variants, err := repo.ListVariantsByDevice(ctx, device.ID)
	if err != nil {
		t.Fatalf("list variants: %v", err)
	}
	if len(variants) != 2 {
		t.Fatalf("expected two variants, got %d", len(variants))
	}
	if variants[0].ID != small.ID || variants[1].ID != big.ID {
		t.Fatal("expected variants ordered by storage size")
	}

	record, err := repo.FindPricingByVariantID(ctx, small.ID)
	if err != nil {
		t.Fatalf("find pricing: %v", err)
	}
	if record.ID != pricing.ID {
		t.Fatalf("expected pricing %s, got %s", pricing.ID, record.ID)
	}
	if !record.Price0To3.Equal(decimal.NewFromInt(10000)) {
		t.Fatalf("expected price 10000, got %s", record.Price0To3)
	}
}

func TestRepositoryListVariantsSkipsInactive(t *testing.T) {
	conn := openTestDB(t)
	tx := conn.Begin()
	if tx.Error != nil {
		t.Fatalf("begin tx: %v", tx.Error)
	}
	t.Cleanup(func() {
		_ = tx.Rollback()
	})

	repo := NewRepository(tx)
	ctx := context.Background()

	brand := mustCreateTestBrand(t, tx)
	device := mustCreateTestDevice(t, tx, brand.ID)
	active := mustCreateTestVariant(t, tx, device.ID, 128)

	retired := mustCreateTestVariant(t, tx, device.ID, 512)
	if err := tx.Model(retired).Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate variant: %v", err)
	}

	variants, err := repo.ListVariantsByDevice(ctx, device.ID)
	if err != nil {
		t.Fatalf("list variants: %v", err)
	}
	if len(variants) != 1 || variants[0].ID != active.ID {
		t.Fatalf("expected only the active variant, got %d", len(variants))
	}
}
