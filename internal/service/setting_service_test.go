package service

import (
	"fmt"
	"strings"
	"testing"

	"github.com/lumapos/internal/constants"
	"github.com/lumapos/internal/models"
	"github.com/lumapos/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupSettingServiceTest(t *testing.T) (*SettingService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Setting{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return NewSettingService(repository.NewSettingRepository(db)), db
}

func TestGetStoreConfigDefaultsWhenMissing(t *testing.T) {
	svc, _ := setupSettingServiceTest(t)

	config, err := svc.GetStoreConfig()
	if err != nil {
		t.Fatalf("get store config failed: %v", err)
	}
	if config.Currency != constants.StoreCurrencyDefault {
		t.Fatalf("currency want %s got %s", constants.StoreCurrencyDefault, config.Currency)
	}
	if config.InvoicePrefix != constants.InvoicePrefixDefault {
		t.Fatalf("invoice prefix want %s got %s", constants.InvoicePrefixDefault, config.InvoicePrefix)
	}
	if config.InvoiceCounter != constants.InvoiceCounterDefault {
		t.Fatalf("invoice counter want %d got %d", constants.InvoiceCounterDefault, config.InvoiceCounter)
	}
	if !config.TaxRatePercent.IsZero() {
		t.Fatalf("tax rate want 0 got %s", config.TaxRatePercent)
	}
}

func TestEnsureStoreConfigDoesNotOverwrite(t *testing.T) {
	svc, _ := setupSettingServiceTest(t)

	if err := svc.EnsureStoreConfig(StoreConfig{StoreName: "Luma Grocery", TaxRatePercent: decimal.NewFromInt(8)}); err != nil {
		t.Fatalf("ensure store config failed: %v", err)
	}
	if err := svc.EnsureStoreConfig(StoreConfig{StoreName: "Other Shop"}); err != nil {
		t.Fatalf("second ensure failed: %v", err)
	}

	config, err := svc.GetStoreConfig()
	if err != nil {
		t.Fatalf("get store config failed: %v", err)
	}
	if config.StoreName != "Luma Grocery" {
		t.Fatalf("ensure should keep existing config, got store name %q", config.StoreName)
	}
	if config.TaxRatePercent.String() != "8" {
		t.Fatalf("tax rate want 8 got %s", config.TaxRatePercent)
	}
}

func TestUpdateStoreConfigCounterMonotonic(t *testing.T) {
	svc, _ := setupSettingServiceTest(t)

	if _, err := svc.UpdateStoreConfig(StoreConfig{StoreName: "Luma", InvoiceCounter: 5000}); err != nil {
		t.Fatalf("update store config failed: %v", err)
	}
	updated, err := svc.UpdateStoreConfig(StoreConfig{StoreName: "Luma", InvoiceCounter: 100})
	if err != nil {
		t.Fatalf("second update failed: %v", err)
	}
	if updated.InvoiceCounter != 5000 {
		t.Fatalf("counter must not decrease, want 5000 got %d", updated.InvoiceCounter)
	}
	if updated.Currency != constants.StoreCurrencyDefault {
		t.Fatalf("blank currency should keep current, got %q", updated.Currency)
	}
}

func TestReserveInvoiceNumberAdvancesCounter(t *testing.T) {
	svc, db := setupSettingServiceTest(t)

	var first, second string
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		if first, err = svc.ReserveInvoiceNumber(tx); err != nil {
			return err
		}
		second, err = svc.ReserveInvoiceNumber(tx)
		return err
	})
	if err != nil {
		t.Fatalf("reserve invoice numbers failed: %v", err)
	}
	if first != "INV-001001" {
		t.Fatalf("first invoice want INV-001001 got %s", first)
	}
	if second != "INV-001002" {
		t.Fatalf("second invoice want INV-001002 got %s", second)
	}

	config, err := svc.GetStoreConfig()
	if err != nil {
		t.Fatalf("get store config failed: %v", err)
	}
	if config.InvoiceCounter != constants.InvoiceCounterDefault+2 {
		t.Fatalf("counter want %d got %d", constants.InvoiceCounterDefault+2, config.InvoiceCounter)
	}
}

func TestReserveInvoiceNumberRollsBackWithTransaction(t *testing.T) {
	svc, db := setupSettingServiceTest(t)

	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := svc.ReserveInvoiceNumber(tx); err != nil {
			return err
		}
		return gorm.ErrInvalidData
	})
	if err == nil {
		t.Fatalf("transaction should fail")
	}

	config, err := svc.GetStoreConfig()
	if err != nil {
		t.Fatalf("get store config failed: %v", err)
	}
	if config.InvoiceCounter != constants.InvoiceCounterDefault {
		t.Fatalf("rolled back counter want %d got %d", constants.InvoiceCounterDefault, config.InvoiceCounter)
	}
}
