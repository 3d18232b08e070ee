package repository

import (
	"fmt"
	"strings"
	"testing"

	"github.com/lumapos/internal/constants"
	"github.com/lumapos/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupDiscountRepositoryTest(t *testing.T) (*GormDiscountRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Discount{}, &models.DiscountCondition{}); err != nil {
		t.Fatalf("migrate discount failed: %v", err)
	}
	return NewDiscountRepository(db), db
}

func TestDiscountCreatePreloadsConditions(t *testing.T) {
	repo, _ := setupDiscountRepositoryTest(t)

	discount := &models.Discount{
		Name:     "weekend percentage",
		Type:     constants.DiscountTypePercentage,
		Value:    models.NewMoneyFromDecimal(decimal.NewFromInt(10)),
		IsActive: true,
		Conditions: []models.DiscountCondition{
			{
				Type:      constants.ConditionTypeMinAmount,
				MinAmount: models.NewMoneyFromDecimal(decimal.NewFromInt(500)),
			},
			{
				Type:          constants.ConditionTypePaymentMethod,
				PaymentMethod: constants.PaymentMethodCard,
			},
		},
	}
	if err := repo.Create(discount); err != nil {
		t.Fatalf("create discount failed: %v", err)
	}

	loaded, err := repo.GetByID(discount.ID)
	if err != nil {
		t.Fatalf("get discount failed: %v", err)
	}
	if loaded == nil {
		t.Fatalf("discount not found after create")
	}
	if len(loaded.Conditions) != 2 {
		t.Fatalf("conditions want 2 got %d", len(loaded.Conditions))
	}
	for _, condition := range loaded.Conditions {
		if condition.DiscountID != discount.ID {
			t.Fatalf("condition discount_id want %d got %d", discount.ID, condition.DiscountID)
		}
	}
}

func TestDiscountReplaceConditions(t *testing.T) {
	repo, _ := setupDiscountRepositoryTest(t)

	discount := &models.Discount{
		Name:     "tier fixed",
		Type:     constants.DiscountTypeFixed,
		Value:    models.NewMoneyFromDecimal(decimal.NewFromInt(50)),
		IsActive: true,
		Conditions: []models.DiscountCondition{
			{Type: constants.ConditionTypeCustomerTier, CustomerTier: constants.PriceTierVIP},
		},
	}
	if err := repo.Create(discount); err != nil {
		t.Fatalf("create discount failed: %v", err)
	}

	replacement := []models.DiscountCondition{
		{Type: constants.ConditionTypeCustomerTier, CustomerTier: constants.PriceTierWholesale},
		{Type: constants.ConditionTypeMinAmount, MinAmount: models.NewMoneyFromDecimal(decimal.NewFromInt(1000))},
	}
	if err := repo.ReplaceConditions(discount.ID, replacement); err != nil {
		t.Fatalf("replace conditions failed: %v", err)
	}

	loaded, err := repo.GetByID(discount.ID)
	if err != nil {
		t.Fatalf("get discount failed: %v", err)
	}
	if len(loaded.Conditions) != 2 {
		t.Fatalf("conditions want 2 got %d", len(loaded.Conditions))
	}
	tiers := 0
	for _, condition := range loaded.Conditions {
		if condition.Type == constants.ConditionTypeCustomerTier {
			tiers++
			if condition.CustomerTier != constants.PriceTierWholesale {
				t.Fatalf("customer tier want wholesale got %s", condition.CustomerTier)
			}
		}
	}
	if tiers != 1 {
		t.Fatalf("tier conditions want 1 got %d", tiers)
	}
}

func TestDiscountListActiveSkipsDisabled(t *testing.T) {
	repo, _ := setupDiscountRepositoryTest(t)

	active := &models.Discount{
		Name:     "list-active-on",
		Type:     constants.DiscountTypePercentage,
		Value:    models.NewMoneyFromDecimal(decimal.NewFromInt(5)),
		IsActive: true,
	}
	disabled := &models.Discount{
		Name:     "list-active-off",
		Type:     constants.DiscountTypePercentage,
		Value:    models.NewMoneyFromDecimal(decimal.NewFromInt(5)),
		IsActive: false,
	}
	if err := repo.Create(active); err != nil {
		t.Fatalf("create active discount failed: %v", err)
	}
	if err := repo.Create(disabled); err != nil {
		t.Fatalf("create disabled discount failed: %v", err)
	}

	stored, err := repo.GetByID(disabled.ID)
	if err != nil {
		t.Fatalf("reload disabled discount failed: %v", err)
	}
	if stored.IsActive {
		t.Fatalf("IsActive=false must survive create")
	}

	discounts, err := repo.ListActive()
	if err != nil {
		t.Fatalf("list active failed: %v", err)
	}
	for _, discount := range discounts {
		if discount.ID == disabled.ID {
			t.Fatalf("disabled discount leaked into active list")
		}
	}
	found := false
	for _, discount := range discounts {
		if discount.ID == active.ID {
			found = true
		}
	}
	if !found {
		t.Fatalf("active discount missing from active list")
	}
}
