package service

import (
	"errors"
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

func setupCartServiceTest(t *testing.T) (*CartService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return NewCartService(repository.NewProductRepository(db)), db
}

func createCartProduct(t *testing.T, db *gorm.DB, product *models.Product) {
	t.Helper()
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
}

func TestBuildCartQuantityPricing(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := models.Product{Name: "tea", SKU: "TEA", IsActive: true, PriceAmount: moneyFromInt(450)}
	createCartProduct(t, db, &product)

	cart, err := svc.BuildCart([]CartLineInput{{ProductID: product.ID, Quantity: 3}})
	if err != nil {
		t.Fatalf("build cart failed: %v", err)
	}
	if len(cart.Lines) != 1 {
		t.Fatalf("lines want 1 got %d", len(cart.Lines))
	}
	if cart.Lines[0].Gross.String() != "1350.00" {
		t.Fatalf("gross want 1350.00 got %s", cart.Lines[0].Gross)
	}
	if cart.Subtotal.String() != "1350.00" {
		t.Fatalf("subtotal want 1350.00 got %s", cart.Subtotal)
	}
}

func TestBuildCartWeightPricing(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := models.Product{
		Name:          "tomatoes",
		SKU:           "TOM",
		IsActive:      true,
		IsWeightBased: true,
		PricePerUnit:  moneyFromInt(390),
	}
	createCartProduct(t, db, &product)

	cart, err := svc.BuildCart([]CartLineInput{{
		ProductID: product.ID,
		Weight:    decimal.RequireFromString("2.5"),
	}})
	if err != nil {
		t.Fatalf("build cart failed: %v", err)
	}
	line := cart.Lines[0]
	if line.UnitPrice.String() != "390.00" {
		t.Fatalf("unit price want 390.00 got %s", line.UnitPrice)
	}
	if line.Gross.String() != "975.00" {
		t.Fatalf("gross want 975.00 got %s", line.Gross)
	}
}

func TestBuildCartManualDiscounts(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := models.Product{Name: "rice", SKU: "RICE", IsActive: true, PriceAmount: moneyFromInt(1000)}
	createCartProduct(t, db, &product)

	cart, err := svc.BuildCart([]CartLineInput{
		{
			ProductID:          product.ID,
			Quantity:           1,
			ManualDiscount:     moneyFromInt(10),
			ManualDiscountType: constants.ManualDiscountPercentage,
		},
		{
			ProductID:          product.ID,
			Quantity:           1,
			ManualDiscount:     moneyFromInt(250),
			ManualDiscountType: constants.ManualDiscountFixed,
		},
	})
	if err != nil {
		t.Fatalf("build cart failed: %v", err)
	}
	if cart.Lines[0].ManualDiscount.String() != "100.00" {
		t.Fatalf("percentage discount want 100.00 got %s", cart.Lines[0].ManualDiscount)
	}
	if cart.Lines[1].ManualDiscount.String() != "250.00" {
		t.Fatalf("fixed discount want 250.00 got %s", cart.Lines[1].ManualDiscount)
	}
	if cart.ManualDiscount.String() != "350.00" {
		t.Fatalf("cart manual discount want 350.00 got %s", cart.ManualDiscount)
	}
	if cart.Subtotal.String() != "2000.00" {
		t.Fatalf("subtotal want 2000.00 got %s", cart.Subtotal)
	}
}

func TestBuildCartManualDiscountFloorsAtGross(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := models.Product{Name: "soap", SKU: "SOAP", IsActive: true, PriceAmount: moneyFromInt(100)}
	createCartProduct(t, db, &product)

	cart, err := svc.BuildCart([]CartLineInput{{
		ProductID:          product.ID,
		Quantity:           1,
		ManualDiscount:     moneyFromInt(500),
		ManualDiscountType: constants.ManualDiscountFixed,
	}})
	if err != nil {
		t.Fatalf("build cart failed: %v", err)
	}
	if !cart.Lines[0].Subtotal.Decimal.IsZero() {
		t.Fatalf("line subtotal should floor at zero, got %s", cart.Lines[0].Subtotal)
	}
	if cart.Lines[0].ManualDiscount.String() != "100.00" {
		t.Fatalf("discount should clamp to gross, got %s", cart.Lines[0].ManualDiscount)
	}
}

func TestBuildCartRejectsEmptyAndInactive(t *testing.T) {
	svc, db := setupCartServiceTest(t)

	if _, err := svc.BuildCart(nil); !errors.Is(err, ErrCartEmpty) {
		t.Fatalf("empty cart want ErrCartEmpty got %v", err)
	}

	inactive := models.Product{Name: "retired", SKU: "OLD", IsActive: false, PriceAmount: moneyFromInt(10)}
	createCartProduct(t, db, &inactive)
	if _, err := svc.BuildCart([]CartLineInput{{ProductID: inactive.ID, Quantity: 1}}); !errors.Is(err, ErrProductInactive) {
		t.Fatalf("inactive product want ErrProductInactive got %v", err)
	}

	if _, err := svc.BuildCart([]CartLineInput{{ProductID: 9999, Quantity: 1}}); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("missing product want ErrProductNotFound got %v", err)
	}
}
