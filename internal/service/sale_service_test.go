package service

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/lumapos/internal/constants"
	"github.com/lumapos/internal/models"
	"github.com/lumapos/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type saleServiceFixture struct {
	db             *gorm.DB
	saleService    *SaleService
	settingService *SettingService
	productRepo    repository.ProductRepository
	customerRepo   repository.CustomerRepository
}

func setupSaleServiceTest(t *testing.T) *saleServiceFixture {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Product{},
		&models.Customer{},
		&models.Discount{},
		&models.DiscountCondition{},
		&models.Sale{},
		&models.SaleItem{},
		&models.SaleDiscount{},
		&models.Setting{},
	); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	productRepo := repository.NewProductRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	settingService := NewSettingService(repository.NewSettingRepository(db))
	saleService := NewSaleService(
		db,
		repository.NewSaleRepository(db),
		customerRepo,
		NewCartService(productRepo),
		NewDiscountService(repository.NewDiscountRepository(db), productRepo),
		settingService,
		nil,
	)
	return &saleServiceFixture{
		db:             db,
		saleService:    saleService,
		settingService: settingService,
		productRepo:    productRepo,
		customerRepo:   customerRepo,
	}
}

func (f *saleServiceFixture) createProduct(t *testing.T, product *models.Product) *models.Product {
	t.Helper()
	if err := f.db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func (f *saleServiceFixture) createCustomer(t *testing.T, customer *models.Customer) *models.Customer {
	t.Helper()
	if err := f.db.Create(customer).Error; err != nil {
		t.Fatalf("create customer failed: %v", err)
	}
	return customer
}

func (f *saleServiceFixture) createDiscount(t *testing.T, discount *models.Discount) {
	t.Helper()
	if discount.ValidFrom == nil && discount.ValidTo == nil {
		from := time.Now().Add(-24 * time.Hour)
		to := time.Now().Add(24 * time.Hour)
		discount.ValidFrom = &from
		discount.ValidTo = &to
	}
	if err := f.db.Create(discount).Error; err != nil {
		t.Fatalf("create discount failed: %v", err)
	}
}

func cashCheckout(productID uint, quantity int) CheckoutRequest {
	return CheckoutRequest{
		Lines:         []CartLineInput{{ProductID: productID, Quantity: quantity}},
		Cashier:       "till-1",
		PaymentMethod: constants.PaymentMethodCash,
	}
}

func TestCheckoutAssignsSequentialInvoiceNumbers(t *testing.T) {
	f := setupSaleServiceTest(t)
	product := f.createProduct(t, &models.Product{Name: "tea", SKU: "TEA", IsActive: true, PriceAmount: moneyFromInt(450)})

	first, err := f.saleService.Checkout(cashCheckout(product.ID, 1))
	if err != nil {
		t.Fatalf("first checkout failed: %v", err)
	}
	second, err := f.saleService.Checkout(cashCheckout(product.ID, 1))
	if err != nil {
		t.Fatalf("second checkout failed: %v", err)
	}
	if first.InvoiceNumber != "INV-001001" {
		t.Fatalf("first invoice want INV-001001 got %s", first.InvoiceNumber)
	}
	if second.InvoiceNumber != "INV-001002" {
		t.Fatalf("second invoice want INV-001002 got %s", second.InvoiceNumber)
	}
}

func TestCheckoutPersistsTotals(t *testing.T) {
	f := setupSaleServiceTest(t)
	product := f.createProduct(t, &models.Product{
		Name:           "rice",
		SKU:            "RICE",
		IsActive:       true,
		PriceAmount:    moneyFromInt(1000),
		TrackInventory: true,
		Stock:          10,
	})
	f.createDiscount(t, &models.Discount{
		Name:     "ten percent",
		Type:     constants.DiscountTypePercentage,
		Value:    moneyFromInt(10),
		IsActive: true,
	})
	if _, err := f.settingService.UpdateStoreConfig(StoreConfig{
		StoreName:      "Luma",
		TaxRatePercent: decimal.NewFromInt(10),
		InvoiceCounter: constants.InvoiceCounterDefault,
	}); err != nil {
		t.Fatalf("update store config failed: %v", err)
	}

	sale, err := f.saleService.Checkout(cashCheckout(product.ID, 2))
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if sale.Subtotal.String() != "2000.00" {
		t.Fatalf("subtotal want 2000.00 got %s", sale.Subtotal)
	}
	if sale.AutoDiscount.String() != "200.00" {
		t.Fatalf("auto discount want 200.00 got %s", sale.AutoDiscount)
	}
	if sale.TaxAmount.String() != "180.00" {
		t.Fatalf("tax want 180.00 got %s", sale.TaxAmount)
	}
	if sale.TotalAmount.String() != "1980.00" {
		t.Fatalf("total want 1980.00 got %s", sale.TotalAmount)
	}
	if len(sale.Discounts) != 1 {
		t.Fatalf("sale discounts want 1 got %d", len(sale.Discounts))
	}

	stored, err := f.productRepo.GetByID(product.ID)
	if err != nil {
		t.Fatalf("reload product failed: %v", err)
	}
	if stored.Stock != 10 {
		t.Fatalf("checkout must not touch stock, want 10 got %d", stored.Stock)
	}
}

func TestCheckoutAutoDiscountBaseIsGrossSubtotal(t *testing.T) {
	f := setupSaleServiceTest(t)
	product := f.createProduct(t, &models.Product{Name: "rice", SKU: "RICE", IsActive: true, PriceAmount: moneyFromInt(1000)})
	f.createDiscount(t, &models.Discount{
		Name:     "ten percent over 1000",
		Type:     constants.DiscountTypePercentage,
		Value:    moneyFromInt(10),
		IsActive: true,
		Conditions: []models.DiscountCondition{
			{Type: constants.ConditionTypeMinAmount, MinAmount: moneyFromInt(1000)},
		},
	})

	req := cashCheckout(product.ID, 1)
	req.Lines[0].ManualDiscount = moneyFromInt(100)
	req.Lines[0].ManualDiscountType = constants.ManualDiscountFixed

	sale, err := f.saleService.Checkout(req)
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	// 行级手动折扣不影响自动折扣的门槛判定与计算基数
	if sale.AutoDiscount.String() != "100.00" {
		t.Fatalf("auto discount want 100.00 got %s", sale.AutoDiscount)
	}
	if sale.TotalAmount.String() != "800.00" {
		t.Fatalf("total want 800.00 got %s", sale.TotalAmount)
	}
}

func TestCheckoutCreditUpdatesCustomerAccount(t *testing.T) {
	f := setupSaleServiceTest(t)
	product := f.createProduct(t, &models.Product{Name: "tea", SKU: "TEA", IsActive: true, PriceAmount: moneyFromInt(450)})
	customer := f.createCustomer(t, &models.Customer{
		Name:        "Nimal",
		Phone:       "0770000001",
		PriceTier:   constants.PriceTierStandard,
		CreditLimit: moneyFromInt(1000),
	})

	req := cashCheckout(product.ID, 1)
	req.CustomerID = &customer.ID
	req.PaymentMethod = constants.PaymentMethodCredit

	sale, err := f.saleService.Checkout(req)
	if err != nil {
		t.Fatalf("credit checkout failed: %v", err)
	}
	if sale.Status != constants.SaleStatusCredit {
		t.Fatalf("status want %s got %s", constants.SaleStatusCredit, sale.Status)
	}

	stored, err := f.customerRepo.GetByID(customer.ID)
	if err != nil {
		t.Fatalf("reload customer failed: %v", err)
	}
	if stored.CreditUsed.String() != "450.00" {
		t.Fatalf("credit used want 450.00 got %s", stored.CreditUsed)
	}
	if stored.TotalPurchases.String() != "450.00" {
		t.Fatalf("total purchases want 450.00 got %s", stored.TotalPurchases)
	}
	if stored.LastPurchaseAt == nil {
		t.Fatalf("last purchase time should be set")
	}
}

func TestCheckoutCreditRejectsOverLimit(t *testing.T) {
	f := setupSaleServiceTest(t)
	product := f.createProduct(t, &models.Product{Name: "rice", SKU: "RICE", IsActive: true, PriceAmount: moneyFromInt(5000)})
	customer := f.createCustomer(t, &models.Customer{
		Name:        "Kamala",
		Phone:       "0770000002",
		PriceTier:   constants.PriceTierStandard,
		CreditLimit: moneyFromInt(1000),
	})

	req := cashCheckout(product.ID, 1)
	req.CustomerID = &customer.ID
	req.PaymentMethod = constants.PaymentMethodCredit

	if _, err := f.saleService.Checkout(req); !errors.Is(err, ErrInsufficientCredit) {
		t.Fatalf("want ErrInsufficientCredit got %v", err)
	}

	var count int64
	if err := f.db.Model(&models.Sale{}).Count(&count).Error; err != nil {
		t.Fatalf("count sales failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("rejected checkout must not persist a sale, got %d", count)
	}
}

func TestCheckoutCashValidatesReceivedAmount(t *testing.T) {
	f := setupSaleServiceTest(t)
	product := f.createProduct(t, &models.Product{Name: "rice", SKU: "RICE", IsActive: true, PriceAmount: moneyFromInt(1000)})

	short := cashCheckout(product.ID, 2)
	short.CashReceived = moneyFromInt(1500)
	if _, err := f.saleService.Checkout(short); !errors.Is(err, ErrCashInsufficient) {
		t.Fatalf("want ErrCashInsufficient got %v", err)
	}

	paid := cashCheckout(product.ID, 2)
	paid.CashReceived = moneyFromInt(2500)
	sale, err := f.saleService.Checkout(paid)
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if sale.CashReceived.String() != "2500.00" {
		t.Fatalf("cash received want 2500.00 got %s", sale.CashReceived)
	}
	if sale.ChangeDue.String() != "500.00" {
		t.Fatalf("change due want 500.00 got %s", sale.ChangeDue)
	}

	// 未传实收金额按刚好付清处理
	exact, err := f.saleService.Checkout(cashCheckout(product.ID, 1))
	if err != nil {
		t.Fatalf("exact checkout failed: %v", err)
	}
	if !exact.ChangeDue.Decimal.IsZero() {
		t.Fatalf("change due want 0 got %s", exact.ChangeDue)
	}
}

func TestCheckoutRejectsUnknownPaymentMethod(t *testing.T) {
	f := setupSaleServiceTest(t)
	product := f.createProduct(t, &models.Product{Name: "tea", SKU: "TEA", IsActive: true, PriceAmount: moneyFromInt(450)})

	req := cashCheckout(product.ID, 1)
	req.PaymentMethod = "barter"
	if _, err := f.saleService.Checkout(req); !errors.Is(err, ErrPaymentMethodUnknown) {
		t.Fatalf("want ErrPaymentMethodUnknown got %v", err)
	}
}

func TestSaveDraftConsumesInvoiceWithoutSideEffects(t *testing.T) {
	f := setupSaleServiceTest(t)
	product := f.createProduct(t, &models.Product{
		Name:           "rice",
		SKU:            "RICE",
		IsActive:       true,
		PriceAmount:    moneyFromInt(1000),
		TrackInventory: true,
		Stock:          10,
	})

	draft, err := f.saleService.SaveDraft(CheckoutRequest{
		Lines:   []CartLineInput{{ProductID: product.ID, Quantity: 2}},
		Cashier: "till-2",
	})
	if err != nil {
		t.Fatalf("save draft failed: %v", err)
	}
	if draft.Status != constants.SaleStatusDraft {
		t.Fatalf("status want %s got %s", constants.SaleStatusDraft, draft.Status)
	}
	if draft.InvoiceNumber != "INV-001001" {
		t.Fatalf("draft invoice want INV-001001 got %s", draft.InvoiceNumber)
	}

	stored, err := f.productRepo.GetByID(product.ID)
	if err != nil {
		t.Fatalf("reload product failed: %v", err)
	}
	if stored.Stock != 10 {
		t.Fatalf("draft must not touch stock, want 10 got %d", stored.Stock)
	}

	next, err := f.saleService.Checkout(cashCheckout(product.ID, 1))
	if err != nil {
		t.Fatalf("checkout after draft failed: %v", err)
	}
	if next.InvoiceNumber != "INV-001002" {
		t.Fatalf("draft should consume an invoice number, next want INV-001002 got %s", next.InvoiceNumber)
	}
}

func TestCompleteDraftFinalizesSale(t *testing.T) {
	f := setupSaleServiceTest(t)
	product := f.createProduct(t, &models.Product{
		Name:           "rice",
		SKU:            "RICE",
		IsActive:       true,
		PriceAmount:    moneyFromInt(1000),
		TrackInventory: true,
		Stock:          10,
	})

	draft, err := f.saleService.SaveDraft(CheckoutRequest{
		Lines:   []CartLineInput{{ProductID: product.ID, Quantity: 2}},
		Cashier: "till-2",
	})
	if err != nil {
		t.Fatalf("save draft failed: %v", err)
	}

	sale, err := f.saleService.CompleteDraft(draft.ID, CompleteDraftInput{
		PaymentMethod:  constants.PaymentMethodCard,
		CardNumber:     "4111 1111 1111 1111",
		CardBankName:   "Commercial Bank",
		CardHolderName: "S PERERA",
	})
	if err != nil {
		t.Fatalf("complete draft failed: %v", err)
	}
	if sale.Status != constants.SaleStatusCompleted {
		t.Fatalf("status want %s got %s", constants.SaleStatusCompleted, sale.Status)
	}
	if sale.InvoiceNumber != draft.InvoiceNumber {
		t.Fatalf("invoice number must survive completion, want %s got %s", draft.InvoiceNumber, sale.InvoiceNumber)
	}
	if sale.CardType != constants.CardTypeVisa {
		t.Fatalf("card type want %s got %s", constants.CardTypeVisa, sale.CardType)
	}
	if sale.CardLastFour != "1111" {
		t.Fatalf("card last four want 1111 got %s", sale.CardLastFour)
	}

	stored, err := f.productRepo.GetByID(product.ID)
	if err != nil {
		t.Fatalf("reload product failed: %v", err)
	}
	if stored.Stock != 10 {
		t.Fatalf("completion must not touch stock, want 10 got %d", stored.Stock)
	}

	if _, err := f.saleService.CompleteDraft(draft.ID, CompleteDraftInput{PaymentMethod: constants.PaymentMethodCash}); !errors.Is(err, ErrSaleNotDraft) {
		t.Fatalf("completing twice want ErrSaleNotDraft got %v", err)
	}
}

func TestPreviewHasNoSideEffects(t *testing.T) {
	f := setupSaleServiceTest(t)
	product := f.createProduct(t, &models.Product{
		Name:           "rice",
		SKU:            "RICE",
		IsActive:       true,
		PriceAmount:    moneyFromInt(1000),
		TrackInventory: true,
		Stock:          10,
	})

	preview, err := f.saleService.Preview(cashCheckout(product.ID, 2))
	if err != nil {
		t.Fatalf("preview failed: %v", err)
	}
	if preview.Totals.TotalAmount.String() != "2000.00" {
		t.Fatalf("preview total want 2000.00 got %s", preview.Totals.TotalAmount)
	}

	var sales int64
	if err := f.db.Model(&models.Sale{}).Count(&sales).Error; err != nil {
		t.Fatalf("count sales failed: %v", err)
	}
	if sales != 0 {
		t.Fatalf("preview must not persist sales, got %d", sales)
	}

	config, err := f.settingService.GetStoreConfig()
	if err != nil {
		t.Fatalf("get store config failed: %v", err)
	}
	if config.InvoiceCounter != constants.InvoiceCounterDefault {
		t.Fatalf("preview must not consume invoice numbers, counter got %d", config.InvoiceCounter)
	}
}
