package service

import (
	"time"

	"github.com/lumapos/internal/constants"
	"github.com/lumapos/internal/logger"
	"github.com/lumapos/internal/models"
	"github.com/lumapos/internal/queue"
	"github.com/lumapos/internal/repository"

	"gorm.io/gorm"
)

// CheckoutRequest 结账请求
type CheckoutRequest struct {
	Lines          []CartLineInput `json:"lines" binding:"required"`
	CustomerID     *uint           `json:"customer_id"`
	Cashier        string          `json:"cashier"`
	PaymentMethod  string          `json:"payment_method"`
	CardNumber     string          `json:"card_number"`
	CardBankName   string          `json:"card_bank_name"`
	CardHolderName string          `json:"card_holder_name"`
	CashReceived   models.Money    `json:"cash_received"`
	ReceiptNumber  string          `json:"receipt_number"`
	Notes          string          `json:"notes"`
}

// CheckoutPreview 结账试算结果
type CheckoutPreview struct {
	Lines     []CartLine        `json:"lines"`
	GiftLines []CartLine        `json:"gift_lines"`
	Applied   []AppliedDiscount `json:"applied_discounts"`
	Totals    CartTotals        `json:"totals"`
	Currency  string            `json:"currency"`
}

// SaleService 销售单业务服务
type SaleService struct {
	db              *gorm.DB
	saleRepo        repository.SaleRepository
	customerRepo    repository.CustomerRepository
	cartService     *CartService
	discountService *DiscountService
	settingService  *SettingService
	queueClient     *queue.Client
}

// NewSaleService 创建销售单服务
func NewSaleService(
	db *gorm.DB,
	saleRepo repository.SaleRepository,
	customerRepo repository.CustomerRepository,
	cartService *CartService,
	discountService *DiscountService,
	settingService *SettingService,
	queueClient *queue.Client,
) *SaleService {
	return &SaleService{
		db:              db,
		saleRepo:        saleRepo,
		customerRepo:    customerRepo,
		cartService:     cartService,
		discountService: discountService,
		settingService:  settingService,
		queueClient:     queueClient,
	}
}

// checkoutContext 一次结账的中间计算结果
type checkoutContext struct {
	cart     *Cart
	customer *models.Customer
	card     *CardInfo
	eval     *DiscountEvaluation
	totals   CartTotals
	config   *StoreConfig
	now      time.Time
}

// Preview 试算结账金额，不产生任何持久化副作用
func (s *SaleService) Preview(req CheckoutRequest) (*CheckoutPreview, error) {
	ctx, err := s.prepare(req, time.Now())
	if err != nil {
		return nil, err
	}
	return &CheckoutPreview{
		Lines:     ctx.cart.Lines,
		GiftLines: ctx.eval.GiftLines,
		Applied:   ctx.eval.Applied,
		Totals:    ctx.totals,
		Currency:  ctx.config.Currency,
	}, nil
}

// Checkout 完成结账：占用发票号、写入销售单、更新客户账，全部在同一事务内。
// 库存为展示字段，结账不做扣减。
func (s *SaleService) Checkout(req CheckoutRequest) (*models.Sale, error) {
	now := time.Now()
	ctx, err := s.prepare(req, now)
	if err != nil {
		return nil, err
	}

	status := constants.SaleStatusCompleted
	if req.PaymentMethod == constants.PaymentMethodCredit {
		status = constants.SaleStatusCredit
	}

	var sale *models.Sale
	err = s.db.Transaction(func(tx *gorm.DB) error {
		invoiceNumber, err := s.settingService.ReserveInvoiceNumber(tx)
		if err != nil {
			return err
		}
		sale = s.buildSale(req, ctx, invoiceNumber, status)
		if err := s.saleRepo.WithTx(tx).Create(sale); err != nil {
			return err
		}
		return s.applyCustomer(tx, ctx, status)
	})
	if err != nil {
		return nil, err
	}

	s.notifySaleRecorded(sale)
	logger.Infow("sale recorded",
		"sale_id", sale.ID,
		"invoice_number", sale.InvoiceNumber,
		"total", sale.TotalAmount.String(),
		"payment_method", sale.PaymentMethod,
	)
	return sale, nil
}

// SaveDraft 挂单。草稿同样消耗发票号，但不影响库存与客户账。
func (s *SaleService) SaveDraft(req CheckoutRequest) (*models.Sale, error) {
	now := time.Now()
	ctx, err := s.prepareDraft(req, now)
	if err != nil {
		return nil, err
	}

	var sale *models.Sale
	err = s.db.Transaction(func(tx *gorm.DB) error {
		invoiceNumber, err := s.settingService.ReserveInvoiceNumber(tx)
		if err != nil {
			return err
		}
		sale = s.buildSale(req, ctx, invoiceNumber, constants.SaleStatusDraft)
		return s.saleRepo.WithTx(tx).Create(sale)
	})
	if err != nil {
		return nil, err
	}
	return sale, nil
}

// CompleteDraftInput 草稿转正参数
type CompleteDraftInput struct {
	PaymentMethod  string
	CardNumber     string
	CardBankName   string
	CardHolderName string
	CashReceived   models.Money
}

// CompleteDraft 将草稿转为正式销售单并更新客户账。
// 金额沿用挂单时的计算结果，发票号不变。
func (s *SaleService) CompleteDraft(id uint, input CompleteDraftInput) (*models.Sale, error) {
	sale, err := s.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, ErrSaleNotFound
	}
	if sale.Status != constants.SaleStatusDraft {
		return nil, ErrSaleNotDraft
	}

	var card *CardInfo
	status := constants.SaleStatusCompleted
	switch input.PaymentMethod {
	case constants.PaymentMethodCash:
		if input.CashReceived.Decimal.IsPositive() && input.CashReceived.Decimal.LessThan(sale.TotalAmount.Decimal) {
			return nil, ErrCashInsufficient
		}
	case constants.PaymentMethodDigital:
	case constants.PaymentMethodCard:
		info, err := ResolveCardInfo(input.CardNumber, input.CardBankName, input.CardHolderName)
		if err != nil {
			return nil, err
		}
		card = &info
	case constants.PaymentMethodCredit:
		status = constants.SaleStatusCredit
	default:
		return nil, ErrPaymentMethodUnknown
	}

	var customer *models.Customer
	if sale.CustomerID != nil {
		customer, err = s.customerRepo.GetByID(*sale.CustomerID)
		if err != nil {
			return nil, err
		}
	}
	if input.PaymentMethod == constants.PaymentMethodCredit {
		if customer == nil {
			return nil, ErrCustomerRequired
		}
		if customer.CreditAvailable().Decimal.LessThan(sale.TotalAmount.Decimal) {
			return nil, ErrInsufficientCredit
		}
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		sale.Status = status
		sale.PaymentMethod = input.PaymentMethod
		if input.PaymentMethod == constants.PaymentMethodCash && input.CashReceived.Decimal.IsPositive() {
			sale.CashReceived = input.CashReceived
			sale.ChangeDue = models.NewMoneyFromDecimal(input.CashReceived.Decimal.Sub(sale.TotalAmount.Decimal))
		}
		if card != nil {
			sale.CardType = card.CardType
			sale.CardLastFour = card.LastFour
			sale.CardBankName = card.BankName
			sale.CardHolderName = card.HolderName
		}
		if err := tx.Omit("Items", "Discounts").Save(sale).Error; err != nil {
			return err
		}

		if customer == nil {
			return nil
		}
		return s.updateCustomerAccount(tx, customer, sale.TotalAmount, status, time.Now())
	})
	if err != nil {
		return nil, err
	}

	s.notifySaleRecorded(sale)
	return sale, nil
}

// GetByID 获取销售单
func (s *SaleService) GetByID(id uint) (*models.Sale, error) {
	sale, err := s.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, ErrSaleNotFound
	}
	return sale, nil
}

// List 获取销售单列表
func (s *SaleService) List(filter repository.SaleListFilter) ([]models.Sale, int64, error) {
	return s.saleRepo.List(filter)
}

// prepare 解析购物车、校验支付方式并完成折扣评估与金额汇总
func (s *SaleService) prepare(req CheckoutRequest, now time.Time) (*checkoutContext, error) {
	ctx, err := s.prepareDraft(req, now)
	if err != nil {
		return nil, err
	}

	switch req.PaymentMethod {
	case constants.PaymentMethodCash:
		// 未传实收金额视为刚好付清
		if req.CashReceived.Decimal.IsPositive() && req.CashReceived.Decimal.LessThan(ctx.totals.TotalAmount.Decimal) {
			return nil, ErrCashInsufficient
		}
	case constants.PaymentMethodCard, constants.PaymentMethodDigital:
	case constants.PaymentMethodCredit:
		if ctx.customer == nil {
			return nil, ErrCustomerRequired
		}
		if ctx.customer.CreditAvailable().Decimal.LessThan(ctx.totals.TotalAmount.Decimal) {
			return nil, ErrInsufficientCredit
		}
	default:
		return nil, ErrPaymentMethodUnknown
	}
	return ctx, nil
}

// prepareDraft 与 prepare 相同，但不校验支付方式与信用额度，供挂单使用
func (s *SaleService) prepareDraft(req CheckoutRequest, now time.Time) (*checkoutContext, error) {
	cart, err := s.cartService.BuildCart(req.Lines)
	if err != nil {
		return nil, err
	}

	var customer *models.Customer
	if req.CustomerID != nil {
		customer, err = s.customerRepo.GetByID(*req.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, ErrCustomerNotFound
		}
	}

	var card *CardInfo
	if req.PaymentMethod == constants.PaymentMethodCard {
		info, err := ResolveCardInfo(req.CardNumber, req.CardBankName, req.CardHolderName)
		if err != nil {
			return nil, err
		}
		card = &info
	}

	config, err := s.settingService.GetStoreConfig()
	if err != nil {
		return nil, err
	}

	discountCtx := DiscountContext{
		Now:           now,
		Amount:        cart.Subtotal,
		Lines:         cart.Lines,
		PaymentMethod: req.PaymentMethod,
	}
	if customer != nil {
		discountCtx.CustomerTier = customer.PriceTier
	}
	if card != nil {
		discountCtx.CardType = card.CardType
		discountCtx.BankName = card.BankName
	}

	eval, err := s.discountService.Evaluate(discountCtx)
	if err != nil {
		return nil, err
	}

	totals := CalculateTotals(cart.Subtotal, cart.ManualDiscount, eval.Total, config.TaxRatePercent)
	return &checkoutContext{
		cart:     cart,
		customer: customer,
		card:     card,
		eval:     eval,
		totals:   totals,
		config:   config,
		now:      now,
	}, nil
}

// buildSale 组装销售单实体
func (s *SaleService) buildSale(req CheckoutRequest, ctx *checkoutContext, invoiceNumber, status string) *models.Sale {
	sale := &models.Sale{
		InvoiceNumber:  invoiceNumber,
		ReceiptNumber:  req.ReceiptNumber,
		CustomerID:     req.CustomerID,
		Cashier:        req.Cashier,
		Status:         status,
		PaymentMethod:  req.PaymentMethod,
		Currency:       ctx.config.Currency,
		Subtotal:       ctx.totals.Subtotal,
		ManualDiscount: ctx.totals.ManualDiscount,
		AutoDiscount:   ctx.totals.AutoDiscount,
		DiscountAmount: ctx.totals.DiscountAmount,
		TaxAmount:      ctx.totals.TaxAmount,
		TotalAmount:    ctx.totals.TotalAmount,
		Notes:          req.Notes,
		SoldAt:         ctx.now,
	}
	if req.PaymentMethod == constants.PaymentMethodCash && req.CashReceived.Decimal.IsPositive() {
		sale.CashReceived = req.CashReceived
		sale.ChangeDue = models.NewMoneyFromDecimal(req.CashReceived.Decimal.Sub(ctx.totals.TotalAmount.Decimal))
	}
	if ctx.customer != nil {
		sale.CustomerName = ctx.customer.Name
	}
	if ctx.card != nil {
		sale.CardType = ctx.card.CardType
		sale.CardLastFour = ctx.card.LastFour
		sale.CardBankName = ctx.card.BankName
		sale.CardHolderName = ctx.card.HolderName
	}

	for _, line := range append(append([]CartLine{}, ctx.cart.Lines...), ctx.eval.GiftLines...) {
		sale.Items = append(sale.Items, models.SaleItem{
			ProductID:          line.Product.ID,
			ProductName:        line.Product.Name,
			UnitPrice:          line.UnitPrice,
			Quantity:           line.Quantity,
			Weight:             line.Weight,
			ManualDiscount:     line.ManualDiscount,
			ManualDiscountType: line.ManualDiscountType,
			Subtotal:           line.Subtotal,
			IsFreeGift:         line.IsFreeGift,
		})
	}
	for _, applied := range ctx.eval.Applied {
		sale.Discounts = append(sale.Discounts, models.SaleDiscount{
			DiscountID:     applied.DiscountID,
			DiscountName:   applied.DiscountName,
			DiscountAmount: applied.Amount,
			Type:           applied.Type,
		})
	}
	return sale
}

// applyCustomer 更新客户累计消费与信用占用
func (s *SaleService) applyCustomer(tx *gorm.DB, ctx *checkoutContext, status string) error {
	if ctx.customer == nil {
		return nil
	}
	return s.updateCustomerAccount(tx, ctx.customer, ctx.totals.TotalAmount, status, ctx.now)
}

func (s *SaleService) updateCustomerAccount(tx *gorm.DB, customer *models.Customer, total models.Money, status string, now time.Time) error {
	customer.TotalPurchases = models.NewMoneyFromDecimal(customer.TotalPurchases.Decimal.Add(total.Decimal))
	customer.LastPurchaseAt = &now
	if status == constants.SaleStatusCredit {
		customer.CreditUsed = models.NewMoneyFromDecimal(customer.CreditUsed.Decimal.Add(total.Decimal))
	}
	return s.customerRepo.WithTx(tx).Update(customer)
}

// notifySaleRecorded 发布销售落库事件，队列不可用时仅记录日志
func (s *SaleService) notifySaleRecorded(sale *models.Sale) {
	if s.queueClient == nil || sale == nil {
		return
	}
	if err := s.queueClient.EnqueueSaleRecorded(sale.ID, sale.InvoiceNumber); err != nil {
		logger.Warnw("enqueue sale recorded failed", "sale_id", sale.ID, "error", err)
	}
}
