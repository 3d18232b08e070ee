package service

import (
	"github.com/lumapos/internal/constants"
	"github.com/lumapos/internal/models"
	"github.com/lumapos/internal/repository"

	"github.com/shopspring/decimal"
)

// CartLineInput 购物车行输入
type CartLineInput struct {
	ProductID          uint            `json:"product_id" binding:"required"`
	Quantity           int             `json:"quantity"`
	Weight             decimal.Decimal `json:"weight"`
	ManualDiscount     models.Money    `json:"manual_discount"`
	ManualDiscountType string          `json:"manual_discount_type"`
}

// CartLine 解析后的购物车行
type CartLine struct {
	Product            models.Product  `json:"product"`
	Quantity           int             `json:"quantity"`
	Weight             decimal.Decimal `json:"weight"`
	UnitPrice          models.Money    `json:"unit_price"`
	Gross              models.Money    `json:"gross"`
	ManualDiscount     models.Money    `json:"manual_discount"`
	ManualDiscountType string          `json:"manual_discount_type"`
	Subtotal           models.Money    `json:"subtotal"`
	IsFreeGift         bool            `json:"is_free_gift"`
}

// Cart 解析后的购物车
type Cart struct {
	Lines          []CartLine   `json:"lines"`
	Subtotal       models.Money `json:"subtotal"`
	ManualDiscount models.Money `json:"manual_discount"`
}

// CartService 购物车服务
type CartService struct {
	productRepo repository.ProductRepository
}

// NewCartService 创建购物车服务
func NewCartService(productRepo repository.ProductRepository) *CartService {
	return &CartService{productRepo: productRepo}
}

// BuildCart 根据输入行解析商品并逐行计价
func (s *CartService) BuildCart(inputs []CartLineInput) (*Cart, error) {
	if len(inputs) == 0 {
		return nil, ErrCartEmpty
	}

	cart := &Cart{
		Lines:          make([]CartLine, 0, len(inputs)),
		Subtotal:       models.Money{},
		ManualDiscount: models.Money{},
	}
	subtotal := decimal.Zero
	manual := decimal.Zero

	for _, input := range inputs {
		product, err := s.productRepo.GetByID(input.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, ErrProductNotFound
		}
		if !product.IsActive {
			return nil, ErrProductInactive
		}

		line := buildCartLine(*product, input)
		cart.Lines = append(cart.Lines, line)
		subtotal = subtotal.Add(line.Gross.Decimal)
		manual = manual.Add(line.ManualDiscount.Decimal)
	}

	cart.Subtotal = models.NewMoneyFromDecimal(subtotal)
	cart.ManualDiscount = models.NewMoneyFromDecimal(manual)
	return cart, nil
}

// buildCartLine 计算单行金额：称重商品按重量计价，其余按数量计价。
// 手动折扣不会使单行金额为负。
func buildCartLine(product models.Product, input CartLineInput) CartLine {
	quantity := input.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	var unitPrice models.Money
	var gross decimal.Decimal
	if product.IsWeightBased {
		unitPrice = product.PricePerUnit
		gross = product.PricePerUnit.Decimal.Mul(input.Weight)
	} else {
		unitPrice = product.PriceAmount
		gross = product.PriceAmount.Decimal.Mul(decimal.NewFromInt(int64(quantity)))
	}

	discount := decimal.Zero
	switch input.ManualDiscountType {
	case constants.ManualDiscountPercentage:
		discount = gross.Mul(input.ManualDiscount.Decimal).Div(decimal.NewFromInt(100))
	case constants.ManualDiscountFixed:
		discount = input.ManualDiscount.Decimal
	}
	if discount.LessThan(decimal.Zero) {
		discount = decimal.Zero
	}
	if discount.GreaterThan(gross) {
		discount = gross
	}

	return CartLine{
		Product:            product,
		Quantity:           quantity,
		Weight:             input.Weight,
		UnitPrice:          unitPrice,
		Gross:              models.NewMoneyFromDecimal(gross),
		ManualDiscount:     models.NewMoneyFromDecimal(discount),
		ManualDiscountType: input.ManualDiscountType,
		Subtotal:           models.NewMoneyFromDecimal(gross.Sub(discount)),
	}
}
