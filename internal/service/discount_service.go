package service

import (
	"github.com/lumapos/internal/constants"
	"github.com/lumapos/internal/logger"
	"github.com/lumapos/internal/models"
	"github.com/lumapos/internal/repository"

	"github.com/shopspring/decimal"
)

// AppliedDiscount 命中的自动折扣
type AppliedDiscount struct {
	DiscountID   uint         `json:"discount_id"`
	DiscountName string       `json:"discount_name"`
	Type         string       `json:"type"`
	Amount       models.Money `json:"amount"`
}

// DiscountEvaluation 自动折扣评估结果
type DiscountEvaluation struct {
	Applied   []AppliedDiscount `json:"applied"`
	GiftLines []CartLine        `json:"gift_lines"`
	Total     models.Money      `json:"total"`
}

// DiscountService 自动折扣评估服务
type DiscountService struct {
	discountRepo repository.DiscountRepository
	productRepo  repository.ProductRepository
}

// NewDiscountService 创建自动折扣服务
func NewDiscountService(discountRepo repository.DiscountRepository, productRepo repository.ProductRepository) *DiscountService {
	return &DiscountService{
		discountRepo: discountRepo,
		productRepo:  productRepo,
	}
}

// Evaluate 对全部启用折扣逐一判定并叠加。
// 单个折扣数据异常时跳过该折扣，不影响其余折扣与结账流程。
func (s *DiscountService) Evaluate(ctx DiscountContext) (*DiscountEvaluation, error) {
	discounts, err := s.discountRepo.ListActive()
	if err != nil {
		return nil, err
	}

	result := &DiscountEvaluation{
		Applied:   []AppliedDiscount{},
		GiftLines: []CartLine{},
	}
	total := decimal.Zero

	for _, discount := range discounts {
		if !isDiscountEligible(discount, ctx) {
			continue
		}

		switch discount.Type {
		case constants.DiscountTypePercentage, constants.DiscountTypeFixed:
			amount, ok := s.resolveAmount(discount, ctx.Amount)
			if !ok {
				continue
			}
			if amount.Decimal.LessThanOrEqual(decimal.Zero) {
				continue
			}
			total = total.Add(amount.Decimal)
			result.Applied = append(result.Applied, AppliedDiscount{
				DiscountID:   discount.ID,
				DiscountName: discount.Name,
				Type:         discount.Type,
				Amount:       amount,
			})
		case constants.DiscountTypeFreeGift:
			gifts := s.resolveGiftLines(discount)
			if len(gifts) == 0 {
				continue
			}
			result.GiftLines = append(result.GiftLines, gifts...)
			result.Applied = append(result.Applied, AppliedDiscount{
				DiscountID:   discount.ID,
				DiscountName: discount.Name,
				Type:         discount.Type,
				Amount:       models.Money{},
			})
		case constants.DiscountTypeBogo:
			// 买赠类型暂未实现，静默跳过
			continue
		default:
			logger.Warnw("skip discount with unknown type",
				"discount_id", discount.ID,
				"type", discount.Type,
			)
			continue
		}
	}

	result.Total = models.NewMoneyFromDecimal(total)
	return result, nil
}

// resolveAmount 计算百分比或固定金额折扣，数据异常时返回 false。
func (s *DiscountService) resolveAmount(discount models.Discount, base models.Money) (models.Money, bool) {
	if discount.Value.Decimal.LessThanOrEqual(decimal.Zero) {
		logger.Warnw("skip discount with invalid value",
			"discount_id", discount.ID,
			"value", discount.Value.String(),
		)
		return models.Money{}, false
	}

	switch discount.Type {
	case constants.DiscountTypePercentage:
		amount := base.Decimal.Mul(discount.Value.Decimal).Div(decimal.NewFromInt(100))
		if discount.MaxDiscount.Decimal.GreaterThan(decimal.Zero) && amount.GreaterThan(discount.MaxDiscount.Decimal) {
			amount = discount.MaxDiscount.Decimal
		}
		return models.NewMoneyFromDecimal(amount), true
	case constants.DiscountTypeFixed:
		return models.NewMoneyFromDecimal(discount.Value.Decimal), true
	default:
		return models.Money{}, false
	}
}

// resolveGiftLines 将赠品折扣展开为零价购物车行，每个赠品一行。
func (s *DiscountService) resolveGiftLines(discount models.Discount) []CartLine {
	if len(discount.FreeGiftProducts) == 0 {
		logger.Warnw("skip free gift discount without gift products", "discount_id", discount.ID)
		return nil
	}

	products, err := s.productRepo.ListByIDs(discount.FreeGiftProducts)
	if err != nil {
		logger.Warnw("load gift products failed", "discount_id", discount.ID, "error", err)
		return nil
	}
	byID := make(map[uint]models.Product, len(products))
	for _, product := range products {
		byID[product.ID] = product
	}

	lines := make([]CartLine, 0, len(discount.FreeGiftProducts))
	for _, productID := range discount.FreeGiftProducts {
		product, ok := byID[productID]
		if !ok {
			logger.Warnw("gift product missing, skip",
				"discount_id", discount.ID,
				"product_id", productID,
			)
			continue
		}
		lines = append(lines, CartLine{
			Product:    product,
			Quantity:   1,
			IsFreeGift: true,
		})
	}
	return lines
}
