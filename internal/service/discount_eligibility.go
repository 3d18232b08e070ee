package service

import (
	"time"

	"github.com/lumapos/internal/constants"
	"github.com/lumapos/internal/models"

	"github.com/shopspring/decimal"
)

// DiscountContext 自动折扣判定上下文
type DiscountContext struct {
	Now           time.Time
	Amount        models.Money // 折前商品小计（不含手动折扣）
	Lines         []CartLine
	PaymentMethod string
	CustomerTier  string
	CardType      string
	BankName      string
}

// isDiscountEligible 判断折扣是否对当前上下文生效。
// 规则：启用状态、有效期（边界含当天，缺失按不生效处理）、有效星期，以及全部条件同时满足。
func isDiscountEligible(discount models.Discount, ctx DiscountContext) bool {
	if !discount.IsActive {
		return false
	}
	if discount.ValidFrom == nil || discount.ValidTo == nil {
		return false
	}
	if ctx.Now.Before(*discount.ValidFrom) {
		return false
	}
	if ctx.Now.After(*discount.ValidTo) {
		return false
	}
	if len(discount.ValidDays) > 0 && !discount.ValidDays.Contains(int(ctx.Now.Weekday())) {
		return false
	}
	for _, condition := range discount.Conditions {
		if !evaluateCondition(condition, ctx) {
			return false
		}
	}
	return true
}

// evaluateCondition 判定单个折扣条件。
// 未识别的条件类型视为满足，避免新增类型时旧数据拦截全部折扣。
func evaluateCondition(condition models.DiscountCondition, ctx DiscountContext) bool {
	switch condition.Type {
	case constants.ConditionTypeMinAmount:
		return ctx.Amount.Decimal.GreaterThanOrEqual(condition.MinAmount.Decimal)
	case constants.ConditionTypeSpecificProducts:
		return matchesSpecificProducts(condition, ctx.Lines)
	case constants.ConditionTypePaymentMethod:
		return ctx.PaymentMethod == condition.PaymentMethod
	case constants.ConditionTypeCustomerTier:
		return ctx.CustomerTier == condition.CustomerTier
	case constants.ConditionTypeCardType:
		return ctx.PaymentMethod == constants.PaymentMethodCard && ctx.CardType == condition.CardType
	case constants.ConditionTypeBankName:
		return ctx.PaymentMethod == constants.PaymentMethodCard && ctx.BankName == condition.BankName
	default:
		return true
	}
}

// matchesSpecificProducts 判断任一指定商品的购买量是否达标。
// 购买量按单个商品分别累计，称重商品按重量计数，普通商品按数量计数，赠品行不参与统计。
func matchesSpecificProducts(condition models.DiscountCondition, lines []CartLine) bool {
	minQuantity := decimal.NewFromInt(int64(condition.MinQuantity))
	if !minQuantity.IsPositive() {
		minQuantity = decimal.NewFromInt(1)
	}

	totals := make(map[uint]decimal.Decimal)
	for _, line := range lines {
		if line.IsFreeGift {
			continue
		}
		if !condition.ProductIDs.Contains(line.Product.ID) {
			continue
		}
		amount := decimal.NewFromInt(int64(line.Quantity))
		if line.Weight.GreaterThan(decimal.Zero) {
			amount = line.Weight
		}
		totals[line.Product.ID] = totals[line.Product.ID].Add(amount)
	}
	for _, total := range totals {
		if total.GreaterThanOrEqual(minQuantity) {
			return true
		}
	}
	return false
}
