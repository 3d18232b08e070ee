package service

import (
	"github.com/lumapos/internal/models"

	"github.com/shopspring/decimal"
)

// CartTotals 结账金额汇总
type CartTotals struct {
	Subtotal       models.Money `json:"subtotal"`
	ManualDiscount models.Money `json:"manual_discount"`
	AutoDiscount   models.Money `json:"auto_discount"`
	DiscountAmount models.Money `json:"discount_amount"`
	TaxAmount      models.Money `json:"tax_amount"`
	TotalAmount    models.Money `json:"total_amount"`
}

// CalculateTotals 汇总结账金额。
// 税基为扣除全部折扣后的金额，合计不做非负截断，金额异常由上游折扣数据校验兜底。
func CalculateTotals(subtotal, manualDiscount, autoDiscount models.Money, taxRatePercent decimal.Decimal) CartTotals {
	taxable := subtotal.Decimal.Sub(manualDiscount.Decimal).Sub(autoDiscount.Decimal)
	tax := taxable.Mul(taxRatePercent).Div(decimal.NewFromInt(100))
	total := taxable.Add(tax)

	return CartTotals{
		Subtotal:       models.NewMoneyFromDecimal(subtotal.Decimal),
		ManualDiscount: models.NewMoneyFromDecimal(manualDiscount.Decimal),
		AutoDiscount:   models.NewMoneyFromDecimal(autoDiscount.Decimal),
		DiscountAmount: models.NewMoneyFromDecimal(manualDiscount.Decimal.Add(autoDiscount.Decimal)),
		TaxAmount:      models.NewMoneyFromDecimal(tax),
		TotalAmount:    models.NewMoneyFromDecimal(total),
	}
}
