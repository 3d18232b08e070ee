package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Sale 销售单表
type Sale struct {
	ID             uint           `gorm:"primarykey" json:"id"`                                           // 主键
	InvoiceNumber  string         `gorm:"uniqueIndex;not null" json:"invoice_number"`                     // 发票号
	ReceiptNumber  string         `gorm:"index;not null" json:"receipt_number"`                           // 小票号（收银端传入，可为空）
	CustomerID     *uint          `gorm:"index" json:"customer_id,omitempty"`                             // 客户ID
	CustomerName   string         `gorm:"type:varchar(200)" json:"customer_name,omitempty"`               // 客户姓名快照
	Cashier        string         `gorm:"type:varchar(200)" json:"cashier"`                               // 收银员
	Status         string         `gorm:"index;not null" json:"status"`                                   // 状态（completed/credit/draft/refunded）
	PaymentMethod  string         `gorm:"type:varchar(20);not null" json:"payment_method"`                // 支付方式
	CardBankName   string         `gorm:"type:varchar(100)" json:"card_bank_name,omitempty"`              // 刷卡银行
	CardType       string         `gorm:"type:varchar(20)" json:"card_type,omitempty"`                    // 卡种
	CardLastFour   string         `gorm:"type:varchar(4)" json:"card_last_four,omitempty"`                // 卡号后四位
	CardHolderName string         `gorm:"type:varchar(200)" json:"card_holder_name,omitempty"`            // 持卡人
	Currency       string         `gorm:"type:varchar(10);not null" json:"currency"`                      // 币种
	Subtotal       Money          `gorm:"type:decimal(20,2);not null;default:0" json:"subtotal"`          // 折前小计
	ManualDiscount Money          `gorm:"type:decimal(20,2);not null;default:0" json:"manual_discount"`   // 行级手动折扣合计
	AutoDiscount   Money          `gorm:"type:decimal(20,2);not null;default:0" json:"auto_discount"`     // 自动折扣合计
	DiscountAmount Money          `gorm:"type:decimal(20,2);not null;default:0" json:"discount_amount"`   // 折扣总额
	TaxAmount      Money          `gorm:"type:decimal(20,2);not null;default:0" json:"tax_amount"`        // 税额
	TotalAmount    Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_amount"`      // 应收总额
	CashReceived   Money          `gorm:"type:decimal(20,2);not null;default:0" json:"cash_received"`     // 实收现金（现金支付时记录）
	ChangeDue      Money          `gorm:"type:decimal(20,2);not null;default:0" json:"change_due"`        // 找零
	Notes          string         `gorm:"type:text" json:"notes,omitempty"`                               // 备注（赊账说明等）
	SoldAt         time.Time      `gorm:"index;not null" json:"sold_at"`                                  // 销售时间
	CreatedAt      time.Time      `gorm:"index" json:"created_at"`                                        // 创建时间
	UpdatedAt      time.Time      `json:"updated_at"`                                                     // 更新时间
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`                                                 // 软删除时间

	Items     []SaleItem     `gorm:"foreignKey:SaleID" json:"items,omitempty"`     // 销售明细（含赠品行）
	Discounts []SaleDiscount `gorm:"foreignKey:SaleID" json:"discounts,omitempty"` // 自动折扣明细
}

// TableName 指定表名
func (Sale) TableName() string {
	return "sales"
}

// SaleItem 销售明细行
type SaleItem struct {
	ID                 uint            `gorm:"primarykey" json:"id"`                                           // 主键
	SaleID             uint            `gorm:"index;not null" json:"sale_id"`                                  // 所属销售单ID
	ProductID          uint            `gorm:"index;not null" json:"product_id"`                               // 商品ID
	ProductName        string          `gorm:"type:varchar(200);not null" json:"product_name"`                 // 商品名称快照
	UnitPrice          Money           `gorm:"type:decimal(20,2);not null;default:0" json:"unit_price"`        // 单价快照
	Quantity           int             `gorm:"not null;default:0" json:"quantity"`                             // 数量（计件商品）
	Weight             decimal.Decimal `gorm:"type:decimal(20,3);not null;default:0" json:"weight"`            // 重量（按重量计价商品）
	ManualDiscount     Money           `gorm:"type:decimal(20,2);not null;default:0" json:"manual_discount"`   // 行级手动折扣金额
	ManualDiscountType string          `gorm:"type:varchar(20)" json:"manual_discount_type,omitempty"`         // 手动折扣类型（percentage/fixed）
	Subtotal           Money           `gorm:"type:decimal(20,2);not null;default:0" json:"subtotal"`          // 行小计
	IsFreeGift         bool            `gorm:"not null;default:false" json:"is_free_gift"`                     // 是否赠品行
	CreatedAt          time.Time       `json:"created_at"`                                                     // 创建时间
}

// TableName 指定表名
func (SaleItem) TableName() string {
	return "sale_items"
}

// SaleDiscount 销售单自动折扣明细
type SaleDiscount struct {
	ID             uint      `gorm:"primarykey" json:"id"`                                         // 主键
	SaleID         uint      `gorm:"index;not null" json:"sale_id"`                                // 所属销售单ID
	DiscountID     uint      `gorm:"index;not null" json:"discount_id"`                            // 折扣规则ID
	DiscountName   string    `gorm:"type:varchar(200);not null" json:"discount_name"`              // 折扣名称快照
	DiscountAmount Money     `gorm:"type:decimal(20,2);not null;default:0" json:"discount_amount"` // 折扣金额（free_gift 为 0）
	Type           string    `gorm:"type:varchar(20);not null" json:"type"`                        // 折扣类型
	CreatedAt      time.Time `json:"created_at"`                                                   // 创建时间
}

// TableName 指定表名
func (SaleDiscount) TableName() string {
	return "sale_discounts"
}
