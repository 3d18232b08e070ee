package models

import (
	"time"

	"gorm.io/gorm"
)

// Discount 自动折扣/促销规则
type Discount struct {
	ID               uint           `gorm:"primarykey" json:"id"`                                      // 主键
	Name             string         `gorm:"not null" json:"name"`                                      // 名称
	Description      string         `gorm:"type:text" json:"description,omitempty"`                    // 描述
	Type             string         `gorm:"not null" json:"type"`                                      // 类型（percentage/fixed/free_gift，bogo 保留）
	Value            Money          `gorm:"type:decimal(20,2);not null;default:0" json:"value"`        // 数值（百分比或固定金额，free_gift 为 0）
	FreeGiftProducts UintArray      `gorm:"type:json" json:"free_gift_products,omitempty"`             // 赠品商品ID集合
	MinAmount        Money          `gorm:"type:decimal(20,2);not null;default:0" json:"min_amount"`   // 使用门槛
	MaxDiscount      Money          `gorm:"type:decimal(20,2);not null;default:0" json:"max_discount"` // 最大优惠金额（0 表示不限制）
	ValidFrom        *time.Time     `gorm:"index" json:"valid_from"`                                   // 生效时间
	ValidTo          *time.Time     `gorm:"index" json:"valid_to"`                                     // 失效时间
	ValidDays        IntArray       `gorm:"type:json" json:"valid_days,omitempty"`                     // 生效星期（0-6，空表示每天）
	IsActive         bool           `gorm:"not null" json:"is_active"`                                 // 是否启用（不加 default 标签，避免 false 在插入时被忽略）
	CreatedAt        time.Time      `gorm:"index" json:"created_at"`                                   // 创建时间
	UpdatedAt        time.Time      `gorm:"index" json:"updated_at"`                                   // 更新时间
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`                                            // 软删除时间

	Conditions []DiscountCondition `gorm:"foreignKey:DiscountID" json:"conditions,omitempty"` // 条件列表（逻辑与）
}

// TableName 指定表名
func (Discount) TableName() string {
	return "discounts"
}

// DiscountCondition 折扣条件
// 每种条件类型使用各自的字段承载值，避免 any 类型的运行时判断。
type DiscountCondition struct {
	ID            uint      `gorm:"primarykey" json:"id"`                                    // 主键
	DiscountID    uint      `gorm:"index;not null" json:"discount_id"`                       // 所属折扣ID
	Type          string    `gorm:"not null" json:"type"`                                    // 条件类型
	MinAmount     Money     `gorm:"type:decimal(20,2);not null;default:0" json:"min_amount"` // min_amount 条件的门槛金额
	ProductIDs    UintArray `gorm:"type:json" json:"product_ids,omitempty"`                  // specific_products 条件的商品ID集合
	MinQuantity   int       `gorm:"not null;default:1" json:"min_quantity"`                  // specific_products 条件的最低数量
	PaymentMethod string    `gorm:"type:varchar(20)" json:"payment_method,omitempty"`        // payment_method 条件的支付方式
	CustomerTier  string    `gorm:"type:varchar(20)" json:"customer_tier,omitempty"`         // customer_tier 条件的价格层级
	CardType      string    `gorm:"type:varchar(20)" json:"card_type,omitempty"`             // card_type 条件的卡种
	BankName      string    `gorm:"type:varchar(100)" json:"bank_name,omitempty"`            // bank_name 条件的银行名称
	CreatedAt     time.Time `json:"created_at"`                                              // 创建时间
}

// TableName 指定表名
func (DiscountCondition) TableName() string {
	return "discount_conditions"
}
