package models

import (
	"time"

	"gorm.io/gorm"
)

// Customer 客户表
type Customer struct {
	ID             uint           `gorm:"primarykey" json:"id"`                                         // 主键
	Name           string         `gorm:"not null;index" json:"name"`                                   // 客户姓名
	Email          string         `gorm:"index" json:"email,omitempty"`                                 // 邮箱
	Phone          string         `gorm:"index" json:"phone,omitempty"`                                 // 电话
	Address        string         `gorm:"type:text" json:"address,omitempty"`                           // 地址
	PriceTier      string         `gorm:"type:varchar(20);not null;default:'standard'" json:"price_tier"` // 价格层级
	CreditLimit    Money          `gorm:"type:decimal(20,2);not null;default:0" json:"credit_limit"`    // 赊账额度
	CreditUsed     Money          `gorm:"type:decimal(20,2);not null;default:0" json:"credit_used"`     // 已用赊账额度
	TotalPurchases Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_purchases"` // 累计消费
	LastPurchaseAt *time.Time     `gorm:"index" json:"last_purchase_at,omitempty"`                      // 最近消费时间
	CreatedAt      time.Time      `gorm:"index" json:"created_at"`                                      // 创建时间
	UpdatedAt      time.Time      `json:"updated_at"`                                                   // 更新时间
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`                                               // 软删除时间
}

// TableName 指定表名
func (Customer) TableName() string {
	return "customers"
}

// CreditAvailable 剩余可用赊账额度
func (c *Customer) CreditAvailable() Money {
	if c == nil {
		return Money{}
	}
	return NewMoneyFromDecimal(c.CreditLimit.Decimal.Sub(c.CreditUsed.Decimal))
}
