package models

import (
	"time"

	"gorm.io/gorm"
)

// Product 商品表
type Product struct {
	ID             uint           `gorm:"primarykey" json:"id"`                                        // 主键
	Name           string         `gorm:"not null;index" json:"name"`                                  // 商品名称
	SKU            string         `gorm:"uniqueIndex;not null" json:"sku"`                             // 商品编码
	Barcode        string         `gorm:"index" json:"barcode,omitempty"`                              // 条码
	Category       string         `gorm:"index" json:"category"`                                       // 分类
	Description    string         `gorm:"type:text" json:"description,omitempty"`                      // 描述
	PriceAmount    Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price_amount"`   // 单价
	CostAmount     Money          `gorm:"type:decimal(20,2);not null;default:0" json:"cost_amount"`    // 成本价
	IsWeightBased  bool           `gorm:"not null;default:false" json:"is_weight_based"`               // 是否按重量计价
	PricePerUnit   Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price_per_unit"` // 按重量计价时的单位价格
	Unit           string         `gorm:"type:varchar(20)" json:"unit,omitempty"`                      // 计量单位（kg/lb/piece）
	Taxable        bool           `gorm:"not null" json:"taxable"`                                     // 是否计税（不加 default 标签，避免 false 在插入时被忽略）
	TrackInventory bool           `gorm:"not null;default:false" json:"track_inventory"`               // 是否跟踪库存
	Stock          int            `gorm:"not null;default:0" json:"stock"`                             // 当前库存（仅展示用途）
	MinStock       int            `gorm:"not null;default:0" json:"min_stock"`                         // 低库存阈值
	IsActive       bool           `gorm:"not null;index" json:"is_active"`                             // 是否上架（同上，false 需要真实落库）
	SortOrder      int            `gorm:"default:0;index" json:"sort_order"`                           // 排序权重
	CreatedAt      time.Time      `gorm:"index" json:"created_at"`                                     // 创建时间
	UpdatedAt      time.Time      `json:"updated_at"`                                                  // 更新时间
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`                                              // 软删除时间
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}
