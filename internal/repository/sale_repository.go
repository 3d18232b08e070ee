package repository

import (
	"errors"
	"time"

	"github.com/lumapos/internal/constants"
	"github.com/lumapos/internal/models"

	"gorm.io/gorm"
)

// SaleRepository 销售单数据访问接口
type SaleRepository interface {
	GetByID(id uint) (*models.Sale, error)
	GetByInvoiceNumber(invoiceNumber string) (*models.Sale, error)
	Create(sale *models.Sale) error
	UpdateStatus(id uint, status string) error
	List(filter SaleListFilter) ([]models.Sale, int64, error)
	GetSummary(startAt, endAt time.Time) (SaleSummaryRow, error)
	GetTopProducts(startAt, endAt time.Time, limit int) ([]SaleProductRankingRow, error)
	WithTx(tx *gorm.DB) *GormSaleRepository
}

// SaleListFilter 销售单列表筛选
type SaleListFilter struct {
	Status        string
	CustomerID    uint
	PaymentMethod string
	StartAt       *time.Time
	EndAt         *time.Time
	Page          int
	PageSize      int
}

// SaleSummaryRow 销售汇总原始统计结果
type SaleSummaryRow struct {
	SalesCount    int64
	GrossRevenue  float64
	DiscountTotal float64
	TaxTotal      float64
	ItemsSold     int64
}

// SaleProductRankingRow 商品销量排行原始行
type SaleProductRankingRow struct {
	ProductID   uint
	ProductName string
	Quantity    int64
	Amount      float64
}

// GormSaleRepository GORM 实现
type GormSaleRepository struct {
	db *gorm.DB
}

// NewSaleRepository 创建销售单仓库
func NewSaleRepository(db *gorm.DB) *GormSaleRepository {
	return &GormSaleRepository{db: db}
}

// WithTx 绑定事务
func (r *GormSaleRepository) WithTx(tx *gorm.DB) *GormSaleRepository {
	if tx == nil {
		return r
	}
	return &GormSaleRepository{db: tx}
}

// GetByID 根据ID获取销售单（含明细与折扣记录）
func (r *GormSaleRepository) GetByID(id uint) (*models.Sale, error) {
	var sale models.Sale
	if err := r.db.Preload("Items").Preload("Discounts").First(&sale, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sale, nil
}

// GetByInvoiceNumber 根据发票号获取销售单
func (r *GormSaleRepository) GetByInvoiceNumber(invoiceNumber string) (*models.Sale, error) {
	var sale models.Sale
	if err := r.db.Preload("Items").Preload("Discounts").
		Where("invoice_number = ?", invoiceNumber).
		First(&sale).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sale, nil
}

// Create 创建销售单（级联写入明细与折扣记录）
func (r *GormSaleRepository) Create(sale *models.Sale) error {
	return r.db.Create(sale).Error
}

// UpdateStatus 更新销售单状态
func (r *GormSaleRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&models.Sale{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// List 获取销售单列表
func (r *GormSaleRepository) List(filter SaleListFilter) ([]models.Sale, int64, error) {
	var sales []models.Sale
	query := r.db.Model(&models.Sale{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.CustomerID != 0 {
		query = query.Where("customer_id = ?", filter.CustomerID)
	}
	if filter.PaymentMethod != "" {
		query = query.Where("payment_method = ?", filter.PaymentMethod)
	}
	if filter.StartAt != nil {
		query = query.Where("sold_at >= ?", *filter.StartAt)
	}
	if filter.EndAt != nil {
		query = query.Where("sold_at < ?", *filter.EndAt)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)
	if err := query.Preload("Items").Preload("Discounts").
		Order("id desc").Find(&sales).Error; err != nil {
		return nil, 0, err
	}
	return sales, total, nil
}

// GetSummary 获取指定时间段的销售汇总（不含草稿单）
func (r *GormSaleRepository) GetSummary(startAt, endAt time.Time) (SaleSummaryRow, error) {
	result := SaleSummaryRow{}

	base := func() *gorm.DB {
		return r.db.Model(&models.Sale{}).
			Where("sold_at >= ? AND sold_at < ? AND status <> ?", startAt, endAt, constants.SaleStatusDraft)
	}

	if err := base().Count(&result.SalesCount).Error; err != nil {
		return result, err
	}
	if err := base().Select("COALESCE(SUM(total_amount), 0)").
		Scan(&result.GrossRevenue).Error; err != nil {
		return result, err
	}
	if err := base().Select("COALESCE(SUM(discount_amount), 0)").
		Scan(&result.DiscountTotal).Error; err != nil {
		return result, err
	}
	if err := base().Select("COALESCE(SUM(tax_amount), 0)").
		Scan(&result.TaxTotal).Error; err != nil {
		return result, err
	}

	if err := r.db.Model(&models.SaleItem{}).
		Joins("JOIN sales ON sales.id = sale_items.sale_id").
		Where("sales.sold_at >= ? AND sales.sold_at < ? AND sales.status <> ?", startAt, endAt, constants.SaleStatusDraft).
		Where("sale_items.is_free_gift = ?", false).
		Select("COALESCE(SUM(sale_items.quantity), 0)").
		Scan(&result.ItemsSold).Error; err != nil {
		return result, err
	}
	return result, nil
}

// GetTopProducts 获取指定时间段的商品销量排行（不含赠品行）
func (r *GormSaleRepository) GetTopProducts(startAt, endAt time.Time, limit int) ([]SaleProductRankingRow, error) {
	if limit <= 0 {
		limit = 10
	}
	var rows []SaleProductRankingRow
	if err := r.db.Model(&models.SaleItem{}).
		Joins("JOIN sales ON sales.id = sale_items.sale_id").
		Where("sales.sold_at >= ? AND sales.sold_at < ? AND sales.status <> ?", startAt, endAt, constants.SaleStatusDraft).
		Where("sale_items.is_free_gift = ?", false).
		Select("sale_items.product_id as product_id, sale_items.product_name as product_name, SUM(sale_items.quantity) as quantity, COALESCE(SUM(sale_items.subtotal), 0) as amount").
		Group("sale_items.product_id, sale_items.product_name").
		Order("amount desc").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
