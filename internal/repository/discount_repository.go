package repository

import (
	"errors"

	"github.com/lumapos/internal/models"

	"gorm.io/gorm"
)

// DiscountRepository 折扣数据访问接口
type DiscountRepository interface {
	GetByID(id uint) (*models.Discount, error)
	ListActive() ([]models.Discount, error)
	Create(discount *models.Discount) error
	Update(discount *models.Discount) error
	ReplaceConditions(discountID uint, conditions []models.DiscountCondition) error
	Delete(id uint) error
	List(filter DiscountListFilter) ([]models.Discount, int64, error)
	WithTx(tx *gorm.DB) *GormDiscountRepository
}

// DiscountListFilter 折扣列表筛选
type DiscountListFilter struct {
	Keyword  string
	Type     string
	IsActive *bool
	Page     int
	PageSize int
}

// GormDiscountRepository GORM 实现
type GormDiscountRepository struct {
	db *gorm.DB
}

// NewDiscountRepository 创建折扣仓库
func NewDiscountRepository(db *gorm.DB) *GormDiscountRepository {
	return &GormDiscountRepository{db: db}
}

// WithTx 绑定事务
func (r *GormDiscountRepository) WithTx(tx *gorm.DB) *GormDiscountRepository {
	if tx == nil {
		return r
	}
	return &GormDiscountRepository{db: tx}
}

// GetByID 根据ID获取折扣（含条件）
func (r *GormDiscountRepository) GetByID(id uint) (*models.Discount, error) {
	var discount models.Discount
	if err := r.db.Preload("Conditions").First(&discount, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &discount, nil
}

// ListActive 获取启用的折扣（含条件）。时间窗口与有效星期由引擎判断。
func (r *GormDiscountRepository) ListActive() ([]models.Discount, error) {
	var discounts []models.Discount
	if err := r.db.Preload("Conditions").
		Where("is_active = ?", true).
		Order("id asc").
		Find(&discounts).Error; err != nil {
		return nil, err
	}
	return discounts, nil
}

// Create 创建折扣（级联写入条件）
func (r *GormDiscountRepository) Create(discount *models.Discount) error {
	return r.db.Create(discount).Error
}

// Update 更新折扣主体，不触碰条件
func (r *GormDiscountRepository) Update(discount *models.Discount) error {
	return r.db.Omit("Conditions").Save(discount).Error
}

// ReplaceConditions 整体替换折扣条件
func (r *GormDiscountRepository) ReplaceConditions(discountID uint, conditions []models.DiscountCondition) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("discount_id = ?", discountID).
			Delete(&models.DiscountCondition{}).Error; err != nil {
			return err
		}
		for i := range conditions {
			conditions[i].ID = 0
			conditions[i].DiscountID = discountID
		}
		if len(conditions) == 0 {
			return nil
		}
		return tx.Create(&conditions).Error
	})
}

// Delete 删除折扣及其条件
func (r *GormDiscountRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("discount_id = ?", id).
			Delete(&models.DiscountCondition{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Discount{}, id).Error
	})
}

// List 获取折扣列表
func (r *GormDiscountRepository) List(filter DiscountListFilter) ([]models.Discount, int64, error) {
	var discounts []models.Discount
	query := r.db.Model(&models.Discount{})

	if filter.Keyword != "" {
		like := "%" + filter.Keyword + "%"
		query = query.Where("name LIKE ?", like)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)
	if err := query.Preload("Conditions").Order("id desc").Find(&discounts).Error; err != nil {
		return nil, 0, err
	}
	return discounts, total, nil
}
