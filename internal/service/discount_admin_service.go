package service

import (
	"strings"

	"github.com/lumapos/internal/constants"
	"github.com/lumapos/internal/models"
	"github.com/lumapos/internal/repository"

	"github.com/shopspring/decimal"
)

// DiscountAdminService 折扣管理服务
type DiscountAdminService struct {
	repo repository.DiscountRepository
}

// NewDiscountAdminService 创建折扣管理服务
func NewDiscountAdminService(repo repository.DiscountRepository) *DiscountAdminService {
	return &DiscountAdminService{repo: repo}
}

// GetByID 获取折扣
func (s *DiscountAdminService) GetByID(id uint) (*models.Discount, error) {
	discount, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if discount == nil {
		return nil, ErrDiscountNotFound
	}
	return discount, nil
}

// List 获取折扣列表
func (s *DiscountAdminService) List(filter repository.DiscountListFilter) ([]models.Discount, int64, error) {
	return s.repo.List(filter)
}

// Create 创建折扣及其条件
func (s *DiscountAdminService) Create(discount *models.Discount) error {
	if err := validateDiscount(discount); err != nil {
		return err
	}
	return s.repo.Create(discount)
}

// Update 更新折扣主体并整体替换条件
func (s *DiscountAdminService) Update(discount *models.Discount) error {
	existing, err := s.repo.GetByID(discount.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrDiscountNotFound
	}
	if err := validateDiscount(discount); err != nil {
		return err
	}

	conditions := discount.Conditions
	if err := s.repo.Update(discount); err != nil {
		return err
	}
	return s.repo.ReplaceConditions(discount.ID, conditions)
}

// Delete 删除折扣
func (s *DiscountAdminService) Delete(id uint) error {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrDiscountNotFound
	}
	return s.repo.Delete(id)
}

// SetActive 启用或停用折扣
func (s *DiscountAdminService) SetActive(id uint, active bool) (*models.Discount, error) {
	discount, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	discount.IsActive = active
	if err := s.repo.Update(discount); err != nil {
		return nil, err
	}
	return discount, nil
}

// validateDiscount 校验折扣数据，拦截评估阶段无法处理的配置
func validateDiscount(discount *models.Discount) error {
	// 有效期缺失在评估阶段按不生效处理，录入时直接拒绝
	if discount.ValidFrom == nil || discount.ValidTo == nil {
		return ErrDiscountWindowInvalid
	}
	if discount.ValidTo.Before(*discount.ValidFrom) {
		return ErrDiscountWindowInvalid
	}

	switch discount.Type {
	case constants.DiscountTypePercentage:
		if discount.Value.Decimal.LessThanOrEqual(decimal.Zero) ||
			discount.Value.Decimal.GreaterThan(decimal.NewFromInt(100)) {
			return ErrDiscountValueInvalid
		}
	case constants.DiscountTypeFixed:
		if discount.Value.Decimal.LessThanOrEqual(decimal.Zero) {
			return ErrDiscountValueInvalid
		}
	case constants.DiscountTypeFreeGift:
		if len(discount.FreeGiftProducts) == 0 {
			return ErrFreeGiftProductsEmpty
		}
	case constants.DiscountTypeBogo:
		// 保留类型，允许录入但评估阶段跳过
	default:
		return ErrDiscountTypeInvalid
	}

	for _, condition := range discount.Conditions {
		if !isKnownConditionType(condition.Type) {
			return ErrConditionTypeInvalid
		}
	}
	return nil
}

func isKnownConditionType(conditionType string) bool {
	switch strings.TrimSpace(conditionType) {
	case constants.ConditionTypeMinAmount,
		constants.ConditionTypeSpecificProducts,
		constants.ConditionTypePaymentMethod,
		constants.ConditionTypeCustomerTier,
		constants.ConditionTypeCardType,
		constants.ConditionTypeBankName:
		return true
	default:
		return false
	}
}
