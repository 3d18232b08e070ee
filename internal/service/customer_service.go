package service

import (
	"strings"

	"github.com/lumapos/internal/constants"
	"github.com/lumapos/internal/models"
	"github.com/lumapos/internal/repository"

	"github.com/shopspring/decimal"
)

// CustomerService 客户业务服务
type CustomerService struct {
	repo repository.CustomerRepository
}

// NewCustomerService 创建客户服务
func NewCustomerService(repo repository.CustomerRepository) *CustomerService {
	return &CustomerService{repo: repo}
}

// GetByID 获取客户
func (s *CustomerService) GetByID(id uint) (*models.Customer, error) {
	customer, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}
	return customer, nil
}

// List 获取客户列表
func (s *CustomerService) List(filter repository.CustomerListFilter) ([]models.Customer, int64, error) {
	return s.repo.List(filter)
}

// Create 创建客户
func (s *CustomerService) Create(customer *models.Customer) error {
	if strings.TrimSpace(customer.PriceTier) == "" {
		customer.PriceTier = constants.PriceTierStandard
	}
	return s.repo.Create(customer)
}

// Update 更新客户
func (s *CustomerService) Update(customer *models.Customer) error {
	existing, err := s.repo.GetByID(customer.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrCustomerNotFound
	}
	// 信用占用与累计消费由结账流程维护，不接受外部改写
	customer.CreditUsed = existing.CreditUsed
	customer.TotalPurchases = existing.TotalPurchases
	customer.LastPurchaseAt = existing.LastPurchaseAt
	return s.repo.Update(customer)
}

// Delete 删除客户
func (s *CustomerService) Delete(id uint) error {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrCustomerNotFound
	}
	return s.repo.Delete(id)
}

// SettleCredit 客户还款，释放信用占用
func (s *CustomerService) SettleCredit(id uint, amount models.Money) (*models.Customer, error) {
	customer, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	remaining := customer.CreditUsed.Decimal.Sub(amount.Decimal)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	customer.CreditUsed = models.NewMoneyFromDecimal(remaining)
	if err := s.repo.Update(customer); err != nil {
		return nil, err
	}
	return customer, nil
}
