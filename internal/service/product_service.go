package service

import (
	"strings"

	"github.com/lumapos/internal/models"
	"github.com/lumapos/internal/repository"
)

// ProductService 商品业务服务
type ProductService struct {
	repo repository.ProductRepository
}

// NewProductService 创建商品服务
func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

// GetByID 获取商品
func (s *ProductService) GetByID(id uint) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// Lookup 按条码或编码查找商品，供收银台扫码使用
func (s *ProductService) Lookup(code string) (*models.Product, error) {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return nil, ErrProductNotFound
	}
	product, err := s.repo.GetByBarcode(trimmed)
	if err != nil {
		return nil, err
	}
	if product == nil {
		product, err = s.repo.GetBySKU(trimmed)
		if err != nil {
			return nil, err
		}
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// List 获取商品列表
func (s *ProductService) List(filter repository.ProductListFilter) ([]models.Product, int64, error) {
	return s.repo.List(filter)
}

// Create 创建商品，编码唯一
func (s *ProductService) Create(product *models.Product) error {
	if strings.TrimSpace(product.SKU) != "" {
		existing, err := s.repo.GetBySKU(product.SKU)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrProductSKUConflict
		}
	}
	return s.repo.Create(product)
}

// Update 更新商品
func (s *ProductService) Update(product *models.Product) error {
	existing, err := s.repo.GetByID(product.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrProductNotFound
	}
	if strings.TrimSpace(product.SKU) != "" && product.SKU != existing.SKU {
		conflict, err := s.repo.GetBySKU(product.SKU)
		if err != nil {
			return err
		}
		if conflict != nil && conflict.ID != product.ID {
			return ErrProductSKUConflict
		}
	}
	return s.repo.Update(product)
}

// Delete 删除商品
func (s *ProductService) Delete(id uint) error {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrProductNotFound
	}
	return s.repo.Delete(id)
}
