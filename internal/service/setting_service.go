package service

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/lumapos/internal/constants"
	"github.com/lumapos/internal/models"
	"github.com/lumapos/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// StoreConfig 门店运行配置
type StoreConfig struct {
	StoreName      string          `json:"store_name"`
	Currency       string          `json:"currency"`
	TaxRatePercent decimal.Decimal `json:"tax_rate"`
	InvoicePrefix  string          `json:"invoice_prefix"`
	InvoiceCounter int             `json:"invoice_counter"`
}

// SettingService 设置业务服务
type SettingService struct {
	repo repository.SettingRepository
}

// NewSettingService 创建设置服务
func NewSettingService(repo repository.SettingRepository) *SettingService {
	return &SettingService{repo: repo}
}

// GetStoreConfig 获取门店配置，缺失字段回落到默认值
func (s *SettingService) GetStoreConfig() (*StoreConfig, error) {
	setting, err := s.repo.GetByKey(constants.SettingKeyStoreConfig)
	if err != nil {
		return nil, err
	}
	return decodeStoreConfig(setting), nil
}

// UpdateStoreConfig 写入门店配置。发票计数器只增不减，防止回拨导致发票号重复。
func (s *SettingService) UpdateStoreConfig(config StoreConfig) (*StoreConfig, error) {
	current, err := s.GetStoreConfig()
	if err != nil {
		return nil, err
	}
	if config.InvoiceCounter < current.InvoiceCounter {
		config.InvoiceCounter = current.InvoiceCounter
	}
	if strings.TrimSpace(config.Currency) == "" {
		config.Currency = current.Currency
	}
	if strings.TrimSpace(config.InvoicePrefix) == "" {
		config.InvoicePrefix = current.InvoicePrefix
	}
	if config.TaxRatePercent.IsNegative() {
		config.TaxRatePercent = decimal.Zero
	}

	if _, err := s.repo.Upsert(constants.SettingKeyStoreConfig, encodeStoreConfig(config)); err != nil {
		return nil, err
	}
	return &config, nil
}

// EnsureStoreConfig 首次启动时写入门店配置初始值，已存在则不覆盖
func (s *SettingService) EnsureStoreConfig(defaults StoreConfig) error {
	setting, err := s.repo.GetByKey(constants.SettingKeyStoreConfig)
	if err != nil {
		return err
	}
	if setting != nil {
		return nil
	}
	if strings.TrimSpace(defaults.Currency) == "" {
		defaults.Currency = constants.StoreCurrencyDefault
	}
	if strings.TrimSpace(defaults.InvoicePrefix) == "" {
		defaults.InvoicePrefix = constants.InvoicePrefixDefault
	}
	if defaults.InvoiceCounter <= 0 {
		defaults.InvoiceCounter = constants.InvoiceCounterDefault
	}
	_, err = s.repo.Upsert(constants.SettingKeyStoreConfig, encodeStoreConfig(defaults))
	return err
}

// ReserveInvoiceNumber 在事务内占用下一个发票号并写回计数器。
// 必须与销售单写入处于同一事务；行锁读保证并发结账不会取到同一个计数值。
func (s *SettingService) ReserveInvoiceNumber(tx *gorm.DB) (string, error) {
	repo := s.repo.WithTx(tx)
	setting, err := repo.GetByKeyForUpdate(constants.SettingKeyStoreConfig)
	if err != nil {
		return "", err
	}
	config := decodeStoreConfig(setting)

	invoiceNumber, next := NextInvoiceNumber(config.InvoicePrefix, config.InvoiceCounter)
	config.InvoiceCounter = next
	if _, err := repo.Upsert(constants.SettingKeyStoreConfig, encodeStoreConfig(*config)); err != nil {
		return "", err
	}
	return invoiceNumber, nil
}

// decodeStoreConfig 解析门店配置，异常字段按默认值处理
func decodeStoreConfig(setting *models.Setting) *StoreConfig {
	config := &StoreConfig{
		Currency:       constants.StoreCurrencyDefault,
		TaxRatePercent: decimal.Zero,
		InvoicePrefix:  constants.InvoicePrefixDefault,
		InvoiceCounter: constants.InvoiceCounterDefault,
	}
	if setting == nil || setting.ValueJSON == nil {
		return config
	}
	value := setting.ValueJSON

	if raw, ok := value[constants.SettingFieldStoreName]; ok {
		if name, ok := raw.(string); ok {
			config.StoreName = name
		}
	}
	if raw, ok := value[constants.SettingFieldCurrency]; ok {
		if currency, ok := raw.(string); ok && strings.TrimSpace(currency) != "" {
			config.Currency = currency
		}
	}
	if raw, ok := value[constants.SettingFieldInvoicePrefix]; ok {
		if prefix, ok := raw.(string); ok && strings.TrimSpace(prefix) != "" {
			config.InvoicePrefix = prefix
		}
	}
	if raw, ok := value[constants.SettingFieldTaxRate]; ok {
		if rate, err := parseSettingDecimal(raw); err == nil && !rate.IsNegative() {
			config.TaxRatePercent = rate
		}
	}
	if raw, ok := value[constants.SettingFieldInvoiceCounter]; ok {
		if counter, err := parseSettingInt(raw); err == nil && counter > 0 {
			config.InvoiceCounter = counter
		}
	}
	return config
}

// encodeStoreConfig 序列化门店配置
func encodeStoreConfig(config StoreConfig) models.JSON {
	return models.JSON{
		constants.SettingFieldStoreName:      config.StoreName,
		constants.SettingFieldCurrency:       config.Currency,
		constants.SettingFieldTaxRate:        config.TaxRatePercent.InexactFloat64(),
		constants.SettingFieldInvoicePrefix:  config.InvoicePrefix,
		constants.SettingFieldInvoiceCounter: config.InvoiceCounter,
	}
}

func parseSettingInt(value interface{}) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return int(i), nil
		}
		if f, err := v.Float64(); err == nil {
			return int(f), nil
		}
		return 0, fmt.Errorf("invalid json number")
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return 0, fmt.Errorf("empty string")
		}
		return strconv.Atoi(trimmed)
	default:
		return 0, fmt.Errorf("unsupported setting value type %T", value)
	}
}

func parseSettingDecimal(value interface{}) (decimal.Decimal, error) {
	switch v := value.(type) {
	case float64:
		return decimal.NewFromFloat(v), nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int64:
		return decimal.NewFromInt(v), nil
	case json.Number:
		return decimal.NewFromString(v.String())
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return decimal.Zero, fmt.Errorf("empty string")
		}
		return decimal.NewFromString(trimmed)
	default:
		return decimal.Zero, fmt.Errorf("unsupported setting value type %T", value)
	}
}
