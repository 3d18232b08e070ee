package constants

// 折扣类型常量
const (
	DiscountTypePercentage = "percentage"
	DiscountTypeFixed      = "fixed"
	DiscountTypeFreeGift   = "free_gift"
	// DiscountTypeBogo 保留类型，暂无计算路径
	DiscountTypeBogo = "bogo"
)

// 折扣条件类型常量
const (
	ConditionTypeMinAmount        = "min_amount"
	ConditionTypeSpecificProducts = "specific_products"
	ConditionTypePaymentMethod    = "payment_method"
	ConditionTypeCustomerTier     = "customer_tier"
	ConditionTypeCardType         = "card_type"
	ConditionTypeBankName         = "bank_name"
)

// 行级手动折扣类型常量
const (
	ManualDiscountPercentage = "percentage"
	ManualDiscountFixed      = "fixed"
)

// 支付方式常量
const (
	PaymentMethodCash    = "cash"
	PaymentMethodCard    = "card"
	PaymentMethodDigital = "digital"
	PaymentMethodCredit  = "credit"
)

// 卡种常量
const (
	CardTypeVisa       = "visa"
	CardTypeMastercard = "mastercard"
	CardTypeAmex       = "amex"
	CardTypeDiscover   = "discover"
	CardTypeUnknown    = "unknown"
)

// 销售单状态常量
const (
	SaleStatusCompleted = "completed"
	SaleStatusCredit    = "credit"
	SaleStatusDraft     = "draft"
	SaleStatusRefunded  = "refunded"
)

// 客户价格层级常量
const (
	PriceTierStandard  = "standard"
	PriceTierPremium   = "premium"
	PriceTierVIP       = "vip"
	PriceTierWholesale = "wholesale"
)

// 设置键常量
const (
	SettingKeyStoreConfig = "store_config"
)

// 门店设置字段常量
const (
	SettingFieldStoreName      = "store_name"
	SettingFieldTaxRate        = "tax_rate"
	SettingFieldCurrency       = "currency"
	SettingFieldInvoicePrefix  = "invoice_prefix"
	SettingFieldInvoiceCounter = "invoice_counter"
)

// 门店设置默认值
const (
	StoreCurrencyDefault  = "LKR"
	InvoicePrefixDefault  = "INV"
	InvoiceCounterDefault = 1000
)

// 队列常量
const (
	QueueDefault     = "default"
	TaskSaleRecorded = "pos:sale_recorded"
)
