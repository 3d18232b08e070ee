package service

import "errors"

// 业务错误定义
var (
	ErrProductNotFound    = errors.New("product not found")
	ErrProductInactive    = errors.New("product is inactive")
	ErrProductSKUConflict = errors.New("product sku already exists")

	ErrCustomerNotFound = errors.New("customer not found")
	ErrCustomerRequired = errors.New("customer is required for this payment method")

	ErrDiscountNotFound      = errors.New("discount not found")
	ErrDiscountTypeInvalid   = errors.New("discount type is invalid")
	ErrConditionTypeInvalid  = errors.New("condition type is invalid")
	ErrDiscountValueInvalid  = errors.New("discount value is invalid")
	ErrFreeGiftProductsEmpty = errors.New("free gift discount requires gift products")
	ErrDiscountWindowInvalid = errors.New("discount validity window is missing or reversed")

	ErrCartEmpty            = errors.New("cart has no items")
	ErrPaymentMethodUnknown = errors.New("payment method is not supported")
	ErrInsufficientCredit   = errors.New("customer credit limit exceeded")
	ErrCardNumberInvalid    = errors.New("card number is invalid")
	ErrCashInsufficient     = errors.New("cash received is less than the amount due")

	ErrSaleNotFound = errors.New("sale not found")
	ErrSaleNotDraft = errors.New("sale is not a draft")
)
