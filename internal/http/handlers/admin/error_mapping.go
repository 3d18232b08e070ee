package admin

import (
	"errors"

	"github.com/lumapos/internal/http/response"
	"github.com/lumapos/internal/service"

	"github.com/gin-gonic/gin"
)

// respondServiceError 将业务错误映射为统一响应
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrCustomerNotFound),
		errors.Is(err, service.ErrDiscountNotFound),
		errors.Is(err, service.ErrSaleNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrProductSKUConflict):
		response.Error(c, response.CodeConflict, err.Error())
	case errors.Is(err, service.ErrDiscountTypeInvalid),
		errors.Is(err, service.ErrDiscountValueInvalid),
		errors.Is(err, service.ErrConditionTypeInvalid),
		errors.Is(err, service.ErrFreeGiftProductsEmpty),
		errors.Is(err, service.ErrDiscountWindowInvalid):
		response.BadRequest(c, err.Error())
	default:
		response.Internal(c, "internal error")
	}
}
