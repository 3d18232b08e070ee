package pos

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
		errors.Is(err, service.ErrSaleNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrCartEmpty),
		errors.Is(err, service.ErrProductInactive),
		errors.Is(err, service.ErrPaymentMethodUnknown),
		errors.Is(err, service.ErrInsufficientCredit),
		errors.Is(err, service.ErrCardNumberInvalid),
		errors.Is(err, service.ErrCashInsufficient),
		errors.Is(err, service.ErrCustomerRequired),
		errors.Is(err, service.ErrSaleNotDraft):
		response.BadRequest(c, err.Error())
	default:
		response.Internal(c, "internal error")
	}
}
