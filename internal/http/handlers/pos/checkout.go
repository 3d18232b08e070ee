package pos

import (
	"github.com/lumapos/internal/http/response"
	"github.com/lumapos/internal/service"

	"github.com/gin-gonic/gin"
)

// PreviewCheckout 结账试算：返回折扣、赠品与应收金额，不落库
func (h *Handler) PreviewCheckout(c *gin.Context) {
	var req service.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	preview, err := h.SaleService.Preview(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, preview)
}

// Checkout 提交结账
func (h *Handler) Checkout(c *gin.Context) {
	var req service.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	sale, err := h.SaleService.Checkout(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"sale": sale})
}
