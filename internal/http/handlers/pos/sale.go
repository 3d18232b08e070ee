package pos

import (
	"time"

	"github.com/lumapos/internal/http/response"
	"github.com/lumapos/internal/repository"

	"github.com/gin-gonic/gin"
)

// ListSales 获取销售单列表
func (h *Handler) ListSales(c *gin.Context) {
	page, pageSize := parsePageQuery(c)
	filter := repository.SaleListFilter{
		Status:        c.Query("status"),
		PaymentMethod: c.Query("payment_method"),
		Page:          page,
		PageSize:      pageSize,
	}
	if raw := c.Query("start_at"); raw != "" {
		if startAt, err := time.Parse(time.RFC3339, raw); err == nil {
			filter.StartAt = &startAt
		}
	}
	if raw := c.Query("end_at"); raw != "" {
		if endAt, err := time.Parse(time.RFC3339, raw); err == nil {
			filter.EndAt = &endAt
		}
	}

	sales, total, err := h.SaleService.List(filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.SuccessWithPage(c, gin.H{"sales": sales}, response.NewPagination(page, pageSize, total))
}

// GetSale 获取销售单详情
func (h *Handler) GetSale(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	sale, err := h.SaleService.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"sale": sale})
}
