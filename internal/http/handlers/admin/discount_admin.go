package admin

import (
	"github.com/lumapos/internal/http/response"
	"github.com/lumapos/internal/models"
	"github.com/lumapos/internal/repository"

	"github.com/gin-gonic/gin"
)

// SetDiscountActiveRequest 折扣启停请求
type SetDiscountActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// ListDiscounts 获取折扣列表
func (h *Handler) ListDiscounts(c *gin.Context) {
	page, pageSize := parsePageQuery(c)
	filter := repository.DiscountListFilter{
		Keyword:  c.Query("keyword"),
		Type:     c.Query("type"),
		IsActive: parseBoolQuery(c, "is_active"),
		Page:     page,
		PageSize: pageSize,
	}

	discounts, total, err := h.DiscountAdminService.List(filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.SuccessWithPage(c, gin.H{"discounts": discounts}, response.NewPagination(page, pageSize, total))
}

// GetDiscount 获取折扣详情
func (h *Handler) GetDiscount(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	discount, err := h.DiscountAdminService.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"discount": discount})
}

// CreateDiscount 创建折扣及其条件
func (h *Handler) CreateDiscount(c *gin.Context) {
	var discount models.Discount
	if err := c.ShouldBindJSON(&discount); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	discount.ID = 0

	if err := h.DiscountAdminService.Create(&discount); err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"discount": discount})
}

// UpdateDiscount 更新折扣，条件整体替换
func (h *Handler) UpdateDiscount(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var discount models.Discount
	if err := c.ShouldBindJSON(&discount); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	discount.ID = id

	if err := h.DiscountAdminService.Update(&discount); err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"discount": discount})
}

// DeleteDiscount 删除折扣
func (h *Handler) DeleteDiscount(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.DiscountAdminService.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

// SetDiscountActive 启用或停用折扣
func (h *Handler) SetDiscountActive(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req SetDiscountActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IsActive == nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	discount, err := h.DiscountAdminService.SetActive(id, *req.IsActive)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"discount": discount})
}
