package admin

import (
	"github.com/lumapos/internal/http/response"
	"github.com/lumapos/internal/models"
	"github.com/lumapos/internal/repository"

	"github.com/gin-gonic/gin"
)

// SettleCreditRequest 客户还款请求
type SettleCreditRequest struct {
	Amount models.Money `json:"amount" binding:"required"`
}

// ListCustomers 获取客户列表
func (h *Handler) ListCustomers(c *gin.Context) {
	page, pageSize := parsePageQuery(c)
	filter := repository.CustomerListFilter{
		Keyword:   c.Query("keyword"),
		PriceTier: c.Query("price_tier"),
		Page:      page,
		PageSize:  pageSize,
	}

	customers, total, err := h.CustomerService.List(filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.SuccessWithPage(c, gin.H{"customers": customers}, response.NewPagination(page, pageSize, total))
}

// GetCustomer 获取客户详情
func (h *Handler) GetCustomer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	customer, err := h.CustomerService.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"customer": customer})
}

// CreateCustomer 创建客户
func (h *Handler) CreateCustomer(c *gin.Context) {
	var customer models.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	customer.ID = 0

	if err := h.CustomerService.Create(&customer); err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"customer": customer})
}

// UpdateCustomer 更新客户
func (h *Handler) UpdateCustomer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var customer models.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	customer.ID = id

	if err := h.CustomerService.Update(&customer); err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"customer": customer})
}

// DeleteCustomer 删除客户
func (h *Handler) DeleteCustomer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.CustomerService.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

// SettleCredit 客户还款
func (h *Handler) SettleCredit(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req SettleCreditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	customer, err := h.CustomerService.SettleCredit(id, req.Amount)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"customer": customer})
}
