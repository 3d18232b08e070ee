package pos

import (
	"github.com/lumapos/internal/http/response"
	"github.com/lumapos/internal/repository"

	"github.com/gin-gonic/gin"
)

// ListCustomers 查询客户，供收银台挂账与会员折扣选择客户
func (h *Handler) ListCustomers(c *gin.Context) {
	page, pageSize := parsePageQuery(c)
	filter := repository.CustomerListFilter{
		Keyword:  c.Query("keyword"),
		Page:     page,
		PageSize: pageSize,
	}

	customers, total, err := h.CustomerService.List(filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.SuccessWithPage(c, gin.H{"customers": customers}, response.NewPagination(page, pageSize, total))
}

// GetCustomer 获取单个客户，附带可用信用额度
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
	response.Success(c, gin.H{
		"customer":         customer,
		"credit_available": customer.CreditAvailable(),
	})
}
