package pos

import (
	"github.com/lumapos/internal/constants"
	"github.com/lumapos/internal/http/response"
	"github.com/lumapos/internal/models"
	"github.com/lumapos/internal/repository"
	"github.com/lumapos/internal/service"

	"github.com/gin-gonic/gin"
)

// CompleteDraftRequest 草稿转正请求
type CompleteDraftRequest struct {
	PaymentMethod  string       `json:"payment_method" binding:"required"`
	CardNumber     string       `json:"card_number"`
	CardBankName   string       `json:"card_bank_name"`
	CardHolderName string       `json:"card_holder_name"`
	CashReceived   models.Money `json:"cash_received"`
}

// SaveDraft 挂单
func (h *Handler) SaveDraft(c *gin.Context) {
	var req service.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	sale, err := h.SaleService.SaveDraft(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"sale": sale})
}

// ListDrafts 获取挂单列表
func (h *Handler) ListDrafts(c *gin.Context) {
	page, pageSize := parsePageQuery(c)
	sales, total, err := h.SaleService.List(repository.SaleListFilter{
		Status:   constants.SaleStatusDraft,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.SuccessWithPage(c, gin.H{"sales": sales}, response.NewPagination(page, pageSize, total))
}

// CompleteDraft 草稿转正式销售单
func (h *Handler) CompleteDraft(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req CompleteDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	sale, err := h.SaleService.CompleteDraft(id, service.CompleteDraftInput{
		PaymentMethod:  req.PaymentMethod,
		CardNumber:     req.CardNumber,
		CardBankName:   req.CardBankName,
		CardHolderName: req.CardHolderName,
		CashReceived:   req.CashReceived,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"sale": sale})
}
