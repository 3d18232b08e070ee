package pos

import (
	"github.com/lumapos/internal/http/response"
	"github.com/lumapos/internal/repository"

	"github.com/gin-gonic/gin"
)

// ListProducts 获取在售商品列表
func (h *Handler) ListProducts(c *gin.Context) {
	page, pageSize := parsePageQuery(c)
	active := true
	filter := repository.ProductListFilter{
		Keyword:  c.Query("keyword"),
		Category: c.Query("category"),
		IsActive: &active,
		Page:     page,
		PageSize: pageSize,
	}

	products, total, err := h.ProductService.List(filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.SuccessWithPage(c, gin.H{"products": products}, response.NewPagination(page, pageSize, total))
}

// LookupProduct 按条码或编码查找商品，收银台扫码入口
func (h *Handler) LookupProduct(c *gin.Context) {
	product, err := h.ProductService.Lookup(c.Query("code"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"product": product})
}
