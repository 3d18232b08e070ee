package admin

import (
	"github.com/lumapos/internal/http/response"
	"github.com/lumapos/internal/models"
	"github.com/lumapos/internal/repository"

	"github.com/gin-gonic/gin"
)

// ListProducts 获取商品列表（含停售商品）
func (h *Handler) ListProducts(c *gin.Context) {
	page, pageSize := parsePageQuery(c)
	filter := repository.ProductListFilter{
		Keyword:  c.Query("keyword"),
		Category: c.Query("category"),
		IsActive: parseBoolQuery(c, "is_active"),
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

// GetProduct 获取商品详情
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	product, err := h.ProductService.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"product": product})
}

// CreateProduct 创建商品
func (h *Handler) CreateProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	product.ID = 0

	if err := h.ProductService.Create(&product); err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"product": product})
}

// UpdateProduct 更新商品
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	product.ID = id

	if err := h.ProductService.Update(&product); err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"product": product})
}

// DeleteProduct 删除商品
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.ProductService.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
