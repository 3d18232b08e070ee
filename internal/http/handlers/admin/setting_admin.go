package admin

import (
	"github.com/lumapos/internal/http/response"
	"github.com/lumapos/internal/service"

	"github.com/gin-gonic/gin"
)

// GetStoreConfig 获取门店配置
func (h *Handler) GetStoreConfig(c *gin.Context) {
	config, err := h.SettingService.GetStoreConfig()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"store_config": config})
}

// UpdateStoreConfig 更新门店配置
func (h *Handler) UpdateStoreConfig(c *gin.Context) {
	var config service.StoreConfig
	if err := c.ShouldBindJSON(&config); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	updated, err := h.SettingService.UpdateStoreConfig(config)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"store_config": updated})
}
