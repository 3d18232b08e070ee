package pos

import (
	"github.com/lumapos/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetStoreConfig 获取收银终端需要的门店配置。
// 发票计数器属于内部状态，不对终端暴露。
func (h *Handler) GetStoreConfig(c *gin.Context) {
	config, err := h.SettingService.GetStoreConfig()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{
		"store_name":     config.StoreName,
		"currency":       config.Currency,
		"tax_rate":       config.TaxRatePercent,
		"invoice_prefix": config.InvoicePrefix,
	})
}
