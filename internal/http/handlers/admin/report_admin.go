package admin

import (
	"time"

	"github.com/lumapos/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetSalesSummary 获取时间段销售汇总。
// 缺省统计当天，start_at/end_at 为 RFC3339 格式。
func (h *Handler) GetSalesSummary(c *gin.Context) {
	now := time.Now()
	startAt := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	endAt := startAt.Add(24 * time.Hour)

	if raw := c.Query("start_at"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			response.BadRequest(c, "invalid start_at")
			return
		}
		startAt = parsed
	}
	if raw := c.Query("end_at"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			response.BadRequest(c, "invalid end_at")
			return
		}
		endAt = parsed
	}
	if !endAt.After(startAt) {
		response.BadRequest(c, "end_at must be after start_at")
		return
	}

	summary, err := h.ReportService.GetSummary(c.Request.Context(), startAt, endAt)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"summary": summary})
}
