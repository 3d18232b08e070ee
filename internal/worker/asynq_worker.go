package worker

import (
	"context"
	"encoding/json"

	"github.com/lumapos/internal/logger"
	"github.com/lumapos/internal/provider"
	"github.com/lumapos/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskSaleRecorded, c.handleSaleRecorded)
}

// handleSaleRecorded 销售落库后刷新当日汇总缓存
func (c *Consumer) handleSaleRecorded(ctx context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_sale_recorded_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.SaleRecordedPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_sale_recorded_unmarshal_failed", "error", err)
		return err
	}
	if payload.SaleID == 0 {
		logger.Debugw("worker_sale_recorded_skip_invalid_payload", "sale_id", payload.SaleID)
		return nil
	}

	sale, err := c.SaleRepo.GetByID(payload.SaleID)
	if err != nil {
		logger.Warnw("worker_sale_recorded_fetch_failed", "sale_id", payload.SaleID, "error", err)
		return err
	}
	if sale == nil {
		logger.Debugw("worker_sale_recorded_skip_not_found", "sale_id", payload.SaleID)
		return nil
	}
	if c.ReportService == nil {
		logger.Warnw("worker_sale_recorded_skip_report_service_nil", "sale_id", payload.SaleID)
		return nil
	}

	if err := c.ReportService.RefreshDailySummary(ctx, sale.SoldAt); err != nil {
		logger.Warnw("worker_sale_recorded_refresh_summary_failed",
			"sale_id", payload.SaleID,
			"invoice_number", payload.InvoiceNumber,
			"error", err,
		)
		return err
	}
	return nil
}
