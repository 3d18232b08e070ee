package queue

import (
	"encoding/json"

	"github.com/lumapos/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskSaleRecorded 销售落库事件任务
	TaskSaleRecorded = constants.TaskSaleRecorded
)

// SaleRecordedPayload 销售落库任务载荷
type SaleRecordedPayload struct {
	SaleID        uint   `json:"sale_id"`
	InvoiceNumber string `json:"invoice_number"`
}

// NewSaleRecordedTask 创建销售落库任务
func NewSaleRecordedTask(payload SaleRecordedPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskSaleRecorded, body), nil
}
