package service

import (
	"context"
	"time"

	"github.com/lumapos/internal/cache"
	"github.com/lumapos/internal/repository"
)

const salesSummaryCacheTTL = 5 * time.Minute

// SalesSummary 销售汇总报表
type SalesSummary struct {
	StartAt       time.Time                          `json:"start_at"`
	EndAt         time.Time                          `json:"end_at"`
	SalesCount    int64                              `json:"sales_count"`
	GrossRevenue  float64                            `json:"gross_revenue"`
	DiscountTotal float64                            `json:"discount_total"`
	TaxTotal      float64                            `json:"tax_total"`
	ItemsSold     int64                              `json:"items_sold"`
	TopProducts   []repository.SaleProductRankingRow `json:"top_products"`
}

// ReportService 报表服务
type ReportService struct {
	saleRepo repository.SaleRepository
}

// NewReportService 创建报表服务
func NewReportService(saleRepo repository.SaleRepository) *ReportService {
	return &ReportService{saleRepo: saleRepo}
}

// GetSummary 获取时间段销售汇总，结果短期缓存
func (s *ReportService) GetSummary(ctx context.Context, startAt, endAt time.Time) (*SalesSummary, error) {
	var summary SalesSummary
	err := cache.FetchJSON(ctx, cache.SalesSummaryKey(startAt, endAt), salesSummaryCacheTTL, &summary,
		func() (interface{}, error) {
			return s.buildSummary(startAt, endAt)
		})
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

// RefreshDailySummary 重建指定日期的汇总缓存，由队列任务在销售落库后调用
func (s *ReportService) RefreshDailySummary(ctx context.Context, day time.Time) error {
	startAt := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	endAt := startAt.Add(24 * time.Hour)

	summary, err := s.buildSummary(startAt, endAt)
	if err != nil {
		return err
	}
	return cache.SetJSON(ctx, cache.SalesSummaryKey(startAt, endAt), summary, salesSummaryCacheTTL)
}

func (s *ReportService) buildSummary(startAt, endAt time.Time) (*SalesSummary, error) {
	row, err := s.saleRepo.GetSummary(startAt, endAt)
	if err != nil {
		return nil, err
	}
	topProducts, err := s.saleRepo.GetTopProducts(startAt, endAt, 10)
	if err != nil {
		return nil, err
	}
	return &SalesSummary{
		StartAt:       startAt,
		EndAt:         endAt,
		SalesCount:    row.SalesCount,
		GrossRevenue:  row.GrossRevenue,
		DiscountTotal: row.DiscountTotal,
		TaxTotal:      row.TaxTotal,
		ItemsSold:     row.ItemsSold,
		TopProducts:   topProducts,
	}, nil
}

