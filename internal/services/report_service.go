package services

import (
	"math"
	"time"

	"stockroom/internal/apperrors"
	"stockroom/internal/domain"
	"stockroom/internal/repos"
)

// ReportService assembles the read-only aggregate views. Nothing in
// here mutates state.
type ReportService struct {
	Reports *repos.ReportRepo
}

func NewReportService(reports *repos.ReportRepo) *ReportService {
	return &ReportService{Reports: reports}
}

const (
	DeadStockWindowDays = 90
	DefaultWindowDays   = 30
	DefaultReportLimit  = 10
)

// cutoff formats a trailing-window lower bound the way sqlite stores
// CURRENT_TIMESTAMP.
func cutoff(days int) string {
	return time.Now().UTC().AddDate(0, 0, -days).Format("2006-01-02 15:04:05")
}

func (s *ReportService) Dashboard() (domain.DashboardSummary, error) {
	var out domain.DashboardSummary
	c90 := cutoff(DeadStockWindowDays)

	total, err := s.Reports.TotalSKUs()
	if err != nil {
		return out, apperrors.ErrStorage(err)
	}
	stockValue, err := s.Reports.StockValue()
	if err != nil {
		return out, apperrors.ErrStorage(err)
	}
	reorder, err := s.Reports.ReorderCount()
	if err != nil {
		return out, apperrors.ErrStorage(err)
	}
	outOfStock, err := s.Reports.OutOfStockCount()
	if err != nil {
		return out, apperrors.ErrStorage(err)
	}
	deadCount, err := s.Reports.DeadStockCount(c90)
	if err != nil {
		return out, apperrors.ErrStorage(err)
	}
	deadValue, err := s.Reports.DeadStockValue(c90)
	if err != nil {
		return out, apperrors.ErrStorage(err)
	}
	recent, err := s.Reports.RecentTransactions(10)
	if err != nil {
		return out, apperrors.ErrStorage(err)
	}
	today, err := s.Reports.TodayStats()
	if err != nil {
		return out, apperrors.ErrStorage(err)
	}
	cats, err := s.Reports.CategoryStats()
	if err != nil {
		return out, apperrors.ErrStorage(err)
	}

	out.Overview = domain.DashboardOverview{
		TotalSKUs:      total,
		StockValue:     int64(math.Round(stockValue)),
		ReorderCount:   reorder,
		OutOfStock:     outOfStock,
		DeadStockCount: deadCount,
		DeadStockValue: int64(math.Round(deadValue)),
	}
	out.RecentTransactions = recent
	out.TodayStats = today
	out.CategoryStats = cats
	return out, nil
}

type DeadStockSummary struct {
	Count      int   `json:"count"`
	TotalValue int64 `json:"totalValue"`
}

func (s *ReportService) DeadStock(windowDays int) ([]domain.DeadStockItem, DeadStockSummary, error) {
	if windowDays <= 0 {
		windowDays = DeadStockWindowDays
	}
	items, err := s.Reports.DeadStock(cutoff(windowDays))
	if err != nil {
		return nil, DeadStockSummary{}, apperrors.ErrStorage(err)
	}
	total := 0.0
	for _, it := range items {
		total += it.StockValue
	}
	return items, DeadStockSummary{Count: len(items), TotalValue: int64(math.Round(total))}, nil
}

type ReorderSummary struct {
	Count      int `json:"count"`
	OutOfStock int `json:"outOfStock"`
}

func (s *ReportService) Reorder() ([]domain.ReorderItem, ReorderSummary, error) {
	items, err := s.Reports.Reorder()
	if err != nil {
		return nil, ReorderSummary{}, apperrors.ErrStorage(err)
	}
	sum := ReorderSummary{Count: len(items)}
	for _, it := range items {
		if it.CurrentQuantity == 0 {
			sum.OutOfStock++
		}
	}
	return items, sum, nil
}

func (s *ReportService) TopSelling(windowDays, limit int) ([]domain.TopSellingItem, error) {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	if limit <= 0 {
		limit = DefaultReportLimit
	}
	items, err := s.Reports.TopSelling(cutoff(windowDays), limit)
	if err != nil {
		return nil, apperrors.ErrStorage(err)
	}
	return items, nil
}

func (s *ReportService) SlowMoving(windowDays, limit int) ([]domain.SlowMovingItem, error) {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	if limit <= 0 {
		limit = DefaultReportLimit
	}
	items, err := s.Reports.SlowMoving(cutoff(windowDays), limit)
	if err != nil {
		return nil, apperrors.ErrStorage(err)
	}
	return items, nil
}
