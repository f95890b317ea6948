package service

import (
	"context"
	"time"

	"storefront-api/internal/repository"
)

type DashboardService interface {
	GetDashboardStats(ctx context.Context) (*DashboardStats, error)
	GetDailySales(ctx context.Context, days int) ([]DailySales, error)
}

// DashboardStats is the admin overview.
type DashboardStats struct {
	repository.CatalogStats
	repository.OrderSummary
	TotalLeads int64 `json:"total_leads"`
}

// DailySales is one day bucket for the sales chart.
type DailySales struct {
	Date    string `json:"date"`
	Orders  int    `json:"orders"`
	Revenue int64  `json:"revenue"`
}

const (
	defaultSalesDays = 7
	maxSalesDays     = 366
)

type dashboardService struct {
	productRepo       repository.ProductRepository
	orderRepo         repository.OrderRepository
	leadRepo          repository.LeadRepository
	lowStockThreshold int
}

func NewDashboardService(pRepo repository.ProductRepository, oRepo repository.OrderRepository, lRepo repository.LeadRepository, lowStockThreshold int) DashboardService {
	return &dashboardService{
		productRepo:       pRepo,
		orderRepo:         oRepo,
		leadRepo:          lRepo,
		lowStockThreshold: lowStockThreshold,
	}
}

func (s *dashboardService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	catalog, err := s.productRepo.Stats(ctx, s.lowStockThreshold)
	if err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.Summary(ctx)
	if err != nil {
		return nil, err
	}
	leads, err := s.leadRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &DashboardStats{CatalogStats: *catalog, OrderSummary: *orders, TotalLeads: leads}, nil
}

// GetDailySales buckets the last days of orders by UTC date, oldest first,
// including the current day. Days without orders are zero.
func (s *dashboardService) GetDailySales(ctx context.Context, days int) ([]DailySales, error) {
	if days <= 0 || days > maxSalesDays {
		days = defaultSalesDays
	}
	today := nowFunc().Truncate(24 * time.Hour)
	start := today.AddDate(0, 0, -(days - 1))

	orders, err := s.orderRepo.FindSince(ctx, start)
	if err != nil {
		return nil, err
	}

	buckets := make([]DailySales, days)
	index := make(map[string]int, days)
	for i := range buckets {
		date := start.AddDate(0, 0, i).Format("2006-01-02")
		buckets[i].Date = date
		index[date] = i
	}
	for _, o := range orders {
		i, ok := index[o.CreatedAt.UTC().Format("2006-01-02")]
		if !ok {
			continue
		}
		buckets[i].Orders++
		buckets[i].Revenue += o.Total
	}
	return buckets, nil
}
