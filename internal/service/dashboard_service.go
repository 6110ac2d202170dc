package service

import (
	"time"

	"go-warehouse-inventory/internal/repository"
)

// DashboardStats untuk overview stats
type DashboardStats struct {
	TotalProducts     int64 `json:"total_products"`
	TotalTransactions int64 `json:"total_transactions"`
	LowStockCount     int   `json:"low_stock_count"`
	OutOfStockCount   int   `json:"out_of_stock_count"`
}

type DashboardService interface {
	GetStockMovement(days int) ([]repository.StockMovementData, error)
	GetDashboardStats() (*DashboardStats, error)
}

type dashboardService struct {
	productRepo repository.ProductRepository
	ledgerRepo  repository.LedgerRepository
	reporting   ReportingService
}

func NewDashboardService(pRepo repository.ProductRepository, lRepo repository.LedgerRepository, reporting ReportingService) DashboardService {
	return &dashboardService{
		productRepo: pRepo,
		ledgerRepo:  lRepo,
		reporting:   reporting,
	}
}

func (s *dashboardService) GetStockMovement(days int) ([]repository.StockMovementData, error) {
	endDate := time.Now()
	startDate := endDate.AddDate(0, 0, -days)

	return s.ledgerRepo.GetStockMovement(startDate, endDate)
}

func (s *dashboardService) GetDashboardStats() (*DashboardStats, error) {
	stats := &DashboardStats{}

	var err error
	if stats.TotalProducts, err = s.productRepo.Count(); err != nil {
		return nil, err
	}
	if stats.TotalTransactions, err = s.ledgerRepo.Count(); err != nil {
		return nil, err
	}

	// Low stock uses the same threshold as the reporting projections
	lowStock, err := s.reporting.LowStock()
	if err != nil {
		return nil, err
	}
	stats.LowStockCount = len(lowStock)
	for _, item := range lowStock {
		if item.Balance <= 0 {
			stats.OutOfStockCount++
		}
	}

	return stats, nil
}
