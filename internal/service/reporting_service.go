package service

import (
	"go-warehouse-inventory/internal/repository"
)

// LowStockThreshold is a fixed policy constant: balances at or below it
// count as low stock.
const LowStockThreshold = 5

const (
	StatusInStock    = "In Stock"
	StatusLowStock   = "Low Stock"
	StatusOutOfStock = "Out of Stock"
)

// InventoryItem is one reporting row: a product, its derived balance
// and the stock status label.
type InventoryItem struct {
	repository.InventoryRow
	Status string `json:"status"`
}

type ReportingService interface {
	CurrentInventory() ([]InventoryItem, error)
	LowStock() ([]InventoryItem, error)
	OutOfStock() ([]InventoryItem, error)
}

type reportingService struct {
	ledgerRepo repository.LedgerRepository
}

func NewReportingService(lRepo repository.LedgerRepository) ReportingService {
	return &reportingService{ledgerRepo: lRepo}
}

// StatusFor labels a balance. Zero and negative balances are out of
// stock, not merely low.
func StatusFor(balance int64) string {
	switch {
	case balance <= 0:
		return StatusOutOfStock
	case balance <= LowStockThreshold:
		return StatusLowStock
	default:
		return StatusInStock
	}
}

func (s *reportingService) inventory(keep func(balance int64) bool) ([]InventoryItem, error) {
	rows, err := s.ledgerRepo.CurrentInventory()
	if err != nil {
		return nil, err
	}

	items := make([]InventoryItem, 0, len(rows))
	for _, row := range rows {
		if !keep(row.Balance) {
			continue
		}
		items = append(items, InventoryItem{
			InventoryRow: row,
			Status:       StatusFor(row.Balance),
		})
	}
	return items, nil
}

func (s *reportingService) CurrentInventory() ([]InventoryItem, error) {
	return s.inventory(func(int64) bool { return true })
}

func (s *reportingService) LowStock() ([]InventoryItem, error) {
	return s.inventory(func(balance int64) bool { return balance <= LowStockThreshold })
}

func (s *reportingService) OutOfStock() ([]InventoryItem, error) {
	return s.inventory(func(balance int64) bool { return balance <= 0 })
}
