package service

import (
	"testing"

	"go-warehouse-inventory/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		balance int64
		status  string
	}{
		{-3, StatusOutOfStock},
		{0, StatusOutOfStock},
		{1, StatusLowStock},
		{5, StatusLowStock},
		{6, StatusInStock},
		{100, StatusInStock},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.status, StatusFor(tc.balance), "balance %d", tc.balance)
	}
}

func newReportingForTest(rows []repository.InventoryRow) ReportingService {
	ledgerRepo := newFakeLedgerRepo()
	ledgerRepo.inventory = rows
	return NewReportingService(ledgerRepo)
}

func inventoryRows() []repository.InventoryRow {
	return []repository.InventoryRow{
		{ProductID: uuid.New(), Name: "Gone", SKU: "GONE-1", Balance: 0},
		{ProductID: uuid.New(), Name: "Plenty", SKU: "PLENTY-1", Balance: 80},
		{ProductID: uuid.New(), Name: "Scarce", SKU: "SCARCE-1", Balance: 3},
	}
}

func TestCurrentInventory_LabelsEveryRow(t *testing.T) {
	svc := newReportingForTest(inventoryRows())

	items, err := svc.CurrentInventory()
	require.NoError(t, err)
	require.Len(t, items, 3)

	statuses := map[string]string{}
	for _, item := range items {
		statuses[item.SKU] = item.Status
	}
	assert.Equal(t, StatusOutOfStock, statuses["GONE-1"])
	assert.Equal(t, StatusInStock, statuses["PLENTY-1"])
	assert.Equal(t, StatusLowStock, statuses["SCARCE-1"])
}

func TestLowStock_IncludesOutOfStock(t *testing.T) {
	svc := newReportingForTest(inventoryRows())

	items, err := svc.LowStock()
	require.NoError(t, err)
	require.Len(t, items, 2)

	skus := []string{items[0].SKU, items[1].SKU}
	assert.ElementsMatch(t, []string{"GONE-1", "SCARCE-1"}, skus)
}

func TestOutOfStock_OnlyZeroOrNegative(t *testing.T) {
	svc := newReportingForTest(inventoryRows())

	items, err := svc.OutOfStock()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "GONE-1", items[0].SKU)
	assert.Equal(t, StatusOutOfStock, items[0].Status)
}

func TestReports_EmptyCatalog(t *testing.T) {
	svc := newReportingForTest(nil)

	items, err := svc.CurrentInventory()
	require.NoError(t, err)
	assert.Empty(t, items)
}
