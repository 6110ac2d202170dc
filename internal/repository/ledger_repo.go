package repository

import (
	"time"

	"go-warehouse-inventory/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransactionFilter narrows the transaction listing (empty = all).
type TransactionFilter struct {
	Type model.TransactionType
}

// LineItemFilter narrows the transaction-detail listing.
type LineItemFilter struct {
	TransactionType model.TransactionType
	ProductID       uuid.UUID
}

// StockMovementData untuk chart data
type StockMovementData struct {
	Date     string `json:"date"`
	Inbound  int    `json:"inbound"`
	Outbound int    `json:"outbound"`
}

// InventoryRow is one product with its derived balance. Balances are
// always computed from line items, never read from a stored column.
type InventoryRow struct {
	ProductID   uuid.UUID `json:"product_id"`
	Name        string    `json:"name"`
	SKU         string    `json:"sku"`
	Description string    `json:"description"`
	Balance     int64     `json:"balance"`
}

type LedgerRepository interface {
	CreateWithItems(tx *gorm.DB, txn *model.Transaction) error
	FindByID(id uuid.UUID) (*model.Transaction, error)
	FindAll(filter TransactionFilter) ([]model.Transaction, error)
	BalanceOf(tx *gorm.DB, productID uuid.UUID) (int64, error)
	Count() (int64, error)
	GetStockMovement(startDate, endDate time.Time) ([]StockMovementData, error)
	FindLineItems(filter LineItemFilter) ([]model.LineItem, error)
	FindLineItemByID(id uuid.UUID) (*model.LineItem, error)
	CurrentInventory() ([]InventoryRow, error)
}

type ledgerRepo struct {
	db *gorm.DB
}

func NewLedgerRepo(db *gorm.DB) LedgerRepository {
	return &ledgerRepo{db}
}

// CreateWithItems menerima *gorm.DB (tx) agar header dan line items
// tersimpan dalam satu transaksi database.
func (r *ledgerRepo) CreateWithItems(tx *gorm.DB, txn *model.Transaction) error {
	return tx.Create(txn).Error
}

func (r *ledgerRepo) FindByID(id uuid.UUID) (*model.Transaction, error) {
	var txn model.Transaction
	err := r.db.
		Preload("LineItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("line_items.created_at ASC")
		}).
		Preload("LineItems.Product").
		First(&txn, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

func (r *ledgerRepo) FindAll(filter TransactionFilter) ([]model.Transaction, error) {
	var transactions []model.Transaction
	query := r.db.
		Preload("LineItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("line_items.created_at ASC")
		}).
		Preload("LineItems.Product").
		Order("date DESC")
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	err := query.Find(&transactions).Error
	return transactions, err
}

// BalanceOf computes IN minus OUT over committed line items. Pass the
// surrounding tx so the check sees locked rows; nil falls back to the
// base connection.
func (r *ledgerRepo) BalanceOf(tx *gorm.DB, productID uuid.UUID) (int64, error) {
	db := r.db
	if tx != nil {
		db = tx
	}

	var balance int64
	err := db.Model(&model.LineItem{}).
		Joins("JOIN transactions ON transactions.id = line_items.transaction_id").
		Where("line_items.product_id = ?", productID).
		Select(`COALESCE(SUM(CASE WHEN transactions.type = 'IN' THEN line_items.quantity ELSE -line_items.quantity END), 0)`).
		Scan(&balance).Error
	return balance, err
}

func (r *ledgerRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Transaction{}).Count(&count).Error
	return count, err
}

func (r *ledgerRepo) GetStockMovement(startDate, endDate time.Time) ([]StockMovementData, error) {
	var results []StockMovementData

	// Aggregate line item quantities per day
	rows, err := r.db.Model(&model.LineItem{}).
		Joins("JOIN transactions ON transactions.id = line_items.transaction_id").
		Select(`
			DATE(transactions.date) as date,
			COALESCE(SUM(CASE WHEN transactions.type = 'IN' THEN line_items.quantity ELSE 0 END), 0) as inbound,
			COALESCE(SUM(CASE WHEN transactions.type = 'OUT' THEN line_items.quantity ELSE 0 END), 0) as outbound
		`).
		Where("transactions.date BETWEEN ? AND ?", startDate, endDate).
		Group("DATE(transactions.date)").
		Order("date ASC").
		Rows()

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var data StockMovementData
		if err := rows.Scan(&data.Date, &data.Inbound, &data.Outbound); err != nil {
			return nil, err
		}
		results = append(results, data)
	}

	return results, nil
}

func (r *ledgerRepo) FindLineItems(filter LineItemFilter) ([]model.LineItem, error) {
	var items []model.LineItem
	query := r.db.Preload("Product").
		Joins("JOIN transactions ON transactions.id = line_items.transaction_id").
		Order("transactions.date DESC")
	if filter.TransactionType != "" {
		query = query.Where("transactions.type = ?", filter.TransactionType)
	}
	if filter.ProductID != uuid.Nil {
		query = query.Where("line_items.product_id = ?", filter.ProductID)
	}
	err := query.Find(&items).Error
	return items, err
}

func (r *ledgerRepo) FindLineItemByID(id uuid.UUID) (*model.LineItem, error) {
	var item model.LineItem
	err := r.db.Preload("Product").First(&item, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// CurrentInventory derives the balance of every product in one query.
func (r *ledgerRepo) CurrentInventory() ([]InventoryRow, error) {
	var rows []InventoryRow
	err := r.db.Model(&model.Product{}).
		Select(`
			products.id as product_id,
			products.name,
			products.sku,
			products.description,
			COALESCE(SUM(CASE
				WHEN transactions.type = 'IN' THEN line_items.quantity
				WHEN transactions.type = 'OUT' THEN -line_items.quantity
				ELSE 0 END), 0) as balance
		`).
		Joins("LEFT JOIN line_items ON line_items.product_id = products.id").
		Joins("LEFT JOIN transactions ON transactions.id = line_items.transaction_id").
		Group("products.id, products.name, products.sku, products.description").
		Order("products.name ASC").
		Scan(&rows).Error
	return rows, err
}
