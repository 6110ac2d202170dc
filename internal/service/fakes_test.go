package service

import (
	"database/sql"
	"sort"
	"time"

	"go-warehouse-inventory/internal/model"
	"go-warehouse-inventory/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory repository fakes for service tests.

// fakeTxRunner runs the callback without a real database transaction.
type fakeTxRunner struct{}

func (fakeTxRunner) Transaction(fc func(tx *gorm.DB) error, opts ...*sql.TxOptions) error {
	return fc(nil)
}

type fakeProductRepo struct {
	products  map[uuid.UUID]*model.Product
	createErr error
	updateErr error
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uuid.UUID]*model.Product)}
}

func (f *fakeProductRepo) Create(product *model.Product) error {
	if f.createErr != nil {
		return f.createErr
	}
	product.ID = uuid.New()
	product.CreatedAt = time.Now()
	product.UpdatedAt = time.Now()
	f.products[product.ID] = product
	return nil
}

func (f *fakeProductRepo) FindAll(filter repository.ProductFilter) ([]model.Product, error) {
	var products []model.Product
	for _, p := range f.products {
		if filter.SKU != "" && p.SKU != filter.SKU {
			continue
		}
		products = append(products, *p)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].Name < products[j].Name })
	return products, nil
}

func (f *fakeProductRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	product, ok := f.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copy := *product
	return &copy, nil
}

func (f *fakeProductRepo) FindByIDForUpdate(tx *gorm.DB, id uuid.UUID) (*model.Product, error) {
	return f.FindByID(id)
}

func (f *fakeProductRepo) FindBySKU(sku string) (*model.Product, error) {
	for _, p := range f.products {
		if p.SKU == sku {
			copy := *p
			return &copy, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeProductRepo) SKUExists(sku string, excludeID uuid.UUID) (bool, error) {
	for _, p := range f.products {
		if p.SKU == sku && p.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeProductRepo) Update(product *model.Product) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.products[product.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copy := *product
	f.products[product.ID] = &copy
	return nil
}

func (f *fakeProductRepo) Count() (int64, error) {
	return int64(len(f.products)), nil
}

type fakeLedgerRepo struct {
	balances     map[uuid.UUID]int64
	transactions map[uuid.UUID]*model.Transaction
	inventory    []repository.InventoryRow
}

func newFakeLedgerRepo() *fakeLedgerRepo {
	return &fakeLedgerRepo{
		balances:     make(map[uuid.UUID]int64),
		transactions: make(map[uuid.UUID]*model.Transaction),
	}
}

func (f *fakeLedgerRepo) CreateWithItems(tx *gorm.DB, txn *model.Transaction) error {
	txn.ID = uuid.New()
	for i := range txn.LineItems {
		txn.LineItems[i].TransactionID = txn.ID
		delta := int64(txn.LineItems[i].Quantity)
		if txn.Type == model.TxOut {
			delta = -delta
		}
		f.balances[txn.LineItems[i].ProductID] += delta
	}
	f.transactions[txn.ID] = txn
	return nil
}

func (f *fakeLedgerRepo) FindByID(id uuid.UUID) (*model.Transaction, error) {
	txn, ok := f.transactions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return txn, nil
}

func (f *fakeLedgerRepo) FindAll(filter repository.TransactionFilter) ([]model.Transaction, error) {
	var transactions []model.Transaction
	for _, txn := range f.transactions {
		if filter.Type != "" && txn.Type != filter.Type {
			continue
		}
		transactions = append(transactions, *txn)
	}
	sort.Slice(transactions, func(i, j int) bool { return transactions[i].Date.After(transactions[j].Date) })
	return transactions, nil
}

func (f *fakeLedgerRepo) BalanceOf(tx *gorm.DB, productID uuid.UUID) (int64, error) {
	return f.balances[productID], nil
}

func (f *fakeLedgerRepo) Count() (int64, error) {
	return int64(len(f.transactions)), nil
}

func (f *fakeLedgerRepo) GetStockMovement(startDate, endDate time.Time) ([]repository.StockMovementData, error) {
	return nil, nil
}

func (f *fakeLedgerRepo) FindLineItems(filter repository.LineItemFilter) ([]model.LineItem, error) {
	return nil, nil
}

func (f *fakeLedgerRepo) FindLineItemByID(id uuid.UUID) (*model.LineItem, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeLedgerRepo) CurrentInventory() ([]repository.InventoryRow, error) {
	return f.inventory, nil
}
