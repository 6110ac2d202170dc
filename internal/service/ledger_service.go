package service

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go-warehouse-inventory/internal/apperror"
	"go-warehouse-inventory/internal/model"
	"go-warehouse-inventory/internal/repository"
	"go-warehouse-inventory/internal/ws"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Upper bound on a single line item quantity.
const maxLineItemQuantity = 10000

// LineItemInput is one product+quantity row of a pending transaction.
type LineItemInput struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

// CreateTransactionRequest carries the whole pending transaction so it
// can be validated as one batch, including the type-dependent stock
// checks for OUT.
type CreateTransactionRequest struct {
	Type      model.TransactionType `json:"type"`
	Date      *time.Time            `json:"date"`
	Remarks   string                `json:"remarks"`
	LineItems []LineItemInput       `json:"line_items"`
}

// TxRunner runs a function inside one database transaction; *gorm.DB
// satisfies it directly.
type TxRunner interface {
	Transaction(fc func(tx *gorm.DB) error, opts ...*sql.TxOptions) error
}

type LedgerService interface {
	CreateTransaction(req *CreateTransactionRequest, userID string) (*model.Transaction, error)
	GetTransaction(id uuid.UUID) (*model.Transaction, error)
	ListTransactions(filter repository.TransactionFilter) ([]model.Transaction, error)
	BalanceOf(productID uuid.UUID) (int64, error)
	ListLineItems(filter repository.LineItemFilter) ([]model.LineItem, error)
	GetLineItem(id uuid.UUID) (*model.LineItem, error)
}

type ledgerService struct {
	ledgerRepo  repository.LedgerRepository
	productRepo repository.ProductRepository
	db          TxRunner
	wsHub       *ws.Hub
}

func NewLedgerService(lRepo repository.LedgerRepository, pRepo repository.ProductRepository, db TxRunner, hub *ws.Hub) LedgerService {
	return &ledgerService{
		ledgerRepo:  lRepo,
		productRepo: pRepo,
		db:          db,
		wsHub:       hub,
	}
}

// validateTransactionInput applies the input rules that need no
// database state: type, non-empty items, no repeated product, quantity
// bounds. Order matters; the first failure wins.
func validateTransactionInput(req *CreateTransactionRequest) error {
	if req.Type != model.TxIn && req.Type != model.TxOut {
		return apperror.InvalidType()
	}
	if len(req.LineItems) == 0 {
		return apperror.EmptyLineItems()
	}

	seen := make(map[uuid.UUID]bool, len(req.LineItems))
	for _, item := range req.LineItems {
		if seen[item.ProductID] {
			return apperror.DuplicateProductInTransaction()
		}
		seen[item.ProductID] = true
	}

	for _, item := range req.LineItems {
		if item.Quantity <= 0 {
			return apperror.InvalidQuantity("Quantity must be greater than 0.")
		}
		if item.Quantity > maxLineItemQuantity {
			return apperror.InvalidQuantity("Quantity cannot exceed 10,000 units.")
		}
	}
	return nil
}

// checkStockLevels verifies every OUT line item against its product's
// pre-transaction balance. Each product is checked independently, and
// quantity == balance is allowed (draws stock to exactly zero).
func checkStockLevels(items []LineItemInput, names map[uuid.UUID]string, balances map[uuid.UUID]int64) error {
	for _, item := range items {
		if int64(item.Quantity) > balances[item.ProductID] {
			return apperror.InsufficientStock(names[item.ProductID], item.Quantity, balances[item.ProductID])
		}
	}
	return nil
}

// CreateTransaction validates and persists the header plus all line
// items as one atomic unit. Referenced product rows are locked for the
// duration of the balance check so concurrent OUT writers serialize.
func (s *ledgerService) CreateTransaction(req *CreateTransactionRequest, userID string) (*model.Transaction, error) {
	if err := validateTransactionInput(req); err != nil {
		return nil, err
	}

	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}

	txn := &model.Transaction{
		Type:    req.Type,
		Date:    date,
		Remarks: req.Remarks,
	}
	txn.CreatedBy = userID
	txn.UpdatedBy = userID

	names := make(map[uuid.UUID]string, len(req.LineItems))

	err := s.db.Transaction(func(tx *gorm.DB) error {
		balances := make(map[uuid.UUID]int64, len(req.LineItems))

		for _, item := range req.LineItems {
			// Lock the product row (pessimistic) so the balance cannot
			// move between check and insert
			product, err := s.productRepo.FindByIDForUpdate(tx, item.ProductID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperror.NotFound("Product")
				}
				return err
			}
			names[item.ProductID] = product.Name

			if req.Type == model.TxOut {
				balance, err := s.ledgerRepo.BalanceOf(tx, item.ProductID)
				if err != nil {
					return err
				}
				balances[item.ProductID] = balance
			}
		}

		if req.Type == model.TxOut {
			if err := checkStockLevels(req.LineItems, names, balances); err != nil {
				return err
			}
		}

		for _, item := range req.LineItems {
			lineItem := model.LineItem{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
			}
			lineItem.CreatedBy = userID
			lineItem.UpdatedBy = userID
			txn.LineItems = append(txn.LineItems, lineItem)
		}

		return s.ledgerRepo.CreateWithItems(tx, txn)
	})

	if err != nil {
		return nil, err
	}

	s.wsHub.PublishJSON(map[string]interface{}{
		"type":   "stock_update",
		"action": "transaction_created",
		"transaction": map[string]interface{}{
			"id":          txn.ID,
			"txn_type":    txn.Type,
			"total_items": txn.TotalItems(),
		},
		"message": fmt.Sprintf("Recorded %s transaction with %d units across %d products",
			txn.Type, txn.TotalItems(), len(txn.LineItems)),
	})

	// Reload with product associations for the response
	return s.ledgerRepo.FindByID(txn.ID)
}

func (s *ledgerService) GetTransaction(id uuid.UUID) (*model.Transaction, error) {
	txn, err := s.ledgerRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Transaction")
		}
		return nil, err
	}
	return txn, nil
}

func (s *ledgerService) ListTransactions(filter repository.TransactionFilter) ([]model.Transaction, error) {
	return s.ledgerRepo.FindAll(filter)
}

// BalanceOf returns IN minus OUT over committed line items; products
// with no history have balance 0.
func (s *ledgerService) BalanceOf(productID uuid.UUID) (int64, error) {
	return s.ledgerRepo.BalanceOf(nil, productID)
}

func (s *ledgerService) ListLineItems(filter repository.LineItemFilter) ([]model.LineItem, error) {
	return s.ledgerRepo.FindLineItems(filter)
}

func (s *ledgerService) GetLineItem(id uuid.UUID) (*model.LineItem, error) {
	item, err := s.ledgerRepo.FindLineItemByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Transaction detail")
		}
		return nil, err
	}
	return item, nil
}
