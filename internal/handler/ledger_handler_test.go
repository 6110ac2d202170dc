package handler

import (
	"net/http/httptest"
	"testing"

	"go-warehouse-inventory/internal/apperror"
	"go-warehouse-inventory/internal/model"
	"go-warehouse-inventory/internal/repository"
	"go-warehouse-inventory/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLedgerService struct {
	transaction  *model.Transaction
	transactions []model.Transaction
	lineItem     *model.LineItem
	lineItems    []model.LineItem
	createErr    error
	getErr       error
	lineItemErr  error

	lastFilter repository.TransactionFilter
}

func (s *stubLedgerService) CreateTransaction(req *service.CreateTransactionRequest, userID string) (*model.Transaction, error) {
	return s.transaction, s.createErr
}

func (s *stubLedgerService) GetTransaction(id uuid.UUID) (*model.Transaction, error) {
	return s.transaction, s.getErr
}

func (s *stubLedgerService) ListTransactions(filter repository.TransactionFilter) ([]model.Transaction, error) {
	s.lastFilter = filter
	return s.transactions, nil
}

func (s *stubLedgerService) BalanceOf(productID uuid.UUID) (int64, error) {
	return 0, nil
}

func (s *stubLedgerService) ListLineItems(filter repository.LineItemFilter) ([]model.LineItem, error) {
	return s.lineItems, nil
}

func (s *stubLedgerService) GetLineItem(id uuid.UUID) (*model.LineItem, error) {
	return s.lineItem, s.lineItemErr
}

func newLedgerApp(svc service.LedgerService) *fiber.App {
	app := fiber.New()
	h := NewLedgerHandler(svc)
	app.Get("/transactions", h.GetTransactions)
	app.Get("/transactions/:id", h.GetTransaction)
	app.Post("/transactions", h.CreateTransaction)
	app.Get("/transaction-details", h.GetTransactionDetails)
	app.Get("/transaction-details/:id", h.GetTransactionDetail)
	return app
}

func TestCreateTransaction_Returns201WithTotalItems(t *testing.T) {
	txn := &model.Transaction{
		Type: model.TxIn,
		LineItems: []model.LineItem{
			{Quantity: 3},
			{Quantity: 4},
		},
	}
	txn.ID = uuid.New()
	app := newLedgerApp(&stubLedgerService{transaction: txn})

	status, body := postJSON(app, "/transactions", fiber.Map{
		"type":       "IN",
		"line_items": []fiber.Map{{"product_id": uuid.NewString(), "quantity": 3}},
	})

	assert.Equal(t, 201, status)
	assert.Equal(t, "Transaction recorded", body["message"])
	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(7), data["total_items"])
}

func TestCreateTransaction_InsufficientStockReturns400(t *testing.T) {
	app := newLedgerApp(&stubLedgerService{createErr: apperror.InsufficientStock("Widget", 60, 50)})

	status, body := postJSON(app, "/transactions", fiber.Map{
		"type":       "OUT",
		"line_items": []fiber.Map{{"product_id": uuid.NewString(), "quantity": 60}},
	})

	assert.Equal(t, 400, status)
	assert.Equal(t, string(apperror.KindInsufficientStock), body["kind"])
	assert.Contains(t, body["error"], "Only 50 units available")
}

func TestCreateTransaction_InvalidTypeReturns400(t *testing.T) {
	app := newLedgerApp(&stubLedgerService{createErr: apperror.InvalidType()})

	status, body := postJSON(app, "/transactions", fiber.Map{
		"type":       "TRANSFER",
		"line_items": []fiber.Map{{"product_id": uuid.NewString(), "quantity": 1}},
	})

	assert.Equal(t, 400, status)
	assert.Equal(t, string(apperror.KindInvalidType), body["kind"])
}

func TestGetTransaction_NotFoundReturns404(t *testing.T) {
	app := newLedgerApp(&stubLedgerService{getErr: apperror.NotFound("Transaction")})

	req := httptest.NewRequest("GET", "/transactions/"+uuid.NewString(), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 404, resp.StatusCode)
}

func TestGetTransactions_PassesTypeFilter(t *testing.T) {
	svc := &stubLedgerService{}
	app := newLedgerApp(svc)

	req := httptest.NewRequest("GET", "/transactions?type=OUT", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, model.TxOut, svc.lastFilter.Type)
}

func TestGetTransactionDetails_BadProductIDReturns400(t *testing.T) {
	app := newLedgerApp(&stubLedgerService{})

	req := httptest.NewRequest("GET", "/transaction-details?product=nope", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 400, resp.StatusCode)
}
