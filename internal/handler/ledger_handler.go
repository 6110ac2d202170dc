package handler

import (
	"go-warehouse-inventory/internal/model"
	"go-warehouse-inventory/internal/repository"
	"go-warehouse-inventory/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type LedgerHandler struct {
	service service.LedgerService
}

func NewLedgerHandler(s service.LedgerService) *LedgerHandler {
	return &LedgerHandler{service: s}
}

// transactionResponse adds the derived total to the entity JSON.
type transactionResponse struct {
	model.Transaction
	TotalItems int `json:"total_items"`
}

func toTransactionResponse(txn model.Transaction) transactionResponse {
	return transactionResponse{Transaction: txn, TotalItems: txn.TotalItems()}
}

func (h *LedgerHandler) GetTransactions(c *fiber.Ctx) error {
	filter := repository.TransactionFilter{
		Type: model.TransactionType(c.Query("type")),
	}
	transactions, err := h.service.ListTransactions(filter)
	if err != nil {
		return respondError(c, err)
	}

	responses := make([]transactionResponse, len(transactions))
	for i, txn := range transactions {
		responses[i] = toTransactionResponse(txn)
	}
	return c.JSON(responses)
}

func (h *LedgerHandler) GetTransaction(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid transaction ID"})
	}

	txn, err := h.service.GetTransaction(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toTransactionResponse(*txn))
}

func (h *LedgerHandler) CreateTransaction(c *fiber.Ctx) error {
	var req service.CreateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	txn, err := h.service.CreateTransaction(&req, getUserID(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{"message": "Transaction recorded", "data": toTransactionResponse(*txn)})
}

// GetTransactionDetails lists individual product movements. The
// resource is read-only; line items change only with their owning
// transaction.
func (h *LedgerHandler) GetTransactionDetails(c *fiber.Ctx) error {
	filter := repository.LineItemFilter{
		TransactionType: model.TransactionType(c.Query("type")),
	}
	if productParam := c.Query("product"); productParam != "" {
		productID, err := uuid.Parse(productParam)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
		}
		filter.ProductID = productID
	}

	items, err := h.service.ListLineItems(filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}

func (h *LedgerHandler) GetTransactionDetail(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid transaction detail ID"})
	}

	item, err := h.service.GetLineItem(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(item)
}
