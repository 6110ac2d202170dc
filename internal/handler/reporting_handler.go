package handler

import (
	"go-warehouse-inventory/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ReportingHandler struct {
	service service.ReportingService
}

func NewReportingHandler(s service.ReportingService) *ReportingHandler {
	return &ReportingHandler{service: s}
}

func (h *ReportingHandler) GetCurrentInventory(c *fiber.Ctx) error {
	items, err := h.service.CurrentInventory()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}

func (h *ReportingHandler) GetLowStock(c *fiber.Ctx) error {
	items, err := h.service.LowStock()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}

func (h *ReportingHandler) GetOutOfStock(c *fiber.Ctx) error {
	items, err := h.service.OutOfStock()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}
