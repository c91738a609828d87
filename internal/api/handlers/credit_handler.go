package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ppdew9811-hash/eduvoice/domain"
	"github.com/ppdew9811-hash/eduvoice/internal/api/presenters"
	"github.com/ppdew9811-hash/eduvoice/pkg/credit"
)

type (
	CreditHandler interface {
		GetPackages(c *fiber.Ctx) error
		GetTransactionHistory(c *fiber.Ctx) error
	}

	creditHandler struct {
		creditService credit.CreditService
	}
)

func NewCreditHandler(creditService credit.CreditService) CreditHandler {
	return &creditHandler{
		creditService: creditService,
	}
}

func (h *creditHandler) GetPackages(c *fiber.Ctx) error {
	res, err := h.creditService.GetPackages(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCreditPackages, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCreditPackages)
}

func (h *creditHandler) GetTransactionHistory(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.creditService.GetTransactionHistory(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetTransactions, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetTransactions)
}
