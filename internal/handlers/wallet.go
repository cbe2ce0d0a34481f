package handlers

import (
	"kobo/internal/errors"
	"kobo/internal/models"
	"kobo/internal/services/ledger"
	"kobo/internal/utils"
	"kobo/internal/utils/pagination"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type WalletHandler struct {
	ledgerService ledger.Service
}

func NewWalletHandler(ledgerService ledger.Service) *WalletHandler {
	return &WalletHandler{
		ledgerService: ledgerService,
	}
}

// extractUserClaims is a helper to reduce duplication across handlers.
func extractUserClaims(c *fiber.Ctx) (*models.UserClaims, error) {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok || claims == nil {
		return nil, fiber.ErrUnauthorized
	}
	return claims, nil
}

// domainError maps a service error to its HTTP status.
func domainError(c *fiber.Ctx, err error) error {
	return utils.Error(c, errors.HTTPStatus(err), err.Error())
}

type amountRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

func (h *WalletHandler) GetBalance(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	balance, err := h.ledgerService.GetBalance(c.Context(), claims.UserID)
	if err != nil {
		return domainError(c, err)
	}

	return utils.Success(c, "Balance retrieved successfully", fiber.Map{
		"balance": balance,
	})
}

func (h *WalletHandler) Fund(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input amountRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request format")
	}
	if !input.Amount.IsPositive() {
		return utils.BadRequest(c, "Amount is required and must be a positive number")
	}

	txn, err := h.ledgerService.Fund(c.Context(), claims.UserID, input.Amount, input.Description)
	if err != nil {
		return domainError(c, err)
	}

	return utils.Success(c, "Wallet funded successfully", fiber.Map{
		"transaction": txn,
	})
}

func (h *WalletHandler) Withdraw(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input amountRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request format")
	}
	if !input.Amount.IsPositive() {
		return utils.BadRequest(c, "Amount is required and must be a positive number")
	}

	txn, err := h.ledgerService.Withdraw(c.Context(), claims.UserID, input.Amount, input.Description)
	if err != nil {
		return domainError(c, err)
	}

	return utils.Success(c, "Withdrawal successful", fiber.Map{
		"transaction": txn,
	})
}

func (h *WalletHandler) Transfer(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input struct {
		RecipientEmail string          `json:"recipient_email"`
		Amount         decimal.Decimal `json:"amount"`
		Description    string          `json:"description"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request format")
	}
	if input.RecipientEmail == "" || !input.Amount.IsPositive() {
		return utils.BadRequest(c, "Recipient email and a positive amount are required")
	}

	txn, err := h.ledgerService.Transfer(c.Context(), claims.UserID, input.RecipientEmail, input.Amount, input.Description)
	if err != nil {
		return domainError(c, err)
	}

	return utils.Success(c, "Transfer successful", fiber.Map{
		"transaction": txn,
	})
}

func (h *WalletHandler) GetTransactions(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	p := pagination.ParseFromRequest(c)
	txns, err := h.ledgerService.GetTransactionHistory(c.Context(), claims.UserID, p.Limit, p.Offset)
	if err != nil {
		return domainError(c, err)
	}

	return utils.Success(c, "Transactions retrieved successfully", fiber.Map{
		"transactions": txns,
	})
}
