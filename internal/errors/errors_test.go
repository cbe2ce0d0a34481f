package errors

import (
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", NotFound("WALLET_NOT_FOUND", "Wallet not found"), fiber.StatusNotFound},
		{"bad request", BadRequest("INVALID_AMOUNT", "Amount must be greater than zero"), fiber.StatusBadRequest},
		{"conflict", Conflict("BLACKLISTED", "User is blacklisted"), fiber.StatusConflict},
		{"internal", Internal("LEDGER_FAILURE", "Ledger operation failed"), fiber.StatusInternalServerError},
		{"wrapped", fmt.Errorf("context: %w", BadRequest("X", "y")), fiber.StatusBadRequest},
		{"plain error", fmt.Errorf("boom"), fiber.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, HTTPStatus(tc.err))
		})
	}
}

func TestErrorMessage(t *testing.T) {
	err := BadRequest("INSUFFICIENT_FUNDS", "Insufficient funds")
	assert.Equal(t, "Insufficient funds", err.Error())
	assert.Equal(t, KindBadRequest, err.Kind)
}
