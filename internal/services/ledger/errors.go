package ledger

import "kobo/internal/errors"

// Service errors
var (
	ErrWalletNotFound          = errors.NotFound("WALLET_NOT_FOUND", "Wallet not found")
	ErrSenderWalletNotFound    = errors.NotFound("SENDER_WALLET_NOT_FOUND", "Sender wallet not found")
	ErrRecipientNotFound       = errors.NotFound("RECIPIENT_NOT_FOUND", "Recipient not found")
	ErrRecipientWalletNotFound = errors.NotFound("RECIPIENT_WALLET_NOT_FOUND", "Recipient wallet not found")
	ErrInvalidAmount           = errors.BadRequest("INVALID_AMOUNT", "Amount must be greater than zero")
	ErrInsufficientFunds       = errors.BadRequest("INSUFFICIENT_FUNDS", "Insufficient funds")
	ErrSelfTransfer            = errors.BadRequest("SELF_TRANSFER", "Cannot transfer to yourself")
	ErrRecipientRequired       = errors.BadRequest("RECIPIENT_REQUIRED", "Recipient email is required")
	ErrLedgerFailure           = errors.Internal("LEDGER_FAILURE", "Ledger operation failed")
)
