package repositories

import (
	"context"
	"errors"

	"kobo/internal/models"

	"github.com/shopspring/decimal"
)

var (
	ErrWalletNotFound     = errors.New("wallet not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrDuplicateReference = errors.New("duplicate transaction reference")
)

// LedgerRepository is the data access surface of the wallet ledger engine.
// Every mutating ledger operation runs through ExecuteInTransaction so the
// wallet update and its transaction row commit or abort together.
type LedgerRepository interface {
	// Wallet operations
	CreateWallet(wallet *models.Wallet) error
	GetWalletByUserID(userID uint) (*models.Wallet, error)
	// GetWalletByUserIDForUpdate locks the wallet row (SELECT ... FOR UPDATE)
	// for the remainder of the enclosing transaction.
	GetWalletByUserIDForUpdate(userID uint) (*models.Wallet, error)
	GetWalletByIDForUpdate(id uint) (*models.Wallet, error)
	// IncrementBalance and DecrementBalance apply relative updates
	// (balance = balance +/- amount) evaluated by the store, never a
	// read-modify-write in application code.
	IncrementBalance(walletID uint, amount decimal.Decimal) error
	DecrementBalance(walletID uint, amount decimal.Decimal) error

	// Transaction ledger operations
	CreateTransaction(txn *models.Transaction) error
	GetTransactionHistory(ctx context.Context, walletID uint, limit, offset int) ([]models.Transaction, error)

	// Identity reads needed by transfer (recipient resolution) and
	// onboarding (user + wallet in one unit of work).
	GetUserByEmail(email string) (*models.User, error)
	CreateUser(user *models.User) error

	// ExecuteInTransaction runs fn inside one atomic unit of work. The
	// repository passed to fn is bound to that transaction.
	ExecuteInTransaction(fn func(LedgerRepository) error) error
}
