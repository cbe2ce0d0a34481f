package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction types
const (
	TransactionTypeFund       = "fund"
	TransactionTypeTransfer   = "transfer"
	TransactionTypeWithdrawal = "withdrawal"
)

// Transaction statuses. The ledger engine only ever writes completed rows;
// pending and failed exist as schema states for future lifecycles.
const (
	TransactionStatusPending   = "pending"
	TransactionStatusCompleted = "completed"
	TransactionStatusFailed    = "failed"
)

// Transaction is an immutable ledger row recording one completed monetary
// movement. A transfer is recorded once, from the sender's side, with
// RecipientWalletID pointing at the credited wallet.
type Transaction struct {
	ID                uint            `gorm:"primarykey" json:"id"`
	WalletID          uint            `gorm:"index;not null" json:"wallet_id"`
	Type              string          `gorm:"not null" json:"type"`
	Amount            decimal.Decimal `gorm:"type:numeric(20,4);not null" json:"amount"`
	Reference         string          `gorm:"uniqueIndex;not null" json:"reference"`
	RecipientWalletID *uint           `gorm:"index" json:"recipient_wallet_id"`
	Description       string          `json:"description"`
	Status            string          `gorm:"not null;default:'completed'" json:"status"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}
