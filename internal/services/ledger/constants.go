package ledger

import "time"

// History pagination bounds
const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)

// Cache keys and durations
const (
	balanceCachePrefix = "wallet:balance"
	balanceCacheTTL    = 60 * time.Second
)

// Default transaction descriptions
const (
	defaultFundDescription     = "Wallet funding"
	defaultWithdrawDescription = "Wallet withdrawal"
)
