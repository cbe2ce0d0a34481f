package ledger

import (
	"context"
	"time"

	"kobo/internal/models"

	"github.com/shopspring/decimal"
)

// Service defines the wallet ledger engine interface.
type Service interface {
	GetBalance(ctx context.Context, userID uint) (decimal.Decimal, error)
	Fund(ctx context.Context, userID uint, amount decimal.Decimal, description string) (*models.Transaction, error)
	Withdraw(ctx context.Context, userID uint, amount decimal.Decimal, description string) (*models.Transaction, error)
	Transfer(ctx context.Context, senderUserID uint, recipientEmail string, amount decimal.Decimal, description string) (*models.Transaction, error)
	GetTransactionHistory(ctx context.Context, userID uint, limit, offset int) ([]models.Transaction, error)
}

// Cache is the caching surface the engine needs; satisfied by
// cache.CacheService.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// MetricsCollector records ledger operation metrics.
type MetricsCollector interface {
	RecordTransaction(txType string, amount decimal.Decimal)
	RecordError(operation, errType string)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (n *NoopMetricsCollector) RecordTransaction(string, decimal.Decimal) {}
func (n *NoopMetricsCollector) RecordError(string, string)               {}
