package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"

	domain "kobo/internal/errors"
	"kobo/internal/models"
	"kobo/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type service struct {
	repo    repositories.LedgerRepository
	cache   Cache
	metrics MetricsCollector
}

// NewService creates a new ledger service.
func NewService(repo repositories.LedgerRepository, cache Cache, metrics MetricsCollector) Service {
	if repo == nil {
		panic("repo is required")
	}
	if cache == nil {
		panic("cache is required")
	}
	if metrics == nil {
		metrics = &NoopMetricsCollector{}
	}

	return &service{
		repo:    repo,
		cache:   cache,
		metrics: metrics,
	}
}

func (s *service) GetBalance(ctx context.Context, userID uint) (decimal.Decimal, error) {
	key := balanceKey(userID)

	var cached decimal.Decimal
	if found, err := s.cache.Get(ctx, key, &cached); err == nil && found {
		return cached, nil
	}

	wallet, err := s.repo.GetWalletByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrWalletNotFound) {
			return decimal.Zero, ErrWalletNotFound
		}
		return decimal.Zero, s.fail("get_balance", err)
	}

	if err := s.cache.SetWithTTL(ctx, key, wallet.Balance, balanceCacheTTL); err != nil {
		logrus.WithField("user_id", userID).WithError(err).Warn("failed to cache balance")
	}

	return wallet.Balance, nil
}

func (s *service) Fund(ctx context.Context, userID uint, amount decimal.Decimal, description string) (*models.Transaction, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if description == "" {
		description = defaultFundDescription
	}

	var txn *models.Transaction
	err := s.repo.ExecuteInTransaction(func(tx repositories.LedgerRepository) error {
		wallet, err := tx.GetWalletByUserIDForUpdate(userID)
		if err != nil {
			if errors.Is(err, repositories.ErrWalletNotFound) {
				return ErrWalletNotFound
			}
			return err
		}

		if err := tx.IncrementBalance(wallet.ID, amount); err != nil {
			return err
		}

		txn = &models.Transaction{
			WalletID:    wallet.ID,
			Type:        models.TransactionTypeFund,
			Amount:      amount,
			Reference:   uuid.NewString(),
			Description: description,
			Status:      models.TransactionStatusCompleted,
		}
		return tx.CreateTransaction(txn)
	})
	if err != nil {
		return nil, s.fail("fund", err)
	}

	s.afterMutation(ctx, txn, userID)
	return txn, nil
}

func (s *service) Withdraw(ctx context.Context, userID uint, amount decimal.Decimal, description string) (*models.Transaction, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if description == "" {
		description = defaultWithdrawDescription
	}

	var txn *models.Transaction
	err := s.repo.ExecuteInTransaction(func(tx repositories.LedgerRepository) error {
		wallet, err := tx.GetWalletByUserIDForUpdate(userID)
		if err != nil {
			if errors.Is(err, repositories.ErrWalletNotFound) {
				return ErrWalletNotFound
			}
			return err
		}

		// The row is locked, so this check holds until commit.
		if wallet.Balance.LessThan(amount) {
			return ErrInsufficientFunds
		}

		if err := tx.DecrementBalance(wallet.ID, amount); err != nil {
			return err
		}

		txn = &models.Transaction{
			WalletID:    wallet.ID,
			Type:        models.TransactionTypeWithdrawal,
			Amount:      amount,
			Reference:   uuid.NewString(),
			Description: description,
			Status:      models.TransactionStatusCompleted,
		}
		return tx.CreateTransaction(txn)
	})
	if err != nil {
		return nil, s.fail("withdraw", err)
	}

	s.afterMutation(ctx, txn, userID)
	return txn, nil
}

func (s *service) Transfer(ctx context.Context, senderUserID uint, recipientEmail string, amount decimal.Decimal, description string) (*models.Transaction, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	recipientEmail = strings.ToLower(strings.TrimSpace(recipientEmail))
	if recipientEmail == "" {
		return nil, ErrRecipientRequired
	}
	if description == "" {
		description = fmt.Sprintf("Transfer to %s", recipientEmail)
	}

	var txn *models.Transaction
	var recipientUserID uint
	err := s.repo.ExecuteInTransaction(func(tx repositories.LedgerRepository) error {
		sender, err := tx.GetWalletByUserID(senderUserID)
		if err != nil {
			if errors.Is(err, repositories.ErrWalletNotFound) {
				return ErrSenderWalletNotFound
			}
			return err
		}

		if sender.Balance.LessThan(amount) {
			return ErrInsufficientFunds
		}

		recipient, err := tx.GetUserByEmail(recipientEmail)
		if err != nil {
			if errors.Is(err, repositories.ErrUserNotFound) {
				return ErrRecipientNotFound
			}
			return err
		}
		if recipient.ID == senderUserID {
			return ErrSelfTransfer
		}

		recipientWallet, err := tx.GetWalletByUserID(recipient.ID)
		if err != nil {
			if errors.Is(err, repositories.ErrWalletNotFound) {
				return ErrRecipientWalletNotFound
			}
			return err
		}

		// Lock both rows in ascending wallet-id order so two transfers
		// crossing the same pair of wallets cannot deadlock.
		first, second := sender.ID, recipientWallet.ID
		if second < first {
			first, second = second, first
		}
		for _, id := range []uint{first, second} {
			locked, err := tx.GetWalletByIDForUpdate(id)
			if err != nil {
				return err
			}
			if locked.ID == sender.ID {
				sender = locked
			}
		}

		// Re-check against the locked row; a concurrent debit may have
		// landed between the snapshot read and the lock.
		if sender.Balance.LessThan(amount) {
			return ErrInsufficientFunds
		}

		if err := tx.DecrementBalance(sender.ID, amount); err != nil {
			return err
		}
		if err := tx.IncrementBalance(recipientWallet.ID, amount); err != nil {
			return err
		}

		recipientUserID = recipient.ID
		txn = &models.Transaction{
			WalletID:          sender.ID,
			Type:              models.TransactionTypeTransfer,
			Amount:            amount,
			Reference:         uuid.NewString(),
			RecipientWalletID: &recipientWallet.ID,
			Description:       description,
			Status:            models.TransactionStatusCompleted,
		}
		return tx.CreateTransaction(txn)
	})
	if err != nil {
		return nil, s.fail("transfer", err)
	}

	s.afterMutation(ctx, txn, senderUserID, recipientUserID)
	return txn, nil
}

func (s *service) GetTransactionHistory(ctx context.Context, userID uint, limit, offset int) ([]models.Transaction, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}
	if offset < 0 {
		offset = 0
	}

	wallet, err := s.repo.GetWalletByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrWalletNotFound) {
			return nil, ErrWalletNotFound
		}
		return nil, s.fail("history", err)
	}

	txns, err := s.repo.GetTransactionHistory(ctx, wallet.ID, limit, offset)
	if err != nil {
		return nil, s.fail("history", err)
	}
	return txns, nil
}

// fail classifies an operation error: domain errors pass through untouched,
// anything else is logged and surfaced as a generic ledger failure.
func (s *service) fail(operation string, err error) error {
	var de *domain.DomainError
	if errors.As(err, &de) {
		s.metrics.RecordError(operation, de.Code)
		return de
	}

	s.metrics.RecordError(operation, "internal")
	logrus.WithFields(logrus.Fields{
		"operation": operation,
	}).WithError(err).Error("ledger operation failed")
	return ErrLedgerFailure
}

// afterMutation invalidates cached balances and records the committed
// transaction.
func (s *service) afterMutation(ctx context.Context, txn *models.Transaction, userIDs ...uint) {
	keys := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		keys = append(keys, balanceKey(id))
	}
	if err := s.cache.Delete(ctx, keys...); err != nil {
		logrus.WithError(err).Warn("failed to invalidate balance cache")
	}

	s.metrics.RecordTransaction(txn.Type, txn.Amount)
	logrus.WithFields(logrus.Fields{
		"type":      txn.Type,
		"wallet_id": txn.WalletID,
		"amount":    txn.Amount.String(),
		"reference": txn.Reference,
	}).Info("ledger transaction committed")
}

func balanceKey(userID uint) string {
	return fmt.Sprintf("%s:%d", balanceCachePrefix, userID)
}
