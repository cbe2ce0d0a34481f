// Package user implements onboarding: the blacklist gate check followed by
// creation of the user and their wallet in one unit of work.
package user

import (
	"context"
	"errors"
	"strings"

	"kobo/internal/models"
	"kobo/internal/repositories"
	"kobo/internal/services/karma"
	"kobo/internal/validation"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type Service interface {
	Register(ctx context.Context, input *models.CreateUserInput) (*models.User, *models.Wallet, error)
	GetByID(id uint) (*models.User, error)
}

type service struct {
	users  repositories.UserRepository
	ledger repositories.LedgerRepository
	gate   karma.Service
}

func NewService(users repositories.UserRepository, ledger repositories.LedgerRepository, gate karma.Service) Service {
	return &service{
		users:  users,
		ledger: ledger,
		gate:   gate,
	}
}

// Register creates a user and their wallet. The blacklist gate is consulted
// first; nothing is written when it rejects the identity.
func (s *service) Register(ctx context.Context, input *models.CreateUserInput) (*models.User, *models.Wallet, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if !validation.ValidEmail(email) {
		return nil, nil, ErrInvalidEmail
	}
	if len(input.Password) < 8 || !validation.HasSpecialChar(input.Password) {
		return nil, nil, ErrWeakPassword
	}

	blacklisted, err := s.gate.IsBlacklisted(ctx, email)
	if err != nil {
		logrus.WithField("email", email).WithError(err).Error("onboarding gate check failed")
		return nil, nil, ErrOnboarding
	}
	if blacklisted {
		logrus.WithField("email", email).Info("onboarding rejected by blacklist")
		return nil, nil, ErrBlacklisted
	}

	if existing, err := s.users.GetByEmail(email); err == nil && existing != nil {
		return nil, nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, ErrOnboarding
	}

	user := &models.User{
		Email:     email,
		Password:  string(hashed),
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
	}
	var wallet *models.Wallet

	err = s.ledger.ExecuteInTransaction(func(tx repositories.LedgerRepository) error {
		if err := tx.CreateUser(user); err != nil {
			return err
		}
		wallet = &models.Wallet{UserID: user.ID}
		return tx.CreateWallet(wallet)
	})
	if err != nil {
		// A concurrent registration can win the unique-email race.
		if strings.Contains(err.Error(), "duplicate key") {
			return nil, nil, ErrEmailTaken
		}
		logrus.WithField("email", email).WithError(err).Error("onboarding failed")
		return nil, nil, ErrOnboarding
	}

	logrus.WithFields(logrus.Fields{
		"user_id":   user.ID,
		"wallet_id": wallet.ID,
	}).Info("user onboarded")

	return user, wallet, nil
}

func (s *service) GetByID(id uint) (*models.User, error) {
	user, err := s.users.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
