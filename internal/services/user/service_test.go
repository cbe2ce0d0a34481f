package user

import (
	"context"
	"errors"
	"testing"

	"kobo/internal/models"
	"kobo/internal/repositories"
	"kobo/internal/services/karma"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// fakeStore backs both repository interfaces used by onboarding.
type fakeStore struct {
	users      map[uint]*models.User
	wallets    map[uint]*models.Wallet
	nextUserID uint
	nextWallet uint
	createErr  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:   make(map[uint]*models.User),
		wallets: make(map[uint]*models.Wallet),
	}
}

func (s *fakeStore) GetByID(id uint) (*models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *fakeStore) GetByEmail(email string) (*models.User, error) {
	return s.GetUserByEmail(email)
}

func (s *fakeStore) GetUserByEmail(email string) (*models.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (s *fakeStore) CreateUser(user *models.User) error {
	if s.createErr != nil {
		return s.createErr
	}
	for _, u := range s.users {
		if u.Email == user.Email {
			return errors.New("duplicate key value violates unique constraint")
		}
	}
	s.nextUserID++
	user.ID = s.nextUserID
	cp := *user
	s.users[user.ID] = &cp
	return nil
}

func (s *fakeStore) CreateWallet(wallet *models.Wallet) error {
	s.nextWallet++
	wallet.ID = s.nextWallet
	wallet.Balance = decimal.Zero
	cp := *wallet
	s.wallets[wallet.ID] = &cp
	return nil
}

func (s *fakeStore) GetWalletByUserID(userID uint) (*models.Wallet, error) {
	for _, w := range s.wallets {
		if w.UserID == userID {
			cp := *w
			return &cp, nil
		}
	}
	return nil, repositories.ErrWalletNotFound
}

func (s *fakeStore) GetWalletByUserIDForUpdate(userID uint) (*models.Wallet, error) {
	return s.GetWalletByUserID(userID)
}

func (s *fakeStore) GetWalletByIDForUpdate(id uint) (*models.Wallet, error) {
	w, ok := s.wallets[id]
	if !ok {
		return nil, repositories.ErrWalletNotFound
	}
	cp := *w
	return &cp, nil
}

func (s *fakeStore) IncrementBalance(walletID uint, amount decimal.Decimal) error {
	s.wallets[walletID].Balance = s.wallets[walletID].Balance.Add(amount)
	return nil
}

func (s *fakeStore) DecrementBalance(walletID uint, amount decimal.Decimal) error {
	s.wallets[walletID].Balance = s.wallets[walletID].Balance.Sub(amount)
	return nil
}

func (s *fakeStore) CreateTransaction(*models.Transaction) error { return nil }

func (s *fakeStore) GetTransactionHistory(context.Context, uint, int, int) ([]models.Transaction, error) {
	return nil, nil
}

func (s *fakeStore) ExecuteInTransaction(fn func(repositories.LedgerRepository) error) error {
	return fn(s)
}

func validInput(email string) *models.CreateUserInput {
	return &models.CreateUserInput{
		Email:     email,
		Password:  "s3cret!pass",
		FirstName: "Ada",
		LastName:  "Lovelace",
	}
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates the user and an empty wallet", func(t *testing.T) {
		store := newFakeStore()
		svc := NewService(store, store, karma.NewStatic(nil))

		user, wallet, err := svc.Register(ctx, validInput("Ada@Example.com"))
		require.NoError(t, err)

		assert.Equal(t, "ada@example.com", user.Email)
		assert.Equal(t, user.ID, wallet.UserID)
		assert.True(t, wallet.Balance.IsZero())

		// Password is stored hashed, never verbatim.
		stored := store.users[user.ID]
		assert.NotEqual(t, "s3cret!pass", stored.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("s3cret!pass")))
	})

	t.Run("rejects a blacklisted identity before writing anything", func(t *testing.T) {
		store := newFakeStore()
		svc := NewService(store, store, karma.NewStatic([]string{"ada@example.com"}))

		_, _, err := svc.Register(ctx, validInput("ada@example.com"))
		assert.ErrorIs(t, err, ErrBlacklisted)
		assert.Empty(t, store.users)
		assert.Empty(t, store.wallets)
	})

	t.Run("rejects a duplicate email", func(t *testing.T) {
		store := newFakeStore()
		svc := NewService(store, store, karma.NewStatic(nil))

		_, _, err := svc.Register(ctx, validInput("ada@example.com"))
		require.NoError(t, err)

		_, _, err = svc.Register(ctx, validInput("ADA@example.com"))
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("maps the unique-constraint race to the same conflict", func(t *testing.T) {
		store := newFakeStore()
		store.createErr = errors.New(`duplicate key value violates unique constraint "idx_users_email"`)
		svc := NewService(store, store, karma.NewStatic(nil))

		_, _, err := svc.Register(ctx, validInput("ada@example.com"))
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("rejects malformed emails", func(t *testing.T) {
		store := newFakeStore()
		svc := NewService(store, store, karma.NewStatic(nil))

		for _, email := range []string{"", "not-an-email", "a@b", "spaces in@example.com"} {
			_, _, err := svc.Register(ctx, validInput(email))
			assert.ErrorIs(t, err, ErrInvalidEmail, "email %q", email)
		}
	})

	t.Run("rejects weak passwords", func(t *testing.T) {
		store := newFakeStore()
		svc := NewService(store, store, karma.NewStatic(nil))

		for _, password := range []string{"short!", "longenoughbutplain"} {
			input := validInput("ada@example.com")
			input.Password = password
			_, _, err := svc.Register(ctx, input)
			assert.ErrorIs(t, err, ErrWeakPassword, "password %q", password)
		}
	})

	t.Run("fails closed when the gate errors", func(t *testing.T) {
		store := newFakeStore()
		svc := NewService(store, store, failingGate{})

		_, _, err := svc.Register(ctx, validInput("ada@example.com"))
		assert.ErrorIs(t, err, ErrOnboarding)
		assert.Empty(t, store.users)
	})
}

type failingGate struct{}

func (failingGate) IsBlacklisted(context.Context, string) (bool, error) {
	return false, errors.New("upstream unavailable")
}

func TestGetByID(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, store, karma.NewStatic(nil))

	user, _, err := svc.Register(context.Background(), validInput("ada@example.com"))
	require.NoError(t, err)

	t.Run("returns the user", func(t *testing.T) {
		got, err := svc.GetByID(user.ID)
		require.NoError(t, err)
		assert.Equal(t, user.Email, got.Email)
	})

	t.Run("maps a missing user to not found", func(t *testing.T) {
		_, err := svc.GetByID(999)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
