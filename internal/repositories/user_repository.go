package repositories

import "kobo/internal/models"

// UserRepository defines the identity store reads used by auth and
// onboarding. User rows are written only through the onboarding unit of
// work on LedgerRepository.
type UserRepository interface {
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
}
