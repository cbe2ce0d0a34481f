package user

import "kobo/internal/errors"

var (
	ErrBlacklisted  = errors.Conflict("BLACKLISTED", "User is blacklisted and cannot be onboarded")
	ErrEmailTaken   = errors.Conflict("EMAIL_TAKEN", "Email already registered")
	ErrInvalidEmail = errors.BadRequest("INVALID_EMAIL", "A valid email is required")
	ErrWeakPassword = errors.BadRequest("WEAK_PASSWORD", "Password must be at least 8 characters and contain special characters")
	ErrUserNotFound = errors.NotFound("USER_NOT_FOUND", "User not found")
	ErrOnboarding   = errors.Internal("ONBOARDING_FAILED", "Failed to create account")
)
