package validation

import "regexp"

var (
	specialChars = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// HasSpecialChar checks if a string contains at least one special character.
func HasSpecialChar(s string) bool {
	return specialChars.MatchString(s)
}

// ValidEmail checks that a string looks like an email address.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}
