// Package karma implements the onboarding blacklist gate. Account creation
// consults it once, before any user or wallet row is written.
package karma

import (
	"context"
	"strings"
	"time"

	"kobo/internal/config"
)

// Service answers whether an identity is blacklisted.
type Service interface {
	IsBlacklisted(ctx context.Context, identity string) (bool, error)
}

// NewFromEnv selects the gate strategy from configuration: the live
// Adjutor karma API, or a static denylist for development and tests.
func NewFromEnv() Service {
	if config.GetEnv("KARMA_PROVIDER", "live") == "static" {
		var identities []string
		if raw := config.GetEnv("KARMA_DENYLIST", ""); raw != "" {
			identities = strings.Split(raw, ",")
		}
		return NewStatic(identities)
	}

	return NewClient(Config{
		BaseURL:  config.GetEnv("ADJUTOR_BASE_URL", "https://adjutor.lendsqr.com/v2"),
		APIKey:   config.GetEnv("ADJUTOR_API_KEY", ""),
		Timeout:  time.Duration(config.GetIntEnv("KARMA_TIMEOUT_SECONDS", 30)) * time.Second,
		FailOpen: config.GetBoolEnv("KARMA_FAIL_OPEN", true),
	})
}

// static is an in-memory gate backed by a fixed denylist.
type static struct {
	denied map[string]struct{}
}

// NewStatic creates a gate that blacklists exactly the given identities.
func NewStatic(identities []string) Service {
	denied := make(map[string]struct{}, len(identities))
	for _, id := range identities {
		id = strings.ToLower(strings.TrimSpace(id))
		if id != "" {
			denied[id] = struct{}{}
		}
	}
	return &static{denied: denied}
}

func (s *static) IsBlacklisted(_ context.Context, identity string) (bool, error) {
	_, ok := s.denied[strings.ToLower(strings.TrimSpace(identity))]
	return ok, nil
}
