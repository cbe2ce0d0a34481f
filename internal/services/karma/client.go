package karma

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
)

// Config holds the settings for the live karma client.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	// FailOpen controls the policy on upstream failure: allow the user
	// (true) or block onboarding (false).
	FailOpen bool
}

type client struct {
	cfg  Config
	http *http.Client
}

// NewClient creates a gate backed by the Adjutor karma lookup API.
func NewClient(cfg Config) Service {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}
}

type karmaResponse struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
}

func (c *client) IsBlacklisted(ctx context.Context, identity string) (bool, error) {
	endpoint := fmt.Sprintf("%s/verification/karma/%s", c.cfg.BaseURL, url.PathEscape(identity))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return c.failPolicy(err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return c.failPolicy(err)
	}
	defer resp.Body.Close()

	// 404 means the identity is not in the blacklist.
	if resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if resp.StatusCode != http.StatusOK {
		return c.failPolicy(fmt.Errorf("unexpected status code: %d", resp.StatusCode))
	}

	var body karmaResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return c.failPolicy(err)
	}

	// A success payload with data present means the identity is listed.
	listed := body.Status == "success" && len(body.Data) > 0 && string(body.Data) != "null"
	return listed, nil
}

func (c *client) failPolicy(err error) (bool, error) {
	if c.cfg.FailOpen {
		logrus.WithError(err).Warn("karma lookup failed, allowing identity")
		return false, nil
	}
	return false, fmt.Errorf("karma lookup failed: %w", err)
}
