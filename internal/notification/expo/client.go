// Package expo provides a client for the Expo push notification gateway.
package expo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sportsfollow/sportsfollow/internal/notification"
	"github.com/sportsfollow/sportsfollow/internal/provider/resilience"
)

const (
	// DefaultBaseURL is the base URL for the Expo push service.
	DefaultBaseURL = "https://exp.host"

	// ProviderName identifies this provider.
	ProviderName = "expo-push"

	sendPath = "/--/api/v2/push/send"
)

// HTTPDoer abstracts HTTP request execution.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientConfig holds configuration for the Expo client.
type ClientConfig struct {
	// BaseURL is the push service base URL (defaults to DefaultBaseURL).
	BaseURL string

	// HTTPClient is the HTTP client to use. If nil, a circuit-breaker
	// protected client is created. Push sends are never retried: a replay
	// would notify every device in the batch again.
	HTTPClient HTTPDoer

	// Timeout for individual push requests (default: 15s).
	Timeout time.Duration
}

// Client is an Expo push gateway client.
type Client struct {
	baseURL    string
	httpClient HTTPDoer
}

// NewClient creates a new Expo push client.
func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = 15 * time.Second
		}
		httpClient = resilience.NewClient(resilience.ClientConfig{
			Name:    ProviderName,
			Timeout: timeout,
		})
	}

	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}
}

// Send forwards a batch of messages to the push gateway in one request and
// returns the gateway's raw response body.
func (c *Client) Send(ctx context.Context, messages []notification.Message) (json.RawMessage, error) {
	payload, err := json.Marshal(messages)
	if err != nil {
		return nil, fmt.Errorf("encode push messages: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+sendPath, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send push batch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from push gateway", resp.StatusCode)
	}

	var result json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode push gateway response: %w", err)
	}

	return result, nil
}

// Ensure Client implements the dispatcher's Gateway interface.
var _ notification.Gateway = (*Client)(nil)
