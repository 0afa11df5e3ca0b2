package mailerlite

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/xavierca1/site-forms/internal/entity"
)

const DefaultBaseURL = "https://connect.mailerlite.com/api"

// maxBodySize caps how much of a provider response is read.
const maxBodySize = 1 << 20

var ErrNotConfigured = errors.New("mailerlite api key not configured")

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(apiKey, baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

// Subscribe creates or updates a subscriber. The provider's body is returned
// as-is for every status code; only transport failures are errors.
func (c *Client) Subscribe(ctx context.Context, sub entity.Subscription) (*entity.SubscriberResponse, error) {
	if c.apiKey == "" {
		return nil, ErrNotConfigured
	}

	jsonBody, err := json.Marshal(subscribeRequest{Email: sub.Email, Groups: sub.Groups})
	if err != nil {
		return nil, fmt.Errorf("marshal subscriber: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/subscribers", bytes.NewReader(jsonBody))
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("mailerlite request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read mailerlite response: %w", err)
	}

	return &entity.SubscriberResponse{StatusCode: resp.StatusCode, Body: body}, nil
}

func (c *Client) Configured() bool {
	return c.apiKey != ""
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
}
