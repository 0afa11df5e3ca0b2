package resend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/resend/resend-go/v2"

	"github.com/xavierca1/site-forms/internal/entity"
)

const DefaultBaseURL = "https://api.resend.com"

// Client sends contact notifications through the Resend transactional email API.
type Client struct {
	sdk    *resend.Client
	apiKey string
}

func NewClient(apiKey, baseURL string, timeout time.Duration) *Client {
	sdk := resend.NewCustomClient(&http.Client{Timeout: timeout}, apiKey)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	// Request paths are resolved relative to BaseURL, which needs a trailing slash.
	if u, err := url.Parse(strings.TrimRight(baseURL, "/") + "/"); err == nil {
		sdk.BaseURL = u
	}
	return &Client{sdk: sdk, apiKey: apiKey}
}

func (c *Client) Name() string {
	return "resend"
}

func (c *Client) Send(ctx context.Context, n entity.Notification) error {
	if c.apiKey == "" {
		return fmt.Errorf("resend api key not configured")
	}

	params := &resend.SendEmailRequest{
		From:    n.From,
		To:      []string{n.To},
		Subject: n.Subject,
		Text:    n.Text,
		ReplyTo: n.ReplyTo,
		Headers: map[string]string{"X-Submission-ID": n.ID},
	}

	req, err := c.sdk.NewRequestWithOptions(ctx, http.MethodPost, "emails", params,
		&resend.SendEmailOptions{IdempotencyKey: n.ID})
	if err != nil {
		return fmt.Errorf("build resend request: %w", err)
	}

	// A 2xx reply means the email was accepted; its body is not read.
	if _, err := c.sdk.Perform(req, nil); err != nil {
		return fmt.Errorf("resend send failed: %w", err)
	}
	return nil
}
