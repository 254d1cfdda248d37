package notify

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/kouassidev/ferme/internal/domain/models"
)

// Client exposes the digest delivery operation used by the scheduler.
type Client interface {
	SendDigest(ctx context.Context, digest models.Digest) error
}

// WebhookClient is a resty-backed implementation of Client posting digests to
// a configured HTTP endpoint.
type WebhookClient struct {
	httpClient *resty.Client
	webhookURL string
}

// NewWebhookClient builds a webhook notifier for the given URL.
func NewWebhookClient(webhookURL string) *WebhookClient {
	restyClient := resty.New()
	restyClient.
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(2 * time.Second)

	return &WebhookClient{
		httpClient: restyClient,
		webhookURL: webhookURL,
	}
}

// SendDigest posts the digest as a JSON payload to the webhook.
func (c *WebhookClient) SendDigest(ctx context.Context, digest models.Digest) error {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(digest).
		Post(c.webhookURL)
	if err != nil {
		return fmt.Errorf("send digest webhook: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		return fmt.Errorf("digest webhook rejected: status=%d, body=%s", resp.StatusCode(), resp.String())
	}

	return nil
}
