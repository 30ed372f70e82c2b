package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"pickup/internal/core/domain/model/wizard"
	"pickup/internal/pkg/errs"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// DefaultEndpoint is the production order mailer.
const DefaultEndpoint = "https://doby.ro/send-order.php"

const maxResponseBytes = 64 << 10

var ErrSubmissionRejected = errors.New("order was rejected by the endpoint")

// Client posts orders to the endpoint as JSON. It is safe for concurrent use.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient validates the endpoint URL. The timeout bounds each request as a
// whole; zero means no client-side limit.
func NewClient(endpoint string, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("submit endpoint", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"submit endpoint", fmt.Errorf("%q is not an absolute http(s) URL", endpoint))
	}

	return &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}, nil
}

// Submit sends the order once. Transport failures, non-2xx statuses and
// unreadable answers are returned as errors; an answer with success=false
// yields ErrSubmissionRejected.
func (c *Client) Submit(ctx context.Context, order wizard.Order) error {
	body, err := json.Marshal(fromDomain(order))
	if err != nil {
		return fmt.Errorf("encode order %s: %w", order.Number, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("post order %s: %w", order.Number, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return fmt.Errorf("post order %s: unexpected status %d", order.Number, resp.StatusCode)
	}

	var result ResponseDTO
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&result); err != nil {
		return fmt.Errorf("decode answer for order %s: %w", order.Number, err)
	}
	if !result.Success {
		if result.Message != "" {
			return fmt.Errorf("%w: %s", ErrSubmissionRejected, result.Message)
		}
		return ErrSubmissionRejected
	}

	return nil
}
