package pagespeed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/raysh454/sokudo/internal/logging"
	"github.com/raysh454/sokudo/internal/webclient"
)

// Config holds the upstream endpoint and credentials.
type Config struct {
	// Endpoint is the runPagespeed URL without query parameters.
	Endpoint string

	// APIKey is passed as the key query parameter. Never log it.
	APIKey string

	// Strategy is the device profile: mobile or desktop.
	Strategy string
}

// Client runs a single audit against the PageSpeed Insights API.
type Client struct {
	cfg    Config
	wc     webclient.WebClient
	logger logging.Logger
}

// NewClient creates a Client over the given webclient backend.
func NewClient(cfg Config, wc webclient.WebClient, logger logging.Logger) *Client {
	return &Client{
		cfg:    cfg,
		wc:     wc,
		logger: logger.With(logging.Field{Key: "component", Value: "pagespeed"}),
	}
}

// UpstreamError reports a non-2xx response from the API. The body is kept
// verbatim so the HTTP layer can forward it as the error detail.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("pagespeed api responded %d", e.StatusCode)
}

// RequestURL builds the upstream URL for the given target page.
func (c *Client) RequestURL(target string) string {
	q := url.Values{}
	q.Set("url", target)
	q.Set("key", c.cfg.APIKey)
	q.Set("strategy", c.cfg.Strategy)
	return c.cfg.Endpoint + "?" + q.Encode()
}

// Run issues one GET to the API and decodes the payload. No retries: a failed
// audit surfaces to the caller as-is.
func (c *Client) Run(ctx context.Context, target string) (*Result, error) {
	c.logger.Debug("running pagespeed audit",
		logging.Field{Key: "url", Value: target},
		logging.Field{Key: "strategy", Value: c.cfg.Strategy})

	resp, err := c.wc.Do(ctx, &webclient.Request{
		Method: http.MethodGet,
		URL:    c.RequestURL(target),
	})
	if err != nil {
		return nil, fmt.Errorf("calling pagespeed api: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("pagespeed api rejected audit",
			logging.Field{Key: "url", Value: target},
			logging.Field{Key: "status", Value: resp.StatusCode})
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: string(resp.Body)}
	}

	var res Result
	if err := json.Unmarshal(resp.Body, &res); err != nil {
		return nil, fmt.Errorf("decoding pagespeed response: %w", err)
	}
	return &res, nil
}
