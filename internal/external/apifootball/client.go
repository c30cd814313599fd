package apifootball

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/predictpro/backend/pkg/config"
	"github.com/predictpro/backend/pkg/logger"
)

// Client handles communication with the API-Football provider.
// All provider calls go through this client.
//
// Rate-limit responses (403 on the free tier, 429 elsewhere) are reported
// as empty results, not errors: the provider being temporarily unavailable
// is an expected state the evaluators handle as insufficient data.
type Client struct {
	httpClient *http.Client
	logger     *logger.Logger
	apiKey     string
	baseURL    string
	limiter    *rate.Limiter

	maxRetries   int
	initialDelay time.Duration
}

// NewClient creates a new API-Football client
func NewClient(cfg *config.Config, log *logger.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger:       log,
		apiKey:       cfg.APIFootball.APIKey,
		baseURL:      cfg.APIFootball.BaseURL,
		limiter:      rate.NewLimiter(rate.Limit(cfg.APIFootball.RequestsPerSecond), 1),
		maxRetries:   3,
		initialDelay: 1 * time.Second,
	}
}

// get performs a paced GET against the provider and decodes the body into
// dest. Returns (unavailable=true, nil) on rate-limit responses.
func (c *Client) get(ctx context.Context, path string, params url.Values, dest interface{}) (bool, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return false, fmt.Errorf("rate limiter wait: %w", err)
	}

	fullURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())

	resp, err := c.doWithRetry(ctx, fullURL)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusTooManyRequests {
		// Free-tier limit reached; callers treat this as no data
		c.logger.WithFields(map[string]interface{}{
			"path":   path,
			"status": resp.StatusCode,
		}).Warn("API-Football request limit reached")
		return true, nil
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return false, fmt.Errorf("unexpected status %d from %s: %s", resp.StatusCode, path, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return false, fmt.Errorf("decode %s response: %w", path, err)
	}

	return false, nil
}

// doWithRetry executes the request, retrying server errors with
// exponential backoff
func (c *Client) doWithRetry(ctx context.Context, fullURL string) (*http.Response, error) {
	var resp *http.Response
	var err error

	delay := c.initialDelay

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if reqErr != nil {
			return nil, fmt.Errorf("create request: %w", reqErr)
		}
		req.Header.Set("x-apisports-key", c.apiKey)

		start := time.Now()
		resp, err = c.httpClient.Do(req)

		if err == nil && resp.StatusCode < 500 {
			c.logger.WithFields(map[string]interface{}{
				"url":      req.URL.Path,
				"status":   resp.StatusCode,
				"duration": time.Since(start),
			}).Debug("API-Football request completed")
			return resp, nil
		}

		if resp != nil {
			resp.Body.Close()
		}

		if attempt == c.maxRetries {
			break
		}

		c.logger.WithFields(map[string]interface{}{
			"url":     req.URL.Path,
			"attempt": attempt + 1,
			"delay":   delay,
		}).Warn("Retrying API-Football request")

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}

	if err != nil {
		return nil, fmt.Errorf("request failed after %d attempts: %w", c.maxRetries+1, err)
	}
	return nil, fmt.Errorf("server error %d after %d attempts", resp.StatusCode, c.maxRetries+1)
}
