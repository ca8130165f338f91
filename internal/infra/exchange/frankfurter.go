// Package exchange provides the currency conversion rate source with an
// in-process TTL cache in front of it.
package exchange

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"

	"innkeep/config"
	"innkeep/internal/domain/service"
	"innkeep/internal/infra/metrics"
)

const (
	defaultBaseURL = "https://api.frankfurter.app"
	defaultTimeout = 10 * time.Second
)

// frankfurterClient fetches conversion rates from the Frankfurter API.
type frankfurterClient struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
	metrics *metrics.HTTPMetrics
}

// NewFrankfurterClient is the constructor for the rate source.
func NewFrankfurterClient(cfg *config.Config, logger *slog.Logger, m *metrics.HTTPMetrics) service.RateProvider {
	baseURL := defaultBaseURL
	timeout := defaultTimeout
	if cfg.ExchangeRates != nil {
		if cfg.ExchangeRates.BaseURL != "" {
			baseURL = cfg.ExchangeRates.BaseURL
		}
		if cfg.ExchangeRates.Timeout > 0 {
			timeout = cfg.ExchangeRates.Timeout
		}
	}

	return &frankfurterClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
		metrics: m,
	}
}

type ratesResponse struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

// Rates fetches the conversion rates for a base currency. Failures return an
// empty map together with the error so the caller can serve a degraded
// response instead of a 5xx.
func (c *frankfurterClient) Rates(ctx context.Context, base string) (map[string]float64, error) {
	start := time.Now()
	rates, err := c.fetch(ctx, base)
	if c.metrics != nil {
		c.metrics.ObserveUpstream("frankfurter", time.Since(start), err)
	}
	if err != nil {
		return map[string]float64{}, err
	}

	return rates, nil
}

func (c *frankfurterClient) fetch(ctx context.Context, base string) (map[string]float64, error) {
	endpoint := fmt.Sprintf("%s/latest?base=%s", c.baseURL, url.QueryEscape(base))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build rates request")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "rates request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1024))

		return nil, errors.Errorf("rates request returned status %d", resp.StatusCode)
	}

	var body ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.Wrap(err, "failed to decode rates response")
	}
	if body.Rates == nil {
		return nil, errors.New("rates response missing rates")
	}

	return body.Rates, nil
}
