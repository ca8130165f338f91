package exchange

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"innkeep/config"
	"innkeep/internal/domain/service"
)

const defaultTTL = 6 * time.Hour

// cachedProvider wraps a RateProvider with a per-base-currency TTL cache.
// A stale entry is served when the upstream fails, so rate lookups degrade
// instead of erroring.
type cachedProvider struct {
	source service.RateProvider
	ttl    time.Duration
	logger *slog.Logger

	mu      sync.RWMutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	rates     map[string]float64
	fetchedAt time.Time
}

// NewCachedProvider wraps a rate source with the configured TTL cache.
func NewCachedProvider(source service.RateProvider, cfg *config.Config, logger *slog.Logger) service.RateProvider {
	ttl := defaultTTL
	if cfg.ExchangeRates != nil && cfg.ExchangeRates.TTL > 0 {
		ttl = cfg.ExchangeRates.TTL
	}

	return &cachedProvider{
		source:  source,
		ttl:     ttl,
		logger:  logger,
		entries: make(map[string]cacheEntry),
	}
}

// Rates returns cached rates when fresh, refreshes when stale, and falls back
// to the stale entry (or an empty map) when the refresh fails. The error is
// never propagated once any rates can be served.
func (p *cachedProvider) Rates(ctx context.Context, base string) (map[string]float64, error) {
	now := time.Now()

	p.mu.RLock()
	entry, ok := p.entries[base]
	p.mu.RUnlock()

	if ok && now.Sub(entry.fetchedAt) < p.ttl {
		return entry.rates, nil
	}

	rates, err := p.source.Rates(ctx, base)
	if err != nil {
		if p.logger != nil {
			p.logger.WarnContext(ctx, "exchange rate refresh failed, serving cached rates",
				slog.String("base", base),
				slog.String("error", err.Error()),
			)
		}
		if ok {
			return entry.rates, nil
		}

		return map[string]float64{}, nil
	}

	p.mu.Lock()
	p.entries[base] = cacheEntry{rates: rates, fetchedAt: now}
	p.mu.Unlock()

	return rates, nil
}
