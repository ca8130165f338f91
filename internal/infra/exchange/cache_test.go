package exchange

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"innkeep/config"
)

// fakeSource counts calls and returns a scripted result per call.
type fakeSource struct {
	calls int
	rates map[string]float64
	err   error
}

func (s *fakeSource) Rates(_ context.Context, _ string) (map[string]float64, error) {
	s.calls++
	if s.err != nil {
		return map[string]float64{}, s.err
	}

	return s.rates, nil
}

func cacheWithTTL(source *fakeSource, ttl time.Duration) *cachedProvider {
	cfg := &config.Config{ExchangeRates: &config.ExchangeRatesConfig{TTL: ttl}}

	return NewCachedProvider(source, cfg, nil).(*cachedProvider)
}

func TestCachedProvider_ServesFromCacheWithinTTL(t *testing.T) {
	source := &fakeSource{rates: map[string]float64{"USD": 1.08}}
	cache := cacheWithTTL(source, time.Hour)

	rates, err := cache.Rates(context.Background(), "EUR")
	require.NoError(t, err)
	assert.Equal(t, 1.08, rates["USD"])

	// Second call within TTL must not hit the source.
	_, err = cache.Rates(context.Background(), "EUR")
	require.NoError(t, err)
	assert.Equal(t, 1, source.calls)
}

func TestCachedProvider_RefreshesAfterTTL(t *testing.T) {
	source := &fakeSource{rates: map[string]float64{"USD": 1.08}}
	cache := cacheWithTTL(source, time.Hour)

	_, err := cache.Rates(context.Background(), "EUR")
	require.NoError(t, err)

	// Age the entry past the TTL.
	cache.mu.Lock()
	entry := cache.entries["EUR"]
	entry.fetchedAt = time.Now().Add(-2 * time.Hour)
	cache.entries["EUR"] = entry
	cache.mu.Unlock()

	source.rates = map[string]float64{"USD": 1.10}
	rates, err := cache.Rates(context.Background(), "EUR")
	require.NoError(t, err)
	assert.Equal(t, 1.10, rates["USD"])
	assert.Equal(t, 2, source.calls)
}

func TestCachedProvider_ServesStaleOnRefreshFailure(t *testing.T) {
	source := &fakeSource{rates: map[string]float64{"USD": 1.08}}
	cache := cacheWithTTL(source, time.Hour)

	_, err := cache.Rates(context.Background(), "EUR")
	require.NoError(t, err)

	cache.mu.Lock()
	entry := cache.entries["EUR"]
	entry.fetchedAt = time.Now().Add(-2 * time.Hour)
	cache.entries["EUR"] = entry
	cache.mu.Unlock()

	source.err = errors.New("upstream down")
	rates, err := cache.Rates(context.Background(), "EUR")
	require.NoError(t, err)
	assert.Equal(t, 1.08, rates["USD"], "stale rates win over an error")
}

func TestCachedProvider_EmptyMapWhenColdAndFailing(t *testing.T) {
	source := &fakeSource{err: errors.New("upstream down")}
	cache := cacheWithTTL(source, time.Hour)

	rates, err := cache.Rates(context.Background(), "EUR")
	require.NoError(t, err, "failures never surface to the caller")
	assert.NotNil(t, rates)
	assert.Empty(t, rates)
}

func TestCachedProvider_CachesPerBase(t *testing.T) {
	source := &fakeSource{rates: map[string]float64{"EUR": 0.92}}
	cache := cacheWithTTL(source, time.Hour)

	_, err := cache.Rates(context.Background(), "USD")
	require.NoError(t, err)
	_, err = cache.Rates(context.Background(), "GBP")
	require.NoError(t, err)

	assert.Equal(t, 2, source.calls, "each base currency has its own entry")
}
