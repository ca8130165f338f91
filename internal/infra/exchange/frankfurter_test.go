package exchange

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"innkeep/config"
)

func clientFor(t *testing.T, server *httptest.Server) *frankfurterClient {
	t.Helper()

	cfg := &config.Config{ExchangeRates: &config.ExchangeRatesConfig{
		BaseURL: server.URL,
		Timeout: 2 * time.Second,
	}}

	return NewFrankfurterClient(cfg, nil, nil).(*frankfurterClient)
}

func TestFrankfurterClient_Rates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/latest", r.URL.Path)
		assert.Equal(t, "EUR", r.URL.Query().Get("base"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"base":"EUR","rates":{"USD":1.08,"GBP":0.85}}`))
	}))
	defer server.Close()

	rates, err := clientFor(t, server).Rates(context.Background(), "EUR")
	require.NoError(t, err)
	assert.Equal(t, 1.08, rates["USD"])
	assert.Equal(t, 0.85, rates["GBP"])
}

func TestFrankfurterClient_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	rates, err := clientFor(t, server).Rates(context.Background(), "EUR")
	assert.Error(t, err)
	assert.NotNil(t, rates, "an empty map accompanies the error")
	assert.Empty(t, rates)
}

func TestFrankfurterClient_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	_, err := clientFor(t, server).Rates(context.Background(), "EUR")
	assert.Error(t, err)
}
