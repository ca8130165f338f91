package service

import "context"

// RateProvider supplies exchange rates for a base currency. Implementations
// are expected to fail soft: a provider outage yields an empty rate map and
// an error the caller may log and ignore, never a hard failure on the
// serving path.
type RateProvider interface {
	// Rates returns the conversion rates from the base currency to every
	// currency the provider knows. The map may be empty when the upstream
	// source is unavailable.
	Rates(ctx context.Context, base string) (map[string]float64, error)
}
