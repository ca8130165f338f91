// Package lifecycle holds shared constants for application startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds lifecycle hooks: startup pings, graceful shutdown.
const DefaultTimeout = 10 * time.Second
