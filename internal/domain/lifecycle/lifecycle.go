// Package lifecycle holds shared startup/shutdown constants used by the
// delivery and infrastructure layers.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup checks and shutdown drains.
const DefaultTimeout = 10 * time.Second
