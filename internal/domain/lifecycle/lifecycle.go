// Package lifecycle holds shared lifecycle tuning values used by fx hooks.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown hooks.
const DefaultTimeout = 10 * time.Second
