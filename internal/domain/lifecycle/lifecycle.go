// Package lifecycle holds shared constants for process startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown hooks so a wedged dependency
// cannot hang the process forever.
const DefaultTimeout = 30 * time.Second
