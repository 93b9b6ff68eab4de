// Package delivery defines the contract every transport (HTTP, workers) fulfils.
package delivery

import "context"

// Delivery is a long-running server owned by the application container.
type Delivery interface {
	// Serve blocks until the server stops or the context is cancelled.
	Serve(ctx context.Context) error
}
