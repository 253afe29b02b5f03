// Package delivery defines the contract every transport surface satisfies.
package delivery

import "context"

// Delivery is a serving surface started by the application entry point.
type Delivery interface {
	// Serve blocks while handling traffic until the context is done or the
	// surface is shut down.
	Serve(ctx context.Context) error
}
