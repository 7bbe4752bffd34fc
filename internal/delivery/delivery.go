// Package delivery defines the entry points through which the outside
// world reaches the application.
package delivery

import "context"

// Delivery is implemented by every transport the application serves on.
type Delivery interface {
	// Serve blocks until the transport stops or the context is cancelled.
	Serve(ctx context.Context) error
}
