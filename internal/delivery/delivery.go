// Package delivery holds the inbound transports of the service.
package delivery

import "context"

// Delivery is a long-running inbound transport started by the application.
type Delivery interface {
	// Serve blocks until the transport stops. Shutdown is driven by the fx lifecycle.
	Serve(ctx context.Context) error
}
