// Package delivery contains the entry points that drive the use cases.
package delivery

import "context"

// Delivery is a long-running transport started by the fx application.
// Serve blocks until the transport stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
