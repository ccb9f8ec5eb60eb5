// Package delivery defines the contract shared by the transport servers.
package delivery

import "context"

// Delivery is a long-running transport (HTTP server, worker loop) started by
// the application container. Serve blocks until the transport stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
