// Package delivery defines the contract every transport entrypoint satisfies.
package delivery

import "context"

// Delivery is a long-running transport (HTTP server, worker, ...) started by
// the application lifecycle.
type Delivery interface {
	// Serve blocks until the delivery stops or ctx is cancelled.
	Serve(ctx context.Context) error
}
