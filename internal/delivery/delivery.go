// Package delivery defines the contract every transport entrypoint implements.
package delivery

import "context"

// Delivery is a serving surface of the application (HTTP today).
type Delivery interface {
	// Serve blocks, accepting traffic until the server is shut down.
	Serve(ctx context.Context) error
}
