// Package delivery defines the inbound transport abstraction served by main.
package delivery

import "context"

// Delivery is one inbound transport (HTTP today) started by the application.
type Delivery interface {
	// Serve blocks serving requests until the server is shut down.
	Serve(ctx context.Context) error
}
