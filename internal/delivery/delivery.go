// Package delivery defines the contract every transport entrypoint satisfies.
package delivery

import "context"

// Delivery is a serving surface (HTTP today) started by the application.
type Delivery interface {
	Serve(ctx context.Context) error
}
