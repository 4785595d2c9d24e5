package health

import "context"

// Pinger checks a component's availability.
type Pinger interface {
	Ping(ctx context.Context) error
}
