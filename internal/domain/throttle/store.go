package throttle

import "context"

// Store is the key-value capability the limiter persists through. Get
// reports found=false for a missing key; err is reserved for an
// unavailable backend.
type Store interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
