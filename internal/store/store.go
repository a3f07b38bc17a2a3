package store

import "context"

// KV is the durable key-value cache the stores persist through.
// Reads never fail: any backend error degrades to "absent".
type KV interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
