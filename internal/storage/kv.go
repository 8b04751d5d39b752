package storage

import "context"

// Persisted state keys. Each value is a JSON-encoded blob.
const (
	KeyCartItems   = "storefront_cart"
	KeyAuthToken   = "auth_token"
	KeyCurrentUser = "current_user"
)

// KeyValueStore is the per-client blob store the storefront persists into.
// No expiry, no transactions; Get reports absence via the bool.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
