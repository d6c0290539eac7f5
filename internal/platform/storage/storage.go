// Package storage provides durable local key-value state under fixed string
// keys: the auth token, the cached identity snapshot and the course wishlist.
package storage

import "context"

// Well-known state keys.
const (
	KeyToken    = "token"
	KeyIdentity = "user"
	KeyWishlist = "courseWishlist"
)

// Store persists small keyed values between runs. Values must be valid
// JSON documents; plain strings are stored JSON-encoded.
type Store interface {
	// Get returns the stored value and whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set writes the value durably before returning.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
