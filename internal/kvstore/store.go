// Package kvstore provides the durable key-value store the OneDate core
// persists into, plus a JSON codec layered on top of it.
//
// The store is the single I/O boundary of the core. There are no
// transactional guarantees across keys: every write replaces one whole
// value, so a crash between two related writes can leave them
// inconsistent, which the single-client scope accepts.
package kvstore

import "context"

// Store is typed read/modify/write access to a local persistent
// string-keyed store.
//
// Contract: Get returns (nil, nil) when the key is absent. Set overwrites
// unconditionally. Delete of an absent key is a no-op.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
