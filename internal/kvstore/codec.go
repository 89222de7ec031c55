package kvstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/onedate/onedate/internal/logging"
)

// Codec reads and writes JSON-encoded values through a Store.
//
// Malformed stored text is recovered locally: Get leaves the target
// untouched and reports the key as absent, so callers fall back to their
// defaults instead of surfacing a decode error to the user. The incident
// is logged at Warn.
type Codec struct {
	store Store
	log   logging.Logger
}

func NewCodec(store Store, log logging.Logger) *Codec {
	return &Codec{store: store, log: log}
}

// Get decodes the value under key into v. It returns false when the key
// is absent or its stored text does not decode; v is not modified in
// either case. The error is non-nil only for store I/O failures.
func (c *Codec) Get(ctx context.Context, key string, v any) (bool, error) {
	raw, err := c.store.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if raw == nil {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		c.log.Warn(ctx, "malformed stored data, using defaults", "key", key, "error", err)
		return false, nil
	}
	return true, nil
}

// Set encodes v as JSON and replaces the value under key.
func (c *Codec) Set(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return c.store.Set(ctx, key, raw)
}

// Delete removes the value under key.
func (c *Codec) Delete(ctx context.Context, key string) error {
	return c.store.Delete(ctx, key)
}
