package kvstore

import "context"

// MemoryStore implements Store on a plain map. It backs tests and
// ephemeral runs; contents are lost on Close.
//
// The core is single-threaded by contract (one execution context per
// device profile), so no locking is done here.
type MemoryStore struct {
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, ok := s.data[key]
	if !ok {
		return nil, nil
	}
	return value, nil
}

func (s *MemoryStore) Set(ctx context.Context, key string, value []byte) error {
	if s.data == nil {
		s.data = make(map[string][]byte)
	}
	s.data[key] = value
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	delete(s.data, key)
	return nil
}

func (s *MemoryStore) Close() error {
	s.data = nil
	return nil
}
