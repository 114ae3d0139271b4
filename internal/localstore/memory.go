package localstore

import (
	"encoding/json"
	"fmt"
	"sync"
)

// Memory keeps values in a map. It backs tests and serves as the fallback
// when the store file cannot be opened, so a broken disk never breaks the
// session.
type Memory struct {
	mu     sync.Mutex
	values map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string][]byte)}
}

func (s *Memory) Get(key string, v any) (bool, error) {
	s.mu.Lock()
	raw, ok := s.values[key]
	s.mu.Unlock()

	if !ok {
		return false, nil
	}

	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("localstore: malformed value under key '%s': %w", key, err)
	}

	return true, nil
}

func (s *Memory) Put(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("localstore: failed to marshal value for key '%s': %w", key, err)
	}

	s.mu.Lock()
	s.values[key] = data
	s.mu.Unlock()

	return nil
}

func (s *Memory) Delete(key string) error {
	s.mu.Lock()
	delete(s.values, key)
	s.mu.Unlock()

	return nil
}

func (s *Memory) Close() error {
	return nil
}
