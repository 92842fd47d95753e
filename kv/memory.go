package kv

import (
	"errors"
	"sync"
)

// ErrUnavailable simulates a storage backend fault in tests
var ErrUnavailable = errors.New("storage unavailable")

// Memory is a map-backed Store for tests. FailGets and FailSets force
// storage faults so the recovery paths can be exercised.
type Memory struct {
	mu       sync.Mutex
	data     map[string][]byte
	FailGets bool
	FailSets bool
}

// NewMemory creates an empty in-memory store
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

// Get returns the value stored under key
func (m *Memory) Get(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailGets {
		return nil, ErrUnavailable
	}

	value, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}

	copied := make([]byte, len(value))
	copy(copied, value)
	return copied, nil
}

// Set stores value under key
func (m *Memory) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailSets {
		return ErrUnavailable
	}

	copied := make([]byte, len(value))
	copy(copied, value)
	m.data[key] = copied
	return nil
}

// Close is a no-op for the in-memory store
func (m *Memory) Close() error {
	return nil
}
