package repository

import "sync"

// MockCache is an in-process CacheRepository. With MaxEntries set, the
// oldest key is dropped once the limit is passed.
type MockCache struct {
	mu         sync.Mutex
	Data       map[string]string
	MaxEntries int
	order      []string
}

func NewMockCache() *MockCache {
	return &MockCache{
		Data: make(map[string]string),
	}
}

// NewBoundedMockCache keeps at most maxEntries keys.
func NewBoundedMockCache(maxEntries int) *MockCache {
	c := NewMockCache()
	c.MaxEntries = maxEntries
	return c
}

func (m *MockCache) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.Data[key]; !exists {
		m.order = append(m.order, key)
	}
	m.Data[key] = value
	if m.MaxEntries > 0 {
		for len(m.order) > m.MaxEntries {
			delete(m.Data, m.order[0])
			m.order = m.order[1:]
		}
	}
	return nil
}

func (m *MockCache) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Data, key)
	for i, k := range m.order {
		if k == key {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}
