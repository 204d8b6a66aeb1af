package cache

import (
	"context"
	"time"
)

// MockCache provides an in-memory TopicCache for tests and for runs where
// Redis is not configured.
type MockCache struct {
	data   map[string]string
	prefix string
}

func NewMockCache() *MockCache {
	return &MockCache{
		data:   make(map[string]string),
		prefix: keyPrefix,
	}
}

func (m *MockCache) Close() error {
	return nil
}

func (m *MockCache) IsRecent(ctx context.Context, topic string) (bool, error) {
	_, exists := m.data[m.prefix+hashTopic(topic)]
	return exists, nil
}

func (m *MockCache) MarkUsed(ctx context.Context, topic string, ttl time.Duration) error {
	m.data[m.prefix+hashTopic(topic)] = "1"
	return nil
}
