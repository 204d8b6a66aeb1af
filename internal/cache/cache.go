package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// TopicCache remembers which topics were recently generated so consecutive
// daily runs don't keep landing on the same ones.
type TopicCache interface {
	IsRecent(ctx context.Context, topic string) (bool, error)
	MarkUsed(ctx context.Context, topic string, ttl time.Duration) error
	Close() error
}

// hashTopic keys the cache by a digest rather than the raw topic string.
func hashTopic(topic string) string {
	sum := sha256.Sum256([]byte(topic))
	return hex.EncodeToString(sum[:])
}
