package topics

import (
	"context"
	"math/rand"
	"sort"
	"time"

	"github.com/clicksalesmedia/blogpilot/internal/cache"
	"github.com/clicksalesmedia/blogpilot/internal/logger"
)

// Selection is one slot of a generation batch.
type Selection struct {
	Topic    string
	Category string
	Language string
}

// Selector picks topics for a batch without repetition, assigning languages
// cyclically from the configured list.
type Selector struct {
	table     map[string]string
	languages []string
	topicTTL  time.Duration
	cache     cache.TopicCache // may be nil
	rng       *rand.Rand
}

func NewSelector(languages []string, topicCache cache.TopicCache, topicTTL time.Duration) *Selector {
	return &Selector{
		table:     All(),
		languages: languages,
		topicTTL:  topicTTL,
		cache:     topicCache,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SelectBatch returns n distinct (topic, category, language) slots drawn
// without replacement from the topic table. Topics seen recently by the cache
// are skipped when possible; if skipping would leave the batch short, recent
// topics are allowed back in rather than returning fewer slots. Selected
// topics are marked used.
func (s *Selector) SelectBatch(ctx context.Context, n int) []Selection {
	log := logger.Get()

	keys := make([]string, 0, len(s.table))
	for topic := range s.table {
		keys = append(keys, topic)
	}
	// Map iteration order is already random, but not uniformly so; sort then
	// shuffle for an unbiased draw.
	sort.Strings(keys)
	s.rng.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })

	if n > len(keys) {
		n = len(keys)
	}

	picked := make([]Selection, 0, n)
	var skipped []string

	for _, topic := range keys {
		if len(picked) == n {
			break
		}
		if s.cache != nil {
			recent, err := s.cache.IsRecent(ctx, topic)
			if err != nil {
				log.Warn().Err(err).Str("topic", topic).Msg("Topic cache lookup failed, treating topic as fresh")
			} else if recent {
				skipped = append(skipped, topic)
				continue
			}
		}
		picked = append(picked, s.newSelection(topic, len(picked)))
	}

	// Not enough fresh topics; fill from the skipped ones.
	for _, topic := range skipped {
		if len(picked) == n {
			break
		}
		picked = append(picked, s.newSelection(topic, len(picked)))
	}

	for _, sel := range picked {
		if s.cache == nil {
			continue
		}
		if err := s.cache.MarkUsed(ctx, sel.Topic, s.topicTTL); err != nil {
			log.Warn().Err(err).Str("topic", sel.Topic).Msg("Failed to mark topic as used")
		}
	}

	return picked
}

func (s *Selector) newSelection(topic string, slot int) Selection {
	return Selection{
		Topic:    topic,
		Category: s.table[topic],
		Language: s.languages[slot%len(s.languages)],
	}
}
