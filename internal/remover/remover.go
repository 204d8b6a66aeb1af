// Package remover bulk-deletes published posts from the content store.
package remover

import (
	"context"
	"fmt"

	"github.com/clicksalesmedia/blogpilot/internal/logger"
	"github.com/clicksalesmedia/blogpilot/internal/publisher"
)

// Store is the slice of the content store API the removal tool needs.
type Store interface {
	ListPublished(ctx context.Context) ([]publisher.RemotePost, error)
	Delete(ctx context.Context, slug string) error
}

// Report counts the outcome of one removal run.
type Report struct {
	Found   int
	Removed int
	Failed  int
}

type Remover struct {
	store Store
}

func NewRemover(store Store) *Remover {
	return &Remover{store: store}
}

// Run deletes every published post by slug. Posts without a slug cannot be
// addressed and count as failures.
func (r *Remover) Run(ctx context.Context) (Report, error) {
	log := logger.Get()

	posts, err := r.store.ListPublished(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("failed to list posts: %w", err)
	}

	if len(posts) == 0 {
		log.Info().Msg("ℹ️  No posts found to remove")
		return Report{}, nil
	}

	report := Report{Found: len(posts)}
	log.Info().Int("posts", len(posts)).Msg("🗑️  Removing posts")

	for _, post := range posts {
		if post.Slug == "" {
			report.Failed++
			log.Warn().Str("title", post.Title).Msg("❌ No slug found for post")
			continue
		}

		if err := r.store.Delete(ctx, post.Slug); err != nil {
			report.Failed++
			log.Error().Err(err).Str("title", post.Title).Msg("❌ Failed to remove post")
			continue
		}

		report.Removed++
		log.Info().Str("title", post.Title).Msg("✅ Removed post")
	}

	log.Info().Int("removed", report.Removed).Int("failed", report.Failed).Msg("🎉 Removal complete")
	return report, nil
}
