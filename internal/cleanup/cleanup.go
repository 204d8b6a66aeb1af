// Package cleanup repairs published posts whose stored localized fields
// disagree with the language actually detected from their title.
package cleanup

import (
	"context"
	"fmt"

	"github.com/clicksalesmedia/blogpilot/internal/lang"
	"github.com/clicksalesmedia/blogpilot/internal/logger"
	"github.com/clicksalesmedia/blogpilot/internal/models"
	"github.com/clicksalesmedia/blogpilot/internal/publisher"
)

// Store is the slice of the content store API the repair tool needs.
type Store interface {
	ListPublished(ctx context.Context) ([]publisher.RemotePost, error)
	Update(ctx context.Context, slug string, payload publisher.PostPayload) error
}

// Report counts the outcome of one repair run.
type Report struct {
	Inspected int
	Fixed     int
	Correct   int
	Failed    int
}

// Repairer re-detects the language of every published post and issues a
// corrective update when the localized-field presence is wrong.
type Repairer struct {
	store    Store
	detector *lang.Detector
}

func NewRepairer(store Store, detector *lang.Detector) *Repairer {
	return &Repairer{store: store, detector: detector}
}

// Run inspects all published posts. English posts carrying Arabic shadow
// fields get them nulled; Arabic posts missing them get them populated from
// the stored English-side fields. Everything else is left untouched.
func (r *Repairer) Run(ctx context.Context) (Report, error) {
	log := logger.Get()

	posts, err := r.store.ListPublished(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("failed to list posts: %w", err)
	}

	log.Info().Int("posts", len(posts)).Msg("🔍 Analyzing published posts")

	var report Report
	for _, post := range posts {
		if post.Slug == "" {
			continue
		}
		report.Inspected++

		detected := r.detector.Detect(post.Title)
		payload, needsUpdate := r.repairPayload(post, detected)

		if !needsUpdate {
			report.Correct++
			log.Info().Str("title", post.Title).Str("language", detected).Msg("✅ Correct assignment")
			continue
		}

		if err := r.store.Update(ctx, post.Slug, payload); err != nil {
			report.Failed++
			log.Error().Err(err).Str("title", post.Title).Msg("❌ Failed to fix post")
			continue
		}

		report.Fixed++
		log.Info().Str("title", post.Title).Str("language", detected).Msg("✅ Fixed post")
	}

	log.Info().Int("fixed", report.Fixed).Int("correct", report.Correct).Int("failed", report.Failed).
		Msg("🎉 Cleanup complete")

	return report, nil
}

// repairPayload builds the corrective update for a post, or reports that the
// stored state already matches the detected language.
func (r *Repairer) repairPayload(post publisher.RemotePost, detected string) (publisher.PostPayload, bool) {
	base := publisher.PostPayload{
		Title:      post.Title,
		Slug:       post.Slug,
		Content:    post.Content,
		Excerpt:    post.Excerpt,
		CoverImage: post.CoverImage,
		Published:  post.Published,
		Categories: post.Categories,
	}

	switch {
	case detected == models.LanguageEnglish && post.TitleAr != nil:
		// English post incorrectly carrying Arabic fields: null them all.
		return base, true

	case detected == models.LanguageArabic && post.TitleAr == nil:
		// Arabic post missing its localized fields: mirror the stored ones.
		title := post.Title
		content := post.Content
		excerpt := post.Excerpt
		meta := post.MetaDescription
		base.TitleAr = &title
		base.ContentAr = &content
		base.ExcerptAr = &excerpt
		base.MetaDescriptionAr = &meta
		return base, true
	}

	return publisher.PostPayload{}, false
}
