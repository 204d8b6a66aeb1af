// Package generator drives one content generation cycle: topic selection,
// model calls, normalization, language detection, slug and publish.
package generator

import (
	"context"
	"fmt"
	"time"

	"github.com/clicksalesmedia/blogpilot/internal/ai"
	"github.com/clicksalesmedia/blogpilot/internal/lang"
	"github.com/clicksalesmedia/blogpilot/internal/logger"
	"github.com/clicksalesmedia/blogpilot/internal/models"
	"github.com/clicksalesmedia/blogpilot/internal/runlog"
	"github.com/clicksalesmedia/blogpilot/internal/slug"
	"github.com/clicksalesmedia/blogpilot/internal/topics"
)

// TextGenerator produces raw model text for a prompt.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// ImageGenerator produces a cover image URL for a title. Implementations
// degrade to a placeholder internally and never fail.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, title string) string
}

// Publisher sends an assembled post to the content store.
type Publisher interface {
	Publish(ctx context.Context, post models.Post) error
}

// Selector yields the (topic, category, language) slots for a batch.
type Selector interface {
	SelectBatch(ctx context.Context, n int) []topics.Selection
}

// Runner assembles and publishes a batch of posts.
type Runner struct {
	selector   Selector
	textGen    TextGenerator
	imageGen   ImageGenerator
	normalizer *ai.Normalizer
	detector   *lang.Detector
	publisher  Publisher
	runLog     *runlog.Writer
	batchSize  int
}

func NewRunner(
	selector Selector,
	textGen TextGenerator,
	imageGen ImageGenerator,
	normalizer *ai.Normalizer,
	detector *lang.Detector,
	publisher Publisher,
	runLog *runlog.Writer,
	batchSize int,
) *Runner {
	return &Runner{
		selector:   selector,
		textGen:    textGen,
		imageGen:   imageGen,
		normalizer: normalizer,
		detector:   detector,
		publisher:  publisher,
		runLog:     runLog,
		batchSize:  batchSize,
	}
}

// GeneratePost assembles one post for a selection. A failed text call
// degrades to the synthesized fallback record; a failed image call degrades
// to the placeholder URL inside the ImageGenerator. The authoritative
// language is detected from the final title, not the requested language.
func (r *Runner) GeneratePost(ctx context.Context, sel topics.Selection) models.Post {
	log := logger.Get()
	start := time.Now()

	log.Info().
		Str("topic", sel.Topic).
		Str("category", sel.Category).
		Str("language", sel.Language).
		Msg("Generating blog post")

	var post models.Post
	prompt := ai.BuildPostPrompt(sel.Topic, sel.Category, sel.Language, time.Now().Year())

	raw, err := r.textGen.GenerateText(ctx, prompt)
	if err != nil {
		log.Error().Err(err).Str("topic", sel.Topic).Msg("Text generation failed, using fallback post")
		post = r.normalizer.Fallback(sel.Topic, sel.Category, sel.Language)
	} else {
		result := r.normalizer.Normalize(raw, sel.Topic, sel.Category, sel.Language)
		if result.Fallback {
			log.Warn().Str("topic", sel.Topic).Msg("Model response was not parseable, fallback post synthesized")
		}
		post = result.Post
	}

	post.CoverImage = r.imageGen.GenerateImage(ctx, post.Title)

	detected := r.detector.Detect(post.Title)
	post.Language = detected
	if detected == models.LanguageArabic {
		post.SetArabicFields()
	} else {
		post.ClearArabicFields()
	}

	post.Slug = slug.Make(post.Title)

	log.Info().
		Str("title", post.Title).
		Str("slug", post.Slug).
		Str("detected_language", detected).
		Dur("duration", time.Since(start)).
		Msg("Assembled blog post")

	return post
}

// Run generates and publishes one batch. A failing post never stops the
// batch; each outcome is recorded and the run summary is saved to disk.
func (r *Runner) Run(ctx context.Context) (runlog.Summary, error) {
	log := logger.Get()
	log.Info().Int("posts", r.batchSize).Msg("🚀 Starting daily blog post generation")

	selections := r.selector.SelectBatch(ctx, r.batchSize)

	posts := make([]models.Post, 0, len(selections))
	published := make([]bool, 0, len(selections))

	for i, sel := range selections {
		log.Info().
			Int("slot", i+1).
			Int("total", len(selections)).
			Str("topic", sel.Topic).
			Msg("📝 Generating post")

		post := r.GeneratePost(ctx, sel)

		ok := true
		if err := r.publisher.Publish(ctx, post); err != nil {
			log.Error().Err(err).Str("title", post.Title).Msg("❌ Failed to publish post")
			ok = false
		} else {
			log.Info().Str("title", post.Title).Msg("✅ Published post")
		}

		posts = append(posts, post)
		published = append(published, ok)
	}

	summary := runlog.NewSummary(posts, published)

	path, err := r.runLog.Save(summary)
	if err != nil {
		return summary, fmt.Errorf("failed to save run log: %w", err)
	}
	log.Info().Str("path", path).Msg("Generation log saved")

	log.Info().Int("generated", len(posts)).Msg("🎉 Completed daily generation")
	return summary, nil
}
