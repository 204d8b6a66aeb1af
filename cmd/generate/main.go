package main

import (
	"context"
	"fmt"
	"os"

	"github.com/clicksalesmedia/blogpilot/internal/ai"
	"github.com/clicksalesmedia/blogpilot/internal/cache"
	"github.com/clicksalesmedia/blogpilot/internal/config"
	"github.com/clicksalesmedia/blogpilot/internal/generator"
	"github.com/clicksalesmedia/blogpilot/internal/lang"
	"github.com/clicksalesmedia/blogpilot/internal/logger"
	"github.com/clicksalesmedia/blogpilot/internal/publisher"
	"github.com/clicksalesmedia/blogpilot/internal/runlog"
	"github.com/clicksalesmedia/blogpilot/internal/topics"
)

func main() {
	// Load and validate configuration; a missing API credential is fatal here.
	cfg := config.Load()

	if err := logger.Init(logger.Config{
		Level:  cfg.LogLevel,
		Output: cfg.LogFile,
		Pretty: cfg.LogFile == "",
	}); err != nil {
		panic(err)
	}

	log := logger.Get()
	fmt.Println("🤖 Click Sales Media - Blog Automation System")
	fmt.Println("============================================================")

	ctx := context.Background()

	// Topic cache is optional; a run without Redis just loses cross-run
	// topic deduplication.
	var topicCache cache.TopicCache
	if cfg.RedisURL != "" {
		redisCache, err := cache.NewRedisCache(cfg.RedisURL)
		if err != nil {
			log.Warn().Err(err).Msg("Topic cache unavailable, continuing without it")
		} else {
			topicCache = redisCache
			defer func() {
				if err := redisCache.Close(); err != nil {
					log.Error().Err(err).Msg("Error closing topic cache")
				}
			}()
		}
	}

	runLogWriter, err := runlog.NewWriter(cfg.RunLogDir)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize run log writer")
	}

	aiClient := ai.NewClient(cfg.OpenAIKey, cfg.TextModel, cfg.ImageModel)
	runner := generator.NewRunner(
		topics.NewSelector(cfg.Languages, topicCache, cfg.TopicTTL),
		aiClient,
		aiClient,
		ai.NewNormalizer(),
		lang.NewDetector(),
		publisher.NewClient(cfg.APIBaseURL, cfg.AuthorID, cfg.PublishTimeout),
		runLogWriter,
		cfg.PostsPerDay,
	)

	summary, err := runner.Run(ctx)
	if err != nil {
		log.Error().Err(err).Msg("💥 Fatal error in daily post generation")
		fmt.Printf("❌ Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\n🎉 Generation Complete!")
	fmt.Printf("📊 Posts Generated: %d\n", summary.PostsGenerated)
	fmt.Println("\n📝 Generated Posts:")
	for i, post := range summary.Posts {
		status := "❌ Failed"
		if post.PublishedSuccess {
			status = "✅ Published"
		}
		fmt.Printf("   %d. %s\n", i+1, post.Title)
		fmt.Printf("      Category: %s | Language: %s | %s\n", post.Category, post.Language, status)
	}
}
