package main

import (
	"context"
	"fmt"
	"os"

	"github.com/clicksalesmedia/blogpilot/internal/cleanup"
	"github.com/clicksalesmedia/blogpilot/internal/config"
	"github.com/clicksalesmedia/blogpilot/internal/lang"
	"github.com/clicksalesmedia/blogpilot/internal/logger"
	"github.com/clicksalesmedia/blogpilot/internal/publisher"
)

func main() {
	cfg := config.Load()

	if err := logger.Init(logger.Config{
		Level:  cfg.LogLevel,
		Output: cfg.LogFile,
		Pretty: cfg.LogFile == "",
	}); err != nil {
		panic(err)
	}

	fmt.Println("🧹 Blog Post Language Cleanup Tool")
	fmt.Println("==================================================")

	repairer := cleanup.NewRepairer(
		publisher.NewClient(cfg.APIBaseURL, cfg.AuthorID, cfg.PublishTimeout),
		lang.NewDetector(),
	)

	report, err := repairer.Run(context.Background())
	if err != nil {
		logger.Get().Error().Err(err).Msg("💥 Cleanup failed")
		fmt.Printf("❌ Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\n🎉 Cleanup complete! Fixed %d posts (%d already correct, %d failed).\n",
		report.Fixed, report.Correct, report.Failed)
}
