package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/clicksalesmedia/blogpilot/internal/config"
	"github.com/clicksalesmedia/blogpilot/internal/logger"
	"github.com/clicksalesmedia/blogpilot/internal/publisher"
	"github.com/clicksalesmedia/blogpilot/internal/remover"
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

	fmt.Println("🗑️  Blog Post Removal Tool")
	fmt.Println("==================================================")

	fmt.Print("⚠️  Are you sure you want to remove ALL blog posts? (yes/no): ")
	reader := bufio.NewReader(os.Stdin)
	answer, _ := reader.ReadString('\n')
	if strings.TrimSpace(strings.ToLower(answer)) != "yes" {
		fmt.Println("❌ Operation cancelled.")
		return
	}

	rm := remover.NewRemover(publisher.NewClient(cfg.APIBaseURL, cfg.AuthorID, cfg.PublishTimeout))

	report, err := rm.Run(context.Background())
	if err != nil {
		logger.Get().Error().Err(err).Msg("💥 Removal failed")
		fmt.Printf("❌ Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\n🎉 Cleanup Summary:")
	fmt.Printf("✅ Successfully removed: %d posts\n", report.Removed)
	fmt.Printf("❌ Failed to remove: %d posts\n", report.Failed)
}
