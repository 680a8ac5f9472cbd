// cmd/api/main.go

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"trendscope/internal/config"
	"trendscope/internal/server"
	"trendscope/internal/service/analysis"
	"trendscope/internal/service/narrative"
	"trendscope/internal/service/social"
)

func main() {
	// Load .env file if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Narrative service and analysis core
	narrator := narrative.NewOpenAINarrator(narrative.Config{
		APIKey:      cfg.OpenAI.APIKey,
		BaseURL:     cfg.OpenAI.BaseURL,
		Model:       cfg.OpenAI.Model,
		Temperature: cfg.OpenAI.Temperature,
		MaxTokens:   cfg.OpenAI.MaxTokens,
	})
	analyzer := analysis.NewAnalyzer(narrator)

	// Platform record sources
	apify := social.NewApifyClient(cfg.Apify.Token, "")
	registry := social.NewRegistry(
		social.NewRedditClient(social.RedditConfig{
			UserAgent:  cfg.Reddit.UserAgent,
			Subreddits: cfg.Reddit.Subreddits,
			PostLimit:  cfg.Reddit.PostLimit,
		}),
		social.NewGoogleTrendsClient(social.GoogleTrendsConfig{
			Geo:        cfg.GoogleTrends.Geo,
			Timeframe:  cfg.GoogleTrends.Timeframe,
			TopicLimit: cfg.GoogleTrends.TopicLimit,
		}),
		social.NewTikTokSource(apify, cfg.Apify.TikTokLimit),
		social.NewTwitterSource(apify, cfg.Apify.MaxTweets),
	)

	// Initialize HTTP server
	httpServer := server.NewServer(cfg.Server, registry, analyzer)

	// Start HTTP server
	go func() {
		log.Printf("Starting HTTP server on %s:%d", cfg.Server.Host, cfg.Server.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	// Wait for shutdown signal
	<-shutdown
	log.Println("Shutdown signal received")

	// Create shutdown context with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	// Graceful shutdown
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	log.Println("Shutdown complete")
}
