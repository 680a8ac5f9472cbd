// internal/config/config.go

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Project identity, used by the welcome endpoint.
const (
	ProjectName = "AI Trend Analysis API"
	Version     = "1.0.0"
)

// Config holds all application configuration
type Config struct {
	Environment  string
	Server       ServerConfig
	OpenAI       OpenAIConfig
	Reddit       RedditConfig
	GoogleTrends GoogleTrendsConfig
	Apify        ApifyConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	CorsOrigins     []string
}

// OpenAIConfig holds narrative service configuration
type OpenAIConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
	MaxTokens   int
}

// RedditConfig holds Reddit scraper configuration
type RedditConfig struct {
	UserAgent  string
	Subreddits []string
	PostLimit  int
}

// GoogleTrendsConfig holds Google Trends scraper configuration
type GoogleTrendsConfig struct {
	Geo        string
	Timeframe  string
	TopicLimit int
}

// ApifyConfig holds Apify proxy configuration for the TikTok and Twitter
// scrapers
type ApifyConfig struct {
	Token       string
	TikTokLimit int
	MaxTweets   int
}

// Load loads configuration from environment variables
func Load() (Config, error) {
	config := Config{
		Environment: getEnv("APP_ENV", "development"),
		Server: ServerConfig{
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			Port:            getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:     getEnvAsDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvAsDuration("SERVER_WRITE_TIMEOUT", 3*time.Minute),
			ShutdownTimeout: getEnvAsDuration("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
			CorsOrigins:     getEnvAsSlice("SERVER_CORS_ORIGINS", []string{"http://localhost", "http://localhost:8000", "http://localhost:3000"}),
		},
		OpenAI: OpenAIConfig{
			APIKey:      getEnv("OPENAI_API_KEY", ""),
			BaseURL:     getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			Model:       getEnv("OPENAI_MODEL", "gpt-4"),
			Temperature: getEnvAsFloat("OPENAI_TEMPERATURE", 0.7),
			MaxTokens:   getEnvAsInt("OPENAI_MAX_TOKENS", 500),
		},
		Reddit: RedditConfig{
			UserAgent:  getEnv("REDDIT_USER_AGENT", "TrendAnalysisBot/1.0"),
			Subreddits: getEnvAsSlice("REDDIT_SUBREDDITS", []string{"all", "popular", "trendingsubreddits"}),
			PostLimit:  getEnvAsInt("REDDIT_POST_LIMIT", 10),
		},
		GoogleTrends: GoogleTrendsConfig{
			Geo:        getEnv("GOOGLE_TRENDS_GEO", "US"),
			Timeframe:  getEnv("GOOGLE_TRENDS_TIMEFRAME", "now 7-d"),
			TopicLimit: getEnvAsInt("GOOGLE_TRENDS_TOPIC_LIMIT", 10),
		},
		Apify: ApifyConfig{
			Token:       getEnv("APIFY_API_KEY", ""),
			TikTokLimit: getEnvAsInt("TIKTOK_TRENDING_HASHTAGS_LIMIT", 20),
			MaxTweets:   getEnvAsInt("TWITTER_MAX_TWEETS", 100),
		},
	}

	return config, validate(config)
}

// validate checks if config is valid
func validate(config Config) error {
	if config.OpenAI.APIKey == "" && config.Environment != "development" {
		return fmt.Errorf("OPENAI_API_KEY must be set in non-development environments")
	}

	return nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	return strings.Split(valueStr, ",")
}
