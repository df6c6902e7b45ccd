package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port string

	// Outbound HTTP.
	HTTPTimeout     time.Duration
	DailyFeedURL    string
	WeeklyFeedURL   string
	FetchMaxRetries int // 0 = no retries

	// WeeklyFeedRPS/Burst throttle calls to the JMA server.
	WeeklyFeedRPS   float64
	WeeklyFeedBurst int

	// CacheMaxAge is how long a merged forecast is served from memory.
	CacheMaxAge time.Duration

	// RefreshInterval controls how often RefreshCities are reconciled in the background.
	RefreshInterval time.Duration
	RefreshCities   []string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.Port = getenvDefault("PORT", "8080")
	cfg.DailyFeedURL = getenvDefault("DAILY_FEED_BASE_URL", "https://weather.tsukumijima.net/api/forecast")
	cfg.WeeklyFeedURL = getenvDefault("WEEKLY_FEED_BASE_URL", "https://www.jma.go.jp/bosai/forecast/data/forecast")

	var err error
	if cfg.HTTPTimeout, err = getenvDuration("HTTP_TIMEOUT", "10s"); err != nil {
		return nil, err
	}
	if cfg.CacheMaxAge, err = getenvDuration("CACHE_MAX_AGE", "10m"); err != nil {
		return nil, err
	}
	if cfg.RefreshInterval, err = getenvDuration("REFRESH_INTERVAL", "30m"); err != nil {
		return nil, err
	}

	if cfg.FetchMaxRetries, err = getenvInt("FETCH_MAX_RETRIES", 0); err != nil {
		return nil, err
	}
	if cfg.FetchMaxRetries < 0 {
		return nil, fmt.Errorf("invalid FETCH_MAX_RETRIES: must not be negative")
	}
	if cfg.WeeklyFeedBurst, err = getenvInt("WEEKLY_FEED_BURST", 3); err != nil {
		return nil, err
	}

	rps := getenvDefault("WEEKLY_FEED_RPS", "1")
	cfg.WeeklyFeedRPS, err = strconv.ParseFloat(rps, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid WEEKLY_FEED_RPS: %w", err)
	}

	cfg.RefreshCities = splitList(os.Getenv("REFRESH_CITIES"))

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(getenvDefault(key, def))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func getenvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}
