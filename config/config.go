package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// defaultUserAgents is the rotation pool for outgoing requests. One entry is
// picked at random per request so blanket UA blocking is less effective.
var defaultUserAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/90.0.4430.212 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:89.0) Gecko/20100101 Firefox/89.0",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.1 Safari/605.1.15",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/92.0.4515.107 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Edge/91.0.864.59 Safari/537.36",
	"Mozilla/5.0 (iPhone; CPU iPhone OS 14_6 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.1 Mobile/15E148 Safari/604.1",
}

// Config holds all application configuration loaded from environment
// variables. It is built once at startup and treated as immutable afterwards.
type Config struct {
	DBPath     string
	ExportPath string

	EbaySearchURL   string
	AmazonSearchURL string
	UserAgents      []string

	// RelevanceCutoff is the match score a listing must exceed to count
	// towards analytics. Listings at or below it are still stored.
	RelevanceCutoff int

	// DefaultThreshold is substituted when the user enters an invalid
	// price threshold.
	DefaultThreshold float64

	FetchTimeoutSec int
	MaxRetries      int
	RateLimitMs     int

	Debug bool
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		DBPath:     getEnv("DB_PATH", "armitage_listings.db"),
		ExportPath: getEnv("EXPORT_PATH", "armitage_listings_export.csv"),

		EbaySearchURL:   getEnv("EBAY_SEARCH_URL", "https://www.ebay.com/sch/i.html?_nkw=%s"),
		AmazonSearchURL: getEnv("AMAZON_SEARCH_URL", "https://www.amazon.com/s?k=%s"),
		UserAgents:      defaultUserAgents,

		RelevanceCutoff:  getEnvInt("RELEVANCE_CUTOFF", 70),
		DefaultThreshold: getEnvFloat("DEFAULT_PRICE_THRESHOLD", 50),

		FetchTimeoutSec: getEnvInt("FETCH_TIMEOUT_SEC", 30),
		MaxRetries:      getEnvInt("MAX_RETRIES", 3),
		RateLimitMs:     getEnvInt("RATE_LIMIT_MS", 1500),

		Debug: getEnv("DEBUG", "") != "",
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if val := os.Getenv(key); val != "" {
		f, err := strconv.ParseFloat(val, 64)
		if err == nil {
			return f
		}
	}
	return fallback
}
