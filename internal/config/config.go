package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultBaseURL = "https://api.chainalysis.com"
	defaultTimeout = 60 * time.Second
	minTimeout     = time.Second
	maxTimeout     = 10 * time.Minute
	maxRateLimit   = 200
	minRateLimit   = 0

	defaultRawJSONPath = "results/responses.json"
	defaultOutputPath  = "results/Chainalysis_AddressScreeningAPI_Results.csv"
	defaultLogFile     = "logs/progress.log"
)

// Config holds 12-factor environment configuration used by the screener.
type Config struct {
	APIKey        string
	BaseURL       string
	Timeout       time.Duration
	RateLimit     int
	RawJSONPath   string
	OutputCSVPath string
	LogFile       string
}

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseIntEnv(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if i, err := strconv.Atoi(v); err == nil {
		return i
	}
	return def
}

func parseDurEnv(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	return def
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func clampDuration(v, min, max time.Duration) time.Duration {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// RedactToken hides most of an API key so it can appear in logs and dry-run
// plans without leaking the credential.
func RedactToken(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 4 {
		return "***"
	}
	return s[:4] + "***"
}

// Load reads a .env file if one exists (existing environment wins), then
// the environment, and returns a Config with defaults applied.
func Load() Config {
	_ = godotenv.Load()
	return Config{
		APIKey:        env("API_KEY", ""),
		BaseURL:       env("CHAINALYSIS_URL", defaultBaseURL),
		Timeout:       clampDuration(parseDurEnv("SCREEN_TIMEOUT", defaultTimeout), minTimeout, maxTimeout),
		RateLimit:     clampInt(parseIntEnv("RATE_LIMIT", 0), minRateLimit, maxRateLimit),
		RawJSONPath:   env("RAW_JSON", defaultRawJSONPath),
		OutputCSVPath: env("OUTPUT_CSV", defaultOutputPath),
		LogFile:       env("LOG_FILE", defaultLogFile),
	}
}
