package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            int
	DataDir         string
	MaxUploadSizeMB int

	ChunkSeconds        int
	ConfidenceThreshold int
	MaxRetries          int
	RetryBaseDelayMs    int

	ACRCloudHost         string
	ACRCloudAccessKey    string
	ACRCloudAccessSecret string

	SpotifyClientID     string
	SpotifyClientSecret string
	SpotifyAccessToken  string
	SpotifyOwnerID      string

	LogLevel  string
	LogFormat string
}

func Load() (*Config, error) {
	// A missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	port, err := getEnvInt("PORT", 8080)
	if err != nil {
		return nil, err
	}
	maxUploadSizeMB, err := getEnvInt("MAX_UPLOAD_SIZE_MB", 500)
	if err != nil {
		return nil, err
	}
	chunkSeconds, err := getEnvInt("CHUNK_SECONDS", 30)
	if err != nil {
		return nil, err
	}
	confidenceThreshold, err := getEnvInt("CONFIDENCE_THRESHOLD", 50)
	if err != nil {
		return nil, err
	}
	maxRetries, err := getEnvInt("MAX_RETRIES", 3)
	if err != nil {
		return nil, err
	}
	retryBaseDelayMs, err := getEnvInt("RETRY_BASE_DELAY_MS", 1000)
	if err != nil {
		return nil, err
	}

	acrHost := os.Getenv("ACRCLOUD_HOST")
	if acrHost == "" {
		return nil, fmt.Errorf("ACRCLOUD_HOST is required")
	}
	acrAccessKey := os.Getenv("ACRCLOUD_ACCESS_KEY")
	if acrAccessKey == "" {
		return nil, fmt.Errorf("ACRCLOUD_ACCESS_KEY is required")
	}
	acrAccessSecret := os.Getenv("ACRCLOUD_ACCESS_SECRET")
	if acrAccessSecret == "" {
		return nil, fmt.Errorf("ACRCLOUD_ACCESS_SECRET is required")
	}

	return &Config{
		Port:            port,
		DataDir:         getEnv("DATA_DIR", "/data"),
		MaxUploadSizeMB: maxUploadSizeMB,

		ChunkSeconds:        chunkSeconds,
		ConfidenceThreshold: confidenceThreshold,
		MaxRetries:          maxRetries,
		RetryBaseDelayMs:    retryBaseDelayMs,

		ACRCloudHost:         acrHost,
		ACRCloudAccessKey:    acrAccessKey,
		ACRCloudAccessSecret: acrAccessSecret,

		SpotifyClientID:     os.Getenv("SPOTIFY_CLIENT_ID"),
		SpotifyClientSecret: os.Getenv("SPOTIFY_CLIENT_SECRET"),
		SpotifyAccessToken:  os.Getenv("SPOTIFY_ACCESS_TOKEN"),
		SpotifyOwnerID:      os.Getenv("SPOTIFY_OWNER_ID"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}, nil
}

// SpotifyEnabled reports whether any catalog credentials are configured.
// Without them the service still identifies tracks, just without matching.
func (c *Config) SpotifyEnabled() bool {
	return c.SpotifyAccessToken != "" || (c.SpotifyClientID != "" && c.SpotifyClientSecret != "")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}
