package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultSecretKey = "change_me_in_production"

// Config keeps runtime settings for the API server.
type Config struct {
	Port      string
	SecretKey string
	DBPath    string
	MediaRoot string
	MediaURL  string
	TokenTTL  time.Duration
	Timezone  string
}

// Load reads configuration from environment variables with sane defaults.
// A .env file is honored when present and ignored otherwise.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Port:      getEnv("PORT", "8000"),
		SecretKey: getEnv("SECRET_KEY", defaultSecretKey),
		DBPath:    getEnv("DB_PATH", filepath.Join("data", "organizo.db")),
		MediaRoot: getEnv("MEDIA_ROOT", "media"),
		MediaURL:  getEnv("MEDIA_URL", "/media"),
		TokenTTL:  parseTTLHours(getEnv("TOKEN_TTL_HOURS", "")),
		Timezone:  getEnv("TZ", "UTC"),
	}

	if cfg.SecretKey == defaultSecretKey {
		log.Println("SECRET_KEY not set, using insecure development default")
	}
	if !strings.HasPrefix(cfg.MediaURL, "/") {
		cfg.MediaURL = "/" + cfg.MediaURL
	}
	cfg.MediaURL = strings.TrimSuffix(cfg.MediaURL, "/")

	return cfg
}

func parseTTLHours(raw string) time.Duration {
	if raw == "" {
		return 7 * 24 * time.Hour
	}
	hours, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || hours <= 0 {
		return 7 * 24 * time.Hour
	}
	return time.Duration(hours) * time.Hour
}

func getEnv(key string, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}
