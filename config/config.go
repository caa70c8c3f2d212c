package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string

	RecordsPath string
	EntryURLs   []string

	MaxConcurrency int
	RateLimitMs    int
	MaxRetries     int
	ChromeBin      string

	CSVOutputPath    string
	ImageBaseURL     string
	MapsPlatform     string
	Language         string
	TranslationsPath string
	PhoneRegion      string
	CurrentLocation  string
	LogLevel         string
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "directory"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "directory123"),
		PostgresDB:       getEnv("POSTGRES_DB", "directory_db"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),

		RecordsPath: getEnv("RECORDS_PATH", ""),
		EntryURLs:   getEnvList("ENTRY_URLS"),

		MaxConcurrency: getEnvInt("MAX_CONCURRENCY", 3),
		RateLimitMs:    getEnvInt("RATE_LIMIT_MS", 2000),
		MaxRetries:     getEnvInt("MAX_RETRIES", 3),
		ChromeBin:      getEnv("CHROME_BIN", ""),

		CSVOutputPath:    getEnv("CSV_OUTPUT_PATH", "./output/listing_views.csv"),
		ImageBaseURL:     getEnv("IMAGE_BASE_URL", "https://images.local.ch"),
		MapsPlatform:     getEnv("MAPS_PLATFORM", "web"),
		Language:         getEnv("LANGUAGE", "de"),
		TranslationsPath: getEnv("TRANSLATIONS_PATH", ""),
		PhoneRegion:      getEnv("PHONE_REGION", "CH"),
		CurrentLocation:  getEnv("CURRENT_LOCATION", ""),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
	}
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return "host=" + c.PostgresHost +
		" port=" + c.PostgresPort +
		" user=" + c.PostgresUser +
		" password=" + c.PostgresPassword +
		" dbname=" + c.PostgresDB +
		" sslmode=" + c.PostgresSSLMode
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

// getEnvList splits a comma-separated variable, dropping blank items.
func getEnvList(key string) []string {
	var out []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
