package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMongo    = "mongo"
	StoreDriverMemory   = "memory"
)

type Config struct {
	// Server
	ServerPort  string
	CORSOrigins []string
	LogLevel    string

	// Entity store
	StoreDriver  string
	StoreTimeout time.Duration

	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// MongoDB
	MongoURL string

	// Redis
	RedisHost          string
	RedisPort          string
	RedisPassword      string
	RedisDB            int
	RateLimitPerMinute int

	// JWT
	JWTSecret string

	// AWS S3
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	AWSEndpoint        string
	S3UseSSL           string
	S3BucketName       string
	MediaURLTTL        time.Duration

	// Feed
	FeedDefaultLimit int
	FeedMaxLimit     int
}

func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	config := &Config{
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "*")),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		StoreDriver: strings.ToLower(getEnv("STORE_DRIVER", StoreDriverPostgres)),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "socialvault"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		MongoURL: getEnv("MONGO_URL", "mongodb://localhost:27017"),

		RedisHost:     getEnv("REDIS_HOST", ""),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		JWTSecret: getEnv("JWT_SECRET", ""),

		AWSRegion:          getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
		AWSEndpoint:        getEnv("AWS_ENDPOINT", ""),
		S3UseSSL:           getEnv("S3_USE_SSL", "true"),
		S3BucketName:       getEnv("S3_BUCKET_NAME", ""),
	}

	var err error
	if config.StoreTimeout, err = getDuration("STORE_TIMEOUT", 5*time.Second); err != nil {
		return nil, err
	}
	if config.MediaURLTTL, err = getDuration("MEDIA_URL_TTL", 15*time.Minute); err != nil {
		return nil, err
	}
	if config.RedisDB, err = getInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if config.RateLimitPerMinute, err = getInt("RATE_LIMIT_PER_MINUTE", 200); err != nil {
		return nil, err
	}
	if config.FeedDefaultLimit, err = getInt("FEED_DEFAULT_LIMIT", 20); err != nil {
		return nil, err
	}
	if config.FeedMaxLimit, err = getInt("FEED_MAX_LIMIT", 100); err != nil {
		return nil, err
	}

	switch config.StoreDriver {
	case StoreDriverPostgres, StoreDriverMongo, StoreDriverMemory:
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", config.StoreDriver)
	}

	if config.FeedDefaultLimit < 1 || config.FeedMaxLimit < 1 {
		return nil, fmt.Errorf("feed limits must be positive")
	}
	if config.FeedDefaultLimit > config.FeedMaxLimit {
		config.FeedDefaultLimit = config.FeedMaxLimit
	}

	return config, nil
}

// PostgresDSN builds the connection string used by both gorm and goose.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.DBHost,
		c.DBUser,
		c.DBPassword,
		c.DBName,
		c.DBPort,
		c.DBSSLMode,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
