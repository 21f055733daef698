package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("STORE_DRIVER", "Mongo")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_NAME", "testdb")
	t.Setenv("MONGO_URL", "mongodb://mongo:27017")
	t.Setenv("STORE_TIMEOUT", "2s")
	t.Setenv("REDIS_HOST", "redis")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test,")
	t.Setenv("FEED_MAX_LIMIT", "50")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, StoreDriverMongo, cfg.StoreDriver)
	assert.Equal(t, "db", cfg.DBHost)
	assert.Equal(t, "testdb", cfg.DBName)
	assert.Equal(t, "mongodb://mongo:27017", cfg.MongoURL)
	assert.Equal(t, 2*time.Second, cfg.StoreTimeout)
	assert.Equal(t, "redis", cfg.RedisHost)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.Equal(t, 50, cfg.FeedMaxLimit)
	assert.Equal(t, 20, cfg.FeedDefaultLimit)
}

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"SERVER_PORT", "STORE_DRIVER", "STORE_TIMEOUT", "FEED_DEFAULT_LIMIT", "FEED_MAX_LIMIT", "CORS_ORIGINS", "S3_BUCKET_NAME"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, StoreDriverPostgres, cfg.StoreDriver)
	assert.Equal(t, 5*time.Second, cfg.StoreTimeout)
	assert.Equal(t, 20, cfg.FeedDefaultLimit)
	assert.Equal(t, 100, cfg.FeedMaxLimit)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Empty(t, cfg.S3BucketName)
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "cassandra")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("bad duration", func(t *testing.T) {
		t.Setenv("STORE_TIMEOUT", "soon")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("bad limit", func(t *testing.T) {
		t.Setenv("FEED_MAX_LIMIT", "lots")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("zero limit", func(t *testing.T) {
		t.Setenv("FEED_DEFAULT_LIMIT", "0")
		_, err := Load()
		assert.Error(t, err)
	})
}

func TestLoadConfig_DefaultLimitClampedToCeiling(t *testing.T) {
	t.Setenv("FEED_DEFAULT_LIMIT", "500")
	t.Setenv("FEED_MAX_LIMIT", "100")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.FeedDefaultLimit)
}

func TestPostgresDSN(t *testing.T) {
	cfg := &Config{DBHost: "h", DBPort: "1", DBUser: "u", DBPassword: "p", DBName: "n", DBSSLMode: "disable"}
	assert.Equal(t, "host=h user=u password=p dbname=n port=1 sslmode=disable", cfg.PostgresDSN())
}
