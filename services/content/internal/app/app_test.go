package internal

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"social-vault/pkg/config"
	"social-vault/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryConfig() *config.Config {
	return &config.Config{
		ServerPort:       "0",
		CORSOrigins:      []string{"*"},
		LogLevel:         "error",
		StoreDriver:      config.StoreDriverMemory,
		StoreTimeout:     time.Second,
		FeedDefaultLimit: 20,
		FeedMaxLimit:     100,
	}
}

func get(t *testing.T, router *gin.Engine, path string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req, err := http.NewRequest("GET", path, nil)
	require.NoError(t, err)
	for k, v := range header {
		req.Header[k] = v
	}
	router.ServeHTTP(w, req)
	return w
}

func TestApp_MemoryStoreRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	application, err := NewApp(memoryConfig())
	require.NoError(t, err)
	router := application.Router()

	w := get(t, router, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = get(t, router, "/api/", nil)
	assert.JSONEq(t, `{"message":"Content Platform API"}`, w.Body.String())

	w = get(t, router, "/api/content", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var feed []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &feed))
	assert.Len(t, feed, 8)

	w = get(t, router, "/api/content?limit=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestApp_SeederRunsOnce(t *testing.T) {
	application, err := NewApp(memoryConfig())
	require.NoError(t, err)

	require.NoError(t, application.Seeder().EnsureSeeded(t.Context()))
	require.NoError(t, application.Seeder().EnsureSeeded(t.Context()))

	creators, content, err := application.Store().Counts(t.Context())
	require.NoError(t, err)
	assert.Equal(t, int64(3), creators)
	assert.Equal(t, int64(8), content)
}

func TestApp_OptionalAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := memoryConfig()
	cfg.JWTSecret = "test-secret"
	application, err := NewApp(cfg)
	require.NoError(t, err)
	router := application.Router()

	token, err := jwt.NewService("test-secret").GenerateToken("viewer-1", "viewer")
	require.NoError(t, err)

	w := get(t, router, "/api/creators", http.Header{"Authorization": {"Bearer " + token}})
	assert.Equal(t, http.StatusOK, w.Code)

	w = get(t, router, "/api/creators", http.Header{"Authorization": {"Bearer forged"}})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = get(t, router, "/api/creators", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestApp_CORS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := memoryConfig()
	cfg.CORSOrigins = []string{"http://localhost:3000"}
	application, err := NewApp(cfg)
	require.NoError(t, err)

	w := get(t, application.Router(), "/health", http.Header{"Origin": {"http://localhost:3000"}})

	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestNewApp_UnknownDriver(t *testing.T) {
	cfg := memoryConfig()
	cfg.StoreDriver = "cassandra"

	_, err := NewApp(cfg)
	assert.Error(t, err)
}
