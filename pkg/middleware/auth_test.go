package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"social-vault/pkg/jwt"
	"social-vault/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRouter(jwtService *jwt.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(OptionalAuthMiddleware(jwtService))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString(ContextUserID)})
	})
	return router
}

func serve(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestOptionalAuth_AnonymousAllowed(t *testing.T) {
	router := setupTestRouter(jwt.NewService("test-secret-key"))

	w := serve(router, "")

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Empty(t, body["user_id"])
}

func TestOptionalAuth_ValidToken(t *testing.T) {
	jwtService := jwt.NewService("test-secret-key")
	token, err := jwtService.GenerateToken("viewer-123", "viewer")
	require.NoError(t, err)

	w := serve(setupTestRouter(jwtService), "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "viewer-123", body["user_id"])
}

func TestOptionalAuth_InvalidHeader(t *testing.T) {
	router := setupTestRouter(jwt.NewService("test-secret-key"))

	assert.Equal(t, http.StatusUnauthorized, serve(router, "InvalidFormat token").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(router, "Bearer invalid-token").Code)
}

func TestOptionalAuth_DisabledIgnoresHeader(t *testing.T) {
	router := setupTestRouter(nil)

	w := serve(router, "Bearer whatever")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	router := gin.New()
	router.Use(RequestLogger(logger.NewWithWriter(&buf, "info")))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/ping?x=1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Contains(t, buf.String(), "GET /ping?x=1 -> 204")
}
