package middleware

import (
	"time"

	"social-vault/pkg/logger"

	"github.com/gin-gonic/gin"
)

func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("%s %s -> %d (%s)", c.Request.Method, c.Request.URL.RequestURI(), c.Writer.Status(), time.Since(start))
	}
}
