package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/artmarket/internal/common"
)

func (s *HTTPServer) ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

func (s *HTTPServer) getAllUsers(c *gin.Context) {
	list, err := s.users.GetAll(c.Request.Context())
	if err != nil {
		s.logger.Error(c.Request.Context(), "list users failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": common.ErrorInternal.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}

func (s *HTTPServer) login(c *gin.Context) {
	ctx := c.Request.Context()
	email := c.Param("email")

	u, err := s.users.Login(ctx, email, c.Param("password"))
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			s.logger.Info(ctx, "login rejected", "email", email)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		s.logger.Error(ctx, "login failed", "email", email, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": common.ErrorInternal.Error()})
		return
	}
	c.JSON(http.StatusOK, u)
}

// requestLogger logs one line per request. Path parameters are left out so
// passwords never reach the log.
func (s *HTTPServer) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Debug(c.Request.Context(), "request",
			"method", c.Request.Method,
			"route", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
