package rest

import (
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/friendsdir/internal/common"
	"github.com/dmitrijs2005/friendsdir/internal/server/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = common.RequestIDHeader
	requestIDKey    = "request_id"
	callerKey       = "caller"
)

// requestID reuses an incoming X-Request-ID or mints one.
func (s *Server) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		args := []any{
			"request_id", c.GetString(requestIDKey),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		}
		if u := caller(c); u != nil {
			args = append(args, "user_id", u.ID)
		}
		s.logger.Info(c.Request.Context(), "request", args...)
	}
}

func (s *Server) recover(c *gin.Context, p any) {
	s.logger.Error(c.Request.Context(), "panic in handler", "request_id", c.GetString(requestIDKey), "panic", p)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

// bearerToken extracts the token from "Authorization: Bearer <t>".
func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, common.BearerScheme) {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// authenticate admits a request only when its bearer token verifies and
// names an existing user. The stored row, not the token claims, becomes
// the caller, so role changes and deletions take effect immediately.
func (s *Server) authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader(common.AuthorizationHeader))
		if !ok {
			s.metrics.authFailures.WithLabelValues("missing").Inc()
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		user, err := s.auth.Verify(c.Request.Context(), token)
		if err != nil {
			s.metrics.authFailures.WithLabelValues("rejected").Inc()
			s.logger.Debug(c.Request.Context(), "token rejected", "request_id", c.GetString(requestIDKey), "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		c.Set(callerKey, user)
		c.Next()
	}
}

func caller(c *gin.Context) *models.User {
	v, ok := c.Get(callerKey)
	if !ok {
		return nil
	}
	u, _ := v.(*models.User)
	return u
}
