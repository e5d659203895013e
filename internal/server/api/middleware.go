package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/adminpanel/internal/common"
	"github.com/dmitrijs2005/adminpanel/internal/server/session"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// requestLogger tags each request with an id and logs its outcome.
func (s *HTTPServer) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(requestIDHeader, id)

		start := time.Now()
		c.Next()

		s.logger.Info(c.Request.Context(), "request",
			"request_id", id,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
		)
	}
}

// recovery turns a panic into a 500 reply.
func (s *HTTPServer) recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		s.logger.Error(c.Request.Context(), "panic recovered",
			"path", c.Request.URL.Path,
			"panic", fmt.Sprint(recovered),
		)
		fail(c, http.StatusInternalServerError, "internal error", nil)
	})
}

func bearerToken(c *gin.Context) (string, bool) {
	h := c.GetHeader(common.AuthorizationHeaderName)
	if !strings.HasPrefix(h, common.BearerPrefix) {
		return "", false
	}
	tok := strings.TrimSpace(strings.TrimPrefix(h, common.BearerPrefix))
	return tok, tok != ""
}

func (s *HTTPServer) attachSession(c *gin.Context) (bool, error) {
	tok, found := bearerToken(c)
	if !found {
		return false, nil
	}
	sess, err := s.services.Auth.Authenticate(tok)
	if err != nil {
		return false, err
	}
	c.Request = c.Request.WithContext(session.WithSession(c.Request.Context(), sess))
	return true, nil
}

// requireAuth rejects requests without a valid access token.
func (s *HTTPServer) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		found, err := s.attachSession(c)
		if err != nil {
			s.respondError(c, err)
			return
		}
		if !found {
			fail(c, http.StatusUnauthorized, "missing access token", nil)
			return
		}
		c.Next()
	}
}

// optionalAuth attaches a session when a valid token is present and lets
// the request through either way.
func (s *HTTPServer) optionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		_, _ = s.attachSession(c)
		c.Next()
	}
}

// requireAdmin must run after requireAuth.
func (s *HTTPServer) requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, _ := session.FromContext(c.Request.Context())
		if !sess.IsAdmin() {
			fail(c, http.StatusForbidden, "administrator role required", nil)
			return
		}
		c.Next()
	}
}

// requireUUID answers 404 when the path parameter name is not a UUID; no row
// can carry such an id.
func (s *HTTPServer) requireUUID(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := uuid.Parse(c.Param(name)); err != nil {
			s.respondError(c, common.ErrorNotFound)
			return
		}
		c.Next()
	}
}

func currentSession(c *gin.Context) *session.Session {
	sess, _ := session.FromContext(c.Request.Context())
	return sess
}
