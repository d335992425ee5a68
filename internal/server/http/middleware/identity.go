package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	pkgAuth "github.com/polkiloo/gambling/internal/pkg/auth"
	"github.com/polkiloo/gambling/internal/server/http/dto"
)

const (
	// UserIDContextKey is a gin context key for the resolved player identifier.
	UserIDContextKey  = "userID"
	sessionCookieName = "gambling_session"
)

// SessionResolver parses presented session tokens and mints new ones.
type SessionResolver interface {
	NewSession(ctx context.Context) (userID, token string, err error)
	ParseToken(token string) (string, error)
}

// CookieOptions controls the session cookie written to clients.
type CookieOptions struct {
	TTL    time.Duration
	Secure bool
}

// Identify resolves the player behind a request, starting a new anonymous
// session when no valid token is presented.
func Identify(resolver SessionResolver, opts CookieOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := extractToken(c); token != "" {
			userID, err := resolver.ParseToken(token)
			switch {
			case err == nil:
				c.Set(UserIDContextKey, userID)
				c.Next()
				return
			case !errors.Is(err, pkgAuth.ErrInvalidToken):
				_ = c.Error(err)
				abortInternal(c)
				return
			}
		}

		userID, token, err := resolver.NewSession(c.Request.Context())
		if err != nil {
			_ = c.Error(err)
			abortInternal(c)
			return
		}
		SetAuthCookie(c, token, opts)
		c.Set(UserIDContextKey, userID)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}

	if cookie, err := c.Cookie(sessionCookieName); err == nil {
		return cookie
	}
	return ""
}

// SetAuthCookie writes the session token cookie to response.
func SetAuthCookie(c *gin.Context, token string, opts CookieOptions) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookieName, token, int(opts.TTL.Seconds()), "/", "", opts.Secure, true)
	c.Header("Authorization", "Bearer "+token)
}

func abortInternal(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, dto.Problem{
		Type:   "https://tools.ietf.org/html/rfc9110#section-15.6.1",
		Title:  "An error occurred while processing your request.",
		Status: http.StatusInternalServerError,
	})
}
