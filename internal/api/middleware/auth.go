package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/medilog/medilog-api/internal/auth"
)

// Context keys under which the identity middleware stores the caller's
// identity. Absent keys mean the request carried no valid token.
const (
	CtxUserID    = "user_id"
	CtxUserEmail = "user_email"
)

// publicPrefixes lists path prefixes exempt from identity processing:
// auth endpoints, probes, and static assets.
var publicPrefixes = []string{
	"/api/auth/",
	"/static/",
	"/css/",
	"/js/",
	"/images/",
}

// publicPaths lists exact-match public paths.
var publicPaths = []string{
	"/",
	"/health",
	"/health/ready",
	"/metrics",
	"/favicon.ico",
}

// IsPublicPath reports whether the identity middleware skips the path.
func IsPublicPath(path string) bool {
	for _, p := range publicPaths {
		if path == p {
			return true
		}
	}
	for _, prefix := range publicPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// Identity attaches the caller's identity to the request context when the
// Authorization header carries a valid bearer token. It never rejects:
// handlers that require identity check for its absence themselves. It also
// adds permissive CORS headers and answers preflight requests.
func Identity(codec *auth.Codec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if IsPublicPath(c.Request().URL.Path) {
				return next(c)
			}

			h := c.Response().Header()
			h.Set("Access-Control-Allow-Origin", "*")
			h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			h.Set("Access-Control-Allow-Headers", "*")
			h.Set("Access-Control-Allow-Credentials", "false")

			if c.Request().Method == http.MethodOptions {
				return c.NoContent(http.StatusOK)
			}

			authHeader := c.Request().Header.Get("Authorization")
			if token, ok := strings.CutPrefix(authHeader, "Bearer "); ok && codec.Validate(token) {
				c.Set(CtxUserID, codec.UserID(token))
				c.Set(CtxUserEmail, codec.Subject(token))
			}

			return next(c)
		}
	}
}
