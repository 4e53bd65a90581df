package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"alumniportal/internal/auth"
	"alumniportal/internal/model"
)

const (
	// TokenCookie carries the signed session token (HttpOnly).
	TokenCookie = "token"
	// RoleCookie mirrors the role for the front-end; it is never trusted.
	RoleCookie = "role"
	// SessionLocalKey is the key used to store the verified session in locals.
	SessionLocalKey = "session"
)

// Authenticate verifies the session token from the token cookie or an
// Authorization: Bearer header and stores the session in locals. The header
// is tried when the cookie is missing or invalid. Requests without a valid
// token continue anonymously.
func Authenticate(tokens *auth.TokenManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		for _, raw := range []string{c.Cookies(TokenCookie), bearerToken(c)} {
			if raw == "" {
				continue
			}
			if s, err := tokens.Parse(raw); err == nil {
				c.Locals(SessionLocalKey, s)
				break
			}
		}
		return c.Next()
	}
}

func bearerToken(c *fiber.Ctx) string {
	if h := c.Get(fiber.HeaderAuthorization); len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}

// SessionFrom returns the verified session, or nil for anonymous requests.
func SessionFrom(c *fiber.Ctx) *auth.Session {
	if s, ok := c.Locals(SessionLocalKey).(*auth.Session); ok {
		return s
	}
	return nil
}

// RequireAuth rejects anonymous requests with 401.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if SessionFrom(c) == nil {
			return fiber.ErrUnauthorized
		}
		return c.Next()
	}
}

// RequireRole rejects anonymous requests with 401 and other roles with 403.
func RequireRole(roles ...model.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s := SessionFrom(c)
		if s == nil {
			return fiber.ErrUnauthorized
		}
		for _, r := range roles {
			if s.Role == r {
				return c.Next()
			}
		}
		return fiber.ErrForbidden
	}
}

// LoginRateLimit answers 429 once a client IP exceeds the login budget.
func LoginRateLimit(l *auth.LoginLimiter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !l.Allow(c.IP()) {
			c.Set(fiber.HeaderRetryAfter, "60")
			return fiber.ErrTooManyRequests
		}
		return c.Next()
	}
}
