package middleware

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	"alumniportal/internal/auth"
	"alumniportal/internal/model"
)

// protectedPrefixes maps each dashboard path prefix to the role that owns it.
var protectedPrefixes = map[string]model.Role{
	"/admin":   model.RoleAdmin,
	"/alumni":  model.RoleAlumni,
	"/faculty": model.RoleFaculty,
}

// guestOnly pages redirect signed-in users to their dashboard.
var guestOnly = map[string]bool{
	"/login":    true,
	"/register": true,
}

// Dashboard is the landing page of role.
func Dashboard(role model.Role) string {
	return "/" + role.Slug() + "/dashboard"
}

// ownerOf returns the role owning path's first segment, if any.
func ownerOf(path string) (model.Role, bool) {
	seg := path
	if i := strings.IndexByte(path[1:], '/'); i >= 0 {
		seg = path[:i+1]
	}
	role, ok := protectedPrefixes[seg]
	return role, ok
}

// Decide returns where a page request for path should be redirected, or ""
// when it may proceed. s is nil for anonymous visitors.
func Decide(path string, s *auth.Session) string {
	if path == "" || path[0] != '/' {
		path = "/" + path
	}
	clean := strings.TrimSuffix(path, "/")
	if clean == "" {
		clean = "/"
	}

	if guestOnly[clean] {
		if s != nil {
			return Dashboard(s.Role)
		}
		return ""
	}

	owner, protected := ownerOf(clean)
	if !protected {
		return ""
	}
	if s == nil {
		return "/login?next=" + url.QueryEscape(path)
	}
	if s.Role != owner {
		return Dashboard(s.Role)
	}
	return ""
}

// PageGate redirects page navigations according to Decide. API, metrics,
// health and docs paths are left to their own guards.
func PageGate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := c.Path()
		if strings.HasPrefix(p, "/api/") || strings.HasPrefix(p, "/swagger") ||
			p == "/metrics" || p == "/health" || p == "/healthz" {
			return c.Next()
		}
		if c.Method() != fiber.MethodGet && c.Method() != fiber.MethodHead {
			return c.Next()
		}
		if to := Decide(p, SessionFrom(c)); to != "" {
			return c.Redirect(to, fiber.StatusFound)
		}
		return c.Next()
	}
}
