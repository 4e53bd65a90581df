package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alumniportal/internal/auth"
	"alumniportal/internal/model"
)

func TestDecide(t *testing.T) {
	admin := &auth.Session{UserID: "adm", Role: model.RoleAdmin}
	alumni := &auth.Session{UserID: "a-1", Role: model.RoleAlumni}
	faculty := &auth.Session{UserID: "f-1", Role: model.RoleFaculty}

	tests := []struct {
		name    string
		path    string
		session *auth.Session
		want    string
	}{
		{name: "public page anonymous", path: "/gallery", want: ""},
		{name: "home anonymous", path: "/", want: ""},
		{name: "protected anonymous", path: "/admin/jobs", want: "/login?next=%2Fadmin%2Fjobs"},
		{name: "protected root anonymous", path: "/faculty", want: "/login?next=%2Ffaculty"},
		{name: "own dashboard", path: "/alumni/dashboard", session: alumni, want: ""},
		{name: "wrong role", path: "/admin/dashboard", session: alumni, want: "/alumni/dashboard"},
		{name: "faculty on alumni pages", path: "/alumni/certificates", session: faculty, want: "/faculty/dashboard"},
		{name: "login while signed in", path: "/login", session: admin, want: "/admin/dashboard"},
		{name: "register trailing slash", path: "/register/", session: faculty, want: "/faculty/dashboard"},
		{name: "login anonymous", path: "/login", want: ""},
		{name: "lookalike prefix", path: "/administrators", want: ""},
		{name: "public page signed in", path: "/events", session: admin, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.path, tt.session))
		})
	}
}

func TestPageGate(t *testing.T) {
	tm, err := auth.NewTokenManager("gate-secret", time.Hour)
	require.NoError(t, err)
	token, _, err := tm.Issue(&model.User{ID: "f-1", Role: model.RoleFaculty})
	require.NoError(t, err)

	app := fiber.New()
	app.Use(Authenticate(tm))
	app.Use(PageGate())
	app.Get("/*", func(c *fiber.Ctx) error { return c.SendString("page") })

	t.Run("redirects anonymous to login", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/admin/dashboard", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusFound, resp.StatusCode)
		assert.Equal(t, "/login?next=%2Fadmin%2Fdashboard", resp.Header.Get("Location"))
	})

	t.Run("redirects wrong role", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/admin/dashboard", nil)
		req.Header.Set("Cookie", TokenCookie+"="+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, "/faculty/dashboard", resp.Header.Get("Location"))
	})

	t.Run("leaves api alone", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/admin/jobs", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}
