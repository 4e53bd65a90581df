package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"alumniportal/internal/http/middleware"
	"alumniportal/internal/model"
	"alumniportal/internal/service"
)

// CookieConfig controls the session cookies set on sign-in.
type CookieConfig struct {
	Secure bool
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
	User      *model.User `json:"user"`
	Redirect  string      `json:"redirect"`
}

func setSessionCookies(c *fiber.Ctx, cfg CookieConfig, res *service.AuthResult) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.TokenCookie,
		Value:    res.Token,
		Path:     "/",
		Expires:  res.ExpiresAt,
		HTTPOnly: true,
		Secure:   cfg.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	c.Cookie(&fiber.Cookie{
		Name:     middleware.RoleCookie,
		Value:    string(res.User.Role),
		Path:     "/",
		Expires:  res.ExpiresAt,
		Secure:   cfg.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func signedIn(c *fiber.Ctx, cfg CookieConfig, status int, res *service.AuthResult) error {
	setSessionCookies(c, cfg, res)
	return c.Status(status).JSON(authResponse{
		Token:     res.Token,
		ExpiresAt: res.ExpiresAt,
		User:      res.User,
		Redirect:  middleware.Dashboard(res.User.Role),
	})
}

// Register godoc
// @Summary Register an alumni account
// @Tags auth
// @Accept json
// @Produce json
// @Param body body service.RegisterInput true "Registration form"
// @Success 201 {object} authResponse
// @Failure 400 {object} errorPayload
// @Failure 409 {object} errorPayload
// @Router /api/auth/register [post]
func Register(svc service.AuthService, cfg CookieConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.RegisterInput
		if ok, err := bindJSON(c, &in); !ok {
			return err
		}
		res, err := svc.Register(c.UserContext(), in)
		if err != nil {
			return serviceError(c, err)
		}
		return signedIn(c, cfg, fiber.StatusCreated, res)
	}
}

// Login godoc
// @Summary Sign in
// @Tags auth
// @Accept json
// @Produce json
// @Param body body loginRequest true "Credentials"
// @Success 200 {object} authResponse
// @Failure 401 {object} errorPayload
// @Failure 429 {object} errorPayload
// @Router /api/auth/login [post]
func Login(svc service.AuthService, cfg CookieConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in loginRequest
		if ok, err := bindJSON(c, &in); !ok {
			return err
		}
		res, err := svc.Login(c.UserContext(), in.Email, in.Password)
		if err != nil {
			return serviceError(c, err)
		}
		return signedIn(c, cfg, fiber.StatusOK, res)
	}
}

// Logout godoc
// @Summary Sign out
// @Tags auth
// @Success 204
// @Router /api/auth/logout [post]
func Logout(cfg CookieConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		for _, name := range []string{middleware.TokenCookie, middleware.RoleCookie} {
			c.Cookie(&fiber.Cookie{
				Name:     name,
				Value:    "",
				Path:     "/",
				MaxAge:   -1,
				Expires:  time.Unix(0, 0),
				HTTPOnly: name == middleware.TokenCookie,
				Secure:   cfg.Secure,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// Me godoc
// @Summary Current user
// @Tags auth
// @Produce json
// @Success 200 {object} model.User
// @Failure 401 {object} errorPayload
// @Router /api/auth/me [get]
func Me(svc service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := svc.Me(c.UserContext(), session(c).UserID)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(u)
	}
}

// CreateFaculty godoc
// @Summary Create a faculty account
// @Tags admin
// @Accept json
// @Produce json
// @Param body body service.CreateFacultyInput true "Faculty"
// @Success 201 {object} model.User
// @Failure 409 {object} errorPayload
// @Router /api/admin/faculty [post]
func CreateFaculty(svc service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.CreateFacultyInput
		if ok, err := bindJSON(c, &in); !ok {
			return err
		}
		u, err := svc.CreateFaculty(c.UserContext(), in)
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(u)
	}
}
