package handler

import (
	"github.com/gofiber/fiber/v2"

	"alumniportal/internal/model"
	"alumniportal/internal/service"
	"alumniportal/internal/site"
)

// Home godoc
// @Summary Landing page: latest news, upcoming events, open jobs and counts
// @Tags public
// @Produce json
// @Success 200 {object} service.HomePage
// @Router /api/public/home [get]
func Home(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, err := svc.Home(c.UserContext())
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(page)
	}
}

// ListPosts godoc
// @Summary News items or gallery pictures
// @Tags public
// @Produce json
// @Param limit query int false "Page size" default(10)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} service.ListResult[model.Post]
// @Router /api/public/gallery [get]
// @Router /api/public/news [get]
func ListPosts(svc service.ContentService, kind model.PostKind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, ok, err := pagination(c)
		if !ok {
			return err
		}
		res, err := svc.ListPosts(c.UserContext(), kind, limit, offset)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(res)
	}
}

// About godoc
// @Summary Static about page content
// @Tags public
// @Produce json
// @Success 200 {object} site.About
// @Router /api/public/about [get]
func About(content *site.Content) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(content.About())
	}
}

// Menu godoc
// @Summary Sidebar menu for the caller's role
// @Tags auth
// @Produce json
// @Success 200 {array} site.MenuItem
// @Failure 401 {object} errorPayload
// @Router /api/menu [get]
func Menu(content *site.Content) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(content.Menu(session(c).Role))
	}
}

// CreatePost godoc
// @Summary Publish a news item or gallery picture (multipart/form-data)
// @Tags admin
// @Accept mpfd
// @Produce json
// @Param kind formData string true "NEWS or GALLERY"
// @Param title formData string true "Title"
// @Param body formData string false "Body"
// @Param image formData file false "Image (required for GALLERY)"
// @Success 201 {object} model.Post
// @Router /api/admin/posts [post]
func CreatePost(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		in := service.PostInput{
			Kind:  c.FormValue("kind"),
			Title: c.FormValue("title"),
			Body:  c.FormValue("body"),
		}
		if ok, err := checkStruct(c, &in); !ok {
			return err
		}
		f, ok, err := formFile(c, "image", false)
		if !ok {
			return err
		}

		var image *service.PostImage
		if f != nil {
			defer f.Close()
			image = &service.PostImage{Reader: f, Filename: f.Filename, ContentType: f.ContentType, Size: f.Size}
		}

		post, err := svc.CreatePost(c.UserContext(), session(c).UserID, in, image)
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(post)
	}
}

// DeletePost godoc
// @Summary Delete a post and its image
// @Tags admin
// @Param id path string true "Post id"
// @Success 204
// @Router /api/admin/posts/{id} [delete]
func DeletePost(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := idParam(c)
		if !ok {
			return err
		}
		if err := svc.DeletePost(c.UserContext(), id); err != nil {
			return serviceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// Dashboard godoc
// @Summary Role-specific dashboard counters
// @Tags dashboard
// @Produce json
// @Success 200 {object} service.DashboardStats
// @Router /api/admin/dashboard [get]
// @Router /api/alumni/dashboard [get]
// @Router /api/faculty/dashboard [get]
func Dashboard(svc service.DashboardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := svc.Stats(c.UserContext(), session(c))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(stats)
	}
}
