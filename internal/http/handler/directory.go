package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"alumniportal/internal/model"
	"alumniportal/internal/service"
)

func directoryQuery(c *fiber.Ctx) (service.DirectoryQuery, bool, error) {
	limit, offset, ok, err := pagination(c)
	if !ok {
		return service.DirectoryQuery{}, false, err
	}
	q := service.DirectoryQuery{
		Query:      c.Query("q"),
		Department: c.Query("department"),
		Limit:      limit,
		Offset:     offset,
	}
	if raw := c.Query("graduation_year"); raw != "" {
		year, convErr := strconv.Atoi(raw)
		if convErr != nil {
			return q, false, writeError(c, fiber.StatusBadRequest, "INVALID_QUERY", "invalid graduation_year")
		}
		q.GraduationYear = year
	}
	return q, true, nil
}

// ListAlumni godoc
// @Summary Alumni directory
// @Tags directory
// @Produce json
// @Param q query string false "Search text"
// @Param department query string false "Department"
// @Param graduation_year query int false "Graduation year"
// @Param limit query int false "Page size" default(10)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} service.ListResult[model.Alumni]
// @Router /api/directory/alumni [get]
func ListAlumni(svc service.DirectoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q, ok, err := directoryQuery(c)
		if !ok {
			return err
		}
		res, err := svc.ListAlumni(c.UserContext(), q)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(res)
	}
}

// GetAlumni godoc
// @Summary Alumni profile
// @Tags directory
// @Produce json
// @Param id path string true "Alumni user id"
// @Success 200 {object} model.Alumni
// @Failure 404 {object} errorPayload
// @Router /api/directory/alumni/{id} [get]
func GetAlumni(svc service.DirectoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := idParam(c)
		if !ok {
			return err
		}
		a, err := svc.GetAlumni(c.UserContext(), id)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(a)
	}
}

// ListFaculty godoc
// @Summary Faculty directory
// @Tags directory
// @Produce json
// @Param q query string false "Search text"
// @Param department query string false "Department"
// @Success 200 {object} service.ListResult[model.Faculty]
// @Router /api/directory/faculty [get]
func ListFaculty(svc service.DirectoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q, ok, err := directoryQuery(c)
		if !ok {
			return err
		}
		res, err := svc.ListFaculty(c.UserContext(), q)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(res)
	}
}

// GetFaculty godoc
// @Summary Faculty profile
// @Tags directory
// @Produce json
// @Param id path string true "Faculty user id"
// @Success 200 {object} model.Faculty
// @Router /api/directory/faculty/{id} [get]
func GetFaculty(svc service.DirectoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := idParam(c)
		if !ok {
			return err
		}
		f, err := svc.GetFaculty(c.UserContext(), id)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(f)
	}
}

// MyProfile returns the caller's own alumni or faculty profile.
func MyProfile(svc service.DirectoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s := session(c)
		var (
			profile any
			err     error
		)
		if s.Role == model.RoleFaculty {
			profile, err = svc.GetFaculty(c.UserContext(), s.UserID)
		} else {
			profile, err = svc.GetAlumni(c.UserContext(), s.UserID)
		}
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(profile)
	}
}

// UpdateAlumniProfile godoc
// @Summary Update own alumni profile
// @Tags alumni
// @Accept json
// @Produce json
// @Param body body service.AlumniProfileInput true "Profile"
// @Success 200 {object} model.Alumni
// @Router /api/alumni/profile [put]
func UpdateAlumniProfile(svc service.DirectoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.AlumniProfileInput
		if ok, err := bindJSON(c, &in); !ok {
			return err
		}
		a, err := svc.UpdateAlumni(c.UserContext(), session(c).UserID, in)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(a)
	}
}

// UpdateFacultyProfile godoc
// @Summary Update own faculty profile
// @Tags faculty
// @Accept json
// @Produce json
// @Param body body service.FacultyProfileInput true "Profile"
// @Success 200 {object} model.Faculty
// @Router /api/faculty/profile [put]
func UpdateFacultyProfile(svc service.DirectoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.FacultyProfileInput
		if ok, err := bindJSON(c, &in); !ok {
			return err
		}
		f, err := svc.UpdateFaculty(c.UserContext(), session(c).UserID, in)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(f)
	}
}

// DeleteUser godoc
// @Summary Delete an alumni or faculty account
// @Tags admin
// @Param id path string true "User id"
// @Success 204
// @Failure 404 {object} errorPayload
// @Router /api/admin/alumni/{id} [delete]
// @Router /api/admin/faculty/{id} [delete]
func DeleteUser(svc service.DirectoryService, role model.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := idParam(c)
		if !ok {
			return err
		}
		if err := svc.DeleteUser(c.UserContext(), id, role); err != nil {
			return serviceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
