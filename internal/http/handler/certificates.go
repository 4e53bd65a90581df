package handler

import (
	"github.com/gofiber/fiber/v2"

	"alumniportal/internal/model"
	"alumniportal/internal/service"
)

// IssueCertificate godoc
// @Summary Issue a certificate (multipart/form-data)
// @Tags certificates
// @Accept mpfd
// @Produce json
// @Param alumni_id formData string true "Recipient"
// @Param event_id formData string true "Finished event"
// @Param title formData string true "Title"
// @Param file formData file true "PDF, PNG or JPEG"
// @Success 201 {object} model.Certificate
// @Failure 403 {object} errorPayload
// @Failure 422 {object} errorPayload
// @Router /api/faculty/certificates [post]
// @Router /api/admin/certificates [post]
func IssueCertificate(svc service.CertificateService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		in := service.IssueInput{
			AlumniID: c.FormValue("alumni_id"),
			EventID:  c.FormValue("event_id"),
			Title:    c.FormValue("title"),
		}
		if ok, err := checkStruct(c, &in); !ok {
			return err
		}
		f, ok, err := formFile(c, "file", true)
		if !ok {
			return err
		}
		defer f.Close()

		cert, err := svc.Issue(c.UserContext(), session(c), in, service.CertificateFile{
			Reader:      f,
			Filename:    f.Filename,
			ContentType: f.ContentType,
			Size:        f.Size,
		})
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(cert)
	}
}

// ListCertificates godoc
// @Summary Certificates visible to the caller
// @Description Alumni see their own, faculty those they issued, admins all (filterable).
// @Tags certificates
// @Produce json
// @Param event_id query string false "Event"
// @Param alumni_id query string false "Recipient (admin only)"
// @Param faculty_id query string false "Issuer (admin only)"
// @Success 200 {object} service.ListResult[model.Certificate]
// @Failure 400 {object} errorPayload
// @Router /api/alumni/certificates [get]
// @Router /api/faculty/certificates [get]
// @Router /api/admin/certificates [get]
func ListCertificates(svc service.CertificateService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, ok, err := pagination(c)
		if !ok {
			return err
		}
		q := service.CertificateQuery{Limit: limit, Offset: offset}
		if q.EventID, ok, err = idQuery(c, "event_id"); !ok {
			return err
		}
		switch s := session(c); s.Role {
		case model.RoleAlumni:
			q.AlumniID = s.UserID
		case model.RoleFaculty:
			q.FacultyID = s.UserID
		default:
			if q.AlumniID, ok, err = idQuery(c, "alumni_id"); !ok {
				return err
			}
			if q.FacultyID, ok, err = idQuery(c, "faculty_id"); !ok {
				return err
			}
		}

		res, err := svc.List(c.UserContext(), q)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(res)
	}
}

// GetCertificate godoc
// @Summary Certificate metadata
// @Tags certificates
// @Produce json
// @Param id path string true "Certificate id"
// @Success 200 {object} model.Certificate
// @Failure 404 {object} errorPayload
// @Router /api/certificates/{id} [get]
func GetCertificate(svc service.CertificateService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := idParam(c)
		if !ok {
			return err
		}
		cert, err := svc.Get(c.UserContext(), session(c), id)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(cert)
	}
}

// DownloadCertificate godoc
// @Summary Redirect to a short-lived download link
// @Tags certificates
// @Param id path string true "Certificate id"
// @Success 302
// @Failure 404 {object} errorPayload
// @Router /api/certificates/{id}/download [get]
func DownloadCertificate(svc service.CertificateService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := idParam(c)
		if !ok {
			return err
		}
		url, err := svc.DownloadURL(c.UserContext(), session(c), id)
		if err != nil {
			return serviceError(c, err)
		}
		return c.Redirect(url, fiber.StatusFound)
	}
}

// DeleteCertificate godoc
// @Summary Delete a certificate (issuer or admin)
// @Tags certificates
// @Param id path string true "Certificate id"
// @Success 204
// @Failure 403 {object} errorPayload
// @Router /api/certificates/{id} [delete]
func DeleteCertificate(svc service.CertificateService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := idParam(c)
		if !ok {
			return err
		}
		if err := svc.Delete(c.UserContext(), session(c), id); err != nil {
			return serviceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
