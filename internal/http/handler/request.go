package handler

import (
	"errors"
	"mime/multipart"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alumniportal/internal/auth"
	"alumniportal/internal/http/middleware"
	"alumniportal/internal/model"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validationDetails turns validator errors into field -> rule messages keyed by json name.
func validationDetails(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		msg := fe.Tag()
		if fe.Param() != "" {
			msg += "=" + fe.Param()
		}
		out[fe.Field()] = msg
	}
	return out
}

// bindJSON decodes the body into dst and validates it. It writes the error
// response itself and reports false when the handler should stop.
func bindJSON(c *fiber.Ctx, dst any) (bool, error) {
	if err := c.BodyParser(dst); err != nil {
		return false, writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
	}
	return checkStruct(c, dst)
}

func checkStruct(c *fiber.Ctx, dst any) (bool, error) {
	if err := validate.Struct(dst); err != nil {
		if details := validationDetails(err); details != nil {
			return false, writeErrorDetails(c, fiber.StatusBadRequest, "VALIDATION_FAILED", "validation failed", details)
		}
		return false, writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
	}
	return true, nil
}

// pagination reads limit and offset query parameters.
func pagination(c *fiber.Ctx) (limit, offset int, ok bool, err error) {
	limit, convErr := strconv.Atoi(c.Query("limit", "10"))
	if convErr != nil {
		return 0, 0, false, writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
	}
	offset, convErr = strconv.Atoi(c.Query("offset", "0"))
	if convErr != nil {
		return 0, 0, false, writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
	}
	return limit, offset, true, nil
}

// idParam returns the :id route parameter when it is a UUID.
func idParam(c *fiber.Ctx) (string, bool, error) {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", false, writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
	}
	return id, true, nil
}

// idQuery returns the named query filter, which must be empty or a UUID.
func idQuery(c *fiber.Ctx, name string) (string, bool, error) {
	id := c.Query(name)
	if id == "" {
		return "", true, nil
	}
	if _, err := uuid.Parse(id); err != nil {
		return "", false, writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid "+name+" format")
	}
	return id, true, nil
}

// session returns the caller; routes using it sit behind RequireAuth.
func session(c *fiber.Ctx) auth.Session {
	if s := middleware.SessionFrom(c); s != nil {
		return *s
	}
	return auth.Session{}
}

// statusQuery reads an optional ?status= filter.
func statusQuery(c *fiber.Ctx) (model.Status, bool, error) {
	raw := strings.ToUpper(strings.TrimSpace(c.Query("status")))
	if raw == "" {
		return "", true, nil
	}
	st := model.Status(raw)
	if !st.Valid() {
		return "", false, writeError(c, fiber.StatusBadRequest, "INVALID_STATUS", "invalid status")
	}
	return st, true, nil
}

// upload is an opened multipart file. Callers must Close it.
type upload struct {
	multipart.File
	Filename    string
	ContentType string
	Size        int64
}

// formFile opens the named multipart field. A missing optional field yields a nil upload.
func formFile(c *fiber.Ctx, field string, required bool) (*upload, bool, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if !required {
			return nil, true, nil
		}
		return nil, false, writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
	}

	f, err := fh.Open()
	if err != nil {
		return nil, false, writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
	}

	ct := fh.Header.Get("Content-Type")
	if ct == "" {
		ct = "application/octet-stream"
	}
	return &upload{File: f, Filename: fh.Filename, ContentType: ct, Size: fh.Size}, true, nil
}
