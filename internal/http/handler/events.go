package handler

import (
	"github.com/gofiber/fiber/v2"

	"alumniportal/internal/model"
	"alumniportal/internal/service"
)

// RequestEvent godoc
// @Summary Propose an event
// @Tags alumni
// @Accept json
// @Produce json
// @Param body body service.RequestEventInput true "Proposal"
// @Success 201 {object} model.EventRequest
// @Failure 400 {object} errorPayload
// @Router /api/alumni/event-requests [post]
func RequestEvent(svc service.EventService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.RequestEventInput
		if ok, err := bindJSON(c, &in); !ok {
			return err
		}
		req, err := svc.RequestEvent(c.UserContext(), session(c).UserID, in)
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(req)
	}
}

// ListEventRequests godoc
// @Summary Event requests visible to the caller
// @Description Admins see all requests, alumni their own, faculty those assigned to them.
// @Tags events
// @Produce json
// @Param status query string false "PENDING, APPROVED or REJECTED"
// @Param limit query int false "Page size" default(10)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} service.ListResult[model.EventRequest]
// @Router /api/admin/event-requests [get]
// @Router /api/alumni/event-requests [get]
// @Router /api/faculty/event-requests [get]
func ListEventRequests(svc service.EventService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, ok, err := pagination(c)
		if !ok {
			return err
		}
		status, ok, err := statusQuery(c)
		if !ok {
			return err
		}

		q := service.RequestQuery{Status: status, Limit: limit, Offset: offset}
		switch s := session(c); s.Role {
		case model.RoleAlumni:
			q.AlumniID = s.UserID
		case model.RoleFaculty:
			q.FacultyID = s.UserID
		}

		res, err := svc.ListRequests(c.UserContext(), q)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(res)
	}
}

// ApproveEventRequest godoc
// @Summary Approve a pending request and create its event
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Request id"
// @Param body body service.ApproveInput true "Assignment"
// @Success 200 {object} model.EventRequest
// @Failure 409 {object} errorPayload
// @Router /api/admin/event-requests/{id}/approve [post]
func ApproveEventRequest(svc service.EventService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := idParam(c)
		if !ok {
			return err
		}
		var in service.ApproveInput
		if ok, err := bindJSON(c, &in); !ok {
			return err
		}
		req, err := svc.ApproveRequest(c.UserContext(), id, in)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(req)
	}
}

// RejectEventRequest godoc
// @Summary Reject a pending request
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Request id"
// @Param body body service.DecisionInput false "Note"
// @Success 200 {object} model.EventRequest
// @Failure 409 {object} errorPayload
// @Router /api/admin/event-requests/{id}/reject [post]
func RejectEventRequest(svc service.EventService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := idParam(c)
		if !ok {
			return err
		}
		in, ok, err := decision(c)
		if !ok {
			return err
		}
		req, err := svc.RejectRequest(c.UserContext(), id, in.Note)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(req)
	}
}

// decision reads an optional note; an empty body is allowed.
func decision(c *fiber.Ctx) (service.DecisionInput, bool, error) {
	var in service.DecisionInput
	if len(c.Body()) == 0 {
		return in, true, nil
	}
	ok, err := bindJSON(c, &in)
	return in, ok, err
}

func listEvents(svc service.EventService, assigned bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, ok, err := pagination(c)
		if !ok {
			return err
		}
		q := service.EventQuery{
			When:   c.Query("when"),
			Query:  c.Query("q"),
			Limit:  limit,
			Offset: offset,
		}
		if assigned {
			q.FacultyID = session(c).UserID
			if q.When == "" {
				q.When = "all"
			}
		}

		res, err := svc.ListEvents(c.UserContext(), q)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(res)
	}
}

// ListEvents godoc
// @Summary Public events
// @Tags events
// @Produce json
// @Param when query string false "upcoming, past or all" default(upcoming)
// @Param q query string false "Search text"
// @Param limit query int false "Page size" default(10)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} service.ListResult[model.Event]
// @Failure 400 {object} errorPayload
// @Router /api/public/events [get]
func ListEvents(svc service.EventService) fiber.Handler {
	return listEvents(svc, false)
}

// ListAssignedEvents godoc
// @Summary Events assigned to the calling faculty
// @Tags faculty
// @Produce json
// @Param when query string false "upcoming, past or all" default(all)
// @Success 200 {object} service.ListResult[model.Event]
// @Router /api/faculty/events [get]
func ListAssignedEvents(svc service.EventService) fiber.Handler {
	return listEvents(svc, true)
}

// GetEvent godoc
// @Summary Event details
// @Tags events
// @Produce json
// @Param id path string true "Event id"
// @Success 200 {object} model.Event
// @Failure 404 {object} errorPayload
// @Router /api/public/events/{id} [get]
func GetEvent(svc service.EventService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := idParam(c)
		if !ok {
			return err
		}
		e, err := svc.GetEvent(c.UserContext(), id)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(e)
	}
}

// CreateEvent godoc
// @Summary Schedule an event directly
// @Tags admin
// @Accept json
// @Produce json
// @Param body body service.CreateEventInput true "Event"
// @Success 201 {object} model.Event
// @Router /api/admin/events [post]
func CreateEvent(svc service.EventService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.CreateEventInput
		if ok, err := bindJSON(c, &in); !ok {
			return err
		}
		e, err := svc.CreateEvent(c.UserContext(), session(c).UserID, in)
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(e)
	}
}

// DeleteEvent godoc
// @Summary Delete an event
// @Tags admin
// @Param id path string true "Event id"
// @Success 204
// @Router /api/admin/events/{id} [delete]
func DeleteEvent(svc service.EventService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := idParam(c)
		if !ok {
			return err
		}
		if err := svc.DeleteEvent(c.UserContext(), id); err != nil {
			return serviceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// UploadEventBanner godoc
// @Summary Upload an event banner (multipart/form-data, field name: file)
// @Tags admin
// @Accept mpfd
// @Produce json
// @Param id path string true "Event id"
// @Param file formData file true "Image"
// @Success 200 {object} model.Event
// @Router /api/admin/events/{id}/banner [post]
func UploadEventBanner(svc service.EventService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := idParam(c)
		if !ok {
			return err
		}
		f, ok, err := formFile(c, "file", true)
		if !ok {
			return err
		}
		defer f.Close()

		e, err := svc.UploadBanner(c.UserContext(), id, f, f.Filename, f.ContentType, f.Size)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(e)
	}
}
