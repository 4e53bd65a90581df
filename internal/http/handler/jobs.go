package handler

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"alumniportal/internal/model"
	"alumniportal/internal/service"
)

// CreateJob godoc
// @Summary Post a job opportunity
// @Tags alumni
// @Accept json
// @Produce json
// @Param body body service.JobInput true "Posting"
// @Success 201 {object} model.JobOpportunity
// @Router /api/alumni/jobs [post]
func CreateJob(svc service.JobService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.JobInput
		if ok, err := bindJSON(c, &in); !ok {
			return err
		}
		job, err := svc.Create(c.UserContext(), session(c).UserID, in)
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(job)
	}
}

func jobQuery(c *fiber.Ctx) (service.JobQuery, bool, error) {
	limit, offset, ok, err := pagination(c)
	if !ok {
		return service.JobQuery{}, false, err
	}
	status, ok, err := statusQuery(c)
	if !ok {
		return service.JobQuery{}, false, err
	}
	return service.JobQuery{
		Status:  status,
		JobType: model.JobType(strings.ToUpper(strings.TrimSpace(c.Query("job_type")))),
		Query:   c.Query("q"),
		Limit:   limit,
		Offset:  offset,
	}, true, nil
}

// ListJobs godoc
// @Summary Job postings for moderation or the caller's own postings
// @Tags jobs
// @Produce json
// @Param status query string false "PENDING, APPROVED or REJECTED"
// @Param job_type query string false "FULL_TIME, PART_TIME, INTERNSHIP or CONTRACT"
// @Success 200 {object} service.ListResult[model.JobOpportunity]
// @Router /api/admin/jobs [get]
// @Router /api/alumni/jobs [get]
func ListJobs(svc service.JobService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q, ok, err := jobQuery(c)
		if !ok {
			return err
		}
		if s := session(c); s.Role == model.RoleAlumni {
			q.AlumniID = s.UserID
		}
		res, err := svc.List(c.UserContext(), q)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(res)
	}
}

// ListOpenJobs godoc
// @Summary Approved jobs whose deadline has not passed
// @Tags jobs
// @Produce json
// @Param q query string false "Search text"
// @Param job_type query string false "FULL_TIME, PART_TIME, INTERNSHIP or CONTRACT"
// @Success 200 {object} service.ListResult[model.JobOpportunity]
// @Router /api/public/jobs [get]
func ListOpenJobs(svc service.JobService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q, ok, err := jobQuery(c)
		if !ok {
			return err
		}
		res, err := svc.ListOpen(c.UserContext(), q)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(res)
	}
}

// GetJob godoc
// @Summary Job details
// @Tags jobs
// @Produce json
// @Param id path string true "Job id"
// @Success 200 {object} model.JobOpportunity
// @Router /api/admin/jobs/{id} [get]
func GetJob(svc service.JobService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := idParam(c)
		if !ok {
			return err
		}
		job, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(job)
	}
}

// ApproveJob godoc
// @Summary Approve a pending job
// @Tags admin
// @Param id path string true "Job id"
// @Param body body service.DecisionInput false "Note"
// @Success 200 {object} model.JobOpportunity
// @Failure 409 {object} errorPayload
// @Router /api/admin/jobs/{id}/approve [post]
func ApproveJob(svc service.JobService) fiber.Handler {
	return decideJob(svc.Approve)
}

// RejectJob godoc
// @Summary Reject a pending job
// @Tags admin
// @Param id path string true "Job id"
// @Param body body service.DecisionInput false "Note"
// @Success 200 {object} model.JobOpportunity
// @Failure 409 {object} errorPayload
// @Router /api/admin/jobs/{id}/reject [post]
func RejectJob(svc service.JobService) fiber.Handler {
	return decideJob(svc.Reject)
}

func decideJob(decide func(ctx context.Context, id, note string) (*model.JobOpportunity, error)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := idParam(c)
		if !ok {
			return err
		}
		in, ok, err := decision(c)
		if !ok {
			return err
		}
		job, err := decide(c.UserContext(), id, in.Note)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(job)
	}
}

// DeleteJob godoc
// @Summary Delete a job (admin: any, alumni: own while pending)
// @Tags jobs
// @Param id path string true "Job id"
// @Success 204
// @Failure 409 {object} errorPayload
// @Router /api/admin/jobs/{id} [delete]
// @Router /api/alumni/jobs/{id} [delete]
func DeleteJob(svc service.JobService) fiber.Handler {
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
