package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"c2hr/internal/auth"
	"c2hr/internal/errors"
	"c2hr/internal/model"
	"c2hr/internal/service"
)

// JobHandler handles job catalog endpoints.
type JobHandler struct {
	jobService service.JobService
}

// NewJobHandler creates a new job handler.
func NewJobHandler(jobService service.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

// JobRequest represents a create or update payload for a posting. The owning
// employer is never taken from the payload.
type JobRequest struct {
	Title        string   `json:"title" validate:"required"`
	Company      string   `json:"company" validate:"required"`
	Location     string   `json:"location" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	Requirements []string `json:"requirements"`
	Salary       string   `json:"salary"`
	Type         string   `json:"type" validate:"omitempty,oneof=full-time part-time contract internship"`
}

func (r *JobRequest) toInput() service.JobInput {
	return service.JobInput{
		Title:        r.Title,
		Company:      r.Company,
		Location:     r.Location,
		Description:  r.Description,
		Requirements: r.Requirements,
		Salary:       r.Salary,
		Type:         model.JobType(r.Type),
	}
}

// List godoc
// @Summary List all jobs
// @Tags jobs
// @Produce json
// @Success 200 {array} model.Job
// @Router /jobs [get]
func (h *JobHandler) List(c echo.Context) error {
	jobs, err := h.jobService.List(c.Request().Context())
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return c.JSON(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, jobs)
}

// Get godoc
// @Summary Get job by id
// @Tags jobs
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} model.Job
// @Failure 404 {object} errors.ErrorResponse
// @Router /jobs/{id} [get]
func (h *JobHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{Msg: "Invalid id"})
	}

	job, err := h.jobService.Get(c.Request().Context(), id)
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return c.JSON(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, job)
}

// Create godoc
// @Summary Create a job
// @Tags jobs
// @Accept json
// @Produce json
// @Param request body JobRequest true "Job payload"
// @Success 200 {object} model.Job
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /jobs [post]
func (h *JobHandler) Create(c echo.Context) error {
	var req JobRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{Msg: "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{Msg: err.Error()})
	}

	job, err := h.jobService.Create(c.Request().Context(), auth.CurrentUser(c), req.toInput())
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return c.JSON(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, job)
}

// Update godoc
// @Summary Update a job
// @Tags jobs
// @Accept json
// @Produce json
// @Param id path string true "Job ID"
// @Param request body JobRequest true "Job payload"
// @Success 200 {object} model.Job
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /jobs/{id} [put]
func (h *JobHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{Msg: "Invalid id"})
	}

	var req JobRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{Msg: "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{Msg: err.Error()})
	}

	job, err := h.jobService.Update(c.Request().Context(), auth.CurrentUser(c), id, req.toInput())
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return c.JSON(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, job)
}

// Delete godoc
// @Summary Delete a job
// @Tags jobs
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /jobs/{id} [delete]
func (h *JobHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{Msg: "Invalid id"})
	}

	if err := h.jobService.Delete(c.Request().Context(), auth.CurrentUser(c), id); err != nil {
		he := errors.MapErrorToHTTP(err)
		return c.JSON(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"msg": "Job removed"})
}

// ListByEmployer godoc
// @Summary List jobs by employer
// @Tags jobs
// @Produce json
// @Param id path string true "Employer user ID"
// @Success 200 {array} model.Job
// @Failure 403 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /jobs/employer/{id} [get]
func (h *JobHandler) ListByEmployer(c echo.Context) error {
	employerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{Msg: "Invalid id"})
	}

	jobs, err := h.jobService.ListByEmployer(c.Request().Context(), auth.CurrentUser(c), employerID)
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return c.JSON(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, jobs)
}
