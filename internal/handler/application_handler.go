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

// ApplicationHandler handles application lifecycle endpoints.
type ApplicationHandler struct {
	applicationService service.ApplicationService
}

// NewApplicationHandler creates a new application handler.
func NewApplicationHandler(applicationService service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applicationService: applicationService}
}

// ApplyRequest represents a candidate's application submission.
type ApplyRequest struct {
	JobID       string `json:"jobId" validate:"required,uuid"`
	CoverLetter string `json:"coverLetter"`
}

// StatusRequest carries the new status for an application.
type StatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// Apply godoc
// @Summary Apply for a job
// @Tags applications
// @Accept json
// @Produce json
// @Param request body ApplyRequest true "Application payload"
// @Success 200 {object} model.Application
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /applications [post]
func (h *ApplicationHandler) Apply(c echo.Context) error {
	var req ApplyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{Msg: "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{Msg: err.Error()})
	}

	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{Msg: "Invalid job id"})
	}

	application, err := h.applicationService.Apply(c.Request().Context(), auth.CurrentUser(c), jobID, req.CoverLetter)
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return c.JSON(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, application)
}

// ListForCandidate godoc
// @Summary List own applications
// @Tags applications
// @Produce json
// @Success 200 {array} model.Application
// @Failure 403 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /applications/candidate [get]
func (h *ApplicationHandler) ListForCandidate(c echo.Context) error {
	applications, err := h.applicationService.ListForCandidate(c.Request().Context(), auth.CurrentUser(c))
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return c.JSON(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, applications)
}

// ListForJob godoc
// @Summary List applications for a job
// @Tags applications
// @Produce json
// @Param jobId path string true "Job ID"
// @Success 200 {array} model.Application
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /applications/job/{jobId} [get]
func (h *ApplicationHandler) ListForJob(c echo.Context) error {
	jobID, err := uuid.Parse(c.Param("jobId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{Msg: "Invalid id"})
	}

	applications, err := h.applicationService.ListForJob(c.Request().Context(), auth.CurrentUser(c), jobID)
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return c.JSON(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, applications)
}

// ListAll godoc
// @Summary List every application platform-wide
// @Tags applications
// @Produce json
// @Success 200 {array} model.Application
// @Failure 403 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /applications [get]
func (h *ApplicationHandler) ListAll(c echo.Context) error {
	applications, err := h.applicationService.ListAll(c.Request().Context(), auth.CurrentUser(c))
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return c.JSON(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, applications)
}

// SetStatus godoc
// @Summary Update application status
// @Tags applications
// @Accept json
// @Produce json
// @Param id path string true "Application ID"
// @Param request body StatusRequest true "New status"
// @Success 200 {object} model.Application
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /applications/{id}/status [put]
func (h *ApplicationHandler) SetStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{Msg: "Invalid id"})
	}

	var req StatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{Msg: "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{Msg: err.Error()})
	}

	application, err := h.applicationService.SetStatus(c.Request().Context(), auth.CurrentUser(c), id, model.ApplicationStatus(req.Status))
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return c.JSON(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, application)
}
