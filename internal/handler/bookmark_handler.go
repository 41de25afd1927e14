package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"c2hr/internal/auth"
	"c2hr/internal/errors"
	"c2hr/internal/service"
)

// BookmarkHandler handles saved-job endpoints.
type BookmarkHandler struct {
	bookmarkService service.BookmarkService
}

// NewBookmarkHandler creates a new bookmark handler.
func NewBookmarkHandler(bookmarkService service.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{bookmarkService: bookmarkService}
}

// BookmarkRequest represents a save-job request.
type BookmarkRequest struct {
	JobID string `json:"jobId" validate:"required,uuid"`
}

// CheckResponse reports whether the caller has saved a job.
type CheckResponse struct {
	IsBookmarked bool `json:"isBookmarked"`
}

// Add godoc
// @Summary Bookmark a job
// @Tags bookmarks
// @Accept json
// @Produce json
// @Param request body BookmarkRequest true "Bookmark payload"
// @Success 200 {object} model.Bookmark
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /bookmarks [post]
func (h *BookmarkHandler) Add(c echo.Context) error {
	var req BookmarkRequest
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

	bookmark, err := h.bookmarkService.Add(c.Request().Context(), auth.CurrentUser(c), jobID)
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return c.JSON(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, bookmark)
}

// Remove godoc
// @Summary Remove a bookmark
// @Tags bookmarks
// @Produce json
// @Param jobId path string true "Job ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /bookmarks/{jobId} [delete]
func (h *BookmarkHandler) Remove(c echo.Context) error {
	jobID, err := uuid.Parse(c.Param("jobId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{Msg: "Invalid id"})
	}

	if err := h.bookmarkService.Remove(c.Request().Context(), auth.CurrentUser(c), jobID); err != nil {
		he := errors.MapErrorToHTTP(err)
		return c.JSON(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"msg": "Bookmark removed"})
}

// List godoc
// @Summary List own bookmarks
// @Tags bookmarks
// @Produce json
// @Success 200 {array} model.Bookmark
// @Security BearerAuth
// @Router /bookmarks [get]
func (h *BookmarkHandler) List(c echo.Context) error {
	bookmarks, err := h.bookmarkService.List(c.Request().Context(), auth.CurrentUser(c))
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return c.JSON(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, bookmarks)
}

// Check godoc
// @Summary Check whether a job is bookmarked
// @Tags bookmarks
// @Produce json
// @Param jobId path string true "Job ID"
// @Success 200 {object} CheckResponse
// @Security BearerAuth
// @Router /bookmarks/check/{jobId} [get]
func (h *BookmarkHandler) Check(c echo.Context) error {
	jobID, err := uuid.Parse(c.Param("jobId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{Msg: "Invalid id"})
	}

	exists, err := h.bookmarkService.Exists(c.Request().Context(), auth.CurrentUser(c), jobID)
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return c.JSON(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, CheckResponse{IsBookmarked: exists})
}
