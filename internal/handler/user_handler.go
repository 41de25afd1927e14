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

// UserHandler handles profile, approval, and directory endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// UpdateProfileRequest is the caller's replacement profile block.
type UpdateProfileRequest struct {
	Company    string   `json:"company"`
	Location   string   `json:"location"`
	Bio        string   `json:"bio"`
	Skills     []string `json:"skills"`
	Experience string   `json:"experience"`
	Resume     string   `json:"resume"`
	Mobile     string   `json:"mobile"`
	Country    string   `json:"country"`
	State      string   `json:"state"`
	Pincode    string   `json:"pincode"`
}

// UpdateProfile godoc
// @Summary Update own profile
// @Tags users
// @Accept json
// @Produce json
// @Param request body UpdateProfileRequest true "Profile fields"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /users/profile [put]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{Msg: "Invalid request body"})
	}

	profile := model.Profile{
		Company:    req.Company,
		Location:   req.Location,
		Bio:        req.Bio,
		Skills:     req.Skills,
		Experience: req.Experience,
		Resume:     req.Resume,
		Mobile:     req.Mobile,
		Country:    req.Country,
		State:      req.State,
		Pincode:    req.Pincode,
	}

	user, err := h.userService.UpdateProfile(c.Request().Context(), auth.CurrentUser(c), profile)
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return c.JSON(he.StatusCode, he.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, user)
}

// Approve godoc
// @Summary Approve an employer to post jobs
// @Tags users
// @Produce json
// @Param id path string true "Employer user ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /users/approve/{id} [put]
func (h *UserHandler) Approve(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{Msg: "Invalid id"})
	}

	if err := h.userService.Approve(c.Request().Context(), auth.CurrentUser(c), id); err != nil {
		he := errors.MapErrorToHTTP(err)
		return c.JSON(he.StatusCode, he.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{"msg": "Employer approved successfully"})
}

// ListCandidates godoc
// @Summary List all candidates
// @Tags users
// @Produce json
// @Success 200 {array} model.User
// @Failure 403 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /users/candidates [get]
func (h *UserHandler) ListCandidates(c echo.Context) error {
	users, err := h.userService.ListCandidates(c.Request().Context(), auth.CurrentUser(c))
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return c.JSON(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, users)
}

// ListEmployers godoc
// @Summary List all employers
// @Tags users
// @Produce json
// @Success 200 {array} model.User
// @Failure 403 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /users/employers [get]
func (h *UserHandler) ListEmployers(c echo.Context) error {
	users, err := h.userService.ListEmployers(c.Request().Context(), auth.CurrentUser(c))
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return c.JSON(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, users)
}

// ListUsers godoc
// @Summary List all users
// @Tags users
// @Produce json
// @Success 200 {array} model.User
// @Failure 403 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userService.ListAll(c.Request().Context(), auth.CurrentUser(c))
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return c.JSON(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, users)
}
