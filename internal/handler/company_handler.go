package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"c2hr/internal/auth"
	"c2hr/internal/errors"
	"c2hr/internal/model"
	"c2hr/internal/service"
)

// CompanyHandler handles employer company profile endpoints.
type CompanyHandler struct {
	companyService service.CompanyService
}

// NewCompanyHandler creates a new company handler.
func NewCompanyHandler(companyService service.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

// CompanyRequest represents a company profile upsert payload.
type CompanyRequest struct {
	Name        string            `json:"name" validate:"required"`
	Description string            `json:"description"`
	Website     string            `json:"website"`
	Industry    string            `json:"industry"`
	Size        string            `json:"size" validate:"omitempty,oneof=1-10 11-50 51-200 201-500 501-1000 1000+"`
	Location    string            `json:"location"`
	Founded     int               `json:"founded" validate:"omitempty,min=1800"`
	Logo        string            `json:"logo"`
	CoverImage  string            `json:"coverImage"`
	SocialLinks model.SocialLinks `json:"socialLinks"`
	Benefits    []string          `json:"benefits"`
	Culture     string            `json:"culture"`
	Mission     string            `json:"mission"`
	Values      []string          `json:"values"`
}

// Upsert godoc
// @Summary Create or replace own company profile
// @Tags companies
// @Accept json
// @Produce json
// @Param request body CompanyRequest true "Company payload"
// @Success 200 {object} model.Company
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /companies [post]
func (h *CompanyHandler) Upsert(c echo.Context) error {
	var req CompanyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{Msg: "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{Msg: err.Error()})
	}
	if req.Founded > time.Now().Year() {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{Msg: "Founded year cannot be in the future"})
	}

	input := service.CompanyInput{
		Name:        req.Name,
		Description: req.Description,
		Website:     req.Website,
		Industry:    req.Industry,
		Size:        model.CompanySize(req.Size),
		Location:    req.Location,
		Founded:     req.Founded,
		Logo:        req.Logo,
		CoverImage:  req.CoverImage,
		SocialLinks: req.SocialLinks,
		Benefits:    req.Benefits,
		Culture:     req.Culture,
		Mission:     req.Mission,
		Values:      req.Values,
	}

	company, err := h.companyService.Upsert(c.Request().Context(), auth.CurrentUser(c), input)
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return c.JSON(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, company)
}

// GetByEmployer godoc
// @Summary Get an employer's company profile
// @Tags companies
// @Produce json
// @Param id path string true "Employer user ID"
// @Success 200 {object} model.Company
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /companies/employer/{id} [get]
func (h *CompanyHandler) GetByEmployer(c echo.Context) error {
	employerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{Msg: "Invalid id"})
	}

	company, err := h.companyService.GetByEmployer(c.Request().Context(), employerID)
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return c.JSON(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, company)
}
