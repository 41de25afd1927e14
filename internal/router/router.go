package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"c2hr/internal/auth"
	"c2hr/internal/config"
	"c2hr/internal/handler"
	"c2hr/internal/repository"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	userRepo repository.UserRepository,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	jobHandler *handler.JobHandler,
	applicationHandler *handler.ApplicationHandler,
	bookmarkHandler *handler.BookmarkHandler,
	companyHandler *handler.CompanyHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)
	api.GET("/jobs", jobHandler.List)
	api.GET("/jobs/:id", jobHandler.Get)

	// Secured routes: verify the bearer token, then resolve it to a full user
	// record so every handler sees the caller's current role and approval state.
	secured := api.Group("",
		echojwt.WithConfig(echojwt.Config{
			ParseTokenFunc: auth.ParseToken(jwtService),
		}),
		auth.LoadUser(userRepo),
	)

	// User routes
	secured.PUT("/users/profile", userHandler.UpdateProfile)
	secured.PUT("/users/approve/:id", userHandler.Approve)
	secured.GET("/users/candidates", userHandler.ListCandidates)
	secured.GET("/users/employers", userHandler.ListEmployers)
	secured.GET("/users", userHandler.ListUsers)

	// Job routes
	secured.POST("/jobs", jobHandler.Create)
	secured.PUT("/jobs/:id", jobHandler.Update)
	secured.DELETE("/jobs/:id", jobHandler.Delete)
	secured.GET("/jobs/employer/:id", jobHandler.ListByEmployer)

	// Application routes
	secured.POST("/applications", applicationHandler.Apply)
	secured.GET("/applications/candidate", applicationHandler.ListForCandidate)
	secured.GET("/applications/job/:jobId", applicationHandler.ListForJob)
	secured.GET("/applications", applicationHandler.ListAll)
	secured.PUT("/applications/:id/status", applicationHandler.SetStatus)

	// Bookmark routes
	secured.POST("/bookmarks", bookmarkHandler.Add)
	secured.DELETE("/bookmarks/:jobId", bookmarkHandler.Remove)
	secured.GET("/bookmarks", bookmarkHandler.List)
	secured.GET("/bookmarks/check/:jobId", bookmarkHandler.Check)

	// Company routes
	secured.POST("/companies", companyHandler.Upsert)
	secured.GET("/companies/employer/:id", companyHandler.GetByEmployer)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
